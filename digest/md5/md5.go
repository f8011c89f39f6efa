// Package md5 implements the MD5 message digest as specified by RFC
// 1321. MD5 is cryptographically broken: it is provided for legacy
// interoperability and content fingerprinting, not for security.
package md5

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"
)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// ErrConsumed is returned when a [Context] is used after [Context.Sum]
// has finalized it.
var ErrConsumed = errors.New("md5: context already finalized")

// Context is the running state of one digest computation. A Context is
// exclusively owned by a single logical stream and performs no internal
// locking; hash independent streams with independent contexts.
type Context struct {
	state  [4]uint32
	count  uint64 // bits fed so far, mod 2^64
	buffer [BlockSize]byte
	fill   int
	done   bool
}

// New returns a context ready to digest a new stream.
func New() *Context {
	c := &Context{}
	c.Reset()
	return c
}

// Reset returns the context to its initial state. It also revives a
// context consumed by [Context.Sum].
func (c *Context) Reset() {
	*c = Context{}
	c.state[0] = init0
	c.state[1] = init1
	c.state[2] = init2
	c.state[3] = init3
}

// Update appends p (any length, including zero) to the stream being
// digested. It fails only if the context was already finalized.
func (c *Context) Update(p []byte) error {
	if c.done {
		return errors.WithStack(ErrConsumed)
	}
	c.count += uint64(len(p)) << 3
	if c.fill > 0 {
		n := copy(c.buffer[c.fill:], p)
		c.fill += n
		if c.fill == BlockSize {
			transform(&c.state, c.buffer[:])
			c.fill = 0
		}
		p = p[n:]
	}
	// Whole blocks are transformed straight from the input.
	for len(p) >= BlockSize {
		transform(&c.state, p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		c.fill = copy(c.buffer[:], p)
	}
	return nil
}

// Write adapts [Context.Update] to io.Writer.
func (c *Context) Write(p []byte) (int, error) {
	if err := c.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum pads the stream, runs the final transform and returns the
// 16-byte digest. The context is then zeroed so hashed material does
// not linger in memory, and marked consumed: subsequent Update or Sum
// calls return [ErrConsumed]. Use [Context.Reset] to start over.
func (c *Context) Sum() ([Size]byte, error) {
	if c.done {
		return [Size]byte{}, errors.WithStack(ErrConsumed)
	}

	// The length field must be captured before the padding below runs
	// through Update and grows the count.
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], c.count)

	// One 0x80 byte then zeros until fill ≡ 56 (mod 64).
	pad := 56 - c.fill
	if pad <= 0 {
		pad += BlockSize
	}
	var padding [BlockSize]byte
	padding[0] = 0x80
	_ = c.Update(padding[:pad])
	_ = c.Update(length[:]) // fill is 56, so this triggers the last transform

	var sum [Size]byte
	for i, s := range c.state {
		binary.LittleEndian.PutUint32(sum[i*4:], s)
	}
	*c = Context{done: true}
	return sum, nil
}

// Digest returns the MD5 digest of b in one shot.
func Digest(b []byte) [Size]byte {
	c := New()
	_ = c.Update(b)
	sum, _ := c.Sum()
	return sum
}

// HexDigest returns the MD5 digest of b as 32 lowercase hexadecimal
// characters, two digits per byte, most significant nibble first.
func HexDigest(b []byte) string {
	sum := Digest(b)
	return hex.EncodeToString(sum[:])
}
