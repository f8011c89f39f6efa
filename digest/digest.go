package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// Hasher produces a digest of a byte payload.
type Hasher interface {
	Sum(bytes []byte) (Digest, error)
}

// Digest is a hash sum together with the multicodec code identifying
// the algorithm that produced it.
type Digest interface {
	Code() uint64
	Size() uint64
	// Raw hash sum (without algorithm info).
	Digest() []byte
	// Multihash encoded bytes (varint code, varint length, sum).
	Bytes() []byte
}

type digest struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Size() uint64 {
	return d.size
}

func (d *digest) Digest() []byte {
	return d.digest
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

func NewDigest(code uint64, size uint64, digst []byte, bytes []byte) Digest {
	return &digest{code, size, digst, bytes}
}

// Decode parses multihash encoded bytes back into a [Digest].
func Decode(b []byte) (Digest, error) {
	r := bytes.NewReader(b)
	code, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading multihash code: %w", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading multihash length: %w", err)
	}
	offset := len(b) - r.Len()
	sum := b[offset:]
	if uint64(len(sum)) != size {
		return nil, fmt.Errorf("multihash length %d does not match remaining %d bytes", size, len(sum))
	}
	return &digest{code, size, sum, b}, nil
}

// Hex returns the raw sum as lowercase hexadecimal, two digits per
// byte, most significant nibble first.
func Hex(d Digest) string {
	return hex.EncodeToString(d.Digest())
}

// Format renders the multihash bytes in the given multibase encoding.
func Format(d Digest, base multibase.Encoding) (string, error) {
	str, err := multibase.Encode(base, d.Bytes())
	if err != nil {
		return "", fmt.Errorf("encoding multibase: %w", err)
	}
	return str, nil
}

// Link wraps the digest in a CIDv1 under the given codec, allowing
// payloads to be content addressed by digests this library produces.
func Link(d Digest, codec uint64) cid.Cid {
	return cid.NewCidV1(codec, multihash.Multihash(d.Bytes()))
}
