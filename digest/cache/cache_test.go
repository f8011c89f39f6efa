package cache

import (
	"fmt"
	"testing"

	"github.com/storacha/go-digest/digest"
	"github.com/storacha/go-digest/digest/md5"
	"github.com/storacha/go-digest/testing/helpers"
	"github.com/stretchr/testify/require"
)

// countingHasher records how many times Sum is invoked.
type countingHasher struct {
	calls int
}

func (h *countingHasher) Sum(b []byte) (digest.Digest, error) {
	h.calls++
	return md5.Hasher.Sum(b)
}

func TestMemoryDigestCache(t *testing.T) {
	t.Run("memoizes", func(t *testing.T) {
		inner := &countingHasher{}
		c := helpers.Must(NewMemoryDigestCache(inner, 10))

		d1 := helpers.Must(c.Sum([]byte("abc")))
		d2 := helpers.Must(c.Sum([]byte("abc")))
		require.Equal(t, 1, inner.calls)
		require.Equal(t, d1.Bytes(), d2.Bytes())
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", digest.Hex(d1))
	})

	t.Run("eviction recomputes", func(t *testing.T) {
		inner := &countingHasher{}
		c := helpers.Must(NewMemoryDigestCache(inner, 2))

		for i := 0; i < 4; i++ {
			_ = helpers.Must(c.Sum([]byte(fmt.Sprintf("payload %d", i))))
		}
		require.Equal(t, 4, inner.calls)

		// entry 0 was evicted, entry 3 is still cached
		_ = helpers.Must(c.Sum([]byte("payload 3")))
		require.Equal(t, 4, inner.calls)
		_ = helpers.Must(c.Sum([]byte("payload 0")))
		require.Equal(t, 5, inner.calls)
	})

	t.Run("default size", func(t *testing.T) {
		c := helpers.Must(NewMemoryDigestCache(md5.Hasher, 0))
		d := helpers.Must(c.Sum([]byte("")))
		require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", digest.Hex(d))
	})
}
