package digest_test

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-digest/digest"
	"github.com/storacha/go-digest/digest/md5"
	"github.com/storacha/go-digest/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := helpers.Must(md5.Hasher.Sum([]byte("hello world")))
		dec := helpers.Must(digest.Decode(d.Bytes()))
		require.Equal(t, d.Code(), dec.Code())
		require.Equal(t, d.Size(), dec.Size())
		require.Equal(t, d.Digest(), dec.Digest())
		require.Equal(t, d.Bytes(), dec.Bytes())
	})

	t.Run("truncated sum", func(t *testing.T) {
		d := helpers.Must(md5.Hasher.Sum([]byte("hello world")))
		b := d.Bytes()
		_, err := digest.Decode(b[:len(b)-1])
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := digest.Decode(nil)
		require.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	d := helpers.Must(md5.Hasher.Sum([]byte("abc")))

	t.Run("base16", func(t *testing.T) {
		str := helpers.Must(digest.Format(d, multibase.Base16))
		// multibase prefix, varint code 0xd5, length 0x10, then the sum
		require.Equal(t, "fd50110900150983cd24fb0d6963f7d28e17f72", str)
	})

	t.Run("base58btc", func(t *testing.T) {
		str := helpers.Must(digest.Format(d, multibase.Base58BTC))
		require.Equal(t, "z", str[:1])
	})
}

func TestLink(t *testing.T) {
	d := helpers.Must(md5.Hasher.Sum([]byte("abc")))
	link := digest.Link(d, cid.Raw)
	require.Equal(t, uint64(cid.Raw), link.Type())
	require.Equal(t, d.Bytes(), []byte(link.Hash()))
}
