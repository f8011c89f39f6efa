package md5

import (
	"fmt"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-digest/digest"
)

// md5 multihash
const Code = uint64(multicodec.Md5)

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Size() uint64 {
	return Size
}

func (hasher) Sum(b []byte) (digest.Digest, error) {
	sum := Digest(b)
	mh, err := multihash.Encode(sum[:], Code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return digest.NewDigest(Code, Size, sum[:], mh), nil
}

var Hasher = hasher{}
