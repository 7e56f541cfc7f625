package rfc6979

import (
	"crypto/hmac"
	"hash"

	k1hash "github.com/coinbase/cb-secp256k1-go/pkg/hash"
)

// MAC computes fixed-length tags. Size is the tag length in bytes.
type MAC interface {
	Size() int
	Sum(key, message []byte) []byte
}

type hmacMAC struct {
	h    func() hash.Hash
	size int
}

// HMAC returns the HMAC construction over the hash built by h.
func HMAC(h func() hash.Hash) MAC {
	return &hmacMAC{h: h, size: h().Size()}
}

func (m *hmacMAC) Size() int {
	return m.size
}

func (m *hmacMAC) Sum(key, message []byte) []byte {
	mac := hmac.New(m.h, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// HMACSHA256 is HMAC over SHA-256.
var HMACSHA256 = HMAC(k1hash.New)
