package secmem

import (
	"math/big"
	"runtime"
)

// Bytes overwrites buf with zeros. runtime.KeepAlive keeps the compiler from
// eliminating the stores (golang/go#33325).
func Bytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// Int clears the words backing v and sets v to zero. A nil v is ignored.
func Int(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	v.SetInt64(0)
}
