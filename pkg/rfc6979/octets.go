package rfc6979

import "math/big"

// Bits2Int interprets b as a big-endian integer and keeps its qlen most
// significant bits (RFC 6979 section 2.3.2).
func Bits2Int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if blen := len(b) * 8; blen > qlen {
		v.Rsh(v, uint(blen-qlen))
	}
	return v
}

// Int2Octets encodes v as exactly rolen big-endian bytes (RFC 6979 section
// 2.3.3). Shorter encodings are left-padded with zeros. When v needs more
// than rolen bytes the most significant excess bytes are dropped, which
// reduces v mod 2^(8*rolen); callers that reduce v below q first never hit
// this case.
func Int2Octets(v *big.Int, rolen int) []byte {
	b := v.Bytes()
	if len(b) >= rolen {
		return b[len(b)-rolen:]
	}
	out := make([]byte, rolen)
	copy(out[rolen-len(b):], b)
	return out
}

// Bits2Octets converts a digest to rolen octets reduced once modulo q (RFC
// 6979 section 2.3.4).
func Bits2Octets(b []byte, q *big.Int) []byte {
	v := Bits2Int(b, q.BitLen())
	if v.Cmp(q) >= 0 {
		v.Sub(v, q)
	}
	return Int2Octets(v, byteLen(q))
}

func byteLen(q *big.Int) int {
	return (q.BitLen() + 7) / 8
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
