// Package field implements arithmetic over prime fields Z/pZ.
//
// An Element pairs a value with its modulus. Binary operations check that
// both operands carry the same modulus and return ErrOrderMismatch otherwise;
// there is no implicit coercion between fields. Every operation allocates a
// new Element, so values can be shared freely between goroutines.
//
// The modulus is trusted to be prime. Division and negative exponents rely on
// Fermat's little theorem (a^(p-2) = a^-1), which only holds for prime p; the
// package never checks primality.
//
// Arithmetic is built on math/big and is variable-time.
package field
