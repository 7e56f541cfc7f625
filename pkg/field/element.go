package field

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is a value in Z/pZ. The zero Element is not usable; construct one
// with New, NewFromInt64 or FromBytes.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns value as an element of the field with the given modulus. It
// fails with ErrInvalidElement unless 0 <= value < modulus and modulus >= 2.
// Both arguments are copied.
func New(value, modulus *big.Int) (Element, error) {
	if value == nil || modulus == nil {
		return Element{}, fmt.Errorf("%w: nil value or modulus", ErrInvalidElement)
	}
	if modulus.Cmp(two) < 0 {
		return Element{}, fmt.Errorf("%w: modulus %s is smaller than 2", ErrInvalidElement, modulus)
	}
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return Element{}, fmt.Errorf("%w: %s not in range [0, %s)", ErrInvalidElement, value, modulus)
	}
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// NewFromInt64 is New for small literal fields.
func NewFromInt64(value, modulus int64) (Element, error) {
	return New(big.NewInt(value), big.NewInt(modulus))
}

// FromBytes decodes big-endian value and modulus buffers.
func FromBytes(valueBytes, modulusBytes []byte) (Element, error) {
	return New(new(big.Int).SetBytes(valueBytes), new(big.Int).SetBytes(modulusBytes))
}

// MustNew is like New but panics on error. It is meant for package-level
// constants whose validity is known.
func MustNew(value, modulus *big.Int) Element {
	e, err := New(value, modulus)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns a copy of the element's value.
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// Bytes returns the value big-endian, left-padded to the byte length of the
// modulus.
func (e Element) Bytes() []byte {
	out := make([]byte, (e.modulus.BitLen()+7)/8)
	return e.value.FillBytes(out)
}

// IsValid reports whether e came from a constructor. The zero Element is not
// valid.
func (e Element) IsValid() bool {
	return e.value != nil && e.modulus != nil
}

// IsZero reports whether the value is 0.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// SameField reports whether e and o share a modulus.
func (e Element) SameField(o Element) bool {
	return e.modulus.Cmp(o.modulus) == 0
}

// Equal reports whether e and o have the same value and modulus.
func (e Element) Equal(o Element) bool {
	return e.SameField(o) && e.value.Cmp(o.value) == 0
}

func (e Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.modulus, e.value)
}

// checkField returns ErrOrderMismatch when o belongs to a different field.
func (e Element) checkField(op string, o Element) error {
	if !e.SameField(o) {
		return fmt.Errorf("%w: %s between modulus %s and %s", ErrOrderMismatch, op, e.modulus, o.modulus)
	}
	return nil
}

// reduce builds an element of e's field from v, taking v mod p. v is owned by
// the result.
func (e Element) reduce(v *big.Int) Element {
	return Element{value: v.Mod(v, e.modulus), modulus: e.modulus}
}

// Add returns e + o mod p.
func (e Element) Add(o Element) (Element, error) {
	if err := e.checkField("add", o); err != nil {
		return Element{}, err
	}
	return e.reduce(new(big.Int).Add(e.value, o.value)), nil
}

// Sub returns e - o mod p. A negative difference wraps by adding p.
func (e Element) Sub(o Element) (Element, error) {
	if err := e.checkField("sub", o); err != nil {
		return Element{}, err
	}
	v := new(big.Int).Sub(e.value, o.value)
	if v.Sign() < 0 {
		v.Add(v, e.modulus)
	}
	return Element{value: v, modulus: e.modulus}, nil
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.checkField("mul", o); err != nil {
		return Element{}, err
	}
	return e.reduce(new(big.Int).Mul(e.value, o.value)), nil
}

// Div returns e * o^(p-2) mod p, the Fermat inverse of o times e. Dividing by
// the zero element fails with ErrDivisionByZero.
func (e Element) Div(o Element) (Element, error) {
	if err := e.checkField("div", o); err != nil {
		return Element{}, err
	}
	if o.IsZero() {
		return Element{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, e, o)
	}
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Inverse returns e^(p-2) mod p.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, fmt.Errorf("%w: inverse of %s", ErrDivisionByZero, e)
	}
	exp := new(big.Int).Sub(e.modulus, two)
	return e.reduce(new(big.Int).Exp(e.value, exp, e.modulus)), nil
}

// Pow returns e^exp mod p. exp may be negative: it is first reduced modulo
// p-1, the order of the multiplicative group, and the result computed by
// square-and-multiply. A negative power of zero fails with ErrDivisionByZero.
func (e Element) Pow(exp *big.Int) (Element, error) {
	if exp == nil {
		return Element{}, fmt.Errorf("%w: nil exponent", ErrInvalidElement)
	}
	if e.IsZero() {
		switch exp.Sign() {
		case 0:
			return e.reduce(big.NewInt(1)), nil
		case 1:
			return e.reduce(new(big.Int)), nil
		default:
			return Element{}, fmt.Errorf("%w: %s raised to %s", ErrDivisionByZero, e, exp)
		}
	}

	order := new(big.Int).Sub(e.modulus, one)
	// big.Int.Mod is Euclidean, so the reduced exponent is never negative.
	n := new(big.Int).Mod(exp, order)
	return e.reduce(new(big.Int).Exp(e.value, n, e.modulus)), nil
}

// PowInt64 is Pow with a machine-sized exponent.
func (e Element) PowInt64(exp int64) (Element, error) {
	return e.Pow(big.NewInt(exp))
}

// Scale multiplies e by the plain integer k mod p. It serves the small
// literal coefficients (2, 3) of the curve formulas; it is not scalar
// multiplication of points.
func (e Element) Scale(k int64) Element {
	return e.reduce(new(big.Int).Mul(e.value, big.NewInt(k)))
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	if e.IsZero() {
		return e
	}
	return Element{value: new(big.Int).Sub(e.modulus, e.value), modulus: e.modulus}
}
