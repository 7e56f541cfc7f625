package secp256k1

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/coinbase/cb-secp256k1-go/pkg/curve"
	"github.com/coinbase/cb-secp256k1-go/pkg/field"
)

const (
	primeHex = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	orderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	gxHex    = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex    = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

	// ByteSize is the length of a serialized field element or scalar.
	ByteSize = 32
)

// Params is the secp256k1 domain parameter set.
type Params struct {
	p, n *big.Int
	a, b field.Element
	g    *curve.Affine

	// sqrtExp is (p+1)/4, the square-root exponent for p = 3 mod 4.
	sqrtExp *big.Int
}

var (
	s256     *Params
	s256Once sync.Once
)

// S256 returns the secp256k1 parameters.
func S256() *Params {
	s256Once.Do(initS256)
	return s256
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant " + s)
	}
	return v
}

func initS256() {
	p := mustHex(primeHex)
	a := field.MustNew(big.NewInt(0), p)
	b := field.MustNew(big.NewInt(7), p)
	g, err := curve.NewAffine(a, b, field.MustNew(mustHex(gxHex), p), field.MustNew(mustHex(gyHex), p))
	if err != nil {
		panic(fmt.Sprintf("secp256k1: invalid generator: %v", err))
	}

	sqrtExp := new(big.Int).Add(p, big.NewInt(1))
	sqrtExp.Rsh(sqrtExp, 2)

	s256 = &Params{
		p:       p,
		n:       mustHex(orderHex),
		a:       a,
		b:       b,
		g:       g,
		sqrtExp: sqrtExp,
	}
}

// P returns a copy of the field prime.
func (c *Params) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns a copy of the group order.
func (c *Params) N() *big.Int { return new(big.Int).Set(c.n) }

// A returns the coefficient a = 0.
func (c *Params) A() field.Element { return c.a }

// B returns the coefficient b = 7.
func (c *Params) B() field.Element { return c.b }

// G returns the generator point.
func (c *Params) G() *curve.Affine { return c.g }

// BitSize returns the bit length of the group order.
func (c *Params) BitSize() int { return c.n.BitLen() }

// Name returns the SEC 2 curve name.
func (c *Params) Name() string { return "secp256k1" }

// ComputePublicKey returns e*G. e must lie in [1, n-1].
func (c *Params) ComputePublicKey(e *big.Int) (*curve.Affine, error) {
	if e == nil || e.Sign() <= 0 || e.Cmp(c.n) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	p, err := curve.ScalarMult(c.g, e)
	if err != nil {
		return nil, err
	}
	// e < n, so e*G is never the identity.
	return p.(*curve.Affine), nil
}

// PointFromBytes builds the point with big-endian coordinates x and y and
// checks it against the curve equation.
func (c *Params) PointFromBytes(x, y []byte) (*curve.Affine, error) {
	fx, err := c.coordinate(x)
	if err != nil {
		return nil, err
	}
	fy, err := c.coordinate(y)
	if err != nil {
		return nil, err
	}
	return curve.NewAffine(c.a, c.b, fx, fy)
}

func (c *Params) coordinate(b []byte) (field.Element, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(c.p) >= 0 {
		return field.Element{}, ErrCoordinateTooBig
	}
	return field.New(v, c.p)
}

// IsOnCurve reports whether p is Infinity or an affine point on secp256k1.
func (c *Params) IsOnCurve(p curve.Point) bool {
	if !curve.IsOnCurve(p) {
		return false
	}
	if a, ok := p.(*curve.Affine); ok {
		return a.A().Equal(c.a) && a.B().Equal(c.b)
	}
	return true
}
