package curve

import (
	"fmt"

	"github.com/coinbase/cb-secp256k1-go/pkg/field"
)

// Point is either Infinity or *Affine.
type Point interface {
	fmt.Stringer
	isPoint()
}

// Infinity is the identity element of the group.
type Infinity struct{}

func (Infinity) isPoint() {}

func (Infinity) String() string {
	return "Point(infinity)"
}

// Affine is a finite point (x, y) on the curve defined by a and b. All four
// elements share one modulus.
type Affine struct {
	a, b, x, y field.Element
}

func (*Affine) isPoint() {}

// NewAffine returns the point (x, y) on y^2 = x^3 + a*x + b. It fails with
// ErrNotOnCurve if the equation does not hold.
func NewAffine(a, b, x, y field.Element) (*Affine, error) {
	for _, e := range []field.Element{b, x, y} {
		if !a.SameField(e) {
			return nil, fmt.Errorf("%w: coordinates span different fields", field.ErrOrderMismatch)
		}
	}
	p := &Affine{a: a, b: b, x: x, y: y}
	if !p.onCurve() {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrNotOnCurve, x.Value(), y.Value())
	}
	return p, nil
}

// X returns the x-coordinate.
func (p *Affine) X() field.Element { return p.x }

// Y returns the y-coordinate.
func (p *Affine) Y() field.Element { return p.y }

// A returns the linear coefficient of the curve.
func (p *Affine) A() field.Element { return p.a }

// B returns the constant coefficient of the curve.
func (p *Affine) B() field.Element { return p.b }

// SameCurve reports whether p and q lie on curves with equal coefficients.
func (p *Affine) SameCurve(q *Affine) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Equal reports whether p and q have the same coordinates and curve.
func (p *Affine) Equal(q *Affine) bool {
	if !p.valid() || !q.valid() {
		return p == q
	}
	return p.SameCurve(q) && p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p *Affine) String() string {
	if !p.valid() {
		return "Point(invalid)"
	}
	return fmt.Sprintf("Point(%s,%s)_%s_%s FieldElement(%s)",
		p.x.Value(), p.y.Value(), p.a.Value(), p.b.Value(), p.x.Modulus())
}

// valid reports whether p is non-nil and was built by NewAffine or the group
// operations. A zero Affine is not.
func (p *Affine) valid() bool {
	return p != nil && p.a.IsValid() && p.b.IsValid() && p.x.IsValid() && p.y.IsValid()
}

func (p *Affine) onCurve() bool {
	var c calc
	lhs := c.square(p.y)
	rhs := c.add(c.add(c.mul(c.square(p.x), p.x), c.mul(p.a, p.x)), p.b)
	return c.err == nil && lhs.Equal(rhs)
}

// IsOnCurve reports whether p satisfies its curve equation. Infinity is
// always on the curve; nil and the zero Affine are not.
func IsOnCurve(p Point) bool {
	switch p := p.(type) {
	case Infinity:
		return true
	case *Affine:
		return p.valid() && p.onCurve()
	default:
		return false
	}
}

// Equal compares points structurally: both Infinity, or both affine with
// matching (a, b, x, y).
func Equal(p, q Point) bool {
	switch p := p.(type) {
	case Infinity:
		_, ok := q.(Infinity)
		return ok
	case *Affine:
		qa, ok := q.(*Affine)
		return ok && p.Equal(qa)
	default:
		return false
	}
}

// Negate returns (x, -y). Infinity is its own inverse.
func Negate(p Point) Point {
	a, ok := p.(*Affine)
	if !ok || !a.valid() {
		return p
	}
	return &Affine{a: a.a, b: a.b, x: a.x, y: a.y.Neg()}
}

func checkPoint(p Point) error {
	switch p := p.(type) {
	case Infinity:
		return nil
	case *Affine:
		if !p.valid() {
			return ErrInvalidPoint
		}
		return nil
	default:
		return ErrInvalidPoint
	}
}
