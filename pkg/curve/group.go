package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/coinbase/cb-secp256k1-go/pkg/field"
)

// Add returns p + q.
//
// The cases are evaluated in order:
//
//  1. Infinity + q = q and p + Infinity = p.
//  2. Different coefficients fail with ErrCurveMismatch.
//  3. Same x, different y is a vertical chord: Infinity.
//  4. p == q with y == 0 is a vertical tangent: Infinity.
//  5. Different x uses the chord slope (y2-y1)/(x2-x1).
//  6. Otherwise p == q and the tangent slope (3x^2+a)/(2y) doubles p.
func Add(p, q Point) (Point, error) {
	if err := checkPoint(p); err != nil {
		return nil, err
	}
	if err := checkPoint(q); err != nil {
		return nil, err
	}

	if _, ok := p.(Infinity); ok {
		return q, nil
	}
	if _, ok := q.(Infinity); ok {
		return p, nil
	}

	p1 := p.(*Affine)
	p2 := q.(*Affine)
	if !p1.SameCurve(p2) {
		return nil, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p1, p2)
	}

	sameX := p1.x.Equal(p2.x)
	if sameX && !p1.y.Equal(p2.y) {
		return Infinity{}, nil
	}
	if sameX && p1.y.IsZero() {
		return Infinity{}, nil
	}

	var (
		c         calc
		slope, x3 field.Element
	)
	if !sameX {
		slope = c.div(c.sub(p2.y, p1.y), c.sub(p2.x, p1.x))
		x3 = c.sub(c.sub(c.square(slope), p1.x), p2.x)
	} else {
		num := c.add(c.square(p1.x).Scale(3), p1.a)
		slope = c.div(num, p1.y.Scale(2))
		x3 = c.sub(c.square(slope), p1.x.Scale(2))
	}
	y3 := c.sub(c.mul(slope, c.sub(p1.x, x3)), p1.y)
	if c.err != nil {
		return nil, c.err
	}

	return &Affine{a: p1.a, b: p1.b, x: x3, y: y3}, nil
}

// Double returns p + p.
func Double(p Point) (Point, error) {
	return Add(p, p)
}

// ScalarMult returns k*p by double-and-add, consuming the bits of k from the
// least significant end. 0*p is Infinity. The running time depends on k.
func ScalarMult(p Point, k *big.Int) (Point, error) {
	if err := checkPoint(p); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, errors.New("curve: nil scalar")
	}
	if k.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeScalar, k)
	}

	var (
		result  Point = Infinity{}
		current       = p
		err     error
	)
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if result, err = Add(result, current); err != nil {
				return nil, err
			}
		}
		if current, err = Add(current, current); err != nil {
			return nil, err
		}
	}
	return result, nil
}
