package curve

import "github.com/coinbase/cb-secp256k1-go/pkg/field"

// calc chains field operations and keeps the first error, so the curve
// formulas read as straight-line code. After a failure every operation
// returns its left operand unchanged.
type calc struct {
	err error
}

type binop func(x, y field.Element) (field.Element, error)

func (c *calc) apply(op binop, x, y field.Element) field.Element {
	if c.err != nil {
		return x
	}
	r, err := op(x, y)
	if err != nil {
		c.err = err
		return x
	}
	return r
}

func (c *calc) add(x, y field.Element) field.Element { return c.apply(field.Element.Add, x, y) }
func (c *calc) sub(x, y field.Element) field.Element { return c.apply(field.Element.Sub, x, y) }
func (c *calc) mul(x, y field.Element) field.Element { return c.apply(field.Element.Mul, x, y) }
func (c *calc) div(x, y field.Element) field.Element { return c.apply(field.Element.Div, x, y) }

func (c *calc) square(x field.Element) field.Element { return c.mul(x, x) }
