// Package curve implements the group law of short Weierstrass curves
// y^2 = x^3 + a*x + b over a prime field.
//
// # Points
//
// Point is a closed union with exactly two variants:
//
//   - Infinity, the group identity
//   - *Affine, a solution (x, y) together with the curve coefficients (a, b)
//
// The marker method is unexported, so no other package can add variants and a
// type switch over Infinity and *Affine is exhaustive.
//
//	switch p := p.(type) {
//	case curve.Infinity:
//	    // identity
//	case *curve.Affine:
//	    x, y := p.X(), p.Y()
//	}
//
// # Operations
//
// Add implements the chord-and-tangent rule, including the vertical chord
// and vertical tangent cases that yield Infinity. ScalarMult uses
// double-and-add over the scalar bits, least significant first.
//
// Points are immutable. Adding points whose coefficients differ fails with
// ErrCurveMismatch; constructing a point that does not satisfy the curve
// equation fails with ErrNotOnCurve.
//
// Scalar multiplication branches on the scalar bits and is therefore
// variable-time. Callers that need side-channel resistance must use a
// different implementation.
package curve
