package curve

import "errors"

var (
	// ErrNotOnCurve indicates coordinates that do not satisfy
	// y^2 = x^3 + a*x + b.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrCurveMismatch indicates an operation between points of curves with
	// different coefficients.
	ErrCurveMismatch = errors.New("curve: points belong to different curves")

	// ErrInvalidPoint indicates a nil Point, a nil *Affine or a zero Affine.
	ErrInvalidPoint = errors.New("curve: invalid point")

	// ErrNegativeScalar indicates a negative multiplier passed to ScalarMult.
	ErrNegativeScalar = errors.New("curve: negative scalar")
)
