package tokenlayer

import "errors"

// Package errors.
var (
	// ErrNoImage is returned by FromImage when no decoded image is supplied.
	ErrNoImage = errors.New("tokenlayer: no source image")

	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("tokenlayer: invalid dimensions")

	// ErrInvalidScale is returned by SetScale for factors that are not positive.
	ErrInvalidScale = errors.New("tokenlayer: scale must be positive")

	// ErrInvalidColor is returned for malformed hex colors.
	ErrInvalidColor = errors.New("tokenlayer: invalid color")

	// ErrNotColorLayer is returned when a flat-color operation targets an image layer.
	ErrNotColorLayer = errors.New("tokenlayer: not a color layer")

	// ErrUnknownCompositeOp is returned for unrecognized composite operation names.
	ErrUnknownCompositeOp = errors.New("tokenlayer: unknown composite operation")

	// ErrNoMaskEditor is returned by EditMask when no editor is supplied.
	ErrNoMaskEditor = errors.New("tokenlayer: no mask editor")
)
