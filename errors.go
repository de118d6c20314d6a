package qreg

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch is returned when operator and state sizes are incompatible.
	ErrDimensionMismatch = errors.New("qreg: dimension mismatch")

	// ErrInvalidBit is returned for bit values other than 0 or 1.
	ErrInvalidBit = errors.New("qreg: invalid bit value")

	// ErrInvalidIndex is returned for negative, duplicate or overlapping qubit indices.
	ErrInvalidIndex = errors.New("qreg: invalid qubit index")

	// ErrOutOfRange is returned when a value or sub-register does not fit.
	ErrOutOfRange = errors.New("qreg: out of range")

	// ErrNotUnitary is returned by constructors whose result failed IsUnitary.
	ErrNotUnitary = errors.New("qreg: operator is not unitary")

	// ErrNotNormalized is returned when amplitudes do not sum to probability 1.
	ErrNotNormalized = errors.New("qreg: state is not normalized")

	// ErrZeroProbability is returned when collapsing onto an impossible outcome.
	ErrZeroProbability = errors.New("qreg: measurement outcome has zero probability")
)

/*
Must returns v or panics with err. It is meant for circuit construction code
whose indices are fixed at compile time, in the spirit of regexp.MustCompile.
*/
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
