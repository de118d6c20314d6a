package qreg

import (
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

/*
OracleUf builds the reversible n-qubit gate |x⟩|y⟩ → |x⟩|y ⊕ f(x)⟩ for a
classical function f over the first n-1 qubits. f is evaluated once per basis
pattern and must return 0 or 1, the same value for both settings of y. The
assembled matrix is checked for unitarity before it is returned, so an f that
answers inconsistently yields ErrNotUnitary. opts set the tolerance of that
check.
*/
func OracleUf(n int, f func(bits []int) int, opts ...CompareOption) (*Operator, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrOutOfRange, "oracle needs at least 2 qubits, got %d", n)
	}

	errnie.Debug("OracleUf - building %d-qubit oracle", n)

	op := newOperator(1 << n)
	for bits := range BitProd(n) {
		col := Must(Bits2Val(bits))

		fx := f(bits[:n-1])
		if fx != 0 && fx != 1 {
			return nil, errors.Wrapf(ErrInvalidBit, "f(%v) returned %d", bits[:n-1], fx)
		}

		// The output qubit is the least significant bit.
		op.set(col^fx, col, 1)
	}

	if !op.IsUnitary(opts...) {
		errnie.Warn("OracleUf - constructed non-unitary operator")
		return nil, ErrNotUnitary
	}
	return op, nil
}
