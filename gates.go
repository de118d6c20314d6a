package qreg

import (
	"math"
	"math/cmplx"
)

// Identity returns the n-qubit identity. Identity(0) is the scalar [1].
func Identity(n int) *Operator {
	if n < 0 {
		panic(ErrOutOfRange)
	}

	op := newOperator(1 << n)
	for i := 0; i < op.dim; i++ {
		op.set(i, i, 1)
	}
	return op
}

func PauliX() *Operator {
	return fromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
}

func PauliY() *Operator {
	return fromRows(
		[]complex128{0, -1i},
		[]complex128{1i, 0},
	)
}

func PauliZ() *Operator {
	return fromRows(
		[]complex128{1, 0},
		[]complex128{0, -1},
	)
}

// Hadamard returns H on each of n qubits, i.e. the tensor power H^{⊗n}.
func Hadamard(n int) *Operator {
	s := complex(1/math.Sqrt2, 0)
	h := fromRows(
		[]complex128{s, s},
		[]complex128{s, -s},
	)
	return h.Power(n)
}

// Phase is the S gate, diag(1, i).
func Phase() *Operator {
	return fromRows(
		[]complex128{1, 0},
		[]complex128{0, 1i},
	)
}

func Sgate() *Operator {
	return Phase()
}

// Tgate is the square root of S.
func Tgate() *Operator {
	return fromRows(
		[]complex128{1, 0},
		[]complex128{0, cmplx.Exp(1i * math.Pi / 4)},
	)
}

// Vgate is the square root of PauliX.
func Vgate() *Operator {
	return fromRows(
		[]complex128{0.5 + 0.5i, 0.5 - 0.5i},
		[]complex128{0.5 - 0.5i, 0.5 + 0.5i},
	)
}

// Yroot is the square root of PauliY.
func Yroot() *Operator {
	return fromRows(
		[]complex128{0.5 + 0.5i, -0.5 - 0.5i},
		[]complex128{0.5 + 0.5i, 0.5 + 0.5i},
	)
}

/*
RotationZ rotates about the z axis by theta: diag(e^{-iθ/2}, e^{iθ/2}). The
|0⟩ amplitude therefore picks up a phase of -θ/2.
*/
func RotationZ(theta float64) *Operator {
	return fromRows(
		[]complex128{cmplx.Exp(complex(0, -theta/2)), 0},
		[]complex128{0, cmplx.Exp(complex(0, theta/2))},
	)
}

/*
Rk is the phase gate diag(1, e^{2πi/2^m}) used by the QFT. Rk(0) is the
identity, Rk(1) PauliZ, Rk(2) S and Rk(3) T. Rk(-m) is the inverse of Rk(m).
*/
func Rk(m int) *Operator {
	sign, k := 1.0, m
	if m < 0 {
		sign, k = -1.0, -m
	}
	theta := sign * 2 * math.Pi / math.Pow(2, float64(k))

	return fromRows(
		[]complex128{1, 0},
		[]complex128{0, cmplx.Exp(complex(0, theta))},
	)
}

// Projector returns |ψ⟩⟨ψ| as an operator over psi's qubits.
func Projector(psi *State) *Operator {
	n := len(psi.amps)
	op := newOperator(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			op.set(r, c, psi.amps[r]*cmplx.Conj(psi.amps[c]))
		}
	}
	return op
}
