package algorithms

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qreg"
)

// ErrWrongSecret is returned when a run recovers something other than the secret.
var ErrWrongSecret = errors.New("algorithms: recovered secret does not match")

// MakeSecret draws a random bit string of length n from rng.
func MakeSecret(n int, rng *rand.Rand) []int {
	secret := make([]int, n)
	for i := range secret {
		if rng.Float64() < 0.5 {
			secret[i] = 1
		}
	}
	return secret
}

/*
BernsteinOracle builds U_f for f(x) = x·c mod 2 out of Cnots: every set bit i
of the secret adds a Cnot from qubit i onto the output qubit n-1. opts set the
tolerance of the final unitarity check.
*/
func BernsteinOracle(n int, secret []int, opts ...qreg.CompareOption) (*qreg.Operator, error) {
	if len(secret) != n-1 {
		return nil, errors.Wrapf(qreg.ErrDimensionMismatch, "secret of %d bits for %d qubits", len(secret), n)
	}

	op := qreg.Identity(n)
	for idx, bit := range secret {
		if bit == 0 {
			continue
		}

		cnot, err := qreg.Cnot(idx, n-1)
		if err != nil {
			return nil, err
		}
		if op, err = op.EmbedAt(cnot, idx); err != nil {
			return nil, err
		}
	}

	if !op.IsUnitary(opts...) {
		return nil, errors.Wrap(qreg.ErrNotUnitary, "bernstein oracle")
	}
	return op, nil
}

/*
DotProductOracle builds the same U_f generically, through qreg.OracleUf and the
classical function f(x) = x·c mod 2.
*/
func DotProductOracle(n int, secret []int, opts ...qreg.CompareOption) (*qreg.Operator, error) {
	if len(secret) != n-1 {
		return nil, errors.Wrapf(qreg.ErrDimensionMismatch, "secret of %d bits for %d qubits", len(secret), n)
	}

	return qreg.OracleUf(n, func(bits []int) int {
		val := 0
		for i, b := range bits {
			val += secret[i] * b
		}
		return val % 2
	}, opts...)
}

/*
RunBernstein prepares |0...0⟩|1⟩, sandwiches the oracle between two n-qubit
Hadamards and reads the secret off the input qubits. Every basis pattern with
probability above 0.1 must carry the secret.
*/
func RunBernstein(n int, secret []int, oracle *qreg.Operator) ([]int, error) {
	psi := qreg.Zeros(n - 1).Tensor(qreg.Ones(1))
	h := qreg.Hadamard(n)

	var err error
	for _, op := range []*qreg.Operator{h, oracle, h} {
		if psi, err = op.Apply(psi); err != nil {
			return nil, err
		}
	}

	var found []int
	for bits := range qreg.BitProd(n) {
		p := qreg.Must(psi.Prob(bits...))
		if p <= 0.1 {
			continue
		}

		errnie.Debug("RunBernstein - found %v with p=%.1f", bits[:n-1], p)
		if !slices.Equal(bits[:n-1], secret) {
			return nil, errors.Wrapf(ErrWrongSecret, "expected %v, found %v", secret, bits[:n-1])
		}
		found = bits[:n-1]
	}

	if found == nil {
		return nil, errors.Wrap(ErrWrongSecret, "no outcome above threshold")
	}
	return found, nil
}
