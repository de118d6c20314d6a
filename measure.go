package qreg

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

/*
Measure computes the probability that qubit idx of psi is observed as value.
It is a projection, not a random draw: the probability is the sum of |a|²
over every basis index whose bit idx equals value.

With collapse set, the second result is the post-measurement state: the
amplitudes inconsistent with the outcome are zeroed and the rest renormalized.
Collapsing onto an outcome of zero probability is an error. Without collapse
psi is returned unchanged.
*/
func Measure(psi *State, idx, value int, collapse bool) (float64, *State, error) {
	if idx < 0 || idx >= psi.nbits {
		return 0, nil, errors.Wrapf(ErrInvalidIndex, "qubit %d of %d-qubit state", idx, psi.nbits)
	}
	if value != 0 && value != 1 {
		return 0, nil, errors.Wrapf(ErrInvalidBit, "measure qubit %d as %d", idx, value)
	}

	shift := psi.nbits - 1 - idx
	prob := 0.0
	for i, a := range psi.amps {
		if (i>>shift)&1 == value {
			prob += sqAbs(a)
		}
	}

	if !collapse {
		return prob, psi, nil
	}

	if prob < 1e-10 {
		return 0, nil, errors.Wrapf(ErrZeroProbability, "qubit %d as %d", idx, value)
	}

	norm := complex(math.Sqrt(prob), 0)
	post := &State{
		nbits: psi.nbits,
		amps:  make([]complex128, len(psi.amps)),
	}
	for i, a := range psi.amps {
		if (i>>shift)&1 == value {
			post.amps[i] = a / norm
		}
	}
	return prob, post, nil
}

/*
Sample measures the whole register with a random draw from rng, returning the
observed basis index and the collapsed basis state. It is the stochastic
counterpart of Measure and is never used by the algebra itself.
*/
func Sample(psi *State, rng *rand.Rand) (int, *State) {
	total := 0.0
	for _, a := range psi.amps {
		total += sqAbs(a)
	}

	r := rng.Float64() * total
	measured := len(psi.amps) - 1

	cumulative := 0.0
	for i, a := range psi.amps {
		cumulative += sqAbs(a)
		if r < cumulative {
			measured = i
			break
		}
	}

	errnie.Debug("Sample - collapsed %d-qubit state to index %d", psi.nbits, measured)
	return measured, basis(psi.nbits, measured)
}
