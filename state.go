package qreg

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/pkg/errors"
)

/*
State is an n-qubit register held as 2^n complex amplitudes, indexed by the
big-endian integer value of the basis bit pattern (qubit 0 is the most
significant bit). States are immutable; an n-qubit State needs 16·2^n bytes.
*/
type State struct {
	nbits int
	amps  []complex128
}

/*
NewState wraps a copy of amps. The length must be a power of two and the
squared magnitudes must sum to 1 within epsilon.
*/
func NewState(amps []complex128, opts ...CompareOption) (*State, error) {
	if !isPow2(len(amps)) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d amplitudes is not a power of two", len(amps))
	}

	cfg := resolve(opts)
	total := 0.0
	for _, a := range amps {
		total += sqAbs(a)
	}
	if math.Abs(total-1) > cfg.Epsilon {
		return nil, errors.Wrapf(ErrNotNormalized, "total probability %f", total)
	}

	psi := &State{
		nbits: numQubits(len(amps)),
		amps:  make([]complex128, len(amps)),
	}
	copy(psi.amps, amps)
	return psi, nil
}

func basis(n, idx int) *State {
	psi := &State{
		nbits: n,
		amps:  make([]complex128, 1<<n),
	}
	psi.amps[idx] = 1
	return psi
}

// Zeros returns |0...0⟩ over n qubits.
func Zeros(n int) *State {
	return basis(n, 0)
}

// Ones returns |1...1⟩ over n qubits.
func Ones(n int) *State {
	return basis(n, 1<<n-1)
}

// Bitstring returns the basis state for an explicit bit pattern.
func Bitstring(bits ...int) (*State, error) {
	idx, err := Bits2Val(bits)
	if err != nil {
		return nil, err
	}
	return basis(len(bits), idx), nil
}

func (psi *State) NumQubits() int {
	return psi.nbits
}

// Amplitudes returns a copy of the amplitude vector.
func (psi *State) Amplitudes() []complex128 {
	out := make([]complex128, len(psi.amps))
	copy(out, psi.amps)
	return out
}

// Tensor returns psi ⊗ other; psi's qubits come first.
func (psi *State) Tensor(other *State) *State {
	out := &State{
		nbits: psi.nbits + other.nbits,
		amps:  make([]complex128, len(psi.amps)*len(other.amps)),
	}
	for i, a := range psi.amps {
		for j, b := range other.amps {
			out.amps[i*len(other.amps)+j] = a * b
		}
	}
	return out
}

// Amplitude returns the amplitude of a full basis pattern.
func (psi *State) Amplitude(bits ...int) (complex128, error) {
	idx, err := psi.index(bits)
	if err != nil {
		return 0, err
	}
	return psi.amps[idx], nil
}

// Prob returns |amplitude|² of a full basis pattern.
func (psi *State) Prob(bits ...int) (float64, error) {
	amp, err := psi.Amplitude(bits...)
	if err != nil {
		return 0, err
	}
	return sqAbs(amp), nil
}

/*
MaxProb returns the basis pattern with the largest probability, and that
probability. Ties go to the lowest index.
*/
func (psi *State) MaxProb() ([]int, float64) {
	best, idx := -1.0, 0
	for i, a := range psi.amps {
		if p := sqAbs(a); p > best {
			best, idx = p, i
		}
	}
	return Must(Val2Bits(idx, psi.nbits)), best
}

/*
Phase returns the phase, in degrees, of the amplitude at basis index idx. An
amplitude whose magnitude is below epsilon has phase 0.
*/
func (psi *State) Phase(idx int, opts ...CompareOption) (float64, error) {
	if idx < 0 || idx >= len(psi.amps) {
		return 0, errors.Wrapf(ErrOutOfRange, "index %d of %d-qubit state", idx, psi.nbits)
	}

	amp := psi.amps[idx]
	if cmplx.Abs(amp) < resolve(opts).Epsilon {
		return 0, nil
	}
	return phaseDeg(amp), nil
}

// Density returns the density matrix |ψ⟩⟨ψ|.
func (psi *State) Density() *Operator {
	return Projector(psi)
}

// IsPure reports whether Tr(ρ²) is 1 for this state's density matrix.
func (psi *State) IsPure(opts ...CompareOption) bool {
	return psi.Density().IsPure(opts...)
}

// IsClose compares amplitudes element-wise within epsilon.
func (psi *State) IsClose(other *State, opts ...CompareOption) bool {
	if psi.nbits != other.nbits {
		return false
	}
	return allClose(psi.amps, other.amps, resolve(opts))
}

func (psi *State) String() string {
	var sb strings.Builder
	for i, a := range psi.amps {
		if sqAbs(a) < DefaultEpsilon {
			continue
		}
		bits := Must(Val2Bits(i, psi.nbits))
		fmt.Fprintf(
			&sb, "|%s⟩ %+.4f%+.4fi p=%.4f phase=%.1f\n",
			bitString(bits), real(a), imag(a), sqAbs(a), phaseDeg(a),
		)
	}
	return sb.String()
}

func (psi *State) index(bits []int) (int, error) {
	if len(bits) != psi.nbits {
		return 0, errors.Wrapf(
			ErrDimensionMismatch, "%d bits for %d-qubit state", len(bits), psi.nbits,
		)
	}
	return Bits2Val(bits)
}

func bitString(bits []int) string {
	var sb strings.Builder
	for _, b := range bits {
		sb.WriteByte(byte('0' + b))
	}
	return sb.String()
}

func sqAbs(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
