package qreg

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"strings"

	"github.com/pkg/errors"
)

/*
Operator is a dense square complex matrix of dimension 2^k acting on k qubits.
Values are immutable: every method returns a new Operator and leaves its
receiver and arguments untouched. An Operator needs 16·4^k bytes.
*/
type Operator struct {
	dim  int
	data []complex128 // row-major, dim*dim
}

/*
NewOperator builds an operator from explicit rows. The matrix must be square
with a power-of-two dimension; unitarity is not required and can be checked
with IsUnitary.
*/
func NewOperator(rows [][]complex128) (*Operator, error) {
	dim := len(rows)
	if !isPow2(dim) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "operator dimension %d is not a power of two", dim)
	}

	op := newOperator(dim)
	for r, row := range rows {
		if len(row) != dim {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d columns, want %d", r, len(row), dim)
		}
		copy(op.data[r*dim:], row)
	}
	return op, nil
}

func newOperator(dim int) *Operator {
	return &Operator{
		dim:  dim,
		data: make([]complex128, dim*dim),
	}
}

// fromRows is NewOperator for the gate library, whose shapes are fixed.
func fromRows(rows ...[]complex128) *Operator {
	return Must(NewOperator(rows))
}

func (op *Operator) Dim() int {
	return op.dim
}

// NumQubits returns k for a 2^k x 2^k operator.
func (op *Operator) NumQubits() int {
	return numQubits(op.dim)
}

func (op *Operator) At(r, c int) complex128 {
	return op.data[r*op.dim+c]
}

func (op *Operator) set(r, c int, v complex128) {
	op.data[r*op.dim+c] = v
}

// Tensor returns the Kronecker product op ⊗ other; op's qubits come first.
func (op *Operator) Tensor(other *Operator) *Operator {
	dim := op.dim * other.dim
	out := newOperator(dim)

	for ar := 0; ar < op.dim; ar++ {
		for ac := 0; ac < op.dim; ac++ {
			a := op.At(ar, ac)
			if a == 0 {
				continue
			}
			for br := 0; br < other.dim; br++ {
				row := (ar*other.dim + br) * dim
				for bc := 0; bc < other.dim; bc++ {
					out.data[row+ac*other.dim+bc] = a * other.At(br, bc)
				}
			}
		}
	}
	return out
}

/*
Power returns the n-fold tensor power op ⊗ op ⊗ ... ⊗ op. For a single-qubit
gate G, G.Power(2) acts with G on two qubits at once; it is not G·G.
*/
func (op *Operator) Power(n int) *Operator {
	out := Identity(0)
	for i := 0; i < n; i++ {
		out = out.Tensor(op)
	}
	return out
}

/*
Compose returns the matrix product op·other. Applying the result to a state
is the same as applying other first and op second.
*/
func (op *Operator) Compose(other *Operator) (*Operator, error) {
	if op.dim != other.dim {
		return nil, errors.Wrapf(
			ErrDimensionMismatch, "compose %dx%d with %dx%d", op.dim, op.dim, other.dim, other.dim,
		)
	}

	dim := op.dim
	out := newOperator(dim)
	for r := 0; r < dim; r++ {
		for k := 0; k < dim; k++ {
			a := op.data[r*dim+k]
			if a == 0 {
				continue
			}
			for c := 0; c < dim; c++ {
				out.data[r*dim+c] += a * other.data[k*dim+c]
			}
		}
	}
	return out, nil
}

/*
Apply returns op·psi. An operator smaller than the state acts on its leading
qubits with identity on the rest, as ApplyAt(psi, 0) would; an operator larger
than the state is an error.
*/
func (op *Operator) Apply(psi *State) (*State, error) {
	if op.dim < len(psi.amps) {
		return op.ApplyAt(psi, 0)
	}
	if op.dim != len(psi.amps) {
		return nil, errors.Wrapf(
			ErrDimensionMismatch, "%d-qubit operator on %d-qubit state", op.NumQubits(), psi.nbits,
		)
	}

	out := make([]complex128, op.dim)
	for r := 0; r < op.dim; r++ {
		var sum complex128
		row := op.data[r*op.dim : (r+1)*op.dim]
		for c, a := range row {
			sum += a * psi.amps[c]
		}
		out[r] = sum
	}
	return &State{nbits: psi.nbits, amps: out}, nil
}

// ApplyAt applies op to qubits idx..idx+k-1 of psi and identity elsewhere.
func (op *Operator) ApplyAt(psi *State, idx int) (*State, error) {
	padded, err := Embed(op, idx, psi.nbits)
	if err != nil {
		return nil, err
	}
	return padded.Apply(psi)
}

/*
Embed pads sub with identities so that it acts on qubits idx..idx+k-1 of an
n-qubit register: I(idx) ⊗ sub ⊗ I(n-idx-k).
*/
func Embed(sub *Operator, idx, n int) (*Operator, error) {
	k := sub.NumQubits()
	if idx < 0 || idx+k > n {
		return nil, errors.Wrapf(
			ErrOutOfRange, "%d-qubit operator at index %d does not fit %d qubits", k, idx, n,
		)
	}
	if idx == 0 && k == n {
		return sub, nil
	}
	return Identity(idx).Tensor(sub).Tensor(Identity(n - idx - k)), nil
}

/*
EmbedAt extends a circuit under construction: the result applies op first and
then sub on qubits idx..idx+k-1. The returned operator has op's size.
*/
func (op *Operator) EmbedAt(sub *Operator, idx int) (*Operator, error) {
	padded, err := Embed(sub, idx, op.NumQubits())
	if err != nil {
		return nil, err
	}
	return padded.Compose(op)
}

// Adjoint returns the conjugate transpose.
func (op *Operator) Adjoint() *Operator {
	out := newOperator(op.dim)
	for r := 0; r < op.dim; r++ {
		for c := 0; c < op.dim; c++ {
			out.set(c, r, cmplx.Conj(op.At(r, c)))
		}
	}
	return out
}

func (op *Operator) Trace() complex128 {
	var tr complex128
	for i := 0; i < op.dim; i++ {
		tr += op.At(i, i)
	}
	return tr
}

// IsUnitary reports whether op†·op is the identity within epsilon.
func (op *Operator) IsUnitary(opts ...CompareOption) bool {
	prod := Must(op.Adjoint().Compose(op))
	return prod.IsClose(Identity(op.NumQubits()), opts...)
}

/*
IsPure treats op as a density matrix and reports whether Tr(ρ²) is 1 within
epsilon.
*/
func (op *Operator) IsPure(opts ...CompareOption) bool {
	cfg := resolve(opts)
	sq := Must(op.Compose(op))
	return cmplx.Abs(sq.Trace()-1) <= cfg.Epsilon
}

// IsClose compares element-wise within epsilon.
func (op *Operator) IsClose(other *Operator, opts ...CompareOption) bool {
	if op.dim != other.dim {
		return false
	}
	return allClose(op.data, other.data, resolve(opts))
}

func (op *Operator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Operator(%d qubits)\n", op.NumQubits())
	for r := 0; r < op.dim; r++ {
		for c := 0; c < op.dim; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := op.At(r, c)
			fmt.Fprintf(&sb, "%+.3f%+.3fi", real(v), imag(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

/*
allClose is the shared element-wise comparison for states and operators.
With GlobalPhase set, b is first rotated by the phase that aligns its largest
entry with a's.
*/
func allClose(a, b []complex128, cfg *Config) bool {
	if len(a) != len(b) {
		return false
	}

	rot := complex(1, 0)
	if cfg.GlobalPhase {
		rot = alignPhase(a, b)
	}

	for i := range a {
		if cmplx.Abs(a[i]-b[i]*rot) > cfg.Epsilon {
			return false
		}
	}
	return true
}

func alignPhase(a, b []complex128) complex128 {
	best, idx := 0.0, -1
	for i := range a {
		if m := cmplx.Abs(a[i]); m > best {
			best, idx = m, i
		}
	}
	if idx < 0 || cmplx.Abs(b[idx]) == 0 {
		return 1
	}
	return cmplx.Rect(1, cmplx.Phase(a[idx])-cmplx.Phase(b[idx]))
}

// numQubits returns k for a power-of-two dimension 2^k.
func numQubits(dim int) int {
	return bits.TrailingZeros(uint(dim))
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func phaseDeg(v complex128) float64 {
	return cmplx.Phase(v) * 180.0 / math.Pi
}
