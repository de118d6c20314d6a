package qreg

import (
	"github.com/pkg/errors"
)

/*
ControlledU builds a gate that applies u when the control qubit is |1⟩ and
does nothing when it is |0⟩. u acts on qubits target..target+k-1.

The returned operator spans the qubits from min(control, target) up to the
last qubit either index touches, re-based so that the lowest of them is qubit
0; qubits in between get the identity. To act on absolute positions of a
larger register, embed the result at min(control, target) with Embed, EmbedAt
or ApplyAt. The control may sit on either side of u.
*/
func ControlledU(control, target int, u *Operator) (*Operator, error) {
	return controlledOn(1, control, target, u)
}

func controlledOn(value, control, target int, u *Operator) (*Operator, error) {
	k := u.NumQubits()

	switch {
	case control < 0 || target < 0:
		return nil, errors.Wrapf(ErrInvalidIndex, "control %d, target %d", control, target)
	case control == target:
		return nil, errors.Wrapf(ErrInvalidIndex, "control and target are both %d", control)
	case control > target && control < target+k:
		return nil, errors.Wrapf(
			ErrInvalidIndex, "control %d overlaps %d-qubit operator at %d", control, k, target,
		)
	}

	on, off := projector(value), projector(1-value)
	idle := Identity(k)

	if control < target {
		fill := Identity(target - control - 1)
		active := on.Tensor(fill).Tensor(u)
		passive := off.Tensor(fill).Tensor(idle)
		return sum(active, passive), nil
	}

	fill := Identity(control - target - k)
	active := u.Tensor(fill).Tensor(on)
	passive := idle.Tensor(fill).Tensor(off)
	return sum(active, passive), nil
}

// projector returns |v⟩⟨v| for a single qubit.
func projector(v int) *Operator {
	op := newOperator(2)
	op.set(v, v, 1)
	return op
}

func sum(a, b *Operator) *Operator {
	out := newOperator(a.dim)
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out
}

// Cnot flips the target when the control is |1⟩.
func Cnot(control, target int) (*Operator, error) {
	return ControlledU(control, target, PauliX())
}

// Cnot0 flips the target when the control is |0⟩.
func Cnot0(control, target int) (*Operator, error) {
	return controlledOn(0, control, target, PauliX())
}

/*
Toffoli flips target when both controls are |1⟩. It is a ControlledU wrapped
around a Cnot, so its span starts at control1 and reaches the larger of
control2 and target.
*/
func Toffoli(control1, control2, target int) (*Operator, error) {
	if control1 == control2 || control1 == target || control2 == target {
		return nil, errors.Wrapf(
			ErrInvalidIndex, "toffoli indices %d, %d, %d must differ", control1, control2, target,
		)
	}

	cnot, err := Cnot(control2, target)
	if err != nil {
		return nil, err
	}

	// The inner Cnot is re-based to min(control2, target).
	inner := min(control2, target)
	return ControlledU(control1, inner, cnot)
}

/*
Permutation builds the operator that moves input qubit i to output position
perm[i]. perm must be a permutation of 0..len(perm)-1.
*/
func Permutation(perm []int) (*Operator, error) {
	n := len(perm)
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, errors.Wrapf(ErrInvalidIndex, "position %d maps to %d", i, p)
		}
		seen[p] = true
	}

	op := newOperator(1 << n)
	for col := 0; col < op.dim; col++ {
		row := 0
		for i, p := range perm {
			bit := (col >> (n - 1 - i)) & 1
			row |= bit << (n - 1 - p)
		}
		op.set(row, col, 1)
	}
	return op, nil
}

/*
Swap exchanges qubits i and j. The operator spans |i-j|+1 qubits re-based to
min(i, j); all qubits strictly between the two are left in place.
*/
func Swap(i, j int) (*Operator, error) {
	if i < 0 || j < 0 || i == j {
		return nil, errors.Wrapf(ErrInvalidIndex, "swap %d and %d", i, j)
	}

	lo, hi := min(i, j), max(i, j)
	perm := make([]int, hi-lo+1)
	for q := range perm {
		perm[q] = q
	}
	perm[0], perm[len(perm)-1] = len(perm)-1, 0
	return Permutation(perm)
}
