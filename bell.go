package qreg

/*
BellState prepares one of the four maximally entangled 2-qubit states from the
classical bits a and b:

	(0,0) → (|00⟩ + |11⟩)/√2
	(0,1) → (|01⟩ + |10⟩)/√2
	(1,0) → (|00⟩ - |11⟩)/√2
	(1,1) → (|01⟩ - |10⟩)/√2
*/
func BellState(a, b int) (*State, error) {
	psi, err := Bitstring(a, b)
	if err != nil {
		return nil, err
	}

	if psi, err = Hadamard(1).ApplyAt(psi, 0); err != nil {
		return nil, err
	}

	cnot, err := Cnot(0, 1)
	if err != nil {
		return nil, err
	}
	return cnot.Apply(psi)
}
