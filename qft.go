package qreg

/*
Qft builds the n-qubit Quantum Fourier Transform gate by gate: on each qubit
a Hadamard followed by controlled Rk rotations from every later qubit, then a
reversal of the qubit order with swaps.
*/
func Qft(n int) (*Operator, error) {
	op := Identity(n)
	h := Hadamard(1)

	var err error
	for idx := 0; idx < n; idx++ {
		if op, err = op.EmbedAt(h, idx); err != nil {
			return nil, err
		}

		for r := 2; r <= n-idx; r++ {
			rot, err := ControlledU(idx+r-1, idx, Rk(r))
			if err != nil {
				return nil, err
			}
			if op, err = op.EmbedAt(rot, idx); err != nil {
				return nil, err
			}
		}
	}

	for idx := 0; idx < n/2; idx++ {
		swap, err := Swap(idx, n-1-idx)
		if err != nil {
			return nil, err
		}
		if op, err = op.EmbedAt(swap, idx); err != nil {
			return nil, err
		}
	}
	return op, nil
}
