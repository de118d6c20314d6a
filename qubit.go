package qreg

/*
Qubit returns the single-qubit state alpha|0⟩ + beta|1⟩. The amplitudes must
already be normalized.
*/
func Qubit(alpha, beta complex128, opts ...CompareOption) (*State, error) {
	return NewState([]complex128{alpha, beta}, opts...)
}
