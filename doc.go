/*
Package qreg simulates small quantum registers exactly, as dense complex
vectors and matrices.

An n-qubit State holds all 2^n amplitudes and a k-qubit Operator all 4^k
matrix entries. Qubit 0 is the most significant bit of a basis index, and a
tensor product places the left operand's qubits first.

Circuits are built from explicit operations rather than overloaded syntax:

	op := qreg.Identity(3)
	op = qreg.Must(op.EmbedAt(qreg.Hadamard(1), 0))
	op = qreg.Must(op.EmbedAt(qreg.Must(qreg.Cnot(0, 1)), 0))
	psi := qreg.Must(op.Apply(qreg.Zeros(3)))

Capacity is bounded by memory and grows exponentially: a 20-qubit State takes
16 MiB, while a 13-qubit Operator already takes 1 GiB. Nothing in the package
tries to work around this; keep registers small.
*/
package qreg
