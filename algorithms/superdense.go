package algorithms

import (
	"math"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qreg"
)

// ErrDecode is returned when Bob does not observe Alice's bits with certainty.
var ErrDecode = errors.New("algorithms: superdense decoding failed")

/*
Encode is Alice's side of superdense coding: she applies Z when bit0 is set
and X when bit1 is set, both to her qubit 0 of the shared pair.
*/
func Encode(psi *qreg.State, bit0, bit1 int) (*qreg.State, error) {
	var err error
	if bit0 == 1 {
		if psi, err = qreg.PauliZ().ApplyAt(psi, 0); err != nil {
			return nil, err
		}
	}
	if bit1 == 1 {
		if psi, err = qreg.PauliX().ApplyAt(psi, 0); err != nil {
			return nil, err
		}
	}
	return psi, nil
}

/*
Decode is Bob's side: he undoes the entanglement with Cnot(0,1) and a Hadamard
on qubit 0, then checks that qubit 0 reads expect0 and qubit 1 reads expect1
with probability 1 within eps.
*/
func Decode(psi *qreg.State, expect0, expect1 int, eps float64) (float64, float64, error) {
	cnot, err := qreg.Cnot(0, 1)
	if err != nil {
		return 0, 0, err
	}
	if psi, err = cnot.Apply(psi); err != nil {
		return 0, 0, err
	}
	if psi, err = qreg.Hadamard(1).ApplyAt(psi, 0); err != nil {
		return 0, 0, err
	}

	p0, _, err := qreg.Measure(psi, 0, expect0, false)
	if err != nil {
		return 0, 0, err
	}
	p1, _, err := qreg.Measure(psi, 1, expect1, false)
	if err != nil {
		return 0, 0, err
	}

	if math.Abs(p0-1) > eps || math.Abs(p1-1) > eps {
		return p0, p1, errors.Wrapf(ErrDecode, "|%d%d⟩ gave p0=%f p1=%f", expect0, expect1, p0, p1)
	}

	errnie.Debug("Decode - matched |%d%d⟩", expect0, expect1)
	return p0, p1, nil
}

// RunSuperdense sends bit0 and bit1 over a (0,0) Bell pair and decodes them.
func RunSuperdense(bit0, bit1 int, eps float64) error {
	pair, err := qreg.BellState(0, 0)
	if err != nil {
		return err
	}

	psi, err := Encode(pair, bit0, bit1)
	if err != nil {
		return err
	}

	_, _, err = Decode(psi, bit0, bit1, eps)
	return err
}
