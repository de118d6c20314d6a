package qreg

import (
	"fmt"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitary(t *testing.T) {
	Convey("Every standard gate should be unitary", t, func() {
		gates := []struct {
			name string
			op   *Operator
		}{
			{"PauliX", PauliX()},
			{"PauliY", PauliY()},
			{"PauliZ", PauliZ()},
			{"Identity", Identity(1)},
			{"Identity(3)", Identity(3)},
			{"Hadamard", Hadamard(1)},
			{"Hadamard(3)", Hadamard(3)},
			{"Sgate", Sgate()},
			{"Tgate", Tgate()},
			{"Vgate", Vgate()},
			{"Yroot", Yroot()},
			{"RotationZ", RotationZ(0.3)},
		}
		for m := -8; m <= 8; m++ {
			gates = append(gates, struct {
				name string
				op   *Operator
			}{fmt.Sprintf("Rk(%d)", m), Rk(m)})
		}

		for _, gate := range gates {
			Convey(gate.name, func() {
				So(gate.op.IsUnitary(), ShouldBeTrue)
			})
		}
	})
}

func TestRootGates(t *testing.T) {
	Convey("Given the square-root gates", t, func() {
		Convey("T·T should be S", func() {
			So(Must(Tgate().Compose(Tgate())).IsClose(Phase()), ShouldBeTrue)
		})

		Convey("V·V should be X", func() {
			So(Must(Vgate().Compose(Vgate())).IsClose(PauliX()), ShouldBeTrue)
		})

		Convey("Yroot·Yroot should be Y", func() {
			So(Must(Yroot().Compose(Yroot())).IsClose(PauliY()), ShouldBeTrue)
		})
	})
}

func TestRk(t *testing.T) {
	Convey("Given the QFT phase gates", t, func() {
		So(Rk(0).IsClose(Identity(1)), ShouldBeTrue)
		So(Rk(1).IsClose(PauliZ()), ShouldBeTrue)
		So(Rk(2).IsClose(Sgate()), ShouldBeTrue)
		So(Rk(3).IsClose(Tgate()), ShouldBeTrue)

		Convey("Rk(-m) should undo Rk(m)", func() {
			for m := 0; m < 8; m++ {
				So(Must(Rk(m).Compose(Rk(-m))).IsClose(Identity(1)), ShouldBeTrue)
			}
		})

		Convey("Tensor powers should cancel on |00⟩", func() {
			for m := 0; m < 8; m++ {
				op := Must(Rk(m).Power(2).Compose(Rk(-m).Power(2)))
				psi := Must(op.Apply(Zeros(2)))
				So(psi.IsClose(Zeros(2)), ShouldBeTrue)
			}
		})
	})
}

func TestRotationZPhase(t *testing.T) {
	check := func(angle float64) {
		psi := Must(RotationZ(ToRad(angle)).Apply(Zeros(1)))
		phase := Must(psi.Phase(0))
		So(phase, ShouldAlmostEqual, -angle/2, 1e-5)
	}

	Convey("Given a z rotation of |0⟩", t, func() {
		Convey("A quarter turn should shift the phase by -45 degrees", func() {
			psi := Must(RotationZ(math.Pi / 2).Apply(Zeros(1)))
			So(Must(psi.Phase(0)), ShouldAlmostEqual, -45.0, 1e-6)
		})

		Convey("Every angle in either direction should shift by half", func() {
			for i := 0; i < 360; i++ {
				check(float64(i) / 2)
				check(float64(-i) / 2)
			}
		})
	})
}

func TestProjector(t *testing.T) {
	Convey("Given the projector onto |1⟩", t, func() {
		p := Projector(Ones(1))

		So(p.IsClose(Must(NewOperator([][]complex128{{0, 0}, {0, 1}}))), ShouldBeTrue)
		So(Must(p.Compose(p)).IsClose(p), ShouldBeTrue)
		So(p.IsUnitary(), ShouldBeFalse)
	})
}
