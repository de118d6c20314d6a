package qreg

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStateConstruction(t *testing.T) {
	Convey("Given the basis constructors", t, func() {
		Convey("Zeros should put all weight on index 0", func() {
			psi := Zeros(3)
			So(psi.NumQubits(), ShouldEqual, 3)
			So(Must(psi.Prob(0, 0, 0)), ShouldEqual, 1.0)
		})

		Convey("Ones should put all weight on the last index", func() {
			psi := Ones(3)
			So(Must(psi.Prob(1, 1, 1)), ShouldEqual, 1.0)
			So(Must(psi.Prob(0, 1, 1)), ShouldEqual, 0.0)
		})

		Convey("Bitstring should match its pattern", func() {
			psi := bitstring(0, 1, 1)
			So(Must(psi.Prob(0, 1, 1)), ShouldEqual, 1.0)
			So(psi.IsClose(Must(NewState([]complex128{0, 0, 0, 1, 0, 0, 0, 0}))), ShouldBeTrue)
		})

		Convey("Bitstring should reject non-binary values", func() {
			_, err := Bitstring(0, 3)
			So(errors.Is(err, ErrInvalidBit), ShouldBeTrue)
		})

		Convey("NewState should reject bad lengths and norms", func() {
			_, err := NewState([]complex128{1, 0, 0})
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)

			_, err = NewState([]complex128{1, 1})
			So(errors.Is(err, ErrNotNormalized), ShouldBeTrue)
		})

		Convey("Qubit should build alpha|0⟩ + beta|1⟩", func() {
			s := complex(1/math.Sqrt2, 0)
			psi := Must(Qubit(s, s))
			So(psi.IsClose(Must(Hadamard(1).Apply(Zeros(1)))), ShouldBeTrue)
		})
	})
}

func TestStateTensor(t *testing.T) {
	Convey("Given staged construction of a register", t, func() {
		psi := Zeros(2).Tensor(Ones(1))

		So(psi.NumQubits(), ShouldEqual, 3)
		So(psi.IsClose(bitstring(0, 0, 1)), ShouldBeTrue)

		Convey("Tensor should not touch its operands", func() {
			So(Zeros(2).IsClose(bitstring(0, 0)), ShouldBeTrue)
		})
	})
}

func TestStateQueries(t *testing.T) {
	Convey("Given an equal superposition of 2 qubits", t, func() {
		psi := Must(Hadamard(2).Apply(Zeros(2)))

		Convey("Every pattern should have probability 1/4", func() {
			for bits := range BitProd(2) {
				So(Must(psi.Prob(bits...)), ShouldAlmostEqual, 0.25, 1e-9)
			}
		})

		Convey("MaxProb should break ties towards the lowest index", func() {
			bits, p := psi.MaxProb()
			So(bits, ShouldResemble, []int{0, 0})
			So(p, ShouldAlmostEqual, 0.25, 1e-9)
		})

		Convey("Prob should require a full pattern", func() {
			_, err := psi.Prob(1)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Amplitudes should return a copy", func() {
			amps := psi.Amplitudes()
			amps[0] = 0
			So(Must(psi.Prob(0, 0)), ShouldAlmostEqual, 0.25, 1e-9)
		})

		Convey("It should be pure", func() {
			So(psi.IsPure(), ShouldBeTrue)
			So(real(psi.Density().Trace()), ShouldAlmostEqual, 1.0, 1e-9)
		})
	})

	Convey("Given a state with a zero amplitude", t, func() {
		psi := Must(Sgate().Apply(Ones(1)))

		Convey("Phase should be zero where the amplitude vanishes", func() {
			So(Must(psi.Phase(0)), ShouldEqual, 0.0)
		})

		Convey("Phase should report degrees elsewhere", func() {
			So(Must(psi.Phase(1)), ShouldAlmostEqual, 90.0, 1e-9)
		})

		Convey("Phase should reject indices past the end", func() {
			_, err := psi.Phase(2)
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		})
	})

	Convey("Given states that differ only by a global phase", t, func() {
		a := bitstring(1, 0)
		b := Must(NewState([]complex128{0, 0, 1i, 0}))

		So(a.IsClose(b), ShouldBeFalse)
		So(a.IsClose(b, WithGlobalPhase()), ShouldBeTrue)
		So(a.IsClose(bitstring(1, 0, 0)), ShouldBeFalse)
	})

	Convey("Given a printed state", t, func() {
		psi := Must(BellState(0, 0))
		out := psi.String()

		So(out, ShouldContainSubstring, "|00⟩")
		So(out, ShouldContainSubstring, "|11⟩")
		So(out, ShouldNotContainSubstring, "|01⟩")
		So(spew.Sdump(psi.Amplitudes()), ShouldContainSubstring, "complex128")
	})
}

func TestQubitCount(t *testing.T) {
	Convey("Given amplitude vectors of growing length", t, func() {
		for n := 0; n <= 4; n++ {
			amps := make([]complex128, 1<<n)
			amps[0] = 1
			psi := Must(NewState(amps))

			So(psi.NumQubits(), ShouldEqual, n)
			So(Identity(n).NumQubits(), ShouldEqual, n)
			So(numQubits(1<<n), ShouldEqual, n)
		}
	})
}
