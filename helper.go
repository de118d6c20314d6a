package qreg

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// Bits2Val converts a big-endian bit list to its integer value.
func Bits2Val(bits []int) (int, error) {
	val := 0
	for i, b := range bits {
		if b != 0 && b != 1 {
			return 0, errors.Wrapf(ErrInvalidBit, "bit %d is %d", i, b)
		}
		val = val<<1 | b
	}
	return val, nil
}

// Val2Bits converts val to exactly n big-endian bits.
func Val2Bits(val, n int) ([]int, error) {
	if n < 0 || val < 0 || (n < 63 && val >= 1<<n) {
		return nil, errors.Wrapf(ErrOutOfRange, "%d does not fit in %d bits", val, n)
	}

	bits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		bits[i] = val & 1
		val >>= 1
	}
	return bits, nil
}

/*
BitProd yields every n-bit tuple in ascending binary counting order,
(0,...,0) first. The sequence is lazy and can be ranged over any number of
times; each yielded slice is owned by the caller.
*/
func BitProd(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		for val := 0; val < 1<<n; val++ {
			bits := make([]int, n)
			for i, v := n-1, val; i >= 0; i, v = i-1, v>>1 {
				bits[i] = v & 1
			}
			if !yield(bits) {
				return
			}
		}
	}
}

// Bits2Frac reads the first n bits as the binary fraction 0.b0b1...b(n-1).
func Bits2Frac(bits []int, n int) (float64, error) {
	val := 0.0
	for i := 0; i < n && i < len(bits); i++ {
		switch bits[i] {
		case 0:
		case 1:
			val += math.Pow(2, -float64(i+1))
		default:
			return 0, errors.Wrapf(ErrInvalidBit, "bit %d is %d", i, bits[i])
		}
	}
	return val, nil
}

func ToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func ToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

/*
DensityToCartesian projects a single-qubit density matrix onto the Bloch
sphere, returning (Tr ρσx, Tr ρσy, Tr ρσz).
*/
func DensityToCartesian(rho *Operator) (x, y, z float64, err error) {
	if rho == nil || rho.dim != 2 {
		return 0, 0, 0, errors.Wrap(ErrDimensionMismatch, "bloch projection needs a 2x2 density matrix")
	}

	// With ρ = [[a, b], [c, d]]: Tr ρσx = b+c, Tr ρσy = i(b-c), Tr ρσz = a-d.
	a, b, c, d := rho.At(0, 0), rho.At(0, 1), rho.At(1, 0), rho.At(1, 1)
	x = real(b + c)
	y = real(1i * (b - c))
	z = real(a - d)
	return x, y, z, nil
}
