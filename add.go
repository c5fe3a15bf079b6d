// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	bu "github.com/avdva/softfloat/internal/bitutil"
)

// Working-mantissa layout inside Add. The 24-bit significand (implicit one
// included for normal operands) is shifted left by 3, so the leading one
// sits at bit 26 and three rounding positions open up below the stored
// mantissa:
//
//	          27 26 25        03 02 01 00
//	y: | 0  0| 0| 1| m  m ...  m| 0| 0| 0|
//	x: | 0  0| 0| 0| 0  1 ... m | g| r| s|   after >> expdiff
//
// Bit 2 holds the first dropped bit (the rounding decision), bits 1..0
// collect everything that fell below it, and bit 27 receives a carry out of
// the mantissa addition.
const (
	leadPos   = 26
	carryPos  = 27
	grsBits   = 3
	workWidth = mantBits + 1 + grsBits // 27
)

// Add returns the sum of two binary32 values under round-to-nearest,
// ties-to-even. The result is bit-identical to hardware addition, except
// that any NaN result is the canonical NaN and -0 + -0 gives +0 rather
// than -0. Add is commutative, holds no
// state, and cannot fail: all 2^64 input pairs have a defined output.
func Add(x, y Float32) Float32 {
	// Order the operands so that the magnitude of x does not exceed the
	// magnitude of y. No later step changes this ordering; the sign of a
	// non-zero result is the sign of y.
	if cmpMagnitude(x, y) > 0 {
		x, y = y, x
	}

	xs, xe, xm := split(x)
	ys, ye, ym := split(y)

	xinf := xe == expMask && xm == 0
	yinf := ye == expMask && ym == 0
	xnan := xe == expMask && xm != 0
	ynan := ye == expMask && ym != 0
	xzero := xe == 0 && xm == 0
	yzero := ye == 0 && ym == 0
	xsubn := xe == 0 && xm != 0
	ysubn := ye == 0 && ym != 0

	switch {
	case xnan || ynan:
		return NaN
	case xinf && yinf:
		if xs != ys {
			// inf - inf has no meaningful value
			return NaN
		}
		return fromParts(xs, expMask, 0)
	case xinf:
		return x
	case yinf:
		return y
	case xzero && yzero:
		// Under nearest-even the sign of a zero sum is positive unless
		// both addends are -0; +0 is returned in every zero+zero case.
		return FromBits(0)
	case xzero:
		return y
	case yzero:
		return x
	}

	// Widen to 27-bit working mantissas. Subnormals carry no implicit one
	// and share the smallest normal's effective exponent, reached by
	// raising the biased exponent field from 0 to 1.
	wxm, wym := uint32(1)<<mantBits, uint32(1)<<mantBits
	if xsubn {
		wxm = 0
		xe++
	}
	if ysubn {
		wym = 0
		ye++
	}
	wxm = (wxm + xm) << grsBits
	wym = (wym + ym) << grsBits

	// Align x with y by shifting its working mantissa right. Bits dropped
	// by the shift all land below the sticky position, so their OR folds
	// into bit 0. For shifts of up to grsBits only the zero-initialized
	// rounding positions are dropped.
	if d := ye - xe; d >= workWidth {
		wxm = 0
	} else if d > 0 {
		var sticky uint32
		if d > grsBits && wxm&bu.Mask(0, uint(d)-1) != 0 {
			sticky = 1
		}
		wxm = wxm>>d | sticky
	}

	zs, ze := ys, ye
	var zm uint32
	if xs != ys {
		// Magnitudes subtract; abs(x) <= abs(y), so y drives the sign
		// and the difference never borrows.
		zm = wym - wxm
		if zm == 0 {
			// exact cancellation rounds to +0 under nearest-even
			return FromBits(0)
		}

		// Walk the leading one back up to bit 26. If the exponent
		// bottoms out first, the result is subnormal and stays as is.
		for bu.Bit(zm, leadPos) == 0 {
			ze--
			if ze == 0 {
				break
			}
			zm <<= 1
		}

		if ze == 0 && (zm&bu.Mask(2, 25))>>2 == 1<<(mantBits+1)-1 {
			// 0.111...1: rounding carries into the implicit-one
			// position, producing the smallest normal.
			return fromParts(zs, 1, 0)
		}

		zm = roundNearestEven(zm, 2)
		if bu.Bit(zm, carryPos) == 1 {
			// rounding carried out of the significand
			ze++
			zm >>= 1
		}
	} else {
		zm = wym + wxm
		if bu.Bit(zm, carryPos) == 1 {
			// The addition carried into the next binade. Rounding must
			// happen before the normalization shift, or the sticky bit
			// would be lost; the round position moves up to bit 3.
			zm = roundNearestEven(zm, 3)
			if bu.Bit(zm, carryPos+1) == 1 {
				// rounding carried again: 11.1...1 -> 100.0...0
				ze += 2
				zm >>= 2
			} else {
				ze++
				zm >>= 1
			}
		} else {
			zm = roundNearestEven(zm, 2)
			if bu.Bit(zm, carryPos) == 1 {
				ze++
				zm >>= 1
			}
		}
		if bu.Bit(zm, leadPos) == 0 {
			// Two subnormals summed below the normal threshold: there
			// is no implicit one, so the exponent field stays zero.
			ze = 0
		}
	}

	if ze >= expMask {
		// exponent overflow: collapse to infinity
		return fromParts(zs, expMask, 0)
	}
	return fromParts(zs, ze, (zm&bu.Mask(grsBits, 25))>>grsBits)
}

// roundNearestEven applies round-to-nearest, ties-to-even at bit pos: the
// value rounds up when bit pos is set and either some lower bit is set or
// the bit above pos (the result's least significant bit) is odd.
func roundNearestEven(z uint32, pos uint) uint32 {
	if bu.Bit(z, pos) == 0 {
		return z
	}
	if z&bu.Mask(0, pos-1) != 0 || bu.Bit(z, pos+1) == 1 {
		return z + 1<<(pos+1)
	}
	return z
}
