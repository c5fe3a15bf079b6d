// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat emulates IEEE-754 binary32 ("single precision")
// arithmetic in pure integer operations. Results are bit-identical to what
// conforming hardware produces under round-to-nearest-even, including the
// sign of zero, subnormal handling, and rounding at the normal/subnormal
// boundary; the deliberate differences are that every NaN collapses to the
// single canonical quiet NaN and that -0 + -0 gives +0.
package softfloat

import (
	"fmt"
	"math"
)

const (
	expBits  = 8
	mantBits = 23

	signPos  = 31
	expHigh  = 30
	expLow   = mantBits
	mantHigh = mantBits - 1

	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1

	// Bias is the binary32 exponent bias: a normal value with exponent
	// field e has the unbiased exponent e - Bias.
	Bias = 127
)

const (
	// NaN is the canonical quiet NaN returned by every NaN-producing
	// operation.
	NaN = Float32(0x7F800001)
	// PosInf and NegInf are the two infinities.
	PosInf = Float32(0x7F800000)
	NegInf = Float32(0xFF800000)
)

// Float32 is an IEEE-754 binary32 value carried as its raw 32-bit payload.
//
//	31 30     23 22                    0
//	__|________|_______________________
//	s  eeeeeeee mmmmmmmmmmmmmmmmmmmmmmm
//
// Exponent 255 encodes infinities (zero mantissa) and NaNs (non-zero
// mantissa); exponent 0 encodes signed zeros and subnormals, which carry no
// implicit leading one.
type Float32 uint32

func exp(v Float32) uint32 {
	return uint32(v) >> expLow & expMask
}

func mant(v Float32) uint32 {
	return uint32(v) & mantMask
}

func split(v Float32) (sign, exp, mant uint32) {
	return uint32(v) >> signPos, uint32(v) >> expLow & expMask, uint32(v) & mantMask
}

func fromParts(sign, exp, mant uint32) Float32 {
	return Float32((sign&1)<<signPos | (exp&expMask)<<expLow | mant&mantMask)
}

// FromBits returns the value with the raw payload b.
// Every 32-bit pattern is a valid payload.
func FromBits(b uint32) Float32 {
	return Float32(b)
}

// FromParts builds a value from separate sign, exponent, and mantissa
// fields. Bits beyond each field's declared width are truncated.
func FromParts(sign, exp, mant uint32) Float32 {
	return fromParts(sign, exp, mant)
}

// FromFloat reinterprets a native float32 as a Float32.
// The conversion is a lossless 32-bit bit cast.
func FromFloat(f float32) Float32 {
	return Float32(math.Float32bits(f))
}

// Float reinterprets the value as a native float32.
// The conversion is a lossless 32-bit bit cast.
func (v Float32) Float() float32 {
	return math.Float32frombits(uint32(v))
}

// Bits returns the raw 32-bit payload.
func (v Float32) Bits() uint32 {
	return uint32(v)
}

// SignField returns a read-only view of the sign bit.
func (v Float32) SignField() ConstField {
	return NewConstField(uint32(v), signPos, signPos)
}

// ExponentField returns a read-only view of the exponent bits.
func (v Float32) ExponentField() ConstField {
	return NewConstField(uint32(v), expHigh, expLow)
}

// MantissaField returns a read-only view of the mantissa bits.
func (v Float32) MantissaField() ConstField {
	return NewConstField(uint32(v), mantHigh, 0)
}

// Sign returns the sign bit: 0 for non-negative values, 1 for negative.
func (v Float32) Sign() uint32 {
	return v.SignField().Uint32()
}

// Exponent returns the biased exponent field.
func (v Float32) Exponent() uint32 {
	return v.ExponentField().Uint32()
}

// Mantissa returns the mantissa field.
func (v Float32) Mantissa() uint32 {
	return v.MantissaField().Uint32()
}

// SetSign stores the low bit of s into the sign field.
func (v *Float32) SetSign(s uint32) {
	NewField((*uint32)(v), signPos, signPos).Set(s)
}

// SetExponent stores the low 8 bits of e into the exponent field.
func (v *Float32) SetExponent(e uint32) {
	NewField((*uint32)(v), expHigh, expLow).Set(e)
}

// SetMantissa stores the low 23 bits of m into the mantissa field.
func (v *Float32) SetMantissa(m uint32) {
	NewField((*uint32)(v), mantHigh, 0).Set(m)
}

// IsNaN reports whether the value is a NaN of either sign.
func (v Float32) IsNaN() bool {
	return exp(v) == expMask && mant(v) != 0
}

// IsInf reports whether the value is a positive or negative infinity.
func (v Float32) IsInf() bool {
	return exp(v) == expMask && mant(v) == 0
}

// String renders the payload as sign|exponent|mantissa bit groups,
// e.g. 1.0 is "0|01111111|00000000000000000000000".
func (v Float32) String() string {
	s, e, m := split(v)
	return fmt.Sprintf("%01b|%08b|%023b", s, e, m)
}

// GoString returns debug string representation.
func (v Float32) GoString() string {
	s, e, m := split(v)
	return fmt.Sprintf("0x%08X {%d, %d, 0x%06X}", uint32(v), s, e, m)
}

// cmpMagnitude orders two values by their magnitude fields, comparing
// exponents first and breaking ties by mantissa. Signs are ignored.
// For finite values this is the order of absolute values.
func cmpMagnitude(a, b Float32) int {
	if c := uint32Cmp(exp(a), exp(b)); c != 0 {
		return c
	}
	return uint32Cmp(mant(a), mant(b))
}

func uint32Cmp(a, b uint32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
