// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"

	bu "github.com/avdva/softfloat/internal/bitutil"
)

// Field is a mutable view of the bits [start, stop] of a 32-bit word, both
// ends included. Reading yields the window's integer value, zero-extended;
// writing replaces the window and preserves every bit outside it.
// A Field must not outlive the word it points into.
type Field struct {
	base   *uint32
	lo, hi uint
}

// NewField returns a view of bits [start, stop] of *base. The endpoints may
// be given in either order. An endpoint outside the word is a programming
// error and panics.
func NewField(base *uint32, start, stop uint) Field {
	lo, hi := fieldRange(start, stop)
	return Field{base: base, lo: lo, hi: hi}
}

// Uint32 returns the integer value of the window.
func (f Field) Uint32() uint32 {
	return (*f.base & bu.Mask(f.lo, f.hi)) >> f.lo
}

// Set stores v into the window, truncating bits of v beyond the window's
// width. Bits outside the window keep their values.
func (f Field) Set(v uint32) {
	m := bu.Mask(f.lo, f.hi)
	*f.base = *f.base&^m | v<<f.lo&m
}

// Const returns a read-only snapshot of the window.
func (f Field) Const() ConstField {
	return ConstField{base: *f.base, lo: f.lo, hi: f.hi}
}

// Cmp compares the window's integer value with another view's.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
func (f Field) Cmp(other ConstField) int {
	return f.Const().Cmp(other)
}

// CmpUint32 compares the window's integer value with v.
func (f Field) CmpUint32(v uint32) int {
	return uint32Cmp(f.Uint32(), v)
}

// Start returns the lowest bit position of the window.
func (f Field) Start() uint { return f.lo }

// Stop returns the highest bit position of the window.
func (f Field) Stop() uint { return f.hi }

// Width returns the window width in bits.
func (f Field) Width() uint { return f.hi - f.lo + 1 }

// ConstField is the read-only counterpart of Field. It captures the word at
// construction time and supports reads and comparisons only.
type ConstField struct {
	base   uint32
	lo, hi uint
}

// NewConstField returns a read-only view of bits [start, stop] of base.
// The endpoints may be given in either order; an endpoint outside the word
// panics.
func NewConstField(base uint32, start, stop uint) ConstField {
	lo, hi := fieldRange(start, stop)
	return ConstField{base: base, lo: lo, hi: hi}
}

// Uint32 returns the integer value of the window.
func (f ConstField) Uint32() uint32 {
	return (f.base & bu.Mask(f.lo, f.hi)) >> f.lo
}

// Cmp compares the window's integer value with another view's.
// Views of different widths compare by value.
func (f ConstField) Cmp(other ConstField) int {
	return uint32Cmp(f.Uint32(), other.Uint32())
}

// CmpUint32 compares the window's integer value with v.
func (f ConstField) CmpUint32(v uint32) int {
	return uint32Cmp(f.Uint32(), v)
}

// Start returns the lowest bit position of the window.
func (f ConstField) Start() uint { return f.lo }

// Stop returns the highest bit position of the window.
func (f ConstField) Stop() uint { return f.hi }

// Width returns the window width in bits.
func (f ConstField) Width() uint { return f.hi - f.lo + 1 }

func fieldRange(start, stop uint) (lo, hi uint) {
	lo, hi = start, stop
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi >= 32 {
		panic(fmt.Sprintf("softfloat: bit field [%d, %d] out of range", start, stop))
	}
	return lo, hi
}
