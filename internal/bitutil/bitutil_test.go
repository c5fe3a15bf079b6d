package bitutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y uint
		m    uint32
	}{
		{1, 3, 0b1110},
		{3, 1, 0b1110},
		{3, 3, 0b1000},
		{0, 0, 0b0001},
		{31, 0, 0xFFFFFFFF},
		{0, 31, 0xFFFFFFFF},
		{31, 31, 0x80000000},
		{30, 1, 0x7FFFFFFE},
		{23, 30, 0x7F800000},
		{0, 22, 0x007FFFFF},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.m, Mask(test.x, test.y))
		})
	}
}

func TestBit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint32
		i   uint
		bit uint32
	}{
		{0b1000, 3, 1},
		{0b1000, 2, 0},
		{0x80000000, 31, 1},
		{0x80000000, 30, 0},
		{0xFFFFFFFF, 0, 1},
		{0, 17, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.bit, Bit(test.v, test.i))
		})
	}
}
