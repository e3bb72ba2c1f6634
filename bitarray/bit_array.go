package bitarray

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("bitarray: index out of range")

// BitArray is a fixed-size packed sequence of bits.
// bitset grows on demand, so every access is checked against size first.
type BitArray struct {
	size uint
	bits *bitset.BitSet
}

func New(size uint) *BitArray {
	return &BitArray{
		size: size,
		bits: bitset.New(size),
	}
}

func (array *BitArray) Len() uint {
	return array.size
}

func (array *BitArray) Get(index uint) (bool, error) {
	if err := array.checkIndex(index); err != nil {
		return false, err
	}
	return array.bits.Test(index), nil
}

// Set is the only mutator. Clearing is supported but the bloom filter never clears.
func (array *BitArray) Set(index uint, value bool) error {
	if err := array.checkIndex(index); err != nil {
		return err
	}
	if value {
		array.bits.Set(index)
	} else {
		array.bits.Clear(index)
	}
	return nil
}

// Count returns the number of set bits.
func (array *BitArray) Count() uint {
	return array.bits.Count()
}

// Bytes returns ceil(size/8) bytes, bit i at byte i/8, offset i%8 (LSB first).
func (array *BitArray) Bytes() []byte {
	buffer := make([]byte, (array.size+7)/8)
	for index, ok := array.bits.NextSet(0); ok && index < array.size; index, ok = array.bits.NextSet(index + 1) {
		buffer[index/8] |= 1 << (index % 8)
	}
	return buffer
}

// String renders one '0' or '1' per bit in index order.
func (array *BitArray) String() string {
	var builder strings.Builder
	builder.Grow(int(array.size))
	for index := uint(0); index < array.size; index++ {
		if array.bits.Test(index) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

func (array *BitArray) checkIndex(index uint) error {
	if index >= array.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, array.size)
	}
	return nil
}
