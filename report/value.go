package report

import (
	"encoding/binary"
	"math"
)

// Value is one settings-field value of a supported numeric type. Each
// implementation serializes itself little-endian into a prefix of the
// 4-byte value slot.
type Value interface {
	// Width returns the number of slot bytes the value occupies.
	Width() int
	put(slot []byte)
}

type Int8 int8

func (v Int8) Width() int      { return 1 }
func (v Int8) put(slot []byte) { slot[0] = byte(v) }

type UInt8 uint8

func (v UInt8) Width() int      { return 1 }
func (v UInt8) put(slot []byte) { slot[0] = byte(v) }

// Int16 shares the UInt16 wire encoding: at equal width the
// two's-complement bit pattern is identical, and the firmware reads the
// slot by declared field type, not by signedness of the transfer.
type Int16 int16

func (v Int16) Width() int      { return 2 }
func (v Int16) put(slot []byte) { UInt16(v).put(slot) }

type UInt16 uint16

func (v UInt16) Width() int      { return 2 }
func (v UInt16) put(slot []byte) { binary.LittleEndian.PutUint16(slot, uint16(v)) }

// Float32 is serialized as its IEEE-754 bits, little-endian.
type Float32 float32

func (v Float32) Width() int { return 4 }
func (v Float32) put(slot []byte) {
	binary.LittleEndian.PutUint32(slot, math.Float32bits(float32(v)))
}

// Slot is the raw fixed-width value slot of a decoded settings-field
// report. The caller knows the field's declared type and picks the
// matching accessor; bytes beyond the declared width are unspecified.
type Slot [ValueSlotSize]byte

func (s Slot) Int8() int8   { return int8(s[0]) }
func (s Slot) UInt8() uint8 { return s[0] }
func (s Slot) Int16() int16 { return int16(s.UInt16()) }
func (s Slot) UInt16() uint16 {
	return binary.LittleEndian.Uint16(s[:2])
}
func (s Slot) Float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(s[:]))
}
