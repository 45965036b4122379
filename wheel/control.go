package wheel

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/Alia5/ffbwheel/report"
)

// DirectControlSize is the encoded size of a DirectControl body.
const DirectControlSize = 7

// Compile-time guarantee that the encoded body fits the override capacity;
// a body that outgrows the frame fails to build instead of truncating.
const _ = uint(report.OverrideBodySize - DirectControlSize)

// DirectControl flag bits.
const (
	ControlFlagEnable          uint8 = 1 << 0
	ControlFlagSuppressEffects uint8 = 1 << 1
)

// DirectControl is an immediate force override bypassing the stored effect
// settings. The device applies it for DurationMs, or until the next
// override frame when DurationMs is zero.
//
// Wire layout (7 bytes):
//
//	Bytes 0-3: Torque (Nm, positive = clockwise, float32 LE)
//	Byte 4:    Flags
//	Bytes 5-6: DurationMs (uint16 LE)
type DirectControl struct {
	Torque     float32
	Flags      uint8
	DurationMs uint16
}

// MarshalBinary encodes DirectControl to 7 bytes.
func (c *DirectControl) MarshalBinary() ([]byte, error) {
	b := make([]byte, DirectControlSize)
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(c.Torque))
	b[4] = c.Flags
	binary.LittleEndian.PutUint16(b[5:7], c.DurationMs)
	return b, nil
}

// UnmarshalBinary decodes 7 bytes into DirectControl.
func (c *DirectControl) UnmarshalBinary(data []byte) error {
	if len(data) < DirectControlSize {
		return io.ErrUnexpectedEOF
	}
	c.Torque = math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	c.Flags = data[4]
	c.DurationMs = binary.LittleEndian.Uint16(data[5:7])
	return nil
}
