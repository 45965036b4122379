package wheel

import (
	"encoding/binary"
	"io"
	"math"
)

// DeviceStateSize is the wire size of a state payload, excluding the
// report identifier byte.
const DeviceStateSize = 33

// DeviceState status flag bits.
const (
	StateFlagFault       uint8 = 1 << 0
	StateFlagEndstop     uint8 = 1 << 1
	StateFlagOverTemp    uint8 = 1 << 2
	StateFlagUndervolt   uint8 = 1 << 3
	StateFlagCalibrating uint8 = 1 << 4
)

// DeviceState is the live status streamed by the device as input reports.
//
// Wire layout (33 bytes):
//
//	Bytes 0-3:   Angle (degrees from center, float32 LE)
//	Bytes 4-7:   Velocity (deg/s, float32 LE)
//	Bytes 8-11:  Torque (commanded Nm, float32 LE)
//	Bytes 12-13: MotorTemp (0.1 °C, int16 LE)
//	Bytes 14-15: PcbTemp (0.1 °C, int16 LE)
//	Bytes 16-17: BusVoltage (mV, uint16 LE)
//	Bytes 18-19: MotorCurrent (mA, int16 LE)
//	Bytes 20-23: Buttons (bitfield, uint32 LE)
//	Bytes 24-31: AdcValues, four uint16 LE
//	Byte 32:     Flags
type DeviceState struct {
	Angle        float32
	Velocity     float32
	Torque       float32
	MotorTemp    int16
	PcbTemp      int16
	BusVoltage   uint16
	MotorCurrent int16
	Buttons      uint32
	AdcValues    [AdcChannelCount]uint16
	Flags        uint8
}

func (s *DeviceState) UnmarshalBinary(data []byte) error {
	if len(data) < DeviceStateSize {
		return io.ErrUnexpectedEOF
	}
	s.Angle = math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	s.Velocity = math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))
	s.Torque = math.Float32frombits(binary.LittleEndian.Uint32(data[8:12]))
	s.MotorTemp = int16(binary.LittleEndian.Uint16(data[12:14]))
	s.PcbTemp = int16(binary.LittleEndian.Uint16(data[14:16]))
	s.BusVoltage = binary.LittleEndian.Uint16(data[16:18])
	s.MotorCurrent = int16(binary.LittleEndian.Uint16(data[18:20]))
	s.Buttons = binary.LittleEndian.Uint32(data[20:24])
	for i := range s.AdcValues {
		s.AdcValues[i] = binary.LittleEndian.Uint16(data[24+i*2 : 26+i*2])
	}
	s.Flags = data[32]
	return nil
}
