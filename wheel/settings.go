package wheel

import (
	"encoding/binary"
	"io"
	"math"
)

// Settings structure sizes on the wire, excluding the report identifier
// byte. Each structure is packed little-endian with no padding.
const (
	EffectSettingsSize   = 18
	HardwareSettingsSize = 19
	GpioSettingsSize     = 12
	AdcSettingsSize      = 26
)

const (
	GpioPinCount    = 8
	AdcChannelCount = 4
)

// EffectSettings holds the force-feedback effect tuning stored on the
// device, read via the effect settings feature report.
//
// Wire layout (18 bytes):
//
//	Byte 0:     TotalGain (percent)
//	Bytes 1-7:  per-effect gains (percent)
//	Bytes 8-9:  EndstopWidth (degrees, uint16 LE)
//	Bytes 10-13: SlewRate (Nm/ms, float32 LE)
//	Byte 14:    SmoothingLevel
//	Byte 15:    DitherAmplitude
//	Bytes 16-17: DitherFrequency (Hz, uint16 LE)
type EffectSettings struct {
	TotalGain       uint8
	ConstantGain    uint8
	PeriodicGain    uint8
	SpringGain      uint8
	DamperGain      uint8
	InertiaGain     uint8
	FrictionGain    uint8
	EndstopGain     uint8
	EndstopWidth    uint16
	SlewRate        float32
	SmoothingLevel  uint8
	DitherAmplitude uint8
	DitherFrequency uint16
}

func (s *EffectSettings) UnmarshalBinary(data []byte) error {
	if len(data) < EffectSettingsSize {
		return io.ErrUnexpectedEOF
	}
	s.TotalGain = data[0]
	s.ConstantGain = data[1]
	s.PeriodicGain = data[2]
	s.SpringGain = data[3]
	s.DamperGain = data[4]
	s.InertiaGain = data[5]
	s.FrictionGain = data[6]
	s.EndstopGain = data[7]
	s.EndstopWidth = binary.LittleEndian.Uint16(data[8:10])
	s.SlewRate = math.Float32frombits(binary.LittleEndian.Uint32(data[10:14]))
	s.SmoothingLevel = data[14]
	s.DitherAmplitude = data[15]
	s.DitherFrequency = binary.LittleEndian.Uint16(data[16:18])
	return nil
}

// HardwareSettings holds motor, encoder and power configuration, read via
// the hardware settings feature report.
//
// Wire layout (19 bytes):
//
//	Byte 0:     MotorPoles
//	Bytes 1-2:  EncoderCPR (uint16 LE)
//	Bytes 3-4:  RotationRange (degrees lock-to-lock, uint16 LE)
//	Bytes 5-6:  PowerLimit (W, uint16 LE)
//	Bytes 7-8:  CurrentLimit (mA, uint16 LE)
//	Bytes 9-10: PwmFrequency (Hz, uint16 LE)
//	Byte 11:    TempLimit (°C)
//	Byte 12:    FanThreshold (°C)
//	Byte 13:    EncoderInverted (0/1)
//	Byte 14:    MotorPhaseSwap (0/1)
//	Bytes 15-16: CenterOffset (encoder counts, int16 LE)
//	Bytes 17-18: VoltageSagLimit (mV, uint16 LE)
type HardwareSettings struct {
	MotorPoles      uint8
	EncoderCPR      uint16
	RotationRange   uint16
	PowerLimit      uint16
	CurrentLimit    uint16
	PwmFrequency    uint16
	TempLimit       uint8
	FanThreshold    uint8
	EncoderInverted uint8
	MotorPhaseSwap  uint8
	CenterOffset    int16
	VoltageSagLimit uint16
}

func (s *HardwareSettings) UnmarshalBinary(data []byte) error {
	if len(data) < HardwareSettingsSize {
		return io.ErrUnexpectedEOF
	}
	s.MotorPoles = data[0]
	s.EncoderCPR = binary.LittleEndian.Uint16(data[1:3])
	s.RotationRange = binary.LittleEndian.Uint16(data[3:5])
	s.PowerLimit = binary.LittleEndian.Uint16(data[5:7])
	s.CurrentLimit = binary.LittleEndian.Uint16(data[7:9])
	s.PwmFrequency = binary.LittleEndian.Uint16(data[9:11])
	s.TempLimit = data[11]
	s.FanThreshold = data[12]
	s.EncoderInverted = data[13]
	s.MotorPhaseSwap = data[14]
	s.CenterOffset = int16(binary.LittleEndian.Uint16(data[15:17]))
	s.VoltageSagLimit = binary.LittleEndian.Uint16(data[17:19])
	return nil
}

// GpioExtensionSettings configures the GPIO extension header pins.
//
// Wire layout (12 bytes):
//
//	Bytes 0-7:  PinModes, one byte per pin
//	Byte 8:     PullUpMask (bit per pin)
//	Byte 9:     InvertMask (bit per pin)
//	Byte 10:    DebounceMs
//	Byte 11:    ButtonBase (first reported button number)
type GpioExtensionSettings struct {
	PinModes   [GpioPinCount]uint8
	PullUpMask uint8
	InvertMask uint8
	DebounceMs uint8
	ButtonBase uint8
}

func (s *GpioExtensionSettings) UnmarshalBinary(data []byte) error {
	if len(data) < GpioSettingsSize {
		return io.ErrUnexpectedEOF
	}
	copy(s.PinModes[:], data[0:GpioPinCount])
	s.PullUpMask = data[8]
	s.InvertMask = data[9]
	s.DebounceMs = data[10]
	s.ButtonBase = data[11]
	return nil
}

// AdcChannel is the calibration for one ADC extension channel.
type AdcChannel struct {
	Min         uint16
	Max         uint16
	Deadzone    uint8
	FilterLevel uint8
}

// AdcExtensionSettings configures the analog extension channels.
//
// Wire layout (26 bytes):
//
//	Bytes 0-23:  four channels, 6 bytes each
//	             (Min uint16 LE, Max uint16 LE, Deadzone, FilterLevel)
//	Bytes 24-25: SampleRate (Hz, uint16 LE)
type AdcExtensionSettings struct {
	Channels   [AdcChannelCount]AdcChannel
	SampleRate uint16
}

func (s *AdcExtensionSettings) UnmarshalBinary(data []byte) error {
	if len(data) < AdcSettingsSize {
		return io.ErrUnexpectedEOF
	}
	for i := range s.Channels {
		base := i * 6
		s.Channels[i].Min = binary.LittleEndian.Uint16(data[base : base+2])
		s.Channels[i].Max = binary.LittleEndian.Uint16(data[base+2 : base+4])
		s.Channels[i].Deadzone = data[base+4]
		s.Channels[i].FilterLevel = data[base+5]
	}
	s.SampleRate = binary.LittleEndian.Uint16(data[24:26])
	return nil
}
