// Package report implements the fixed 65-byte HID report protocol spoken by
// the wheel firmware: one report identifier byte followed by a type-specific
// payload. Generic input/output reports nest a command discriminator, and
// settings-field writes nest a field identifier, an element index and a
// fixed-width value slot inside that. The package is a pure codec; it never
// touches a transport.
package report

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongReport is returned when a buffer's report identifier does not
	// match the report type being decoded.
	ErrWrongReport = errors.New("report: unexpected report identifier")

	// ErrWrongCommand is returned when a generic I/O frame carries a
	// different command than the decode path expects.
	ErrWrongCommand = errors.New("report: unexpected command discriminator")

	// ErrShortBuffer is returned when an incoming buffer is too small to
	// hold the report being decoded.
	ErrShortBuffer = errors.New("report: buffer too short")
)

// Frame is one wire-format report. Byte 0 is the report identifier; the
// remaining 64 bytes are payload, zero where unused.
type Frame [FrameSize]byte

// ID returns the report identifier.
func (f *Frame) ID() uint8 { return f[offID] }

// Bytes returns the frame as a slice suitable for a transport write.
func (f *Frame) Bytes() []byte { return f[:] }

// CommandFrame builds a generic I/O frame carrying only a command
// discriminator. All body-less commands (save, reboot, DFU, reset center)
// are encoded this way and differ in exactly one byte.
func CommandFrame(cmd Command) Frame {
	var f Frame
	f[offID] = IDGenericInOut
	f[offCommand] = byte(cmd)
	return f
}

// OverrideFrame builds a generic I/O frame carrying a direct-control body,
// copied verbatim at OverrideOffset. The body must fit the remaining
// capacity; a larger body is rejected rather than truncated.
func OverrideFrame(body []byte) (Frame, error) {
	var f Frame
	if len(body) > OverrideBodySize {
		return f, fmt.Errorf("report: override body %d bytes exceeds capacity %d", len(body), OverrideBodySize)
	}
	f[offID] = IDGenericInOut
	f[offCommand] = byte(CmdOverrideData)
	copy(f[OverrideOffset:], body)
	return f, nil
}

// FieldFrame builds a settings-field write: field identifier, element index
// and the value serialized into the fixed-width slot. Index semantics are
// field-specific and opaque to the codec.
func FieldFrame(field uint8, index int8, v Value) Frame {
	var f Frame
	f[offID] = IDGenericInOut
	f[offCommand] = byte(CmdSettingsFieldData)
	f[offField] = field
	f[offIndex] = byte(index)
	v.put(f[offValue : offValue+ValueSlotSize])
	return f
}

// FeatureRequest returns a buffer for a feature-report exchange on the
// given settings report identifier. The transport primitive both sends the
// identifier and fills the same buffer with the response.
func FeatureRequest(id uint8) []byte {
	buf := make([]byte, FrameSize)
	buf[offID] = id
	return buf
}

// Command extracts the command discriminator from a generic I/O frame.
func (f *Frame) Command() (Command, error) {
	if f[offID] != IDGenericInOut {
		return 0, ErrWrongReport
	}
	return Command(f[offCommand]), nil
}

// OverrideBody returns the direct-control body bytes of a CmdOverrideData
// frame.
func (f *Frame) OverrideBody() ([]byte, error) {
	cmd, err := f.Command()
	if err != nil {
		return nil, err
	}
	if cmd != CmdOverrideData {
		return nil, ErrWrongCommand
	}
	return f[OverrideOffset:], nil
}

// FieldData is a decoded settings-field write.
type FieldData struct {
	Field uint8
	Index int8
	Value Slot
}

// FieldData extracts the field identifier, index and raw value slot from a
// CmdSettingsFieldData frame.
func (f *Frame) FieldData() (FieldData, error) {
	cmd, err := f.Command()
	if err != nil {
		return FieldData{}, err
	}
	if cmd != CmdSettingsFieldData {
		return FieldData{}, ErrWrongCommand
	}
	fd := FieldData{
		Field: f[offField],
		Index: int8(f[offIndex]),
	}
	copy(fd.Value[:], f[offValue:offValue+ValueSlotSize])
	return fd, nil
}

// Payload validates that buf carries the expected report identifier and
// returns the payload bytes that follow it. Settings feature reports and
// state input reports are both decoded this way: skip the identifier, hand
// the rest to the destination structure.
func Payload(id uint8, buf []byte) ([]byte, error) {
	if len(buf) < 2 {
		return nil, ErrShortBuffer
	}
	if buf[0] != id {
		return nil, ErrWrongReport
	}
	return buf[1:], nil
}
