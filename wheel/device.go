// Package wheel is the host-side API for an FFBeast-style force-feedback
// steering wheel. It drives the report codec over a HID transport: settings
// reads via feature reports, maintenance commands and settings-field writes
// via generic output reports, and live state via timed input reads.
package wheel

import (
	"errors"
	"fmt"
	"time"

	"github.com/Alia5/ffbwheel/report"
)

var (
	// ErrNotConnected is returned by every operation invoked on a device
	// without an open transport. No transport call is made.
	ErrNotConnected = errors.New("wheel: not connected")

	// ErrReadTimeout is returned when a state read receives nothing within
	// the configured bound.
	ErrReadTimeout = errors.New("wheel: state read timed out")
)

// DefaultStateTimeout bounds a state read unless overridden via Options.
const DefaultStateTimeout = 100 * time.Millisecond

// Transport is the HID primitive set the device drives. *hid.Device from
// github.com/sstallion/go-hid satisfies it directly.
type Transport interface {
	Write(p []byte) (int, error)
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	GetFeatureReport(p []byte) (int, error)
	Close() error
}

// Options tune a Device at construction time.
type Options struct {
	// StateTimeout bounds ReadState. Zero means DefaultStateTimeout.
	StateTimeout time.Duration
}

// Device is a connected wheel. It performs single synchronous exchanges
// with no retries; concurrent use of one Device requires external
// serialization by the caller.
type Device struct {
	t            Transport
	stateTimeout time.Duration
}

// New wraps an open transport. A nil transport yields a disconnected
// device whose operations all return ErrNotConnected.
func New(t Transport, o *Options) *Device {
	d := &Device{
		t:            t,
		stateTimeout: DefaultStateTimeout,
	}
	if o != nil && o.StateTimeout > 0 {
		d.stateTimeout = o.StateTimeout
	}
	return d
}

// Connected reports whether the device has an open transport.
func (d *Device) Connected() bool { return d.t != nil }

// Close releases the transport. The device is disconnected afterwards.
func (d *Device) Close() error {
	if d.t == nil {
		return nil
	}
	t := d.t
	d.t = nil
	return t.Close()
}

// SaveSettings asks the firmware to persist the current settings.
func (d *Device) SaveSettings() (int, error) {
	return d.writeFrame(report.CommandFrame(report.CmdSaveSettings))
}

// Reboot restarts the controller.
func (d *Device) Reboot() (int, error) {
	return d.writeFrame(report.CommandFrame(report.CmdReboot))
}

// EnterDfu switches the controller into firmware-update mode. The device
// re-enumerates as a DFU endpoint and this connection becomes stale.
func (d *Device) EnterDfu() (int, error) {
	return d.writeFrame(report.CommandFrame(report.CmdDfuMode))
}

// ResetCenter re-zeros the steering axis at the current position.
func (d *Device) ResetCenter() (int, error) {
	return d.writeFrame(report.CommandFrame(report.CmdResetCenter))
}

// SendDirectControl sends an immediate force override.
func (d *Device) SendDirectControl(c DirectControl) (int, error) {
	body, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	f, err := report.OverrideFrame(body)
	if err != nil {
		return 0, err
	}
	return d.writeFrame(f)
}

// SendInt8Setting writes a signed 8-bit settings field.
func (d *Device) SendInt8Setting(field Field, index int8, value int8) (int, error) {
	return d.writeFrame(report.FieldFrame(uint8(field), index, report.Int8(value)))
}

// SendInt16Setting writes a signed 16-bit settings field.
func (d *Device) SendInt16Setting(field Field, index int8, value int16) (int, error) {
	return d.writeFrame(report.FieldFrame(uint8(field), index, report.Int16(value)))
}

// SendUInt8Setting writes an unsigned 8-bit settings field.
func (d *Device) SendUInt8Setting(field Field, index int8, value uint8) (int, error) {
	return d.writeFrame(report.FieldFrame(uint8(field), index, report.UInt8(value)))
}

// SendUInt16Setting writes an unsigned 16-bit settings field.
func (d *Device) SendUInt16Setting(field Field, index int8, value uint16) (int, error) {
	return d.writeFrame(report.FieldFrame(uint8(field), index, report.UInt16(value)))
}

// SendFloatSetting writes a float settings field.
func (d *Device) SendFloatSetting(field Field, index int8, value float32) (int, error) {
	return d.writeFrame(report.FieldFrame(uint8(field), index, report.Float32(value)))
}

// ReadEffectSettings fetches the effect settings feature report.
func (d *Device) ReadEffectSettings() (EffectSettings, error) {
	var s EffectSettings
	payload, err := d.readFeature(report.IDEffectSettingsFeature, EffectSettingsSize)
	if err != nil {
		return s, err
	}
	err = s.UnmarshalBinary(payload)
	return s, err
}

// ReadHardwareSettings fetches the hardware settings feature report.
func (d *Device) ReadHardwareSettings() (HardwareSettings, error) {
	var s HardwareSettings
	payload, err := d.readFeature(report.IDHardwareSettingsFeature, HardwareSettingsSize)
	if err != nil {
		return s, err
	}
	err = s.UnmarshalBinary(payload)
	return s, err
}

// ReadGpioSettings fetches the GPIO extension settings feature report.
func (d *Device) ReadGpioSettings() (GpioExtensionSettings, error) {
	var s GpioExtensionSettings
	payload, err := d.readFeature(report.IDGpioSettingsFeature, GpioSettingsSize)
	if err != nil {
		return s, err
	}
	err = s.UnmarshalBinary(payload)
	return s, err
}

// ReadAdcSettings fetches the ADC extension settings feature report.
func (d *Device) ReadAdcSettings() (AdcExtensionSettings, error) {
	var s AdcExtensionSettings
	payload, err := d.readFeature(report.IDAdcSettingsFeature, AdcSettingsSize)
	if err != nil {
		return s, err
	}
	err = s.UnmarshalBinary(payload)
	return s, err
}

// ReadState waits up to the configured state timeout for one live status
// input report and decodes it.
func (d *Device) ReadState() (DeviceState, error) {
	var s DeviceState
	if d.t == nil {
		return s, ErrNotConnected
	}
	buf := make([]byte, report.FrameSize)
	n, err := d.t.ReadWithTimeout(buf, d.stateTimeout)
	if err != nil {
		return s, fmt.Errorf("wheel: state read: %w", err)
	}
	if n == 0 {
		return s, ErrReadTimeout
	}
	payload, err := report.Payload(report.IDGenericInOut, buf[:n])
	if err != nil {
		return s, err
	}
	err = s.UnmarshalBinary(payload)
	return s, err
}

func (d *Device) writeFrame(f report.Frame) (int, error) {
	if d.t == nil {
		return 0, ErrNotConnected
	}
	n, err := d.t.Write(f.Bytes())
	if err != nil {
		return n, fmt.Errorf("wheel: write: %w", err)
	}
	return n, nil
}

func (d *Device) readFeature(id uint8, size int) ([]byte, error) {
	if d.t == nil {
		return nil, ErrNotConnected
	}
	buf := report.FeatureRequest(id)
	n, err := d.t.GetFeatureReport(buf)
	if err != nil {
		return nil, fmt.Errorf("wheel: feature report 0x%02x: %w", id, err)
	}
	payload, err := report.Payload(id, buf[:n])
	if err != nil {
		return nil, err
	}
	if len(payload) < size {
		return nil, report.ErrShortBuffer
	}
	return payload[:size], nil
}
