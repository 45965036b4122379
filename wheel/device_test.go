package wheel_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Alia5/ffbwheel/report"
	"github.com/Alia5/ffbwheel/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records every primitive call so tests can assert both the
// exact bytes on the wire and that disconnected devices never touch the
// transport.
type fakeTransport struct {
	calls  int
	writes [][]byte

	featurePayload map[uint8][]byte
	featureErr     error

	readBuf []byte
	readN   int
	readErr error

	closed bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{featurePayload: map[uint8][]byte{}}
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	f.calls++
	cp := append([]byte(nil), p...)
	f.writes = append(f.writes, cp)
	return len(p), nil
}

func (f *fakeTransport) ReadWithTimeout(p []byte, _ time.Duration) (int, error) {
	f.calls++
	if f.readErr != nil {
		return 0, f.readErr
	}
	copy(p, f.readBuf)
	return f.readN, nil
}

func (f *fakeTransport) GetFeatureReport(p []byte) (int, error) {
	f.calls++
	if f.featureErr != nil {
		return 0, f.featureErr
	}
	payload, ok := f.featurePayload[p[0]]
	if !ok {
		return 0, errors.New("no such report")
	}
	n := copy(p[1:], payload)
	return n + 1, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func TestDisconnectedOperationsAreNoOps(t *testing.T) {
	ft := newFakeTransport()
	d := wheel.New(ft, nil)
	require.NoError(t, d.Close())
	assert.True(t, ft.closed)
	assert.False(t, d.Connected())

	ops := []struct {
		name string
		call func() error
	}{
		{"save", func() error { _, err := d.SaveSettings(); return err }},
		{"reboot", func() error { _, err := d.Reboot(); return err }},
		{"dfu", func() error { _, err := d.EnterDfu(); return err }},
		{"center", func() error { _, err := d.ResetCenter(); return err }},
		{"control", func() error { _, err := d.SendDirectControl(wheel.DirectControl{}); return err }},
		{"set-u8", func() error { _, err := d.SendUInt8Setting(wheel.FieldTotalGain, 0, 1); return err }},
		{"set-i8", func() error { _, err := d.SendInt8Setting(wheel.FieldCenterOffset, 0, 1); return err }},
		{"set-u16", func() error { _, err := d.SendUInt16Setting(wheel.FieldRotationRange, 0, 1); return err }},
		{"set-i16", func() error { _, err := d.SendInt16Setting(wheel.FieldCenterOffset, 0, 1); return err }},
		{"set-f32", func() error { _, err := d.SendFloatSetting(wheel.FieldSlewRate, 0, 1); return err }},
		{"read-effect", func() error { _, err := d.ReadEffectSettings(); return err }},
		{"read-hardware", func() error { _, err := d.ReadHardwareSettings(); return err }},
		{"read-gpio", func() error { _, err := d.ReadGpioSettings(); return err }},
		{"read-adc", func() error { _, err := d.ReadAdcSettings(); return err }},
		{"read-state", func() error { _, err := d.ReadState(); return err }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			assert.ErrorIs(t, op.call(), wheel.ErrNotConnected)
		})
	}
	assert.Zero(t, ft.calls, "disconnected operations must not touch the transport")
}

func TestCommandWrites(t *testing.T) {
	cases := []struct {
		name string
		call func(*wheel.Device) (int, error)
		cmd  report.Command
	}{
		{"save", (*wheel.Device).SaveSettings, report.CmdSaveSettings},
		{"reboot", (*wheel.Device).Reboot, report.CmdReboot},
		{"dfu", (*wheel.Device).EnterDfu, report.CmdDfuMode},
		{"center", (*wheel.Device).ResetCenter, report.CmdResetCenter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ft := newFakeTransport()
			d := wheel.New(ft, nil)

			n, err := tc.call(d)
			require.NoError(t, err)
			assert.Equal(t, report.FrameSize, n)

			require.Len(t, ft.writes, 1)
			want := make([]byte, report.FrameSize)
			want[0] = report.IDGenericInOut
			want[1] = byte(tc.cmd)
			assert.Equal(t, want, ft.writes[0])
		})
	}
}

func TestSendSettingWire(t *testing.T) {
	ft := newFakeTransport()
	d := wheel.New(ft, nil)

	_, err := d.SendUInt16Setting(wheel.FieldRotationRange, 2, 30000)
	require.NoError(t, err)

	require.Len(t, ft.writes, 1)
	got := ft.writes[0]
	assert.Equal(t, report.IDGenericInOut, got[0])
	assert.Equal(t, byte(report.CmdSettingsFieldData), got[1])
	assert.Equal(t, byte(wheel.FieldRotationRange), got[2])
	assert.Equal(t, byte(2), got[3])
	assert.Equal(t, []byte{0x30, 0x75}, got[4:6])
	assert.Equal(t, make([]byte, report.FrameSize-6), got[6:])
}

func TestSendSettingNegativeIndex(t *testing.T) {
	ft := newFakeTransport()
	d := wheel.New(ft, nil)

	_, err := d.SendUInt8Setting(wheel.FieldAdcDeadzone, -1, 10)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), ft.writes[0][3])
	assert.Equal(t, byte(10), ft.writes[0][4])
}

func TestSendDirectControl(t *testing.T) {
	ft := newFakeTransport()
	d := wheel.New(ft, nil)

	c := wheel.DirectControl{
		Torque:     -1.5,
		Flags:      wheel.ControlFlagEnable | wheel.ControlFlagSuppressEffects,
		DurationMs: 250,
	}
	_, err := d.SendDirectControl(c)
	require.NoError(t, err)

	require.Len(t, ft.writes, 1)
	got := ft.writes[0]
	assert.Equal(t, report.IDGenericInOut, got[0])
	assert.Equal(t, byte(report.CmdOverrideData), got[1])

	body, err := c.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, body, got[2:2+wheel.DirectControlSize])

	var back wheel.DirectControl
	require.NoError(t, back.UnmarshalBinary(got[2:]))
	assert.Equal(t, c, back)
}

func TestReadEffectSettings(t *testing.T) {
	payload := make([]byte, wheel.EffectSettingsSize)
	payload[0] = 80 // total gain
	payload[3] = 55 // spring gain
	binary.LittleEndian.PutUint16(payload[8:10], 900)
	binary.LittleEndian.PutUint32(payload[10:14], math.Float32bits(0.25))
	binary.LittleEndian.PutUint16(payload[16:18], 220)

	ft := newFakeTransport()
	ft.featurePayload[report.IDEffectSettingsFeature] = payload
	d := wheel.New(ft, nil)

	s, err := d.ReadEffectSettings()
	require.NoError(t, err)
	assert.Equal(t, uint8(80), s.TotalGain)
	assert.Equal(t, uint8(55), s.SpringGain)
	assert.Equal(t, uint16(900), s.EndstopWidth)
	assert.Equal(t, float32(0.25), s.SlewRate)
	assert.Equal(t, uint16(220), s.DitherFrequency)
	assert.Equal(t, 1, ft.calls)
}

func TestReadHardwareSettings(t *testing.T) {
	payload := make([]byte, wheel.HardwareSettingsSize)
	payload[0] = 7 // motor poles
	binary.LittleEndian.PutUint16(payload[1:3], 40000)
	binary.LittleEndian.PutUint16(payload[3:5], 1080)
	binary.LittleEndian.PutUint16(payload[15:17], 0xFF9C) // center offset -100

	ft := newFakeTransport()
	ft.featurePayload[report.IDHardwareSettingsFeature] = payload
	d := wheel.New(ft, nil)

	s, err := d.ReadHardwareSettings()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), s.MotorPoles)
	assert.Equal(t, uint16(40000), s.EncoderCPR)
	assert.Equal(t, uint16(1080), s.RotationRange)
	assert.Equal(t, int16(-100), s.CenterOffset)
}

func TestReadGpioAndAdcSettings(t *testing.T) {
	gpio := make([]byte, wheel.GpioSettingsSize)
	for i := 0; i < wheel.GpioPinCount; i++ {
		gpio[i] = byte(i)
	}
	gpio[9] = 0xA5 // invert mask
	gpio[10] = 20  // debounce

	adc := make([]byte, wheel.AdcSettingsSize)
	binary.LittleEndian.PutUint16(adc[6:8], 123)    // channel 1 min
	binary.LittleEndian.PutUint16(adc[8:10], 4000)  // channel 1 max
	adc[10] = 5                                     // channel 1 deadzone
	binary.LittleEndian.PutUint16(adc[24:26], 1000) // sample rate

	ft := newFakeTransport()
	ft.featurePayload[report.IDGpioSettingsFeature] = gpio
	ft.featurePayload[report.IDAdcSettingsFeature] = adc
	d := wheel.New(ft, nil)

	g, err := d.ReadGpioSettings()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), g.PinModes[3])
	assert.Equal(t, uint8(0xA5), g.InvertMask)
	assert.Equal(t, uint8(20), g.DebounceMs)

	a, err := d.ReadAdcSettings()
	require.NoError(t, err)
	assert.Equal(t, uint16(123), a.Channels[1].Min)
	assert.Equal(t, uint16(4000), a.Channels[1].Max)
	assert.Equal(t, uint8(5), a.Channels[1].Deadzone)
	assert.Equal(t, uint16(1000), a.SampleRate)
}

// wrongIDTransport answers every feature request under a different report
// identifier than the one asked for.
type wrongIDTransport struct{ fakeTransport }

func (w *wrongIDTransport) GetFeatureReport(p []byte) (int, error) {
	p[0] = report.IDHardwareSettingsFeature
	return len(p), nil
}

func TestFeatureReadWrongIdentifier(t *testing.T) {
	d := wheel.New(&wrongIDTransport{}, nil)
	_, err := d.ReadEffectSettings()
	assert.ErrorIs(t, err, report.ErrWrongReport)
}

func TestReadState(t *testing.T) {
	payload := make([]byte, wheel.DeviceStateSize)
	binary.LittleEndian.PutUint32(payload[0:4], math.Float32bits(-90.5))  // angle
	binary.LittleEndian.PutUint32(payload[4:8], math.Float32bits(12.0))   // velocity
	binary.LittleEndian.PutUint32(payload[8:12], math.Float32bits(3.25))  // torque
	binary.LittleEndian.PutUint16(payload[12:14], 610) // 61.0 °C
	binary.LittleEndian.PutUint16(payload[16:18], 24100)                  // bus mV
	binary.LittleEndian.PutUint32(payload[20:24], 0x00000005)             // buttons 0 and 2
	payload[32] = wheel.StateFlagEndstop

	ft := newFakeTransport()
	ft.readBuf = append([]byte{report.IDGenericInOut}, payload...)
	ft.readN = len(ft.readBuf)
	d := wheel.New(ft, nil)

	s, err := d.ReadState()
	require.NoError(t, err)
	assert.Equal(t, float32(-90.5), s.Angle)
	assert.Equal(t, float32(12.0), s.Velocity)
	assert.Equal(t, float32(3.25), s.Torque)
	assert.Equal(t, int16(610), s.MotorTemp)
	assert.Equal(t, uint16(24100), s.BusVoltage)
	assert.Equal(t, uint32(5), s.Buttons)
	assert.Equal(t, wheel.StateFlagEndstop, s.Flags)
}

func TestReadStateTimeout(t *testing.T) {
	ft := newFakeTransport()
	ft.readN = 0
	d := wheel.New(ft, &wheel.Options{StateTimeout: 5 * time.Millisecond})

	_, err := d.ReadState()
	assert.ErrorIs(t, err, wheel.ErrReadTimeout)
	assert.Equal(t, 1, ft.calls)
}

func TestReadStateTransportError(t *testing.T) {
	ft := newFakeTransport()
	ft.readErr = errors.New("device unplugged")
	d := wheel.New(ft, nil)

	_, err := d.ReadState()
	require.Error(t, err)
	assert.NotErrorIs(t, err, wheel.ErrReadTimeout)
}
