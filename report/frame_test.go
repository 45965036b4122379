package report_test

import (
	"bytes"
	"testing"

	"github.com/Alia5/ffbwheel/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFrames(t *testing.T) {
	cases := []struct {
		name string
		cmd  report.Command
	}{
		{"save", report.CmdSaveSettings},
		{"reboot", report.CmdReboot},
		{"dfu", report.CmdDfuMode},
		{"center", report.CmdResetCenter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := report.CommandFrame(tc.cmd)
			assert.Equal(t, report.IDGenericInOut, f.ID())

			cmd, err := f.Command()
			require.NoError(t, err)
			assert.Equal(t, tc.cmd, cmd)

			// Only the identifier and the discriminator may be non-zero.
			assert.Equal(t, make([]byte, report.FrameSize-2), f.Bytes()[2:])
		})
	}
}

func TestCommandFramesDifferInOneByte(t *testing.T) {
	a := report.CommandFrame(report.CmdSaveSettings)
	b := report.CommandFrame(report.CmdReboot)

	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
			assert.Equal(t, 1, i, "frames must differ at the discriminator byte only")
		}
	}
	assert.Equal(t, 1, diff)
}

func TestOverrideFrame(t *testing.T) {
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}

	f, err := report.OverrideFrame(body)
	require.NoError(t, err)
	assert.Equal(t, report.IDGenericInOut, f.ID())

	got, err := f.OverrideBody()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(body, got[:len(body)]))
	assert.Equal(t, make([]byte, report.OverrideBodySize-len(body)), got[len(body):])
}

func TestOverrideFrameBodyTooLarge(t *testing.T) {
	_, err := report.OverrideFrame(make([]byte, report.OverrideBodySize+1))
	assert.Error(t, err)

	// Exactly at capacity is fine.
	_, err = report.OverrideFrame(make([]byte, report.OverrideBodySize))
	assert.NoError(t, err)
}

func TestOverrideBodyWrongCommand(t *testing.T) {
	f := report.CommandFrame(report.CmdSaveSettings)
	_, err := f.OverrideBody()
	assert.ErrorIs(t, err, report.ErrWrongCommand)
}

func TestFieldFrameRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value report.Value
		check func(t *testing.T, s report.Slot)
	}{
		{"int8 min", report.Int8(-128), func(t *testing.T, s report.Slot) { assert.Equal(t, int8(-128), s.Int8()) }},
		{"int8 max", report.Int8(127), func(t *testing.T, s report.Slot) { assert.Equal(t, int8(127), s.Int8()) }},
		{"uint8 max", report.UInt8(255), func(t *testing.T, s report.Slot) { assert.Equal(t, uint8(255), s.UInt8()) }},
		{"int16 min", report.Int16(-32768), func(t *testing.T, s report.Slot) { assert.Equal(t, int16(-32768), s.Int16()) }},
		{"int16 negative", report.Int16(-1), func(t *testing.T, s report.Slot) { assert.Equal(t, int16(-1), s.Int16()) }},
		{"uint16 max", report.UInt16(65535), func(t *testing.T, s report.Slot) { assert.Equal(t, uint16(65535), s.UInt16()) }},
		{"float32", report.Float32(-2.5), func(t *testing.T, s report.Slot) { assert.Equal(t, float32(-2.5), s.Float32()) }},
	}

	indexes := []int8{-128, -1, 0, 1, 127}

	for _, tc := range cases {
		for _, idx := range indexes {
			t.Run(tc.name, func(t *testing.T) {
				f := report.FieldFrame(0x12, idx, tc.value)

				fd, err := f.FieldData()
				require.NoError(t, err)
				assert.Equal(t, uint8(0x12), fd.Field)
				assert.Equal(t, idx, fd.Index)
				tc.check(t, fd.Value)
			})
		}
	}
}

func TestFieldFrameWireLayout(t *testing.T) {
	const fieldGain = 0x03

	f := report.FieldFrame(fieldGain, 2, report.UInt16(30000))

	want := make([]byte, report.FrameSize)
	want[0] = report.IDGenericInOut
	want[1] = byte(report.CmdSettingsFieldData)
	want[2] = fieldGain
	want[3] = 2
	want[4] = 0x30 // 30000 = 0x7530, little-endian
	want[5] = 0x75
	assert.Equal(t, want, f.Bytes())
}

func TestInt16SharesUInt16Encoding(t *testing.T) {
	a := report.FieldFrame(1, 0, report.Int16(-12345))
	b := report.FieldFrame(1, 0, report.UInt16(0xCFC7)) // two's complement of -12345
	assert.Equal(t, a, b)
}

func TestNarrowValueLeavesSlotTailZero(t *testing.T) {
	f := report.FieldFrame(7, 0, report.UInt8(0xFF))
	assert.Equal(t, byte(0xFF), f.Bytes()[4])
	assert.Equal(t, []byte{0, 0, 0}, f.Bytes()[5:8])
}

func TestFieldDataWrongReport(t *testing.T) {
	var f report.Frame
	f[0] = report.IDEffectSettingsFeature
	_, err := f.FieldData()
	assert.ErrorIs(t, err, report.ErrWrongReport)
}

func TestPayload(t *testing.T) {
	buf := make([]byte, report.FrameSize)
	buf[0] = report.IDHardwareSettingsFeature
	for i := 1; i < len(buf); i++ {
		buf[i] = byte(i)
	}

	p, err := report.Payload(report.IDHardwareSettingsFeature, buf)
	require.NoError(t, err)
	assert.Equal(t, buf[1:], p)

	_, err = report.Payload(report.IDEffectSettingsFeature, buf)
	assert.ErrorIs(t, err, report.ErrWrongReport)

	_, err = report.Payload(report.IDEffectSettingsFeature, []byte{report.IDEffectSettingsFeature})
	assert.ErrorIs(t, err, report.ErrShortBuffer)
}

func TestFeatureRequest(t *testing.T) {
	buf := report.FeatureRequest(report.IDAdcSettingsFeature)
	assert.Len(t, buf, report.FrameSize)
	assert.Equal(t, report.IDAdcSettingsFeature, buf[0])
	assert.Equal(t, make([]byte, report.FrameSize-1), buf[1:])
}
