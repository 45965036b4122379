package report

// Report identifiers, one per logical report type. The numeric values must
// match the firmware's report descriptor; they live here so a firmware-side
// renumbering is a one-place fix.
const (
	IDGenericInOut            uint8 = 0x01
	IDEffectSettingsFeature   uint8 = 0x02
	IDHardwareSettingsFeature uint8 = 0x03
	IDGpioSettingsFeature     uint8 = 0x04
	IDAdcSettingsFeature      uint8 = 0x05
)

// Command is the second-level discriminator carried in the first payload
// byte of a generic input/output report.
type Command uint8

const (
	CmdSaveSettings      Command = 0x01
	CmdReboot            Command = 0x02
	CmdDfuMode           Command = 0x03
	CmdResetCenter       Command = 0x04
	CmdOverrideData      Command = 0x05
	CmdSettingsFieldData Command = 0x06
)

// Frame layout. Every report occupies exactly FrameSize bytes on the wire
// regardless of how much of the payload a given command uses.
const (
	FrameSize = 65

	offID      = 0
	offCommand = 1
	offField   = 2
	offIndex   = 3
	offValue   = 4

	// OverrideOffset is where a direct-control body starts inside a
	// CmdOverrideData frame, right after the command byte.
	OverrideOffset = 2

	// OverrideBodySize is the room left for a direct-control body.
	OverrideBodySize = FrameSize - OverrideOffset

	// ValueSlotSize is the fixed width of the settings-field value slot.
	// Narrower value types occupy a prefix and leave the rest zero.
	ValueSlotSize = 4
)

func (c Command) String() string {
	switch c {
	case CmdSaveSettings:
		return "save-settings"
	case CmdReboot:
		return "reboot"
	case CmdDfuMode:
		return "dfu-mode"
	case CmdResetCenter:
		return "reset-center"
	case CmdOverrideData:
		return "override-data"
	case CmdSettingsFieldData:
		return "settings-field-data"
	default:
		return "unknown"
	}
}
