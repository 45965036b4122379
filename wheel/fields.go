package wheel

import (
	"fmt"
	"sort"
)

// Field identifies one logical device setting addressable through the
// settings-field write path. Values must match the firmware's field enum.
type Field uint8

const (
	FieldTotalGain Field = iota
	FieldConstantGain
	FieldPeriodicGain
	FieldSpringGain
	FieldDamperGain
	FieldInertiaGain
	FieldFrictionGain
	FieldEndstopGain
	FieldEndstopWidth
	FieldSlewRate
	FieldSmoothingLevel
	FieldDitherAmplitude
	FieldDitherFrequency

	FieldMotorPoles
	FieldEncoderCPR
	FieldRotationRange
	FieldPowerLimit
	FieldCurrentLimit
	FieldPwmFrequency
	FieldTempLimit
	FieldFanThreshold
	FieldEncoderInverted
	FieldMotorPhaseSwap
	FieldCenterOffset
	FieldVoltageSagLimit

	FieldGpioPinMode
	FieldGpioPullUpMask
	FieldGpioInvertMask
	FieldGpioDebounce
	FieldGpioButtonBase

	FieldAdcMin
	FieldAdcMax
	FieldAdcDeadzone
	FieldAdcFilter
	FieldAdcSampleRate
)

// Kind is the declared wire type of a field's value.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindInt16
	KindUInt8
	KindUInt16
	KindFloat32
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindUInt8:
		return "uint8"
	case KindUInt16:
		return "uint16"
	case KindFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

type fieldInfo struct {
	name string
	kind Kind
}

var fieldInfos = map[Field]fieldInfo{
	FieldTotalGain:       {"total-gain", KindUInt8},
	FieldConstantGain:    {"constant-gain", KindUInt8},
	FieldPeriodicGain:    {"periodic-gain", KindUInt8},
	FieldSpringGain:      {"spring-gain", KindUInt8},
	FieldDamperGain:      {"damper-gain", KindUInt8},
	FieldInertiaGain:     {"inertia-gain", KindUInt8},
	FieldFrictionGain:    {"friction-gain", KindUInt8},
	FieldEndstopGain:     {"endstop-gain", KindUInt8},
	FieldEndstopWidth:    {"endstop-width", KindUInt16},
	FieldSlewRate:        {"slew-rate", KindFloat32},
	FieldSmoothingLevel:  {"smoothing-level", KindUInt8},
	FieldDitherAmplitude: {"dither-amplitude", KindUInt8},
	FieldDitherFrequency: {"dither-frequency", KindUInt16},

	FieldMotorPoles:      {"motor-poles", KindUInt8},
	FieldEncoderCPR:      {"encoder-cpr", KindUInt16},
	FieldRotationRange:   {"rotation-range", KindUInt16},
	FieldPowerLimit:      {"power-limit", KindUInt16},
	FieldCurrentLimit:    {"current-limit", KindUInt16},
	FieldPwmFrequency:    {"pwm-frequency", KindUInt16},
	FieldTempLimit:       {"temp-limit", KindUInt8},
	FieldFanThreshold:    {"fan-threshold", KindUInt8},
	FieldEncoderInverted: {"encoder-inverted", KindUInt8},
	FieldMotorPhaseSwap:  {"motor-phase-swap", KindUInt8},
	FieldCenterOffset:    {"center-offset", KindInt16},
	FieldVoltageSagLimit: {"voltage-sag-limit", KindUInt16},

	FieldGpioPinMode:    {"gpio-pin-mode", KindUInt8},
	FieldGpioPullUpMask: {"gpio-pullup-mask", KindUInt8},
	FieldGpioInvertMask: {"gpio-invert-mask", KindUInt8},
	FieldGpioDebounce:   {"gpio-debounce", KindUInt8},
	FieldGpioButtonBase: {"gpio-button-base", KindUInt8},

	FieldAdcMin:        {"adc-min", KindUInt16},
	FieldAdcMax:        {"adc-max", KindUInt16},
	FieldAdcDeadzone:   {"adc-deadzone", KindUInt8},
	FieldAdcFilter:     {"adc-filter", KindUInt8},
	FieldAdcSampleRate: {"adc-sample-rate", KindUInt16},
}

func (f Field) String() string {
	if info, ok := fieldInfos[f]; ok {
		return info.name
	}
	return fmt.Sprintf("field(0x%02x)", uint8(f))
}

// Kind returns the declared value type of the field.
func (f Field) Kind() (Kind, bool) {
	info, ok := fieldInfos[f]
	return info.kind, ok
}

// ParseField resolves a field by its canonical name.
func ParseField(name string) (Field, error) {
	for f, info := range fieldInfos {
		if info.name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("wheel: unknown field %q", name)
}

// FieldNames returns all known field names, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(fieldInfos))
	for _, info := range fieldInfos {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}
