package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Alia5/ffbwheel/wheel"
)

// Set writes one settings field. The value is parsed according to the
// field's declared wire type; writes are in-memory until 'save'.
type Set struct {
	Device DeviceConfig `embed:"" prefix:"device."`
	Field  string       `arg:"" help:"Field name (see 'ffbwheel fields')"`
	Value  string       `arg:"" help:"Value to write"`
	Index  int8         `help:"Element index for array-like fields (channel/pin number)" default:"0"`
}

func (c *Set) Run(logger *slog.Logger) error {
	field, err := wheel.ParseField(c.Field)
	if err != nil {
		return err
	}
	kind, _ := field.Kind()

	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	switch kind {
	case wheel.KindInt8:
		v, err := strconv.ParseInt(c.Value, 10, 8)
		if err != nil {
			return fmt.Errorf("%s expects an int8 value: %w", field, err)
		}
		_, err = d.SendInt8Setting(field, c.Index, int8(v))
		if err != nil {
			return err
		}
	case wheel.KindInt16:
		v, err := strconv.ParseInt(c.Value, 10, 16)
		if err != nil {
			return fmt.Errorf("%s expects an int16 value: %w", field, err)
		}
		_, err = d.SendInt16Setting(field, c.Index, int16(v))
		if err != nil {
			return err
		}
	case wheel.KindUInt8:
		v, err := strconv.ParseUint(c.Value, 10, 8)
		if err != nil {
			return fmt.Errorf("%s expects a uint8 value: %w", field, err)
		}
		_, err = d.SendUInt8Setting(field, c.Index, uint8(v))
		if err != nil {
			return err
		}
	case wheel.KindUInt16:
		v, err := strconv.ParseUint(c.Value, 10, 16)
		if err != nil {
			return fmt.Errorf("%s expects a uint16 value: %w", field, err)
		}
		_, err = d.SendUInt16Setting(field, c.Index, uint16(v))
		if err != nil {
			return err
		}
	case wheel.KindFloat32:
		v, err := strconv.ParseFloat(c.Value, 32)
		if err != nil {
			return fmt.Errorf("%s expects a float value: %w", field, err)
		}
		_, err = d.SendFloatSetting(field, c.Index, float32(v))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("field %s has no known value type", field)
	}

	logger.Info("field written", "field", field.String(), "index", c.Index, "value", c.Value, "type", kind.String())
	return nil
}
