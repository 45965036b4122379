package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/ffbwheel/wheel"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Read fetches device settings or live state and prints them.
type Read struct {
	Device DeviceConfig `embed:"" prefix:"device."`
	What   string       `arg:"" enum:"effect,hardware,gpio,adc,state" help:"What to read: effect, hardware, gpio, adc or state"`
	Format string       `help:"Output format" enum:"json,yaml,toml" default:"json"`
}

func (c *Read) Run(logger *slog.Logger) error {
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	var v any
	switch c.What {
	case "effect":
		v, err = d.ReadEffectSettings()
	case "hardware":
		v, err = d.ReadHardwareSettings()
	case "gpio":
		v, err = d.ReadGpioSettings()
	case "adc":
		v, err = d.ReadAdcSettings()
	case "state":
		v, err = d.ReadState()
	default:
		return fmt.Errorf("unknown read target %q", c.What)
	}
	if err != nil {
		return err
	}

	var data []byte
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(v)
	case "toml":
		data, err = toml.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
