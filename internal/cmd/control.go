package cmd

import (
	"log/slog"

	"github.com/Alia5/ffbwheel/wheel"
)

// Control sends a single direct force override, bypassing the stored
// effect settings.
type Control struct {
	Device          DeviceConfig `embed:"" prefix:"device."`
	Torque          float32      `arg:"" help:"Torque in Nm, positive = clockwise"`
	Duration        uint16       `help:"How long the override holds, in ms (0 = until the next frame)" default:"0"`
	SuppressEffects bool         `help:"Disable stored effects while the override is active"`
}

func (c *Control) Run(logger *slog.Logger) error {
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	ctl := wheel.DirectControl{
		Torque:     c.Torque,
		Flags:      wheel.ControlFlagEnable,
		DurationMs: c.Duration,
	}
	if c.SuppressEffects {
		ctl.Flags |= wheel.ControlFlagSuppressEffects
	}

	if _, err := d.SendDirectControl(ctl); err != nil {
		return err
	}
	logger.Info("override sent", "torque", c.Torque, "duration_ms", c.Duration)
	return nil
}
