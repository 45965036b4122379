package cmd

import (
	"errors"
	"log/slog"
)

// Save persists the current settings to the device's flash.
type Save struct {
	Device DeviceConfig `embed:"" prefix:"device."`
}

func (c *Save) Run(logger *slog.Logger) error {
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if _, err := d.SaveSettings(); err != nil {
		return err
	}
	logger.Info("settings saved")
	return nil
}

// Reboot restarts the controller. The connection goes stale afterwards.
type Reboot struct {
	Device DeviceConfig `embed:"" prefix:"device."`
	Yes    bool         `help:"Skip the confirmation prompt" short:"y"`
}

func (c *Reboot) Run(logger *slog.Logger) error {
	if !confirm("Reboot the controller?", c.Yes) {
		return errors.New("aborted")
	}
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if _, err := d.Reboot(); err != nil {
		return err
	}
	logger.Info("reboot command sent")
	return nil
}

// Dfu switches the controller into firmware-update mode. It re-enumerates
// as a DFU endpoint and stops answering this protocol until re-flashed or
// power-cycled.
type Dfu struct {
	Device DeviceConfig `embed:"" prefix:"device."`
	Yes    bool         `help:"Skip the confirmation prompt" short:"y"`
}

func (c *Dfu) Run(logger *slog.Logger) error {
	if !confirm("Switch the controller into DFU mode?", c.Yes) {
		return errors.New("aborted")
	}
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if _, err := d.EnterDfu(); err != nil {
		return err
	}
	logger.Info("DFU command sent; the device will re-enumerate")
	return nil
}

// Center re-zeros the steering axis at the current wheel position.
type Center struct {
	Device DeviceConfig `embed:"" prefix:"device."`
}

func (c *Center) Run(logger *slog.Logger) error {
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if _, err := d.ResetCenter(); err != nil {
		return err
	}
	logger.Info("center reset")
	return nil
}
