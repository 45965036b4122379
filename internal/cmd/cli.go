// Package cmd contains the kong command implementations for the ffbwheel
// binary. The wheel library stays log- and CLI-free; everything
// user-facing lives here.
package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Alia5/ffbwheel/wheel"

	"golang.org/x/term"
)

// CLI is the root command structure parsed by kong.
type CLI struct {
	Config string    `help:"Path to a configuration file" type:"path"`
	Log    LogConfig `embed:"" prefix:"log."`

	Save      Save          `cmd:"" help:"Persist the current settings to the device"`
	Reboot    Reboot        `cmd:"" help:"Reboot the controller"`
	Dfu       Dfu           `cmd:"" help:"Switch the controller into firmware-update (DFU) mode"`
	Center    Center        `cmd:"" help:"Re-zero the steering axis at the current position"`
	Set       Set           `cmd:"" help:"Write a single settings field"`
	Read      Read          `cmd:"" help:"Read device settings or live state"`
	Control   Control       `cmd:"" help:"Send a one-shot direct force override"`
	Monitor   Monitor       `cmd:"" help:"Continuously display live device state"`
	Fields    Fields        `cmd:"" help:"List settable fields and their value types"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"FFBWHEEL_LOG_LEVEL"`
	File  string `help:"Log to this file instead of the console" env:"FFBWHEEL_LOG_FILE"`
}

// DeviceConfig selects and tunes the device connection. Every
// device-touching command embeds it under the device. prefix.
type DeviceConfig struct {
	Path         string        `help:"Open the device at this HID path instead of enumerating" env:"FFBWHEEL_DEVICE_PATH"`
	StateTimeout time.Duration `help:"Bound for a single state read" default:"100ms" env:"FFBWHEEL_STATE_TIMEOUT"`
}

// Open connects to the wheel per the config.
func (c *DeviceConfig) Open(logger *slog.Logger) (*wheel.Device, error) {
	opts := &wheel.Options{StateTimeout: c.StateTimeout}
	if c.Path != "" {
		logger.Debug("opening device by path", "path", c.Path)
		return wheel.OpenPath(c.Path, opts)
	}
	logger.Debug("enumerating devices",
		"vid", fmt.Sprintf("0x%04x", wheel.VendorID),
		"pid", fmt.Sprintf("0x%04x", wheel.ProductID))
	return wheel.Open(opts)
}

// confirm asks the user before a disruptive command. Non-interactive runs
// (pipes, scripts) must pass --yes; there is nobody to ask.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
