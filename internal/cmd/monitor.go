package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Alia5/ffbwheel/wheel"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Monitor polls the live device state and redraws it until interrupted.
type Monitor struct {
	Device   DeviceConfig  `embed:"" prefix:"device."`
	Interval time.Duration `help:"Poll interval" default:"100ms"`
}

func (c *Monitor) Run(logger *slog.Logger) error {
	d, err := c.Device.Open(logger)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	var last wheel.DeviceState
	stale := true

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}

		st, err := d.ReadState()
		switch {
		case err == nil:
			last = st
			stale = false
		case errors.Is(err, wheel.ErrReadTimeout):
			stale = true
		default:
			return err
		}

		// Home + clear, then redraw in place.
		fmt.Print("\x1b[H\x1b[2J")
		fmt.Println(renderState(last, stale))
	}
}

func renderState(s wheel.DeviceState, stale bool) string {
	title := titleStyle.Render("ffbwheel monitor")
	if stale {
		title += "  " + warnStyle.Render("(no data)")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderSt).
		Row(labelStyle.Render("Angle"), valueStyle.Render(fmt.Sprintf("%+8.2f °", s.Angle))).
		Row(labelStyle.Render("Velocity"), valueStyle.Render(fmt.Sprintf("%+8.2f °/s", s.Velocity))).
		Row(labelStyle.Render("Torque"), valueStyle.Render(fmt.Sprintf("%+8.3f Nm", s.Torque))).
		Row(labelStyle.Render("Motor temp"), tempCell(s.MotorTemp)).
		Row(labelStyle.Render("PCB temp"), tempCell(s.PcbTemp)).
		Row(labelStyle.Render("Bus voltage"), valueStyle.Render(fmt.Sprintf("%7.2f V", float64(s.BusVoltage)/1000))).
		Row(labelStyle.Render("Motor current"), valueStyle.Render(fmt.Sprintf("%+7.2f A", float64(s.MotorCurrent)/1000))).
		Row(labelStyle.Render("Buttons"), valueStyle.Render(fmt.Sprintf("%032b", s.Buttons))).
		Row(labelStyle.Render("ADC"), valueStyle.Render(fmt.Sprintf("%v", s.AdcValues))).
		Row(labelStyle.Render("Flags"), flagCell(s.Flags))

	return title + "\n" + t.String()
}

func tempCell(decidegrees int16) string {
	v := float64(decidegrees) / 10
	cell := fmt.Sprintf("%7.1f °C", v)
	if v >= 80 {
		return faultStyle.Render(cell)
	}
	if v >= 60 {
		return warnStyle.Render(cell)
	}
	return valueStyle.Render(cell)
}

func flagCell(flags uint8) string {
	if flags == 0 {
		return valueStyle.Render("-")
	}
	var names []string
	add := func(bit uint8, name string) {
		if flags&bit != 0 {
			names = append(names, name)
		}
	}
	add(wheel.StateFlagFault, "FAULT")
	add(wheel.StateFlagEndstop, "ENDSTOP")
	add(wheel.StateFlagOverTemp, "OVERTEMP")
	add(wheel.StateFlagUndervolt, "UNDERVOLT")
	add(wheel.StateFlagCalibrating, "CALIBRATING")

	cell := strings.Join(names, " ")
	if flags&(wheel.StateFlagFault|wheel.StateFlagOverTemp|wheel.StateFlagUndervolt) != 0 {
		return faultStyle.Render(cell)
	}
	return warnStyle.Render(cell)
}
