package cmd

import (
	"fmt"

	"github.com/Alia5/ffbwheel/wheel"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Fields lists the settable fields and their declared value types.
type Fields struct{}

func (c *Fields) Run() error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderSt).
		Headers("FIELD", "TYPE")

	for _, name := range wheel.FieldNames() {
		f, err := wheel.ParseField(name)
		if err != nil {
			return err
		}
		kind, _ := f.Kind()
		t.Row(name, kind.String())
	}

	fmt.Println(t.String())
	return nil
}
