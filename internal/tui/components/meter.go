package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter renders one animated quantity as a labelled bar.
type Meter struct {
	bar   progress.Model
	label string
	limit float64
}

// NewMeter creates a meter for values in [0, limit].
func NewMeter(label string, limit float64) Meter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return Meter{bar: bar, label: label, limit: limit}
}

// View renders the bar for value.
func (m Meter) View(value float64) string {
	ratio := 0.0
	if m.limit > 0 {
		ratio = math.Max(0, math.Min(1, value/m.limit))
	}
	name := lipgloss.NewStyle().Bold(true).Width(14).Render(m.label)
	return lipgloss.JoinHorizontal(lipgloss.Left, name, m.bar.ViewAs(ratio), fmt.Sprintf(" %.2f", value))
}
