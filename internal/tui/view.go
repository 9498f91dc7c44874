package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/materialfield/internal/engine"
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/metrics"
	"github.com/alexisbeaulieu97/materialfield/internal/tui/components"
)

const (
	iconGlyph     = "◆"
	clearGlyph    = "✕"
	ellipsisGlyph = "…"
)

// row places styled segments on one line of cells. Segments must be placed
// left to right; overlapping ones are dropped.
type row struct {
	b   strings.Builder
	col int
}

func (r *row) place(x int, s string) {
	if s == "" || x < r.col {
		return
	}
	r.b.WriteString(strings.Repeat(" ", x-r.col))
	r.b.WriteString(s)
	r.col = x + ansi.StringWidth(s)
}

func (r *row) String() string {
	return r.b.String()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.field.Snapshot()

	var b strings.Builder
	title := m.title
	if title == "" {
		title = "materialfield"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.labelRow(snap))
	b.WriteString("\n")
	b.WriteString(m.textRow(snap))
	b.WriteString("\n")
	b.WriteString(m.underlineRow(snap))
	for _, line := range m.bottomRows(snap) {
		b.WriteString("\n")
		b.WriteString(line)
	}

	if m.showDebug {
		b.WriteString("\n")
		b.WriteString(m.debugPanel(snap))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab focus • ctrl+l clear • ctrl+e enable • ctrl+v validate • ctrl+d debug • esc quit"))
	return b.String()
}

func (m Model) labelRow(snap engine.Snapshot) string {
	layout := snap.Label.Layout
	if !snap.Label.Visible || layout.Alpha == 0 {
		return ""
	}
	var r row
	r.place(max(0, layout.X-m.field.State().ScrollX), paint(snap.Label.Text, layout.Color, m.background))
	return r.String()
}

func (m Model) textRow(snap engine.Snapshot) string {
	cfg := m.field.Config()
	applied := snap.Applied
	var r row

	if snap.Icons.Left.Present {
		r.place(0, paint(iconGlyph, averageColor(snap.Icons.Left.Image), m.background))
	}

	input := m.input
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(snap.TextColor.Over(m.background).Hex()))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.HintColor().Over(m.background).Hex()))
	if snap.Label.Visible && snap.Label.Fraction > 0 {
		input.Placeholder = ""
	}
	r.place(applied.Left, input.View())

	if snap.ClearButton.Visible {
		x := snap.ClearButton.Bounds.Min.X - m.field.State().ScrollX
		color := cfg.PrimaryColor
		if snap.Icons.Clear.Present {
			color = averageColor(snap.Icons.Clear.Image)
		}
		r.place(x, paint(clearGlyph, color, m.background))
	}
	if snap.Icons.Right.Present {
		r.place(m.width-cfg.IconOuterWidth, paint(iconGlyph, averageColor(snap.Icons.Right.Image), m.background))
	}
	return r.String()
}

func (m Model) underlineRow(snap engine.Snapshot) string {
	line := snap.Underline
	if !line.Visible {
		return ""
	}
	glyph := "─"
	switch {
	case line.Dashed:
		glyph = "┄"
	case line.Thickness > 1:
		glyph = "━"
	}
	start, end := m.textSpan(snap)
	var r row
	r.place(start, paint(strings.Repeat(glyph, max(0, end-start)), line.Color, m.background))
	return r.String()
}

// bottomRows draws the helper or error text, with the counter and the
// ellipsis on its first row.
func (m Model) bottomRows(snap engine.Snapshot) []string {
	sx := m.field.State().ScrollX
	count := int(math.Round(snap.Bottom.CurrentLines))
	if count == 0 && (snap.Counter.Visible || snap.Ellipsis.Visible) {
		count = 1
	}

	lines := measure.Terminal{}.Wrap(snap.Bottom.Text, snap.Bottom.WrapWidth)
	start, end := m.textSpan(snap)
	cfg := m.field.Config()

	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var r row
		if i == 0 && snap.Ellipsis.Visible && !cfg.RTL {
			r.place(start, paint(ellipsisGlyph, snap.Ellipsis.Color, m.background))
		}
		if i == 0 && snap.Counter.Visible && cfg.RTL {
			r.place(snap.Counter.X-sx, paint(snap.Counter.Text, snap.Counter.Color, m.background))
		}
		if i < len(lines) {
			r.place(snap.Bottom.X-sx, paint(lines[i], snap.Bottom.Color, m.background))
		}
		if i == 0 && snap.Counter.Visible && !cfg.RTL {
			r.place(snap.Counter.X-sx, paint(snap.Counter.Text, snap.Counter.Color, m.background))
		}
		if i == 0 && snap.Ellipsis.Visible && cfg.RTL {
			r.place(end-ansi.StringWidth(ellipsisGlyph), paint(ellipsisGlyph, snap.Ellipsis.Color, m.background))
		}
		rows = append(rows, r.String())
	}
	return rows
}

// textSpan is the span between the icons, in screen columns.
func (m Model) textSpan(snap engine.Snapshot) (start, end int) {
	st := m.field.State()
	start, end = metrics.TextBounds(m.field.Config(), st, snap.Icons.Left.Present, snap.Icons.Right.Present)
	return start - st.ScrollX, end - st.ScrollX
}

func (m Model) debugPanel(snap engine.Snapshot) string {
	_, target := m.field.BottomLines()
	lines := []string{
		components.NewMeter("label", 1).View(snap.Label.Fraction),
		components.NewMeter("focus", 1).View(snap.Label.FocusFraction),
		components.NewMeter("bottom lines", float64(max(target, 1))).View(snap.Bottom.CurrentLines),
		fmt.Sprintf("state %s · label %s · layouts %d", snap.Interaction, snap.Label.State, m.host.layouts),
	}

	st := m.field.State()
	validators := m.field.Validators()
	items := make([]components.ValidationStatus, 0, len(validators))
	for _, v := range validators {
		items = append(items, components.ValidationStatus{
			Passed:  v.IsValid(st.Text, st.Empty()),
			Message: v.ErrorMessage(),
		})
	}
	if checklist := components.NewChecklist(items).View(); checklist != "" {
		lines = append(lines, checklist)
	}
	return debugStyle.Render(strings.Join(lines, "\n"))
}
