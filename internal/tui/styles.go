package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	debugStyle = lipgloss.NewStyle().MarginTop(1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// paint renders s in c, blended over the terminal background so translucent
// colors come out as the lighter shade they would be on screen.
func paint(s string, c, background colors.Color) string {
	if c.A() == 0 {
		return lipgloss.NewStyle().Render(s)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Over(background).Hex())).Render(s)
}
