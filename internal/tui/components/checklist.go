package components

import (
	"fmt"
	"strings"
)

// ValidationStatus is the verdict of one validator on the current text.
type ValidationStatus struct {
	Passed  bool
	Message string
}

// Checklist renders validator verdicts in chain order.
type Checklist struct {
	items []ValidationStatus
}

// NewChecklist creates a checklist of items.
func NewChecklist(items []ValidationStatus) Checklist {
	return Checklist{items: items}
}

// View renders the checklist, empty when there is nothing to show.
func (c Checklist) View() string {
	if len(c.items) == 0 {
		return ""
	}

	lines := []string{"Validators:"}
	for _, item := range c.items {
		status := "✗"
		if item.Passed {
			status = "✓"
		}
		lines = append(lines, fmt.Sprintf("  %s %s", status, item.Message))
	}
	return strings.Join(lines, "\n")
}
