package bottom

import (
	"fmt"

	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// CountValid reports whether count satisfies the limits. A limit of zero or
// less is no limit.
func CountValid(count, minChars, maxChars int) bool {
	if minChars <= 0 && maxChars <= 0 {
		return true
	}
	return count >= minChars && (maxChars <= 0 || count <= maxChars)
}

// CharactersCountValid applies CountValid unless the check is postponed until
// the field is first shown.
func CharactersCountValid(cfg model.FieldConfig, count int, firstShown bool) bool {
	if !cfg.HasCharactersCounter() {
		return true
	}
	if !firstShown && !cfg.CheckCharactersCountAtBeginning {
		return true
	}
	return CountValid(count, cfg.MinCharacters, cfg.MaxCharacters)
}

// CounterText formats the character counter, mirrored for right-to-left layouts.
func CounterText(count, minChars, maxChars int, rtl bool) string {
	switch {
	case minChars <= 0:
		if rtl {
			return fmt.Sprintf("%d / %d", maxChars, count)
		}
		return fmt.Sprintf("%d / %d", count, maxChars)
	case maxChars <= 0:
		if rtl {
			return fmt.Sprintf("+%d / %d", minChars, count)
		}
		return fmt.Sprintf("%d / %d+", count, minChars)
	default:
		if rtl {
			return fmt.Sprintf("%d-%d / %d", maxChars, minChars, count)
		}
		return fmt.Sprintf("%d / %d-%d", count, minChars, maxChars)
	}
}
