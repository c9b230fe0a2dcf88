package cli

import (
	"github.com/mattn/go-runewidth"
)

// truncate cuts s to at most width display columns, marking the cut with
// "..." when there is room for it. A width of zero or less means no limit.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
