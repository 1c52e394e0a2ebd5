package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup box centered over the main content.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width > 6 && modalW > width-6 {
		styledPopup = popupStyle.Width(width - 6).Render(popupContent)
		modalW = lipgloss.Width(styledPopup)
		modalH = lipgloss.Height(styledPopup)
	}

	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := dimLines(mainContent, height)
	splice(baseLines, styledPopup, x, y, modalW)
	return strings.Join(baseLines, "\n")
}

// RenderDrawerOverlay lays the navigation drawer over the left edge of the
// main content. The rest of the screen stays visible but dimmed, so any
// click outside the panel reads as an outside interaction.
func (pr *PopupRenderer) RenderDrawerOverlay(mainContent, drawer string, height, width int) string {
	baseLines := dimLines(mainContent, height)
	splice(baseLines, drawer, 0, 0, lipgloss.Width(drawer))
	return strings.Join(baseLines, "\n")
}

// RenderConfirm builds the confirm dialog body.
func (pr *PopupRenderer) RenderConfirm(prompt string) string {
	body := pr.styles.Confirm.Render(prompt)
	return body + "\n\n" + pr.styles.Dim.Render("y confirm · n cancel")
}

// dimLines desaturates the base so overlays can cut lines at column
// boundaries without tracking color state across the splice. Stripping also
// drops zone markers underneath, which keeps covered regions unclickable.
func dimLines(content string, height int) []string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = dim.Render(ansi.Strip(line))
	}
	return lines
}

// splice writes the overlay onto baseLines with its top-left corner at (x, y).
func splice(baseLines []string, overlay string, x, y, overlayW int) {
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		base := baseLines[row]
		left := ansi.Truncate(base, x, "")
		if pad := x - lipgloss.Width(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(base, x+overlayW, "")
		baseLines[row] = left + line + right
	}
}
