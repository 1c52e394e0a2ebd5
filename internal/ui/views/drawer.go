package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"hearsay/internal/domain"
)

// sidebarWidth is the panel width for the persistent wide layout.
const sidebarWidth = 24

// Zone identifiers for mouse hit testing. The model translates hits into
// drawer and toggle targets for the navigation controller.
const (
	ZoneToggle     = "nav:toggle"
	ZoneDrawer     = "nav:drawer"
	zoneItemPrefix = "nav:item:"
)

// ZoneItem returns the zone id for a navigation item row.
func ZoneItem(pageID string) string {
	return zoneItemPrefix + pageID
}

// DrawerRenderer handles rendering of the navigation surfaces: the overlay
// drawer, the persistent sidebar and the bottom tab bar.
type DrawerRenderer struct {
	styles *Styles
}

// NewDrawerRenderer creates a new drawer renderer
func NewDrawerRenderer(styles *Styles) *DrawerRenderer {
	return &DrawerRenderer{
		styles: styles,
	}
}

// RenderSidebar renders the persistent navigation panel for wide layouts.
func (d *DrawerRenderer) RenderSidebar(items []domain.NavigationItem, currentPage string, height int) string {
	b := &strings.Builder{}
	b.WriteString(d.styles.Title.Render("hearsay"))
	b.WriteString("\n\n")

	for _, item := range items {
		b.WriteString(d.renderItem(item, item.ID == currentPage, sidebarWidth-2))
		b.WriteString("\n")
		if item.ID == currentPage && item.Desc != "" {
			b.WriteString(d.styles.Dim.Render("  " + runewidth.Truncate(item.Desc, sidebarWidth-4, "…")))
			b.WriteString("\n")
		}
	}

	panel := d.styles.Sidebar.Width(sidebarWidth).Height(height).Render(b.String())
	return zone.Mark(ZoneDrawer, panel)
}

// RenderDrawer renders the overlay drawer panel for narrow layouts.
func (d *DrawerRenderer) RenderDrawer(items []domain.NavigationItem, currentPage string, screenWidth int) string {
	w := 30
	if screenWidth-4 < w {
		w = screenWidth - 4
	}
	if w < 12 {
		w = 12
	}
	inner := w - 4 // border and padding

	b := &strings.Builder{}
	b.WriteString(d.styles.Title.Render("hearsay"))
	b.WriteString("\n\n")
	for i, item := range items {
		b.WriteString(d.renderItem(item, item.ID == currentPage, inner))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	panel := d.styles.Drawer.Width(w - 2).Render(b.String())
	return zone.Mark(ZoneDrawer, panel)
}

// RenderTabBar renders the bottom tab bar for the narrowest layout.
func (d *DrawerRenderer) RenderTabBar(items []domain.NavigationItem, currentPage string, width int) string {
	tabs := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Label
		if item.Badge != "" {
			label += " " + item.Badge
		}
		style := d.styles.Tab
		if item.ID == currentPage {
			style = d.styles.TabActive
		}
		tabs = append(tabs, zone.Mark(ZoneItem(item.ID), style.Render(label)))
	}

	bar := strings.Join(tabs, d.styles.TabBar.Render("│"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// renderItem renders one navigation row at the given inner width.
func (d *DrawerRenderer) renderItem(item domain.NavigationItem, current bool, width int) string {
	marker := "  "
	if current {
		marker = "▸ "
	}

	label := runewidth.Truncate(item.Label, width-6, "…")
	line := marker + label
	if item.Badge != "" {
		badge := d.styles.Badge.Render(item.Badge)
		gap := width - lipgloss.Width(line) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + badge
	}

	if current {
		// Restyle the whole row uniformly; strip first so the badge color
		// does not leak through the highlight.
		plain := ansi.Strip(line)
		if pad := width - runewidth.StringWidth(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		line = d.styles.DrawerCurrent.Render(plain)
	}

	return zone.Mark(ZoneItem(item.ID), line)
}
