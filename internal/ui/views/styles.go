package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Selection     lipgloss.Style
	Toggle        lipgloss.Style
	Badge         lipgloss.Style
	BadgeAlert    lipgloss.Style
	Sidebar       lipgloss.Style
	Drawer        lipgloss.Style
	DrawerItem    lipgloss.Style
	DrawerCurrent lipgloss.Style
	TabBar        lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Main          lipgloss.Style
	PopupBox      lipgloss.Style
	DebugBox      lipgloss.Style
	Confirm       lipgloss.Style
	InputError    lipgloss.Style
	SectionHead   lipgloss.Style
	StateQueued   lipgloss.Style
	StateRunning  lipgloss.Style
	StateDone     lipgloss.Style
	StateFailed   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color("238")),
		Toggle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")), // green
		BadgeAlert: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")), // red
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("241")).
			PaddingRight(1),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		DrawerItem: lipgloss.NewStyle(),
		DrawerCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")),
		TabBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Tab: lipgloss.NewStyle().
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Padding(0, 1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		DebugBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("51")), // cyan
		Confirm:      lipgloss.NewStyle().Bold(true),
		InputError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		SectionHead:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		StateQueued:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StateRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StateDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StateFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
