package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"hearsay/internal/config"
	"hearsay/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Device snapshot
	Breakpoint string
	IsMobile   bool
	Touch      bool
	Portrait   bool

	// Navigation
	CurrentPage  string
	Pages        []domain.NavigationItem
	DrawerOpen   bool // effective visibility, already resolved for the device
	StoredOpen   bool
	GestureBound bool
	LastGesture  string

	// Queue page
	AudioFiles []*domain.AudioFile
	Jobs       []*domain.Job
	QueueIndex int
	Scanning   bool

	// Upload page
	UploadValue string
	UploadDirty bool
	UploadError string

	// Library page
	Transcripts  []*domain.Transcript
	LibraryIndex int
	SearchQuery  string
	IsFiltered   bool

	// Settings page (draft values while editing)
	Settings      config.UISettings
	SettingsIndex int
	SettingsDirty bool
	ConfigPath    string

	// Chrome
	StatusMessage    string
	IsProcessing     bool
	RunningCount     int
	UnseenCount      int
	ShowHints        bool
	ShowHelp         bool
	HelpScrollOffset int
	ShowDebug        bool
	DebugEvents      []string
	InputMode        string
	TextInput        string
	ConfirmPrompt    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	drawerRender *DrawerRenderer
	pageRender   *PageRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		drawerRender: NewDrawerRenderer(styles),
		pageRender:   NewPageRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	innerWidth := width - 4 // main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(state, innerWidth))
	content.WriteString("\n")

	if state.InputMode == "search" {
		content.WriteString(state.TextInput)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	bodyWidth := innerWidth
	if !state.IsMobile {
		bodyWidth = innerWidth - sidebarWidth - 1
	}
	body := r.renderPage(state, bodyWidth)

	if state.IsMobile {
		content.WriteString(body)
	} else {
		bodyHeight := height - 6
		if bodyHeight < 3 {
			bodyHeight = 3
		}
		sidebar := r.drawerRender.RenderSidebar(state.Pages, state.CurrentPage, bodyHeight)
		indented := lipgloss.NewStyle().PaddingLeft(1).Render(body)
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, indented))
	}

	inner := content.String()

	// Push the footer to the bottom of the available space.
	footer := r.renderFooter(state, innerWidth, width)
	available := height - 2
	if available <= 0 {
		available = 22
	}
	if footer != "" {
		used := lipgloss.Height(inner)
		footerLines := lipgloss.Height(footer)
		if pad := available - used - footerLines; pad > 0 {
			inner += strings.Repeat("\n", pad)
		}
		inner += "\n" + footer
	}

	finalContent := r.styles.Main.MaxHeight(height).Render(inner)

	if state.IsMobile && state.DrawerOpen {
		drawer := r.drawerRender.RenderDrawer(state.Pages, state.CurrentPage, width)
		finalContent = r.popupRender.RenderDrawerOverlay(finalContent, drawer, height, width)
	}

	// Popups stack above the drawer; only the topmost one is shown.
	if state.ConfirmPrompt != "" {
		confirm := r.popupRender.RenderConfirm(state.ConfirmPrompt)
		return r.popupRender.RenderPopupOverlay(finalContent, confirm, height, width, r.styles.PopupBox)
	}
	if state.ShowDebug {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDebugContent(state), height, width, r.styles.DebugBox)
	}
	if state.ShowHelp {
		helpContent := r.renderHelpContent(height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, height, width, r.styles.PopupBox)
	}

	return finalContent
}

// renderHeader builds the title line with the drawer toggle, progress
// spinners and the unseen notification badge.
func (r *Renderer) renderHeader(state ViewState, width int) string {
	logo := r.styles.Title.Render("hearsay")
	left := logo
	if state.IsMobile {
		left = zone.Mark(ZoneToggle, r.styles.Toggle.Render("☰")) + " " + logo
	}

	indicators := []string{}
	if state.Scanning {
		indicators = append(indicators, fmt.Sprintf("%s Scanning", spinnerFrame()))
	}
	if state.IsProcessing {
		indicators = append(indicators, fmt.Sprintf("%s Transcribing %d", spinnerFrame(), state.RunningCount))
	}

	rightContent := ""
	if len(indicators) > 0 {
		rightContent = r.styles.Dim.Render(strings.Join(indicators, " | "))
	}
	if state.UnseenCount > 0 {
		badge := r.styles.BadgeAlert.Render(fmt.Sprintf("● %d new", state.UnseenCount))
		if rightContent != "" {
			rightContent = fmt.Sprintf("%s  %s", rightContent, badge)
		} else {
			rightContent = badge
		}
	}

	if rightContent == "" {
		return left
	}

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(rightContent)
	if pad := width - leftWidth - rightWidth; pad > 0 {
		return left + strings.Repeat(" ", pad) + rightContent
	}
	return fmt.Sprintf("%s  %s", left, rightContent)
}

// renderPage dispatches to the current page body.
func (r *Renderer) renderPage(state ViewState, width int) string {
	switch state.CurrentPage {
	case domain.PageQueue:
		return r.pageRender.RenderQueue(state, width)
	case domain.PageUpload:
		return r.pageRender.RenderUpload(state, width)
	case domain.PageLibrary:
		return r.pageRender.RenderLibrary(state, width)
	case domain.PageSettings:
		return r.pageRender.RenderSettings(state, width)
	}
	return ""
}

// renderFooter builds the status line, the key hints and, on the narrowest
// layout, the bottom tab bar.
func (r *Renderer) renderFooter(state ViewState, width, screenWidth int) string {
	lines := []string{}

	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}

	popupOpen := state.ShowHelp || state.ShowDebug || state.ConfirmPrompt != ""
	if state.ShowHints && !popupOpen {
		hints := []string{"? help", "1-4 pages"}
		if state.IsMobile {
			hints = append(hints, "m menu")
		}
		hints = append(hints, "q quit")
		lines = append(lines, r.styles.Help.Render(strings.Join(hints, " • ")))
	}

	if state.Breakpoint == "xs" {
		lines = append(lines, r.drawerRender.RenderTabBar(state.Pages, state.CurrentPage, screenWidth-4))
	}

	return strings.Join(lines, "\n")
}

// spinnerFrame picks the spinner glyph for the current wall clock.
func spinnerFrame() string {
	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinner[int(time.Now().UnixMilli()/80)%len(spinner)]
}

// renderDebugContent renders the device and event inspector popup.
func (r *Renderer) renderDebugContent(state ViewState) string {
	label := r.styles.Dim
	value := lipgloss.NewStyle()

	b := &strings.Builder{}
	b.WriteString(r.styles.SectionHead.Render("Device"))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", label.Render("breakpoint:"), value.Render(state.Breakpoint))
	fmt.Fprintf(b, "  %s %dx%d\n", label.Render("terminal:"), state.Width, state.Height)
	fmt.Fprintf(b, "  %s %v\n", label.Render("mobile:"), state.IsMobile)
	fmt.Fprintf(b, "  %s %v\n", label.Render("touch:"), state.Touch)
	orientation := "landscape"
	if state.Portrait {
		orientation = "portrait"
	}
	fmt.Fprintf(b, "  %s %s\n", label.Render("orientation:"), orientation)

	b.WriteString(r.styles.SectionHead.Render("Drawer"))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %v\n", label.Render("stored open:"), state.StoredOpen)
	fmt.Fprintf(b, "  %s %v\n", label.Render("effective open:"), state.DrawerOpen)
	fmt.Fprintf(b, "  %s %v\n", label.Render("gestures bound:"), state.GestureBound)
	last := state.LastGesture
	if last == "" {
		last = "none"
	}
	fmt.Fprintf(b, "  %s %s\n", label.Render("last gesture:"), last)

	b.WriteString(r.styles.SectionHead.Render("Events"))
	b.WriteString("\n")
	if len(state.DebugEvents) == 0 {
		b.WriteString(r.styles.Dim.Render("  (none yet)"))
	} else {
		for _, ev := range state.DebugEvents {
			fmt.Fprintf(b, "  %s\n", ev)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Hearsay Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move up/down")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Previous/next page")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("1-4"), descStyle.Render("Jump to page")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Tab"), descStyle.Render("Cycle pages")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("m"), descStyle.Render("Toggle navigation drawer")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))

	help.WriteString(sectionStyle.Render("Queue"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Transcribe the selected file")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Rescan the inbox")))

	help.WriteString(sectionStyle.Render("Library"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Open transcript in the pager")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("/"), descStyle.Render("Search transcripts")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("d"), descStyle.Render("Delete transcript")))

	help.WriteString(sectionStyle.Render("Settings"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle the selected option")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("s"), descStyle.Render("Save settings")))

	help.WriteString(sectionStyle.Render("Touch & Gestures"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Swipe →"), descStyle.Render("Open drawer (narrow layouts)")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Swipe ←"), descStyle.Render("Close drawer")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Click"), descStyle.Render("☰ toggles, outside the drawer closes")))

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("`"), descStyle.Render("Toggle the debug inspector")))
	help.WriteString(fmt.Sprintf("  %s            %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	content := help.String()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		endLine := scrollOffset + visibleHeight
		if endLine > totalLines {
			endLine = totalLines
		}
		lines = lines[scrollOffset:endLine]

		if scrollOffset > 0 {
			lines[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}
