package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"hearsay/internal/domain"
)

// settingLabels orders the toggle rows; ToggleSettingAction indexes into it.
var settingLabels = [...]string{
	"Mouse reporting",
	"Haptic bell",
	"Haptic tone",
	"Key hints",
}

// jobStateIcons maps job states to their list glyphs
var jobStateIcons = map[domain.JobState]string{
	domain.JobQueued:  "·",
	domain.JobRunning: "●",
	domain.JobDone:    "✓",
	domain.JobFailed:  "✗",
}

// PageRenderer renders the body of the current page.
type PageRenderer struct {
	styles   *Styles
	progress progress.Model
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer(styles *Styles) *PageRenderer {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return &PageRenderer{
		styles:   styles,
		progress: bar,
	}
}

// RenderQueue renders the inbox listing followed by the job list. Cursor
// positions index the inbox rows first, then the job rows.
func (p *PageRenderer) RenderQueue(state ViewState, width int) string {
	b := &strings.Builder{}

	b.WriteString(p.styles.SectionHead.Render(fmt.Sprintf("Inbox (%d)", len(state.AudioFiles))))
	b.WriteString("\n")
	if len(state.AudioFiles) == 0 {
		if state.Scanning {
			b.WriteString(p.styles.Dim.Render("Scanning inbox..."))
		} else {
			b.WriteString(p.styles.Dim.Render("No audio files found. Press r to rescan."))
		}
		b.WriteString("\n")
	}
	for i, file := range state.AudioFiles {
		row := fmt.Sprintf("  %s  %s", file.Name, p.styles.Dim.Render(humanSize(file.Size)))
		if i == state.QueueIndex {
			row = p.highlight("▸ "+file.Name+"  "+humanSize(file.Size), width)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.SectionHead.Render(fmt.Sprintf("Jobs (%d)", len(state.Jobs))))
	b.WriteString("\n")
	if len(state.Jobs) == 0 {
		b.WriteString(p.styles.Dim.Render("Nothing queued. Press Enter on an inbox file to transcribe it."))
		b.WriteString("\n")
	}
	for i, job := range state.Jobs {
		selected := len(state.AudioFiles)+i == state.QueueIndex
		b.WriteString(p.renderJob(job, selected, width))
		b.WriteString("\n")
	}

	if len(state.AudioFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.Dim.Render("Enter transcribe • r rescan"))
	}

	return b.String()
}

// renderJob renders a single job row with its state glyph and, while
// running, a progress bar and the engine-reported stage.
func (p *PageRenderer) renderJob(job *domain.Job, selected bool, width int) string {
	icon := jobStateIcons[job.State]
	name := filepath.Base(job.Source)

	var iconStyle = p.styles.StateQueued
	var detail string
	switch job.State {
	case domain.JobRunning:
		iconStyle = p.styles.StateRunning
		bar := p.progress
		bar.Width = 24
		if width-len(name)-16 < bar.Width {
			bar.Width = width - len(name) - 16
		}
		if bar.Width >= 8 {
			detail = fmt.Sprintf("%s %3.0f%%", bar.ViewAs(job.Progress), job.Progress*100)
		} else {
			detail = fmt.Sprintf("%3.0f%%", job.Progress*100)
		}
		if job.Stage != "" {
			detail += "  " + p.styles.Dim.Render(job.Stage)
		}
	case domain.JobDone:
		iconStyle = p.styles.StateDone
		detail = p.styles.Dim.Render("done")
	case domain.JobFailed:
		iconStyle = p.styles.StateFailed
		detail = p.styles.StateFailed.Render("failed: " + job.Error)
	default:
		detail = p.styles.Dim.Render("queued")
	}

	row := fmt.Sprintf("  %s %s  %s", iconStyle.Render(icon), name, detail)
	if selected {
		row = p.highlight(fmt.Sprintf("▸ %s %s  %s", icon, name, ansi.Strip(detail)), width)
	}
	return row
}

// RenderUpload renders the manual enqueue page.
func (p *PageRenderer) RenderUpload(state ViewState, width int) string {
	b := &strings.Builder{}

	b.WriteString(p.styles.SectionHead.Render("Upload"))
	b.WriteString("\n")
	b.WriteString(p.styles.Dim.Render("Queue a recording by absolute or inbox-relative path."))
	b.WriteString("\n\n")

	if state.InputMode == "upload" {
		b.WriteString(state.TextInput)
	} else if state.UploadValue != "" {
		b.WriteString("Path: " + state.UploadValue)
		if state.UploadDirty {
			b.WriteString("  " + p.styles.Dim.Render("(not queued)"))
		}
	} else {
		b.WriteString(p.styles.Dim.Render("Press Enter to type a path."))
	}
	b.WriteString("\n")

	if state.UploadError != "" {
		b.WriteString(p.styles.InputError.Render(state.UploadError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Dim.Render("Formats: .aac .flac .m4a .mp3 .ogg .opus .wav .webm"))

	return b.String()
}

// RenderLibrary renders the finished transcript list.
func (p *PageRenderer) RenderLibrary(state ViewState, width int) string {
	b := &strings.Builder{}

	head := fmt.Sprintf("Transcripts (%d)", len(state.Transcripts))
	b.WriteString(p.styles.SectionHead.Render(head))
	if state.IsFiltered {
		b.WriteString("  " + p.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}
	b.WriteString("\n")

	if len(state.Transcripts) == 0 {
		if state.IsFiltered {
			b.WriteString(p.styles.Dim.Render("No transcripts match the search."))
		} else {
			b.WriteString(p.styles.Dim.Render("No transcripts yet. Finished jobs land here."))
		}
		b.WriteString("\n")
	}

	for i, tr := range state.Transcripts {
		meta := transcriptMeta(tr)
		row := fmt.Sprintf("  %s  %s", tr.Title, p.styles.Dim.Render(meta))
		if i == state.LibraryIndex {
			row = p.highlight(fmt.Sprintf("▸ %s  %s", tr.Title, meta), width)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if len(state.Transcripts) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.Dim.Render("Enter open • d delete • / search"))
	}

	return b.String()
}

// RenderSettings renders the toggle rows over the draft settings.
func (p *PageRenderer) RenderSettings(state ViewState, width int) string {
	b := &strings.Builder{}

	b.WriteString(p.styles.SectionHead.Render("Settings"))
	b.WriteString("\n")

	values := [...]bool{
		state.Settings.Mouse,
		state.Settings.HapticsBell,
		state.Settings.HapticsTone,
		state.Settings.ShowHints,
	}
	for i, label := range settingLabels {
		box := "[ ]"
		if values[i] {
			box = "[x]"
		}
		row := fmt.Sprintf("  %s %s", box, label)
		if i == state.SettingsIndex {
			row = p.highlight(fmt.Sprintf("▸ %s %s", box, label), width)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if state.SettingsDirty {
		b.WriteString(p.styles.Filter.Render("Unsaved changes • press s to save"))
	} else {
		b.WriteString(p.styles.Dim.Render("Config: " + state.ConfigPath))
	}
	b.WriteString("\n")
	b.WriteString(p.styles.Dim.Render("Space toggle • s save"))

	return b.String()
}

// highlight renders a full-width selection row. The input is stripped first
// so inner colors do not leak through the background.
func (p *PageRenderer) highlight(row string, width int) string {
	plain := ansi.Strip(row)
	if pad := width - runewidth.StringWidth(plain); pad > 0 {
		plain += strings.Repeat(" ", pad)
	}
	return p.styles.Selection.Render(plain)
}

// transcriptMeta builds the dim annotation shown after a transcript title.
func transcriptMeta(tr *domain.Transcript) string {
	parts := []string{fmt.Sprintf("%d words", tr.Words)}
	if tr.Duration > 0 {
		parts = append(parts, tr.Duration.String())
	}
	if !tr.CreatedAt.IsZero() {
		parts = append(parts, tr.CreatedAt.Format("2006-01-02 15:04"))
	}
	return strings.Join(parts, " • ")
}

// humanSize formats a byte count for the inbox listing.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for u := n / unit; u >= unit; u /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
