package input

import (
	"hearsay/internal/domain"
	"hearsay/internal/nav"
	"hearsay/internal/ui/state"
)

// settingsRows is the number of toggle rows on the settings page.
const settingsRows = 4

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Nav   *nav.Controller
}

// CurrentPage returns the active page id.
func (c *ModelContext) CurrentPage() string {
	return c.State.CurrentPage
}

// CurrentIndex returns the cursor position on the active page list.
func (c *ModelContext) CurrentIndex() int {
	switch c.State.CurrentPage {
	case domain.PageQueue:
		return c.State.QueueIndex
	case domain.PageLibrary:
		return c.State.LibraryIndex
	case domain.PageSettings:
		return c.State.SettingsIndex
	}
	return 0
}

// TotalItems returns the number of rows on the active page list. The queue
// page lists inbox files first, then jobs.
func (c *ModelContext) TotalItems() int {
	switch c.State.CurrentPage {
	case domain.PageQueue:
		return len(c.State.OrderedAudio) + len(c.State.OrderedJobs)
	case domain.PageLibrary:
		return len(c.State.VisibleTranscriptIDs())
	case domain.PageSettings:
		return settingsRows
	}
	return 0
}

// SearchQuery returns the active library search query.
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}

// DrawerVisible reports whether the drawer is effectively visible.
func (c *ModelContext) DrawerVisible() bool {
	if c.Nav == nil {
		return false
	}
	return c.Nav.EffectiveOpen()
}

// SelectedAudioPath returns the inbox file under the queue cursor, or ""
// when the cursor sits on a job row.
func (c *ModelContext) SelectedAudioPath() string {
	if c.State.CurrentPage != domain.PageQueue {
		return ""
	}
	idx := c.State.QueueIndex
	if idx < 0 || idx >= len(c.State.OrderedAudio) {
		return ""
	}
	return c.State.OrderedAudio[idx]
}

// SelectedTranscriptID returns the transcript under the library cursor.
func (c *ModelContext) SelectedTranscriptID() string {
	if c.State.CurrentPage != domain.PageLibrary {
		return ""
	}
	visible := c.State.VisibleTranscriptIDs()
	idx := c.State.LibraryIndex
	if idx < 0 || idx >= len(visible) {
		return ""
	}
	return visible[idx]
}

// UploadDirty reports whether the upload form holds unsubmitted input.
func (c *ModelContext) UploadDirty() bool {
	return c.State.UploadDirty
}

// SettingsDirty reports whether the settings draft differs from the active
// configuration.
func (c *ModelContext) SettingsDirty() bool {
	return c.State.SettingsDirty()
}
