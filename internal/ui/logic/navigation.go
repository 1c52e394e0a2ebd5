package logic

import (
	"hearsay/internal/domain"
)

// CyclePage returns the page delta steps away in the catalog, wrapping at
// both ends.
func CyclePage(current string, delta int) string {
	pages := domain.Pages()
	n := len(pages)
	idx := PageIndex(current)
	if idx < 0 {
		idx = 0
	}
	idx = ((idx+delta)%n + n) % n
	return pages[idx].ID
}

// PageIndex returns the catalog position of a page id, or -1.
func PageIndex(id string) int {
	for i, p := range domain.Pages() {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Clamp keeps a cursor inside [0, total).
func Clamp(index, total int) int {
	if total <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}

// Move applies a navigation direction to a cursor over total rows.
func Move(index, total int, direction string, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 10
	}
	switch direction {
	case "up":
		index--
	case "down":
		index++
	case "pageup":
		index -= pageSize
	case "pagedown":
		index += pageSize
	case "home":
		index = 0
	case "end":
		index = total - 1
	}
	return Clamp(index, total)
}

// EnsureVisible adjusts a viewport offset so the cursor stays on screen.
func EnsureVisible(offset, index, height int) int {
	if height <= 0 {
		return 0
	}
	if index < offset {
		return index
	}
	if index >= offset+height {
		return index - height + 1
	}
	return offset
}
