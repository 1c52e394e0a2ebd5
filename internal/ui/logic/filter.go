package logic

import (
	"strings"

	"hearsay/internal/domain"
)

// SearchFilter handles transcript search on the library page
type SearchFilter struct {
	transcripts map[string]*domain.Transcript
}

// NewSearchFilter creates a new search filter
func NewSearchFilter(transcripts map[string]*domain.Transcript) *SearchFilter {
	return &SearchFilter{
		transcripts: transcripts,
	}
}

// Matches checks if a transcript matches the query, case-folded, over the
// title and the source path.
func (sf *SearchFilter) Matches(t *domain.Transcript, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Source), q)
}

// VisibleIDs filters an ordered id list down to the matching transcripts,
// preserving order.
func (sf *SearchFilter) VisibleIDs(ordered []string, query string) []string {
	if strings.TrimSpace(query) == "" {
		return ordered
	}

	result := make([]string, 0, len(ordered))
	for _, id := range ordered {
		if t, ok := sf.transcripts[id]; ok && sf.Matches(t, query) {
			result = append(result, id)
		}
	}
	return result
}
