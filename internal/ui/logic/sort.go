package logic

import (
	"sort"
	"strings"

	"hearsay/internal/domain"
)

// SortTranscriptIDs orders transcript ids newest first, breaking ties by id
// so the order is stable across renders.
func SortTranscriptIDs(ids []string, transcripts map[string]*domain.Transcript) {
	sort.Slice(ids, func(i, j int) bool {
		a, okA := transcripts[ids[i]]
		b, okB := transcripts[ids[j]]
		if !okA || !okB {
			return !okA
		}
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// SortAudioPaths orders inbox paths by file name, case-folded, then by full
// path for duplicates across directories.
func SortAudioPaths(paths []string, files map[string]*domain.AudioFile) {
	sort.Slice(paths, func(i, j int) bool {
		a, okA := files[paths[i]]
		b, okB := files[paths[j]]
		if !okA || !okB {
			return !okA
		}
		nameA, nameB := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if nameA == nameB {
			return a.Path < b.Path
		}
		return nameA < nameB
	})
}
