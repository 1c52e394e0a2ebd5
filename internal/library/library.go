package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"hearsay/internal/domain"
	"hearsay/internal/logging"
)

// Store persists transcripts under a single library directory. Each entry is
// a text file plus a TOML sidecar carrying the metadata.
type Store interface {
	List() []*domain.Transcript
	Get(id string) (*domain.Transcript, bool)
	Body(id string) (string, error)
	Add(t *domain.Transcript, body string) error
	Remove(id string) error
	Search(query string) []*domain.Transcript
}

// sidecar is the on-disk metadata format. Duration is stored in
// time.Duration string form so the file stays human-editable.
type sidecar struct {
	ID        string    `toml:"id"`
	Title     string    `toml:"title"`
	Source    string    `toml:"source"`
	Language  string    `toml:"language"`
	Duration  string    `toml:"duration"`
	Words     int       `toml:"words"`
	CreatedAt time.Time `toml:"created_at"`
}

// fsStore is the filesystem-backed implementation
type fsStore struct {
	dir   string
	mu    sync.RWMutex
	index map[string]*domain.Transcript
	log   *logrus.Entry
}

// NewStore opens (creating if needed) the library directory and indexes the
// sidecars already present.
func NewStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create library dir: %w", err)
	}

	s := &fsStore{
		dir:   dir,
		index: make(map[string]*domain.Transcript),
		log:   logging.NewLogger("library"),
	}
	s.load()
	return s, nil
}

func (s *fsStore) load() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read library directory")
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.WithError(err).Warnf("Skipping unreadable sidecar %s", entry.Name())
			continue
		}

		var meta sidecar
		if err := toml.Unmarshal(data, &meta); err != nil {
			s.log.WithError(err).Warnf("Skipping malformed sidecar %s", entry.Name())
			continue
		}
		if meta.ID == "" {
			continue
		}

		s.index[meta.ID] = fromSidecar(meta, s.textPath(meta.ID))
	}

	s.log.Debugf("Indexed %d transcripts", len(s.index))
}

// List returns all transcripts, newest first.
func (s *fsStore) List() []*domain.Transcript {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Transcript, 0, len(s.index))
	for _, t := range s.index {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *fsStore) Get(id string) (*domain.Transcript, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.index[id]
	return t, ok
}

// Body reads the transcript text from disk.
func (s *fsStore) Body(id string) (string, error) {
	s.mu.RLock()
	t, ok := s.index[id]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("transcript not found: %s", id)
	}

	data, err := os.ReadFile(t.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}

// Add persists the text and sidecar, then indexes the transcript. The
// stored Path overrides whatever the caller set.
func (s *fsStore) Add(t *domain.Transcript, body string) error {
	if t.ID == "" {
		return fmt.Errorf("transcript has no id")
	}

	textPath := s.textPath(t.ID)
	if err := os.WriteFile(textPath, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	data, err := toml.Marshal(toSidecar(t))
	if err != nil {
		os.Remove(textPath)
		return fmt.Errorf("failed to encode sidecar: %w", err)
	}
	if err := os.WriteFile(s.sidecarPath(t.ID), data, 0644); err != nil {
		os.Remove(textPath)
		return fmt.Errorf("failed to write sidecar: %w", err)
	}

	t.Path = textPath

	s.mu.Lock()
	s.index[t.ID] = t
	s.mu.Unlock()

	s.log.Debugf("Stored transcript %s (%s)", t.ID, t.Title)
	return nil
}

// Remove deletes the transcript files and drops the index entry.
func (s *fsStore) Remove(id string) error {
	s.mu.Lock()
	_, ok := s.index[id]
	delete(s.index, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("transcript not found: %s", id)
	}

	if err := os.Remove(s.textPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove transcript: %w", err)
	}
	if err := os.Remove(s.sidecarPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove sidecar: %w", err)
	}
	return nil
}

// Search returns transcripts whose title or source contains the query,
// case-folded. An empty query returns everything.
func (s *fsStore) Search(query string) []*domain.Transcript {
	all := s.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	result := make([]*domain.Transcript, 0, len(all))
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Source), q) {
			result = append(result, t)
		}
	}
	return result
}

func (s *fsStore) textPath(id string) string {
	return filepath.Join(s.dir, id+".txt")
}

func (s *fsStore) sidecarPath(id string) string {
	return filepath.Join(s.dir, id+".toml")
}

func toSidecar(t *domain.Transcript) sidecar {
	return sidecar{
		ID:        t.ID,
		Title:     t.Title,
		Source:    t.Source,
		Language:  t.Language,
		Duration:  t.Duration.String(),
		Words:     t.Words,
		CreatedAt: t.CreatedAt,
	}
}

func fromSidecar(meta sidecar, textPath string) *domain.Transcript {
	dur, err := time.ParseDuration(meta.Duration)
	if err != nil {
		dur = 0
	}
	return &domain.Transcript{
		ID:        meta.ID,
		Title:     meta.Title,
		Source:    meta.Source,
		Path:      textPath,
		Language:  meta.Language,
		Duration:  dur,
		Words:     meta.Words,
		CreatedAt: meta.CreatedAt,
	}
}
