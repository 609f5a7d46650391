// Package queststore serves quest definitions over the Quest Fetch
// contract. Definitions are authored as YAML files, validated at load
// time, and served from an in-memory catalog.
package queststore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/codequest/quest-engine/quest"
)

// Store is the in-memory quest catalog
type Store struct {
	mu     sync.RWMutex
	quests map[string]*quest.Quest
	log    zerolog.Logger
}

// NewStore creates an empty store
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		quests: make(map[string]*quest.Quest),
		log:    log,
	}
}

// LoadFromDir loads every YAML quest definition in dir. Files that fail
// to parse or validate are skipped with a warning; a directory with no
// loadable quests is an error.
func (s *Store) LoadFromDir(dir string) error {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	loaded := 0
	for _, file := range files {
		if err := s.LoadFromFile(file); err != nil {
			s.log.Warn().Err(err).Str("file", file).Msg("skipping quest definition")
			continue
		}
		loaded++
	}
	s.log.Info().Int("count", loaded).Str("dir", dir).Msg("quest definitions loaded")

	if loaded == 0 {
		return fmt.Errorf("no loadable quest definitions in %s", dir)
	}
	return nil
}

// LoadFromFile loads and validates a single YAML quest definition
func (s *Store) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var q quest.Quest
	if err := yaml.Unmarshal(data, &q); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return s.Add(&q)
}

// Add validates a quest and places it in the catalog, replacing any
// existing quest with the same id.
func (s *Store) Add(q *quest.Quest) error {
	if err := quest.Validate(q); err != nil {
		return err
	}
	s.mu.Lock()
	s.quests[q.ID] = q
	s.mu.Unlock()
	return nil
}

// Get returns the quest for id
func (s *Store) Get(id string) (*quest.Quest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quests[id]
	return q, ok
}

// List returns every quest sorted by id
func (s *Store) List() []*quest.Quest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*quest.Quest, 0, len(s.quests))
	for _, q := range s.quests {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
