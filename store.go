package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrOutOfRange is returned by DeleteAt when the position does not address an
// existing reflection.
var ErrOutOfRange = errors.New("index out of range")

// Reflection is a single journal entry. Date is assigned by the server at
// creation time.
type Reflection struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	Reflection string `json:"reflection"`
}

// Store persists reflections as a JSON array in a single file. The file is
// re-read at the start of every operation and rewritten in full after every
// mutation, so it is the only source of truth. All read-modify-write cycles
// run under mu so concurrent requests cannot lose each other's updates.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *Logger
}

func NewStore(path string, logger *Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns the full sequence from disk. A missing file is an empty
// journal; a file that fails to parse is treated the same way so a corrupt
// store never takes the API down.
func (s *Store) Load() []Reflection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []Reflection {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return []Reflection{}
	}
	var reflections []Reflection
	if err := json.Unmarshal(b, &reflections); err != nil {
		s.logger.Warning(ComponentStore, fmt.Sprintf("%s is not valid JSON, treating the journal as empty", s.path))
		return []Reflection{}
	}
	if reflections == nil {
		reflections = []Reflection{}
	}
	return reflections
}

// Save rewrites the whole file with the given sequence.
func (s *Store) Save(reflections []Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(reflections)
}

// save writes to a temp file in the same directory and renames it over the
// target, so a reader never observes a half-written file.
func (s *Store) save(reflections []Reflection) error {
	b, err := json.MarshalIndent(reflections, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".reflections-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Append adds a reflection at the end of the journal.
func (s *Store) Append(r Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(append(s.load(), r))
}

// DeleteAt removes and returns the reflection at the given position. Later
// entries shift down by one. When the position is out of range the file is
// left untouched and ErrOutOfRange is returned.
func (s *Store) DeleteAt(position int) (Reflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reflections := s.load()
	if position < 0 || position >= len(reflections) {
		return Reflection{}, ErrOutOfRange
	}

	removed := reflections[position]
	reflections = append(reflections[:position], reflections[position+1:]...)
	if err := s.save(reflections); err != nil {
		return Reflection{}, err
	}
	return removed, nil
}
