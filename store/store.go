// Package store persists calendar events and users in a single flat JSON
// document. All access is serialized behind one mutex, so the
// read-modify-write cycle can never interleave between writers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"go.uber.org/zap"
)

const defaultPath = "data/calendar-events.json"

// ErrNotFound is returned when an event id matches nothing.
var ErrNotFound = errors.New("event not found")

type document struct {
	Events []models.CalendarEvent `json:"events"`
	Users  []models.CalendarUser  `json:"users"`
}

type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	if path == "" {
		path = defaultPath
	}
	return &Store{path: path, now: time.Now}
}

// NewFromEnv reads DATA_PATH, defaulting to data/calendar-events.json.
func NewFromEnv() *Store {
	return New(os.Getenv("DATA_PATH"))
}

// load reads the document. A missing or corrupt file is an empty dataset,
// never an error.
func (s *Store) load() document {
	var doc document
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Get().Warn("calendar data file is corrupt, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return document{}
	}
	return doc
}

// save writes the document atomically via a temp file rename.
func (s *Store) save(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal calendar data: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write calendar data: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace calendar data: %w", err)
	}
	return nil
}

// Events returns all stored events.
func (s *Store) Events() []models.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	if doc.Events == nil {
		return []models.CalendarEvent{}
	}
	return doc.Events
}

// Users returns the stored calendar users.
func (s *Store) Users() []models.CalendarUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	if doc.Users == nil {
		return []models.CalendarUser{}
	}
	return doc.Users
}

// AddEvent appends an event, assigning a millisecond-timestamp id when the
// client didn't provide one, and returns the stored event.
func (s *Store) AddEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = models.EventID(strconv.FormatInt(s.now().UnixMilli(), 10))
	}

	doc := s.load()
	doc.Events = append(doc.Events, event)
	if err := s.save(doc); err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

// UpdateEvent replaces the event with a matching id.
func (s *Store) UpdateEvent(event models.CalendarEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	for i, existing := range doc.Events {
		if existing.ID == event.ID {
			doc.Events[i] = event
			return s.save(doc)
		}
	}
	return ErrNotFound
}

// DeleteEvent removes any event with the given id. Deleting an id that does
// not exist is not an error; the result is the same either way.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	kept := doc.Events[:0]
	for _, event := range doc.Events {
		if string(event.ID) != id {
			kept = append(kept, event)
		}
	}
	doc.Events = kept
	return s.save(doc)
}
