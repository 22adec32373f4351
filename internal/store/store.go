// Package store is the in-memory record store backing the service. Memory
// is the source of truth; every mutation is written through to the
// persistence provider on a best-effort basis, so a failed write degrades
// durability but never the running state.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dokonepal/doko/internal/apperr"
	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/models"
)

// Collection keys in the persistence provider.
const (
	keyGroceries  = "groceries"
	keyWireframes = "wireframes"
	keyActivity   = "activity"
)

// maxActivityEntries caps the retained activity feed.
const maxActivityEntries = 200

// ActivitySink receives every activity entry the store records, after the
// entry is already appended. Used to mirror entries into the search index
// and onto live event streams.
type ActivitySink func(models.Activity)

// Store holds the grocery inventory, the wireframe records and the
// activity feed.
type Store struct {
	provider kvstore.Provider
	logger   *slog.Logger

	mu         sync.RWMutex
	groceries  []models.Grocery
	wireframes []models.Wireframe
	activity   []models.Activity

	now   func() time.Time
	newID func() string
	sink  ActivitySink
}

// New creates a store over the given provider. Call Load before use.
func New(provider kvstore.Provider, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		provider: provider,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SetActivitySink registers the activity mirror. Not safe to call after
// the store is in use.
func (s *Store) SetActivitySink(sink ActivitySink) { s.sink = sink }

// SetClock overrides the store clock, for tests.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Load reads every collection from the provider. A collection that is
// missing or unreadable falls back to the seed dataset, which is persisted
// immediately so the next start finds it.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.loadCollection(keyGroceries, &s.groceries) {
		s.groceries = seedGroceries(s.newID, now)
		s.persistLocked(keyGroceries, s.groceries)
	}
	if !s.loadCollection(keyWireframes, &s.wireframes) {
		s.wireframes = seedWireframes(s.newID, now)
		s.persistLocked(keyWireframes, s.wireframes)
	}
	if !s.loadCollection(keyActivity, &s.activity) {
		s.activity = seedActivity(s.newID, now)
		s.persistLocked(keyActivity, s.activity)
	}
	return nil
}

// loadCollection reads and decodes one key. It reports whether the
// collection was usable; corrupt data is treated the same as absent data.
func (s *Store) loadCollection(key string, dst any) bool {
	raw, err := s.provider.Get(key)
	if err != nil {
		if err != kvstore.ErrKeyNotFound {
			s.logger.Warn("collection unreadable, reseeding", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("collection corrupt, reseeding", "key", key, "error", err)
		return false
	}
	return true
}

// persistLocked writes one collection through to the provider. Failures
// are logged and otherwise ignored; the in-memory copy stays authoritative.
func (s *Store) persistLocked(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode collection", "key", key, "error", err)
		return
	}
	if err := s.provider.Set(key, raw); err != nil {
		s.logger.Warn("persist collection", "key", key, "error", err)
	}
}

// Groceries returns a snapshot copy of the inventory.
func (s *Store) Groceries() []models.Grocery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Grocery, len(s.groceries))
	copy(out, s.groceries)
	return out
}

// Grocery returns one inventory item by id.
func (s *Store) Grocery(id string) (models.Grocery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groceries {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Grocery{}, fmt.Errorf("grocery %q: %w", id, apperr.ErrNotFound)
}

// AddGrocery validates and stores a new inventory item. The id and
// DateAdded are assigned here.
func (s *Store) AddGrocery(g models.Grocery) (models.Grocery, error) {
	if err := g.Validate(); err != nil {
		return models.Grocery{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.newID()
	g.DateAdded = s.now()
	g.DateUpdated = nil
	s.groceries = append(s.groceries, g)
	s.persistLocked(keyGroceries, s.groceries)
	s.recordLocked(models.ActivityGroceryAdded, "Added new grocery item: "+g.Name)
	return g, nil
}

// UpdateGrocery replaces the stored item with the given id. The original
// DateAdded is kept and DateUpdated is stamped.
func (s *Store) UpdateGrocery(id string, g models.Grocery) (models.Grocery, error) {
	if err := g.Validate(); err != nil {
		return models.Grocery{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.groceries {
		if cur.ID != id {
			continue
		}
		g.ID = id
		g.DateAdded = cur.DateAdded
		now := s.now()
		g.DateUpdated = &now
		s.groceries[i] = g
		s.persistLocked(keyGroceries, s.groceries)
		s.recordLocked(models.ActivityGroceryUpdated, "Updated grocery item: "+g.Name)
		return g, nil
	}
	return models.Grocery{}, fmt.Errorf("grocery %q: %w", id, apperr.ErrNotFound)
}

// DeleteGrocery removes the item with the given id. An unknown id leaves
// the collection untouched and reports ErrNotFound.
func (s *Store) DeleteGrocery(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.groceries {
		if g.ID != id {
			continue
		}
		s.groceries = append(s.groceries[:i], s.groceries[i+1:]...)
		s.persistLocked(keyGroceries, s.groceries)
		s.recordLocked(models.ActivityGroceryDeleted, "Deleted grocery item: "+g.Name)
		return nil
	}
	return fmt.Errorf("grocery %q: %w", id, apperr.ErrNotFound)
}

// SearchGroceries filters the inventory by a case-insensitive term matched
// against name, supplier and description, and optionally by exact category.
// Empty term and category return the full snapshot.
func (s *Store) SearchGroceries(term, category string) []models.Grocery {
	term = strings.ToLower(strings.TrimSpace(term))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Grocery{}
	for _, g := range s.groceries {
		if category != "" && g.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(g.Name), term) &&
			!strings.Contains(strings.ToLower(g.Supplier), term) &&
			!strings.Contains(strings.ToLower(g.Description), term) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Wireframes returns a snapshot copy of the wireframe records.
func (s *Store) Wireframes() []models.Wireframe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Wireframe, len(s.wireframes))
	copy(out, s.wireframes)
	return out
}

// Wireframe returns one record by id.
func (s *Store) Wireframe(id string) (models.Wireframe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.wireframes {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Wireframe{}, fmt.Errorf("wireframe %q: %w", id, apperr.ErrNotFound)
}

// AddWireframe validates and stores a new record. Status defaults to
// Planning and Pages to 1 when unset.
func (s *Store) AddWireframe(w models.Wireframe) (models.Wireframe, error) {
	if w.Pages == 0 {
		w.Pages = 1
	}
	if err := w.Validate(); err != nil {
		return models.Wireframe{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = s.newID()
	w.DateCreated = s.now()
	w.DateUpdated = nil
	if w.Status == "" {
		w.Status = models.StatusPlanning
	}
	s.wireframes = append(s.wireframes, w)
	s.persistLocked(keyWireframes, s.wireframes)
	s.recordLocked(models.ActivityWireframeCreated, "Created wireframe: "+w.ProjectName)
	return w, nil
}

// UpdateWireframe replaces the stored record with the given id. Pages
// defaults to 1 when unset, same as on create.
func (s *Store) UpdateWireframe(id string, w models.Wireframe) (models.Wireframe, error) {
	if w.Pages == 0 {
		w.Pages = 1
	}
	if err := w.Validate(); err != nil {
		return models.Wireframe{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.wireframes {
		if cur.ID != id {
			continue
		}
		w.ID = id
		w.DateCreated = cur.DateCreated
		now := s.now()
		w.DateUpdated = &now
		if w.Status == "" {
			w.Status = cur.Status
		}
		s.wireframes[i] = w
		s.persistLocked(keyWireframes, s.wireframes)
		s.recordLocked(models.ActivityWireframeUpdated, "Updated wireframe: "+w.ProjectName)
		return w, nil
	}
	return models.Wireframe{}, fmt.Errorf("wireframe %q: %w", id, apperr.ErrNotFound)
}

// DeleteWireframe removes the record with the given id. An unknown id
// leaves the collection untouched and reports ErrNotFound.
func (s *Store) DeleteWireframe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.wireframes {
		if w.ID != id {
			continue
		}
		s.wireframes = append(s.wireframes[:i], s.wireframes[i+1:]...)
		s.persistLocked(keyWireframes, s.wireframes)
		s.recordLocked(models.ActivityWireframeDeleted, "Deleted wireframe: "+w.ProjectName)
		return nil
	}
	return fmt.Errorf("wireframe %q: %w", id, apperr.ErrNotFound)
}

// ViewWireframe records a view of the given wireframe and returns it.
func (s *Store) ViewWireframe(id string) (models.Wireframe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wireframes {
		if w.ID == id {
			s.recordLocked(models.ActivityWireframeViewed, "Viewed wireframe: "+w.ProjectName)
			return w, nil
		}
	}
	return models.Wireframe{}, fmt.Errorf("wireframe %q: %w", id, apperr.ErrNotFound)
}

// RecordActivity appends an entry to the activity feed on behalf of other
// components (auth, export).
func (s *Store) RecordActivity(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordLocked(kind, message)
}

// RecentActivity returns the newest n entries, newest first.
func (s *Store) RecentActivity(n int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || n > len(s.activity) {
		n = len(s.activity)
	}
	out := make([]models.Activity, 0, n)
	for i := len(s.activity) - 1; i >= len(s.activity)-n; i-- {
		out = append(out, s.activity[i])
	}
	return out
}

// recordLocked appends one activity entry, persists the feed, and notifies
// the sink. Callers must hold the write lock.
func (s *Store) recordLocked(kind, message string) {
	entry := models.Activity{
		ID:        s.newID(),
		Kind:      kind,
		Message:   message,
		Timestamp: s.now(),
	}
	s.activity = append(s.activity, entry)
	if len(s.activity) > maxActivityEntries {
		s.activity = s.activity[len(s.activity)-maxActivityEntries:]
	}
	s.persistLocked(keyActivity, s.activity)
	if s.sink != nil {
		s.sink(entry)
	}
}
