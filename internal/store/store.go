package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ytget/record-table/internal/model"
)

// maxKeyAttempts bounds re-minting when the key generator collides
const maxKeyAttempts = 16

// Store holds the canonical record sequence and the view state derived from it
type Store struct {
	mu       sync.Mutex
	records  []model.Record
	query    string
	sort     model.Sort
	revision uint64
	cache    viewCache

	newKey   func() string
	collator *collate.Collator
	folder   cases.Caser
	logger   *zap.Logger
	onUpdate func(Event) // callback for UI updates
}

var _ RecordStore = (*Store)(nil)

// NewStore creates an empty store. Names are collated using the rules of locale.
func NewStore(logger *zap.Logger, locale language.Tag) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		records:  make([]model.Record, 0),
		newKey:   uuid.NewString,
		collator: collate.New(locale),
		folder:   cases.Fold(),
		logger:   logger,
	}
}

// SetUpdateCallback sets the callback function for store events
func (s *Store) SetUpdateCallback(callback func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetKeyGenerator replaces the generator used to mint keys for new records
func (s *Store) SetKeyGenerator(gen func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == nil {
		gen = uuid.NewString
	}
	s.newKey = gen
}

// SetLocale switches the collation used to sort names
func (s *Store) SetLocale(locale language.Tag) {
	s.mu.Lock()
	s.collator = collate.New(locale)
	s.cache.valid = false
	s.mu.Unlock()

	s.logger.Debug("Collation locale changed", zap.Stringer("locale", locale))
	s.notifyUpdate(Event{Kind: EventSortChanged})
}

// Seed appends records that already carry keys, e.g. the initial data set.
// Either all records are added or none are.
func (s *Store) Seed(records []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.Key == "" {
			return fmt.Errorf("seed record %q has no key", r.Name)
		}
		if _, dup := seen[r.Key]; dup || s.indexOf(r.Key) >= 0 {
			return fmt.Errorf("duplicate key in seed: %s", r.Key)
		}
		seen[r.Key] = struct{}{}
		if verr := Validate(r.Fields); verr != nil {
			return fmt.Errorf("seed record %s: %w", r.Key, verr)
		}
	}

	s.records = append(s.records, records...)
	s.revision++
	s.logger.Debug("Store seeded", zap.Int("records", len(records)))
	return nil
}

// Add validates fields, mints a new unique key and appends the record
func (s *Store) Add(fields model.Fields) (model.Record, error) {
	if verr := Validate(fields); verr != nil {
		s.logger.Debug("Add rejected", zap.Error(verr))
		return model.Record{}, verr
	}

	s.mu.Lock()
	record := model.NewRecord(s.mintKey(), fields)
	s.records = append(s.records, record)
	s.revision++
	s.mu.Unlock()

	s.logger.Info("Record added", zap.String("key", record.Key), zap.String("name", record.Name))
	s.notifyUpdate(Event{Kind: EventAdded, Key: record.Key, Existed: true})
	return record, nil
}

// Update replaces all editable fields of the record with the given key. The
// record keeps its position in the sequence.
func (s *Store) Update(key string, fields model.Fields) (model.Record, error) {
	if verr := Validate(fields); verr != nil {
		s.logger.Debug("Update rejected", zap.String("key", key), zap.Error(verr))
		return model.Record{}, verr
	}

	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("Update of unknown record", zap.String("key", key))
		return model.Record{}, fmt.Errorf("update %s: %w", key, ErrNotFound)
	}
	record := model.NewRecord(key, fields)
	s.records[i] = record
	s.revision++
	s.mu.Unlock()

	s.logger.Info("Record updated", zap.String("key", key), zap.Int("index", i))
	s.notifyUpdate(Event{Kind: EventUpdated, Key: key, Existed: true})
	return record, nil
}

// Delete removes the record with the given key. Deleting a key that is not
// stored is a no-op and still reports success and emits EventDeleted.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	i := s.indexOf(key)
	existed := i >= 0
	if existed {
		s.records = slices.Delete(s.records, i, i+1)
		s.revision++
	}
	s.mu.Unlock()

	if existed {
		s.logger.Info("Record deleted", zap.String("key", key))
	} else {
		s.logger.Warn("Delete of unknown record reported as success", zap.String("key", key))
	}
	s.notifyUpdate(Event{Kind: EventDeleted, Key: key, Existed: existed})
	return nil
}

// Get returns the record with the given key
func (s *Store) Get(key string) (model.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(key)
	if i < 0 {
		return model.Record{}, false
	}
	return s.records[i], true
}

// Records returns a copy of the canonical sequence in insertion order
func (s *Store) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Search returns the canonical records matching query, in canonical order
func (s *Store) Search(query string) []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.records, query, s.folder)
}

// SetQuery sets the search text applied to View
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	changed := s.query != query
	s.query = query
	s.mu.Unlock()

	if changed {
		s.logger.Debug("Search query applied", zap.String("query", query))
		s.notifyUpdate(Event{Kind: EventQueryChanged})
	}
}

// Query returns the search text currently applied to View
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SortBy sets the display order of View. Canonical order is never changed.
func (s *Store) SortBy(column model.Column, direction model.SortDirection) {
	next := model.Sort{Column: column, Direction: direction}
	if !next.IsActive() {
		next = model.Sort{}
	}

	s.mu.Lock()
	changed := s.sort != next
	s.sort = next
	s.mu.Unlock()

	if changed {
		s.logger.Debug("Sort applied", zap.Stringer("column", column), zap.Stringer("direction", direction))
		s.notifyUpdate(Event{Kind: EventSortChanged})
	}
}

// Sort returns the display sort currently applied to View
func (s *Store) Sort() model.Sort {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// View returns the filtered and sorted records the table renders
func (s *Store) View() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.view())
}

// Page returns page number (zero-based) of View with size rows per page
func (s *Store) Page(number, size int) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.view(), number, size)
}

// view returns the memoized derived view. Callers must hold s.mu.
func (s *Store) view() []model.Record {
	if s.cache.matches(s.revision, s.query, s.sort) {
		return s.cache.records
	}
	records := filterRecords(s.records, s.query, s.folder)
	sortRecords(records, s.sort, s.collator)
	s.cache = viewCache{
		valid:    true,
		revision: s.revision,
		query:    s.query,
		sort:     s.sort,
		records:  records,
	}
	return records
}

// mintKey returns a key not used by any stored record. Callers must hold s.mu.
func (s *Store) mintKey() string {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key := s.newKey()
		if key != "" && s.indexOf(key) < 0 {
			return key
		}
		s.logger.Debug("Key collision, re-minting", zap.String("key", key), zap.Int("attempt", attempt+1))
	}
	for {
		key := uuid.NewString()
		if s.indexOf(key) < 0 {
			return key
		}
	}
}

// indexOf returns the position of key in the sequence or -1. Callers must hold s.mu.
func (s *Store) indexOf(key string) int {
	return slices.IndexFunc(s.records, func(r model.Record) bool {
		return r.Key == key
	})
}

// notifyUpdate calls the update callback if set
func (s *Store) notifyUpdate(event Event) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(event)
	}
}
