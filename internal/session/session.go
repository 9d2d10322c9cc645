// Package session implements the create/edit form lifecycle. Only one form can
// be open at a time; the store is touched only when a submitted draft commits.
package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/store"
)

var (
	ErrSessionOpen = errors.New("session: a form is already open")
	ErrNoSession   = errors.New("session: no form is open")
)

// State of the form lifecycle
type State string

const (
	StateIdle       State = "idle"
	StateComposing  State = "composing"
	StateValidating State = "validating"
)

// Mode tells whether the open form creates or edits a record
type Mode string

const (
	ModeNone   Mode = ""
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Draft is the form content as the presentation layer holds it. A nil Date or
// NumericValue means the field was left empty.
type Draft struct {
	Name         string
	Date         *time.Time
	NumericValue *float64
}

// Fields normalizes the draft into store fields. Empty fields become values
// that fail validation.
func (d Draft) Fields() model.Fields {
	f := model.Fields{Name: d.Name}
	if d.Date != nil {
		f.Date = model.FormatISODate(*d.Date)
	}
	if d.NumericValue != nil {
		f.NumericValue = *d.NumericValue
	}
	return f
}

// validate catches empty fields that Fields() cannot express
func (d Draft) validate() *store.ValidationError {
	verr := store.Validate(d.Fields())
	if d.NumericValue == nil {
		if verr == nil {
			verr = &store.ValidationError{}
		}
		verr.Fields = append(verr.Fields, store.FieldError{
			Field:   store.FieldNumericValue,
			Message: store.MsgNumericValueRequired,
		})
	}
	return verr
}

// DraftFromRecord pre-fills a draft for editing an existing record
func DraftFromRecord(r model.Record) Draft {
	d := Draft{Name: r.Name}
	if t, err := model.ParseISODate(r.Date); err == nil {
		d.Date = &t
	}
	v := r.NumericValue
	d.NumericValue = &v
	return d
}

// Session drives one form at a time against a record store
type Session struct {
	store  store.RecordStore
	logger *zap.Logger

	state  State
	mode   Mode
	target string // key being edited
	draft  Draft
}

// New creates an idle session bound to s
func New(s store.RecordStore, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:  s,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Mode returns whether the open form creates or edits
func (s *Session) Mode() Mode {
	return s.mode
}

// Target returns the key of the record being edited, or ""
func (s *Session) Target() string {
	return s.target
}

// Draft returns the draft the form was opened with
func (s *Session) Draft() Draft {
	return s.draft
}

// BeginCreate opens an empty form for a new record
func (s *Session) BeginCreate() error {
	if s.state != StateIdle {
		return ErrSessionOpen
	}

	zero := 0.0
	s.open(ModeCreate, "", Draft{NumericValue: &zero})
	return nil
}

// BeginEdit opens a form pre-filled from the record with the given key
func (s *Session) BeginEdit(key string) error {
	if s.state != StateIdle {
		return ErrSessionOpen
	}

	record, ok := s.store.Get(key)
	if !ok {
		return fmt.Errorf("edit %s: %w", key, store.ErrNotFound)
	}
	s.open(ModeEdit, key, DraftFromRecord(record))
	return nil
}

// Submit validates the draft and commits it. On a validation error the form
// stays open. On success, or when the edited record no longer exists, the
// session returns to idle.
func (s *Session) Submit(draft Draft) (model.Record, error) {
	if s.state != StateComposing {
		return model.Record{}, ErrNoSession
	}

	s.state = StateValidating
	s.draft = draft

	if verr := draft.validate(); verr != nil {
		s.state = StateComposing
		s.logger.Debug("Draft rejected", zap.String("mode", string(s.mode)), zap.Error(verr))
		return model.Record{}, verr
	}

	var (
		record model.Record
		err    error
	)
	switch s.mode {
	case ModeEdit:
		record, err = s.store.Update(s.target, draft.Fields())
	default:
		record, err = s.store.Add(draft.Fields())
	}

	if _, invalid := store.AsValidationError(err); invalid {
		s.state = StateComposing
		return model.Record{}, err
	}
	if err != nil {
		s.logger.Warn("Commit failed, closing form", zap.String("key", s.target), zap.Error(err))
		s.close()
		return model.Record{}, err
	}

	s.logger.Debug("Draft committed", zap.String("mode", string(s.mode)), zap.String("key", record.Key))
	s.close()
	return record, nil
}

// Cancel closes the form without touching the store
func (s *Session) Cancel() {
	if s.state == StateIdle {
		return
	}
	s.logger.Debug("Form cancelled", zap.String("mode", string(s.mode)))
	s.close()
}

func (s *Session) open(mode Mode, target string, draft Draft) {
	s.state = StateComposing
	s.mode = mode
	s.target = target
	s.draft = draft
	s.logger.Debug("Form opened", zap.String("mode", string(mode)), zap.String("key", target))
}

func (s *Session) close() {
	s.state = StateIdle
	s.mode = ModeNone
	s.target = ""
	s.draft = Draft{}
}
