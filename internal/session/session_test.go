package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/store"
)

func newTestSession(t *testing.T) (*Session, *store.Store) {
	t.Helper()
	s := store.NewStore(zap.NewNop(), language.Russian)
	require.NoError(t, s.Seed([]model.Record{
		model.NewRecord("1", model.Fields{Name: "Кедич Мирон", Date: "2025-08-21", NumericValue: 42}),
	}))
	return New(s, zap.NewNop()), s
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func number(v float64) *float64 {
	return &v
}

func TestSession_CreateCommits(t *testing.T) {
	sess, s := newTestSession(t)

	require.NoError(t, sess.BeginCreate())
	assert.Equal(t, StateComposing, sess.State())
	assert.Equal(t, ModeCreate, sess.Mode())
	require.NotNil(t, sess.Draft().NumericValue)
	assert.Equal(t, 0.0, *sess.Draft().NumericValue)

	record, err := sess.Submit(Draft{Name: "Anna", Date: date(2025, time.January, 1), NumericValue: number(5)})
	require.NoError(t, err)

	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, ModeNone, sess.Mode())
	assert.Equal(t, "2025-01-01", record.Date)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, record, s.Records()[1])
}

func TestSession_EditPrefillsAndCommits(t *testing.T) {
	sess, s := newTestSession(t)

	require.NoError(t, sess.BeginEdit("1"))
	assert.Equal(t, ModeEdit, sess.Mode())
	assert.Equal(t, "1", sess.Target())

	draft := sess.Draft()
	assert.Equal(t, "Кедич Мирон", draft.Name)
	require.NotNil(t, draft.Date)
	assert.Equal(t, "2025-08-21", model.FormatISODate(*draft.Date))
	require.NotNil(t, draft.NumericValue)
	assert.Equal(t, 42.0, *draft.NumericValue)

	draft.Name = "Мирон"
	record, err := sess.Submit(draft)
	require.NoError(t, err)

	assert.Equal(t, "1", record.Key)
	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, "Мирон", s.Records()[0].Name)
	assert.Equal(t, 1, s.Len())
}

func TestSession_RejectKeepsComposing(t *testing.T) {
	sess, s := newTestSession(t)
	require.NoError(t, sess.BeginCreate())

	_, err := sess.Submit(Draft{Name: "A", Date: nil, NumericValue: nil})
	verr, ok := store.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)

	assert.Equal(t, store.MsgNameTooShort, verr.For(store.FieldName))
	assert.Equal(t, store.MsgDateRequired, verr.For(store.FieldDate))
	assert.Equal(t, store.MsgNumericValueRequired, verr.For(store.FieldNumericValue))
	assert.Equal(t, StateComposing, sess.State())
	assert.Equal(t, ModeCreate, sess.Mode())
	assert.Equal(t, 1, s.Len())

	// Correct and resubmit within the same session
	_, err = sess.Submit(Draft{Name: "Ab", Date: date(2025, time.May, 5), NumericValue: number(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestSession_NegativeValueRejected(t *testing.T) {
	sess, s := newTestSession(t)
	require.NoError(t, sess.BeginEdit("1"))

	_, err := sess.Submit(Draft{Name: "Кедич", Date: date(2025, time.August, 21), NumericValue: number(-1)})
	verr, ok := store.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, store.MsgNumericValueNegative, verr.For(store.FieldNumericValue))
	assert.Equal(t, 42.0, s.Records()[0].NumericValue)
}

func TestSession_CancelLeavesStoreUntouched(t *testing.T) {
	sess, s := newTestSession(t)
	before := s.Records()

	require.NoError(t, sess.BeginEdit("1"))
	sess.Cancel()

	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, "", sess.Target())
	assert.Equal(t, before, s.Records())

	// Cancel while idle is harmless
	sess.Cancel()
	assert.Equal(t, StateIdle, sess.State())
}

func TestSession_SingleForm(t *testing.T) {
	sess, _ := newTestSession(t)

	require.NoError(t, sess.BeginCreate())
	assert.ErrorIs(t, sess.BeginCreate(), ErrSessionOpen)
	assert.ErrorIs(t, sess.BeginEdit("1"), ErrSessionOpen)
	assert.Equal(t, ModeCreate, sess.Mode())
}

func TestSession_SubmitWithoutForm(t *testing.T) {
	sess, _ := newTestSession(t)

	_, err := sess.Submit(Draft{Name: "Anna", Date: date(2025, time.January, 1), NumericValue: number(1)})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_EditUnknownRecord(t *testing.T) {
	sess, _ := newTestSession(t)

	err := sess.BeginEdit("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Equal(t, StateIdle, sess.State())
}

func TestSession_EditTargetDeletedWhileOpen(t *testing.T) {
	sess, s := newTestSession(t)
	require.NoError(t, sess.BeginEdit("1"))
	require.NoError(t, s.Delete("1"))

	_, err := sess.Submit(Draft{Name: "Мирон", Date: date(2025, time.August, 21), NumericValue: number(42)})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, 0, s.Len())
}

func TestDraft_Fields(t *testing.T) {
	draft := Draft{Name: "Anna", Date: date(2024, time.February, 29), NumericValue: number(2.5)}
	assert.Equal(t, model.Fields{Name: "Anna", Date: "2024-02-29", NumericValue: 2.5}, draft.Fields())

	assert.Equal(t, model.Fields{Name: "x"}, Draft{Name: "x"}.Fields())
}
