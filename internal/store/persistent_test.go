package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-lock/internal/logger"
)

func newMockedPersistent(t *testing.T) (*persistentStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewPersistentStorage(db, logger.Nop()).(*persistentStorage)
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s, mock
}

func TestPersistentStorage_GetItem_Found(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM key_cache WHERE id = ? LIMIT 1")).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("a2V5"))

	v, found, err := s.GetItem(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a2V5", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistentStorage_GetItem_NotFound(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM key_cache")).
		WithArgs("k").
		WillReturnError(sql.ErrNoRows)

	v, found, err := s.GetItem(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistentStorage_GetItem_DBError(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM key_cache")).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, found, err := s.GetItem(context.Background(), "k")
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestPersistentStorage_SetItem(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO key_cache (id,value,updated_at) VALUES (?,?,?) ON CONFLICT(id) DO UPDATE")).
		WithArgs("k", "v", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SetItem(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistentStorage_SetItem_DBError(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO key_cache")).
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, s.SetItem(context.Background(), "k", "v"), ErrExecutingStatement)
}

func TestPersistentStorage_RemoveItem(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM key_cache WHERE id = ?")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistentStorage_RemoveItem_DBError(t *testing.T) {
	s, mock := newMockedPersistent(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM key_cache")).
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.RemoveItem(context.Background(), "k"), ErrExecutingStatement)
}

func TestPersistentStorage_Close(t *testing.T) {
	s, mock := newMockedPersistent(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
