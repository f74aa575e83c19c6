package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-signup/internal/logger"
)

func newTestKVStore(t *testing.T) (*sqliteKeyValueStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	s := &sqliteKeyValueStore{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
	}
	return s, mock, db
}

func TestSQLiteKeyValueStore_Set(t *testing.T) {
	t.Run("upserts value", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		mock.ExpectExec("INSERT INTO kv_store").
			WithArgs("inscription", `{"city":"Lyon"}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := s.Set(context.Background(), "inscription", `{"city":"Lyon"}`)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		dbErr := errors.New("disk I/O error")
		mock.ExpectExec("INSERT INTO kv_store").
			WithArgs("inscription", "v", sqlmock.AnyArg()).
			WillReturnError(dbErr)

		err := s.Set(context.Background(), "inscription", "v")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("empty key", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		err := s.Set(context.Background(), "", "v")
		assert.ErrorIs(t, err, ErrEmptyKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteKeyValueStore_Get(t *testing.T) {
	t.Run("returns stored value", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"storage_value"}).AddRow(`{"city":"Lyon"}`)
		mock.ExpectQuery("SELECT storage_value FROM kv_store").
			WithArgs("inscription").
			WillReturnRows(rows)

		v, err := s.Get(context.Background(), "inscription")
		require.NoError(t, err)
		assert.Equal(t, `{"city":"Lyon"}`, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		mock.ExpectQuery("SELECT storage_value FROM kv_store").
			WithArgs("inscription").
			WillReturnError(sql.ErrNoRows)

		_, err := s.Get(context.Background(), "inscription")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		s, mock, db := newTestKVStore(t)
		defer db.Close()

		mock.ExpectQuery("SELECT storage_value FROM kv_store").
			WithArgs("inscription").
			WillReturnError(errors.New("boom"))

		_, err := s.Get(context.Background(), "inscription")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("empty key", func(t *testing.T) {
		s, _, db := newTestKVStore(t)
		defer db.Close()

		_, err := s.Get(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyKey)
	})
}

func TestSQLiteKeyValueStore_Close(t *testing.T) {
	s, mock, _ := newTestKVStore(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
