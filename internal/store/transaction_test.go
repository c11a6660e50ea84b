package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-services/catalog-api/internal/store"
)

func TestRunInTransaction(t *testing.T) {
	t.Parallel()

	t.Run("commits when the function succeeds", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = store.RunInTransaction(context.Background(), db,
			func(ctx context.Context, tx *sql.Tx) error { return nil })
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the function error", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("insert failed")
		err = store.RunInTransaction(context.Background(), db,
			func(ctx context.Context, tx *sql.Tx) error { return fnErr })
		assert.Equal(t, fnErr, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure maps to ErrTransactionFailed", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		err = store.RunInTransaction(context.Background(), db,
			func(ctx context.Context, tx *sql.Tx) error { return nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
		assert.Contains(t, err.Error(), "failed to begin")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure maps to ErrTransactionFailed", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("deadline exceeded"))

		err = store.RunInTransaction(context.Background(), db,
			func(ctx context.Context, tx *sql.Tx) error { return nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
		assert.Contains(t, err.Error(), "failed to commit")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback failure still surfaces the original error", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))

		fnErr := errors.New("insert failed")
		err = store.RunInTransaction(context.Background(), db,
			func(ctx context.Context, tx *sql.Tx) error { return fnErr })
		require.Error(t, err)
		assert.ErrorIs(t, err, fnErr)
		assert.Contains(t, err.Error(), "error rolling back transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics when the function panics", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = store.RunInTransaction(context.Background(), db,
				func(ctx context.Context, tx *sql.Tx) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
