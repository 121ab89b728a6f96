package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sgurin/order-service/pkg/errs"
	"github.com/sgurin/order-service/pkg/trm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (trm.Manager, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return trm.NewManager(db), mock
}

func TestManager_Do_Commit(t *testing.T) {
	manager, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE something").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		tx := trm.ExtractTx(ctx)
		require.NotNil(t, tx)
		_, err := tx.ExecContext(ctx, "UPDATE something")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Do_RollbackOnError(t *testing.T) {
	manager, mock := newManager(t)
	cause := errors.New("step failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return cause
	})

	assert.ErrorIs(t, err, cause)

	var multi *errs.MultiError
	assert.False(t, errors.As(err, &multi), "clean rollback must surface the cause alone")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Do_RollbackFailureAggregated(t *testing.T) {
	manager, mock := newManager(t)
	cause := errors.New("step failed")
	rollbackErr := errors.New("rollback failed")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(rollbackErr)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return cause
	})

	var multi *errs.MultiError
	require.ErrorAs(t, err, &multi)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, rollbackErr)

	causes := multi.Causes()
	require.Len(t, causes, 2)
	assert.Equal(t, cause, causes[0])
	assert.Equal(t, rollbackErr, causes[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Do_CommitError(t *testing.T) {
	manager, mock := newManager(t)
	commitErr := errors.New("commit failed")

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, commitErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Do_BeginError(t *testing.T) {
	manager, mock := newManager(t)
	beginErr := errors.New("pool exhausted")

	mock.ExpectBegin().WillReturnError(beginErr)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("callback must not run when begin fails")
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
