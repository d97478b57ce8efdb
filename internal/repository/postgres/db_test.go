package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestInTx_CommitAndRollback(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, db.inTx(ctx, func(pgx.Tx) error { return nil }))

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()
	require.ErrorIs(t, db.inTx(ctx, func(pgx.Tx) error { return boom }), boom)

	mock.ExpectBegin().WillReturnError(boom)
	require.ErrorIs(t, db.inTx(ctx, func(pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	}), boom)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(boom)
	require.ErrorIs(t, db.inTx(ctx, func(pgx.Tx) error { return nil }), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
