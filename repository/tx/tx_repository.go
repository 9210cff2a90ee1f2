package tx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNilTx is returned when a commit is attempted without a transaction.
var ErrNilTx = errors.New("tx: nil transaction")

// TxRepository hands out transactions for operations that must see a
// consistent view across several statements (admin bootstrap).
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, r.opts)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return tx, nil
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RollbackTx is safe to defer: a nil or already finished transaction is not an error.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if tx == nil {
		return nil
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback tx: %w", err)
	}
	return nil
}
