package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type txKey struct{}

type txManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager that carries the open *sqlx.Tx on the
// context handed to the callback.
func NewTxManager(db *sqlx.DB) port.TxManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		// already inside a transaction; join it
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("txManager.RunInTx begin: %w", err)
	}
	return finishTx(tx, func() error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

type committer interface {
	Commit() error
	Rollback() error
}

// finishTx runs fn and commits tx on success. It rolls back on error and on
// panic; a panic is re-raised after the rollback.
func finishTx(tx committer, fn func() error) error {
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txManager.RunInTx commit: %w", err)
	}
	return nil
}

// ext returns the transaction carried by ctx, or the pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
