package postgres

import (
	"context"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/jackc/pgx/v5"
)

type txStore struct {
	tx pgx.Tx
	// ctx is the context the transaction was opened with, used by
	// Commit/Rollback whose signatures carry none.
	ctx context.Context
}

func (t *txStore) context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

func (t *txStore) Commit() error   { return t.tx.Commit(t.context()) }
func (t *txStore) Rollback() error { return t.tx.Rollback(context.WithoutCancel(t.context())) }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, store.ErrNestedTx }
func (t *txStore) WithTx(context.Context, func(store.Tx) error) error {
	return store.ErrNestedTx
}

func (t *txStore) Users() store.Users       { return &usersRepo{q: t.tx} }
func (t *txStore) Sessions() store.Sessions { return &sessionsRepo{q: t.tx} }
func (t *txStore) VerificationCodes() store.VerificationCodes {
	return &verificationCodesRepo{q: t.tx}
}

// The owning *Store handles these.
func (t *txStore) ApplyMigrations() error     { return nil }
func (t *txStore) Ping(context.Context) error { return nil }
func (t *txStore) Close() error               { return nil }
