package sqlite

import (
	"context"
	"database/sql"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/internal/auth/store/drivers/sqlite/gen"
)

// txStore scopes every repository to one *sql.Tx. Signup inserts the user
// and drops the spent verification record through it.
type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func (t *txStore) Users() store.Users       { return &usersRepo{q: t.q} }
func (t *txStore) Sessions() store.Sessions { return &sessionsRepo{q: t.q} }
func (t *txStore) VerificationCodes() store.VerificationCodes {
	return &verificationCodesRepo{q: t.q}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, store.ErrNestedTx }
func (t *txStore) WithTx(context.Context, func(store.Tx) error) error {
	return store.ErrNestedTx
}

// The owning *Store handles these.
func (t *txStore) ApplyMigrations() error     { return nil }
func (t *txStore) Ping(context.Context) error { return nil }
func (t *txStore) Close() error               { return nil }
