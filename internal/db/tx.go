package db

import (
	"context"
	"fmt"

	"github.com/2beens/gymlog/pkg"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// MaxTxAttempts bounds how many times WithRetry runs a transaction.
const MaxTxAttempts = 3

// FinishTx commits the transaction when err is nil and rolls it back
// otherwise. Meant to be deferred as `err = db.FinishTx(ctx, tx, err)`.
func FinishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
		return err
	}
	return tx.Commit(ctx)
}

// WithRetry runs txFunc again when it fails on a serialization failure or a
// deadlock. txFunc must open and finish its own transaction.
func WithRetry(ctx context.Context, txFunc func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= MaxTxAttempts; attempt++ {
		err = txFunc(ctx)
		if err == nil || !pkg.IsRetryableTxError(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		log.Debugf("transaction conflict, attempt %d/%d: %s", attempt, MaxTxAttempts, err)
	}
	return err
}
