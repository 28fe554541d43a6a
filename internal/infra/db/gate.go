package db

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
)

// Gate bounds the number of requests holding a storage slot at once. It is
// sized like the connection pool so callers fail fast instead of queueing on
// database/sql.
type Gate struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewGate creates a gate with size slots. Acquire waits at most timeout.
func NewGate(size int64, timeout time.Duration) *Gate {
	return &Gate{
		sem:     semaphore.NewWeighted(size),
		timeout: timeout,
	}
}

// Acquire takes one slot. The returned release func must be called once the
// caller is done with the database.
func (g *Gate) Acquire(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.sem.Acquire(ctx, 1); err != nil {
		message := "database pool exhausted"
		if errors.Is(err, context.Canceled) {
			message = "request cancelled while waiting for database"
		}
		return nil, domainerror.NewLedgerError(domainerror.ErrCodePoolExhausted, message, errors.Join(domainerror.ErrInternal, err))
	}

	return func() { g.sem.Release(1) }, nil
}
