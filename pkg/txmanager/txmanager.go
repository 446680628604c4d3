package txmanager

import (
	"context"
	"errors"
	"sync"
)

// ErrLockNotAcquired is returned when the context ends while waiting for the lock
var ErrLockNotAcquired = errors.New("txmanager: lock not acquired")

// TransactionManager serializes units of work that share a key.
// The ledger keys on the facility name, so a conflict check and the insert that
// follows it run without interleaving for the same facility.
type TransactionManager struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{
		locks: make(map[string]chan struct{}),
	}
}

func (tm *TransactionManager) lockFor(key string) chan struct{} {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	lock, ok := tm.locks[key]
	if !ok {
		lock = make(chan struct{}, 1)
		tm.locks[key] = lock
	}
	return lock
}

// DoSerializable runs fn while holding the lock for key.
// fn never runs once ctx is done, even when the lock is free.
func (tm *TransactionManager) DoSerializable(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLockNotAcquired, err)
	}

	lock := tm.lockFor(key)

	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return errors.Join(ErrLockNotAcquired, ctx.Err())
	}
	defer func() { <-lock }()

	return fn(ctx)
}
