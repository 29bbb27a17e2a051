package memoryrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/GlebRadaev/ecomarket/internal/pg"
)

var (
	errRowMissing    = errors.New("balance row does not exist")
	errDuplicateCode = errors.New("redemption code already exists")
)

type txKey struct{}

type txManager struct {
	store *Store
}

type memTx struct {
	store *Store

	mu     sync.Mutex
	locked map[int]*sync.Mutex
	undo   []func()
}

func (m *txManager) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if _, ok := fromContext(ctx); ok {
		return fn(ctx)
	}

	tx := &memTx{store: m.store, locked: make(map[int]*sync.Mutex)}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			tx.release()
			panic(p)
		}
		if err != nil {
			tx.rollback()
		}
		tx.release()
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return ctx.Err()
}

func (tx *memTx) lock(userID int) {
	tx.mu.Lock()
	_, held := tx.locked[userID]
	tx.mu.Unlock()
	if held {
		return
	}

	l := tx.store.userLock(userID)
	l.Lock()

	tx.mu.Lock()
	tx.locked[userID] = l
	tx.mu.Unlock()
}

func (tx *memTx) rollback() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func (tx *memTx) release() {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	for id, l := range tx.locked {
		l.Unlock()
		delete(tx.locked, id)
	}
}

// record must be called with the store mutex held.
func record(ctx context.Context, undo func()) {
	if tx, ok := fromContext(ctx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

func fromContext(ctx context.Context) (*memTx, bool) {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	return tx, ok
}
