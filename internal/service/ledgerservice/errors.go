package ledgerservice

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrInvariantViolation  = errors.New("ledger invariant violated")
	ErrInvalidDelta        = errors.New("delta must be a non-zero amount")
	ErrInvalidReason       = errors.New("reason must not be empty")
	ErrUnknownUser         = errors.New("user does not exist")
)

const foreignKeyViolation = "23503"

// InsufficientBalanceError is returned when a debit would take the balance below zero.
type InsufficientBalanceError struct {
	UserID  int
	Balance int64
	Delta   int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: user %d has %d points, change of %d rejected", e.UserID, e.Balance, e.Delta)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

func storageError(err error) error {
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// balanceRowError tells a missing user apart from a storage outage when the
// balance row cannot be created.
func balanceRowError(userID int, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	return storageError(err)
}

func isLedgerError(err error) bool {
	for _, target := range []error{
		ErrInsufficientBalance,
		ErrRewardNotFound,
		ErrStorageUnavailable,
		ErrInvariantViolation,
		ErrInvalidDelta,
		ErrInvalidReason,
		ErrUnknownUser,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
