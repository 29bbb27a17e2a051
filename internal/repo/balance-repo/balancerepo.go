package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.AccountBalance, error) {
	query := `
        SELECT id, user_id, balance, updated_at
        FROM account_balances
        WHERE user_id = $1
    `
	var balance domain.AccountBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.ID, &balance.UserID, &balance.Balance, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// EnsureUserBalance creates the zero balance row the first time a user
// touches the ledger. It is a no-op when the row exists.
func (r *Repository) EnsureUserBalance(ctx context.Context, userID int) error {
	query := `
        INSERT INTO account_balances (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to ensure user balance", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// LockUserBalance must run inside a transaction; the row stays locked until it ends.
func (r *Repository) LockUserBalance(ctx context.Context, userID int) (*domain.AccountBalance, error) {
	query := `
        SELECT id, user_id, balance, updated_at
        FROM account_balances
        WHERE user_id = $1
        FOR UPDATE
    `
	var balance domain.AccountBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.ID, &balance.UserID, &balance.Balance, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock user balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) UpdateUserBalance(ctx context.Context, userID int, balance int64) (*domain.AccountBalance, error) {
	query := `
		UPDATE account_balances
		SET balance = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING id, user_id, balance, updated_at
	`
	var updated domain.AccountBalance
	err := r.db.QueryRow(ctx, query, balance, userID).Scan(&updated.ID, &updated.UserID, &updated.Balance, &updated.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to update user balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
