package redemptionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	query := `
		INSERT INTO redemptions (user_id, reward_id, cost, code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, redeemed_at
	`
	err := r.db.QueryRow(ctx, query, redemption.UserID, redemption.RewardID, redemption.Cost, redemption.Code).
		Scan(&redemption.ID, &redemption.RedeemedAt)
	if err != nil {
		zap.L().Error("can't save redemption",
			zap.Int("user_id", redemption.UserID),
			zap.Int("reward_id", redemption.RewardID),
			zap.Error(err),
		)
		return nil, err
	}
	return redemption, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Redemption, error) {
	query := `
		SELECT id, user_id, reward_id, cost, code, redeemed_at, claimed_at
		FROM redemptions
		WHERE code = $1
	`
	var red domain.Redemption
	err := r.db.QueryRow(ctx, query, code).
		Scan(&red.ID, &red.UserID, &red.RewardID, &red.Cost, &red.Code, &red.RedeemedAt, &red.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find redemption", zap.Error(err))
		return nil, err
	}
	return &red, nil
}

// MarkClaimed stamps an unclaimed voucher and returns it. It returns nil when
// the code is unknown or was already claimed.
func (r *Repository) MarkClaimed(ctx context.Context, code string) (*domain.Redemption, error) {
	query := `
		UPDATE redemptions
		SET claimed_at = NOW()
		WHERE code = $1 AND claimed_at IS NULL
		RETURNING id, user_id, reward_id, cost, code, redeemed_at, claimed_at
	`
	var red domain.Redemption
	err := r.db.QueryRow(ctx, query, code).
		Scan(&red.ID, &red.UserID, &red.RewardID, &red.Cost, &red.Code, &red.RedeemedAt, &red.ClaimedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't claim redemption", zap.Error(err))
		return nil, err
	}
	return &red, nil
}
