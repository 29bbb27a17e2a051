package rewardrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const rewardColumns = `id, name, description, cost, active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Reward, error) {
	return r.list(ctx, `SELECT `+rewardColumns+` FROM rewards ORDER BY id`)
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Reward, error) {
	return r.list(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE active ORDER BY cost, id`)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reward, error) {
	return r.get(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = $1`, id)
}

func (r *Repository) FindActiveByID(ctx context.Context, id int) (*domain.Reward, error) {
	return r.get(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = $1 AND active`, id)
}

func (r *Repository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		INSERT INTO rewards (name, description, cost, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, reward.Name, reward.Description, reward.Cost, reward.Active).Scan(&reward.ID, &reward.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		UPDATE rewards
		SET name = $1, description = $2, cost = $3, active = $4
		WHERE id = $5
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, reward.Name, reward.Description, reward.Cost, reward.Active, reward.ID).Scan(&reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update reward", zap.Int("reward_id", reward.ID), zap.Error(err))
		return nil, err
	}
	return reward, nil
}

// Delete reports false when no reward has the id.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete reward", zap.Int("reward_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.Reward, error) {
	var reward domain.Reward
	err := r.db.QueryRow(ctx, query, id).Scan(&reward.ID, &reward.Name, &reward.Description, &reward.Cost, &reward.Active, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find reward", zap.Int("reward_id", id), zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Reward, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	rewards := make([]domain.Reward, 0)
	for rows.Next() {
		var reward domain.Reward
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.Description, &reward.Cost, &reward.Active, &reward.CreatedAt); err != nil {
			zap.L().Error("can't scan reward", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating reward rows", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}
