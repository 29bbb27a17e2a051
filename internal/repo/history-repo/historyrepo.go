package historyrepo

import (
	"context"
	"time"

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

func (r *Repository) Append(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	query := `
		INSERT INTO history_entries (user_id, delta, reason, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Delta, entry.Reason, entry.Reference).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append history entry",
			zap.Int("user_id", entry.UserID),
			zap.String("reason", entry.Reason),
			zap.Error(err),
		)
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, user_id, delta, reason, reference, created_at
		FROM history_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to list history", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.Reference, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan history entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating history rows", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// ExistsByReference reports whether the user already has an entry with this
// reason and reference. A nil reference matches entries without one.
func (r *Repository) ExistsByReference(ctx context.Context, userID int, reason string, reference *string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM history_entries
			WHERE user_id = $1 AND reason = $2 AND reference IS NOT DISTINCT FROM $3
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, reason, reference).Scan(&exists); err != nil {
		zap.L().Error("failed to check history reference", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// ExistsInPeriod checks for an entry with created_at in [from, to).
func (r *Repository) ExistsInPeriod(ctx context.Context, userID int, reason string, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM history_entries
			WHERE user_id = $1 AND reason = $2 AND created_at >= $3 AND created_at < $4
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, reason, from, to).Scan(&exists); err != nil {
		zap.L().Error("failed to check history period", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return exists, nil
}
