package requestrepo

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

func (r *Repository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	query := `
		INSERT INTO requests (user_id, type, product_name, quantity, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, req.UserID, req.Type, req.ProductName, req.Quantity, req.Description, req.Status).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save request", zap.Int("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Request, error) {
	query := `
		SELECT r.id, r.user_id, u.username, r.type, r.product_name, r.quantity, r.description, r.status, r.created_at
		FROM requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Request, error) {
	query := `
		SELECT r.id, r.user_id, u.username, r.type, r.product_name, r.quantity, r.description, r.status, r.created_at
		FROM requests r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC, r.id DESC
	`
	return r.list(ctx, query)
}

// LockByID must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Request, error) {
	query := `
		SELECT id, user_id, type, product_name, quantity, description, status, created_at
		FROM requests
		WHERE id = $1
		FOR UPDATE
	`
	var req domain.Request
	err := r.db.QueryRow(ctx, query, id).
		Scan(&req.ID, &req.UserID, &req.Type, &req.ProductName, &req.Quantity, &req.Description, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock request", zap.Int("request_id", id), zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error {
	query := `
		UPDATE requests
		SET status = $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update request status", zap.Int("request_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete request", zap.Int("request_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.Request, 0)
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.UserID, &req.Username, &req.Type, &req.ProductName, &req.Quantity, &req.Description, &req.Status, &req.CreatedAt); err != nil {
			zap.L().Error("can't scan request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating request rows", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
