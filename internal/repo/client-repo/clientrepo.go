package clientrepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, email, phone FROM clients ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			zap.L().Error("can't scan client", zap.Error(err))
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating client rows", zap.Error(err))
		return nil, err
	}
	return clients, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, phone FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.Int("client_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone).Scan(&c.ID); err != nil {
		zap.L().Error("can't save client", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) Update(ctx context.Context, c *domain.Client) (bool, error) {
	query := `
		UPDATE clients
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.ID)
	if err != nil {
		zap.L().Error("can't update client", zap.Int("client_id", c.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete client", zap.Int("client_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
