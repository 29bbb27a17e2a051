package pointrepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.CollectionPoint, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address, phone, schedule, lat, lng FROM collection_points ORDER BY name, id`)
	if err != nil {
		zap.L().Error("can't list collection points", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.CollectionPoint, 0)
	for rows.Next() {
		var p domain.CollectionPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Phone, &p.Schedule, &p.Lat, &p.Lng); err != nil {
			zap.L().Error("can't scan collection point", zap.Error(err))
			return nil, err
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating collection point rows", zap.Error(err))
		return nil, err
	}
	return points, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.CollectionPoint, error) {
	var p domain.CollectionPoint
	err := r.db.QueryRow(ctx, `SELECT id, name, address, phone, schedule, lat, lng FROM collection_points WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Address, &p.Phone, &p.Schedule, &p.Lat, &p.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find collection point", zap.Int("point_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
	query := `
		INSERT INTO collection_points (name, address, phone, schedule, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, p.Name, p.Address, p.Phone, p.Schedule, p.Lat, p.Lng).Scan(&p.ID); err != nil {
		zap.L().Error("can't save collection point", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.CollectionPoint) (bool, error) {
	query := `
		UPDATE collection_points
		SET name = $1, address = $2, phone = $3, schedule = $4, lat = $5, lng = $6
		WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query, p.Name, p.Address, p.Phone, p.Schedule, p.Lat, p.Lng, p.ID)
	if err != nil {
		zap.L().Error("can't update collection point", zap.Int("point_id", p.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM collection_points WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete collection point", zap.Int("point_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
