package productrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const productColumns = `id, name, description, category, price::text, stock, status, owner_id, image_url, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindAll lists products, restricted to one category when category is not empty.
func (r *Repository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	args := []any{}
	if category != "" {
		query = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
		args = append(args, category)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating product rows", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, category, price, stock, status, owner_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Stock, p.Status, p.OwnerID, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, stock = $5, status = $6, owner_id = $7, image_url = $8
		WHERE id = $9
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Stock, p.Status, p.OwnerID, p.ImageURL, p.ID).
		Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update product", zap.Int("product_id", p.ID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete product", zap.Int("product_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &price, &p.Stock, &p.Status, &p.OwnerID, &p.ImageURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	return &p, nil
}
