package productservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

type Repo interface {
	FindAll(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List returns every product, or only those of category when it is set.
func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, strings.TrimSpace(category))
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	zap.L().Info("product created", zap.Int("product_id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func normalize(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		return ErrInvalidProduct
	}
	if p.Status == "" {
		p.Status = domain.ProductAvailable
	}
	p.Price = p.Price.Round(2)
	return nil
}
