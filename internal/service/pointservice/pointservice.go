package pointservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/ecomarket/internal/domain"
)

var (
	ErrPointNotFound = errors.New("collection point not found")
	ErrInvalidPoint  = errors.New("invalid collection point")
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.CollectionPoint, error)
	FindByID(ctx context.Context, id int) (*domain.CollectionPoint, error)
	Create(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error)
	Update(ctx context.Context, p *domain.CollectionPoint) (bool, error)
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

func (s *Service) List(ctx context.Context) ([]domain.CollectionPoint, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.CollectionPoint, error) {
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, ErrPointNotFound
	}
	return point, nil
}

func (s *Service) Create(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPointNotFound
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPointNotFound
	}
	return nil
}

// normalize requires both coordinates or neither.
func normalize(p *domain.CollectionPoint) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrInvalidPoint
	}
	if (p.Lat == nil) != (p.Lng == nil) {
		return ErrInvalidPoint
	}
	if p.Lat != nil && (*p.Lat < -90 || *p.Lat > 90 || *p.Lng < -180 || *p.Lng > 180) {
		return ErrInvalidPoint
	}
	return nil
}
