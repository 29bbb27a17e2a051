package clientservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/ecomarket/internal/domain"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("invalid client")
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id int) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (bool, error)
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

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *Service) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if err := normalize(c); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if err := normalize(c); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	return nil
}

func normalize(c *domain.Client) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.FirstName == "" {
		return ErrInvalidClient
	}
	return nil
}
