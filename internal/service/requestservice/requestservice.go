package requestservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"go.uber.org/zap"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidStatus   = errors.New("invalid request status")
)

type Repo interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Request, error)
	FindAll(ctx context.Context) ([]domain.Request, error)
	LockByID(ctx context.Context, id int) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error
	Delete(ctx context.Context, id int) (bool, error)
}

type Ledger interface {
	AwardRequestCreated(ctx context.Context, userID, requestID int) (int64, bool, error)
	AwardRequestApproved(ctx context.Context, userID, requestID int) (int64, bool, error)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	txManager pg.TXManager
}

func New(repo Repo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// Create stores a pending request and credits the submission points in the
// same transaction.
func (s *Service) Create(ctx context.Context, userID int, req *domain.Request) (*domain.Request, *domain.Award, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	if !req.Type.Valid() || req.ProductName == "" {
		return nil, nil, ErrInvalidRequest
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return nil, nil, ErrInvalidRequest
	}
	req.UserID = userID
	req.Status = domain.RequestPending

	var award *domain.Award
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, req)
		if err != nil {
			return err
		}
		balance, applied, err := s.ledger.AwardRequestCreated(ctx, userID, created.ID)
		if err != nil {
			return err
		}
		if applied {
			award = &domain.Award{Points: ledgerservice.RequestCreatedPoints, Balance: balance}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create request: ", zap.Int("user_id", userID), zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("request created", zap.Int("user_id", userID), zap.Int("request_id", req.ID))
	return req, award, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Request, error) {
	requests, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get requests: ", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Request, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves a request to status. The approval points are credited
// when the request enters aprobada from another status; the ledger itself
// refuses a second credit for the same request.
func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.Request, *domain.Award, error) {
	if !status.Valid() {
		return nil, nil, ErrInvalidStatus
	}

	var (
		req   *domain.Request
		award *domain.Award
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}

		previous := req.Status
		if previous == status {
			return nil
		}
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		req.Status = status

		if status != domain.RequestApproved {
			return nil
		}
		balance, applied, err := s.ledger.AwardRequestApproved(ctx, req.UserID, req.ID)
		if err != nil {
			return err
		}
		if applied {
			award = &domain.Award{Points: ledgerservice.RequestApprovedPoints, Balance: balance}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) {
			zap.L().Error("can't update request status: ", zap.Int("request_id", id), zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("request status updated", zap.Int("request_id", id), zap.String("status", string(status)))
	return req, award, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRequestNotFound
	}
	return nil
}
