package rewardservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/pkg/validate"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const foreignKeyViolation = "23503"

var (
	ErrInvalidReward      = errors.New("invalid reward")
	ErrRewardInUse        = errors.New("reward has redemptions")
	ErrInvalidVoucherCode = errors.New("invalid voucher code")
	ErrVoucherNotFound    = errors.New("voucher not found")
	ErrVoucherClaimed     = errors.New("voucher already claimed")
)

type RewardRepo interface {
	FindAll(ctx context.Context) ([]domain.Reward, error)
	FindActive(ctx context.Context) ([]domain.Reward, error)
	FindByID(ctx context.Context, id int) (*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type RedemptionRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.Redemption, error)
	MarkClaimed(ctx context.Context, code string) (*domain.Redemption, error)
}

type Ledger interface {
	Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error)
	GetBalance(ctx context.Context, userID int) (int64, error)
	GetHistory(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error)
}

// Summary is what a user sees on their own page.
type Summary struct {
	Balance int64
	History []domain.HistoryEntry
	Rewards []domain.Reward
}

type Service struct {
	rewardRepo     RewardRepo
	redemptionRepo RedemptionRepo
	ledger         Ledger
}

func New(rewardRepo RewardRepo, redemptionRepo RedemptionRepo, ledger Ledger) *Service {
	return &Service{
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		ledger:         ledger,
	}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Reward, error) {
	return s.rewardRepo.FindActive(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Reward, error) {
	return s.rewardRepo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Reward, error) {
	reward, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ledgerservice.ErrRewardNotFound
	}
	return reward, nil
}

func (s *Service) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if err := checkReward(reward); err != nil {
		return nil, err
	}
	created, err := s.rewardRepo.Create(ctx, reward)
	if err != nil {
		return nil, err
	}
	zap.L().Info("reward created", zap.Int("reward_id", created.ID), zap.Int64("cost", created.Cost))
	return created, nil
}

func (s *Service) Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if err := checkReward(reward); err != nil {
		return nil, err
	}
	updated, err := s.rewardRepo.Update(ctx, reward)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ledgerservice.ErrRewardNotFound
	}
	return updated, nil
}

// Delete removes a reward nobody has redeemed yet. Redeemed rewards keep
// their vouchers valid, so they can only be deactivated.
func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.rewardRepo.Delete(ctx, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrRewardInUse
		}
		return err
	}
	if !deleted {
		return ledgerservice.ErrRewardNotFound
	}
	return nil
}

func (s *Service) Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error) {
	return s.ledger.Redeem(ctx, userID, rewardID)
}

func (s *Service) GetVoucher(ctx context.Context, code string) (*domain.Redemption, error) {
	if !validate.IsVoucherCode(code) {
		return nil, ErrInvalidVoucherCode
	}
	redemption, err := s.redemptionRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if redemption == nil {
		return nil, ErrVoucherNotFound
	}
	return redemption, nil
}

// ClaimVoucher marks a voucher as handed out at a collection point.
func (s *Service) ClaimVoucher(ctx context.Context, code string) (*domain.Redemption, error) {
	if !validate.IsVoucherCode(code) {
		return nil, ErrInvalidVoucherCode
	}
	redemption, err := s.redemptionRepo.MarkClaimed(ctx, code)
	if err != nil {
		return nil, err
	}
	if redemption != nil {
		zap.L().Info("voucher claimed", zap.String("code", code), zap.Int("user_id", redemption.UserID))
		return redemption, nil
	}

	existing, err := s.redemptionRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrVoucherNotFound
	}
	return nil, ErrVoucherClaimed
}

func (s *Service) Summary(ctx context.Context, userID int) (*Summary, error) {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.ledger.GetHistory(ctx, userID, ledgerservice.DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}
	rewards, err := s.rewardRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{Balance: balance, History: history, Rewards: rewards}, nil
}

func checkReward(reward *domain.Reward) error {
	reward.Name = strings.TrimSpace(reward.Name)
	if reward.Name == "" || reward.Cost <= 0 {
		return ErrInvalidReward
	}
	return nil
}
