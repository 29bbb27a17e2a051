package ledgerservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/GlebRadaev/ecomarket/pkg/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ReasonRegistration    = "registro"
	ReasonDailyLogin      = "login_diario"
	ReasonRequestCreated  = "solicitud"
	ReasonRequestApproved = "solicitud_aprobada"
	ReferenceAdminAdjust  = "ajuste_admin"

	RegistrationPoints    int64 = 20
	DailyLoginPoints      int64 = 2
	RequestCreatedPoints  int64 = 5
	RequestApprovedPoints int64 = 10

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	bulkGrantLimit = 8
)

func RedeemReason(rewardID int) string {
	return "redeem:" + strconv.Itoa(rewardID)
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.AccountBalance, error)
	EnsureUserBalance(ctx context.Context, userID int) error
	LockUserBalance(ctx context.Context, userID int) (*domain.AccountBalance, error)
	UpdateUserBalance(ctx context.Context, userID int, balance int64) (*domain.AccountBalance, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error)
	ListByUserID(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error)
	ExistsByReference(ctx context.Context, userID int, reason string, reference *string) (bool, error)
	ExistsInPeriod(ctx context.Context, userID int, reason string, from, to time.Time) (bool, error)
}

type RewardRepo interface {
	FindActiveByID(ctx context.Context, id int) (*domain.Reward, error)
}

type RedemptionRepo interface {
	Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error)
}

type Service struct {
	txManager      pg.TXManager
	balanceRepo    BalanceRepo
	historyRepo    HistoryRepo
	rewardRepo     RewardRepo
	redemptionRepo RedemptionRepo
	newCode        func() string
}

func New(txManager pg.TXManager, balanceRepo BalanceRepo, historyRepo HistoryRepo, rewardRepo RewardRepo, redemptionRepo RedemptionRepo) *Service {
	return &Service{
		txManager:      txManager,
		balanceRepo:    balanceRepo,
		historyRepo:    historyRepo,
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		newCode:        validate.NewVoucherCode,
	}
}

// ApplyDelta changes the user's balance by delta and records it in the
// history. Both writes commit together or not at all, and the balance never
// goes below zero.
func (s *Service) ApplyDelta(ctx context.Context, userID int, delta int64, reason string, reference *string) (int64, error) {
	if err := checkEvent(delta, reason); err != nil {
		return 0, err
	}

	var balance int64
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		balance, err = s.write(ctx, userID, current, delta, reason, reference)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Service) Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error) {
	var redemption *domain.Redemption
	err := s.inTx(ctx, func(ctx context.Context) error {
		reward, err := s.rewardRepo.FindActiveByID(ctx, rewardID)
		if err != nil {
			return storageError(err)
		}
		if reward == nil {
			return ErrRewardNotFound
		}
		if reward.Cost <= 0 {
			return fmt.Errorf("%w: reward %d costs %d", ErrInvalidDelta, reward.ID, reward.Cost)
		}

		current, err := s.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		reference := strconv.Itoa(rewardID)
		balance, err := s.write(ctx, userID, current, -reward.Cost, RedeemReason(rewardID), &reference)
		if err != nil {
			return err
		}

		redemption, err = s.redemptionRepo.Create(ctx, &domain.Redemption{
			UserID:   userID,
			RewardID: rewardID,
			Cost:     reward.Cost,
			Code:     s.newCode(),
		})
		if err != nil {
			return storageError(err)
		}
		redemption.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("reward redeemed",
		zap.Int("user_id", userID),
		zap.Int("reward_id", rewardID),
		zap.Int64("balance", redemption.Balance),
	)
	return redemption, nil
}

func (s *Service) AwardRegistration(ctx context.Context, userID int) (int64, bool, error) {
	return s.award(ctx, userID, RegistrationPoints, ReasonRegistration, nil, func(ctx context.Context) (bool, error) {
		return s.historyRepo.ExistsByReference(ctx, userID, ReasonRegistration, nil)
	})
}

// AwardDailyLogin credits the login bonus once per UTC calendar day of now.
func (s *Service) AwardDailyLogin(ctx context.Context, userID int, now time.Time) (int64, bool, error) {
	day := now.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	return s.award(ctx, userID, DailyLoginPoints, ReasonDailyLogin, nil, func(ctx context.Context) (bool, error) {
		return s.historyRepo.ExistsInPeriod(ctx, userID, ReasonDailyLogin, from, to)
	})
}

func (s *Service) AwardRequestCreated(ctx context.Context, userID, requestID int) (int64, bool, error) {
	return s.awardOncePerReference(ctx, userID, requestID, RequestCreatedPoints, ReasonRequestCreated)
}

func (s *Service) AwardRequestApproved(ctx context.Context, userID, requestID int) (int64, bool, error) {
	return s.awardOncePerReference(ctx, userID, requestID, RequestApprovedPoints, ReasonRequestApproved)
}

// Adjust is an administrator's manual correction.
func (s *Service) Adjust(ctx context.Context, userID int, delta int64, reason string) (int64, error) {
	reference := ReferenceAdminAdjust
	balance, err := s.ApplyDelta(ctx, userID, delta, reason, &reference)
	if err != nil {
		return 0, err
	}
	zap.L().Info("balance adjusted",
		zap.Int("user_id", userID),
		zap.Int64("delta", delta),
		zap.String("reason", reason),
	)
	return balance, nil
}

// BulkGrant adjusts every listed user independently. A failure for one user
// is reported in its result and does not affect the others.
func (s *Service) BulkGrant(ctx context.Context, userIDs []int, delta int64, reason string) ([]domain.GrantResult, error) {
	if err := checkEvent(delta, reason); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(userIDs))
	results := make([]domain.GrantResult, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		results = append(results, domain.GrantResult{UserID: id})
	}

	var g errgroup.Group
	g.SetLimit(bulkGrantLimit)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i].Balance, results[i].Err = s.Adjust(ctx, results[i].UserID, delta, reason)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// GetBalance reports 0 for users that never had a ledger event.
func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	row, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return 0, storageError(err)
	}
	if row == nil {
		return 0, nil
	}
	if row.Balance < 0 {
		return 0, s.invariantViolation(userID, row.Balance)
	}
	return row.Balance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	entries, err := s.historyRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, storageError(err)
	}
	return entries, nil
}

func (s *Service) awardOncePerReference(ctx context.Context, userID, requestID int, delta int64, reason string) (int64, bool, error) {
	reference := strconv.Itoa(requestID)
	return s.award(ctx, userID, delta, reason, &reference, func(ctx context.Context) (bool, error) {
		return s.historyRepo.ExistsByReference(ctx, userID, reason, &reference)
	})
}

// award checks the once-rule after the balance row is locked, so concurrent
// callers for the same user see each other's entries.
func (s *Service) award(ctx context.Context, userID int, delta int64, reason string, reference *string, done func(ctx context.Context) (bool, error)) (int64, bool, error) {
	var (
		balance int64
		applied bool
	)
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		seen, err := done(ctx)
		if err != nil {
			return storageError(err)
		}
		if seen {
			balance = current
			return nil
		}
		balance, err = s.write(ctx, userID, current, delta, reason, reference)
		if err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	if applied {
		zap.L().Info("points awarded",
			zap.Int("user_id", userID),
			zap.String("reason", reason),
			zap.Int64("delta", delta),
			zap.Int64("balance", balance),
		)
	}
	return balance, applied, nil
}

// lockBalance must run inside a transaction. It creates the zero row on a
// user's first event and holds the row lock until the transaction ends.
func (s *Service) lockBalance(ctx context.Context, userID int) (int64, error) {
	if err := s.balanceRepo.EnsureUserBalance(ctx, userID); err != nil {
		return 0, balanceRowError(userID, err)
	}
	row, err := s.balanceRepo.LockUserBalance(ctx, userID)
	if err != nil {
		return 0, storageError(err)
	}
	if row == nil {
		return 0, nil
	}
	if row.Balance < 0 {
		return 0, s.invariantViolation(userID, row.Balance)
	}
	return row.Balance, nil
}

func (s *Service) write(ctx context.Context, userID int, current, delta int64, reason string, reference *string) (int64, error) {
	next := current + delta
	if delta > 0 && next < current {
		return 0, fmt.Errorf("%w: balance overflow", ErrInvalidDelta)
	}
	if next < 0 {
		return 0, &InsufficientBalanceError{UserID: userID, Balance: current, Delta: delta}
	}

	if _, err := s.balanceRepo.UpdateUserBalance(ctx, userID, next); err != nil {
		return 0, storageError(err)
	}
	_, err := s.historyRepo.Append(ctx, &domain.HistoryEntry{
		UserID:    userID,
		Delta:     delta,
		Reason:    reason,
		Reference: reference,
	})
	if err != nil {
		return 0, storageError(err)
	}
	return next, nil
}

func (s *Service) inTx(ctx context.Context, fn pg.TransactionalFn) error {
	err := s.txManager.Begin(ctx, fn)
	if err == nil || isLedgerError(err) {
		return err
	}
	return storageError(err)
}

func (s *Service) invariantViolation(userID int, balance int64) error {
	zap.L().Error("negative balance observed, manual audit required",
		zap.Int("user_id", userID),
		zap.Int64("balance", balance),
	)
	return fmt.Errorf("%w: user %d has balance %d", ErrInvariantViolation, userID, balance)
}

func checkEvent(delta int64, reason string) error {
	if delta == 0 {
		return ErrInvalidDelta
	}
	if strings.TrimSpace(reason) == "" {
		return ErrInvalidReason
	}
	return nil
}
