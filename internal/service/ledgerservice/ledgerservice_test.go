package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	tx          *pg.MockTXManager
	balance     *MockBalanceRepo
	history     *MockHistoryRepo
	rewards     *MockRewardRepo
	redemptions *MockRedemptionRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:          pg.NewMockTXManager(ctrl),
		balance:     NewMockBalanceRepo(ctrl),
		history:     NewMockHistoryRepo(ctrl),
		rewards:     NewMockRewardRepo(ctrl),
		redemptions: NewMockRedemptionRepo(ctrl),
	}
	service := New(m.tx, m.balance, m.history, m.rewards, m.redemptions)
	service.newCode = func() string { return "123456789015" }
	return service, m
}

func (m *mocks) passThroughTx() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func (m *mocks) lockedBalance(userID int, balance int64) {
	m.balance.EXPECT().EnsureUserBalance(gomock.Any(), userID).Return(nil)
	m.balance.EXPECT().LockUserBalance(gomock.Any(), userID).Return(&domain.AccountBalance{UserID: userID, Balance: balance}, nil)
}

func ref(s string) *string { return &s }

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name            string
		delta           int64
		reason          string
		reference       *string
		prepareMock     func(m *mocks)
		expectedBalance int64
		expectedError   error
	}{
		{
			name:          "Zero delta is rejected before storage",
			delta:         0,
			reason:        ReasonRegistration,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidDelta,
		},
		{
			name:          "Blank reason is rejected before storage",
			delta:         5,
			reason:        "  ",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidReason,
		},
		{
			name:   "Credit for a new user",
			delta:  20,
			reason: ReasonRegistration,
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 0)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(20)).Return(&domain.AccountBalance{UserID: 1, Balance: 20}, nil)
				m.history.EXPECT().Append(gomock.Any(), &domain.HistoryEntry{UserID: 1, Delta: 20, Reason: ReasonRegistration}).
					DoAndReturn(func(_ context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error) {
						e.ID = 1
						return e, nil
					})
			},
			expectedBalance: 20,
		},
		{
			name:      "Credit with reference",
			delta:     5,
			reason:    ReasonRequestCreated,
			reference: ref("req-7"),
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 20)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(25)).Return(&domain.AccountBalance{UserID: 1, Balance: 25}, nil)
				m.history.EXPECT().Append(gomock.Any(), &domain.HistoryEntry{UserID: 1, Delta: 5, Reason: ReasonRequestCreated, Reference: ref("req-7")}).
					Return(&domain.HistoryEntry{}, nil)
			},
			expectedBalance: 25,
		},
		{
			name:   "Debit below zero",
			delta:  -30,
			reason: "redeem:3",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 25)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "History append fails",
			delta:  5,
			reason: ReasonRequestCreated,
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 0)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(5)).Return(&domain.AccountBalance{UserID: 1, Balance: 5}, nil)
				m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedError: ErrStorageUnavailable,
		},
		{
			name:   "Lock fails",
			delta:  5,
			reason: ReasonRequestCreated,
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.balance.EXPECT().EnsureUserBalance(gomock.Any(), 1).Return(nil)
				m.balance.EXPECT().LockUserBalance(gomock.Any(), 1).Return(nil, errors.New("lock timeout"))
			},
			expectedError: ErrStorageUnavailable,
		},
		{
			name:   "Transaction cannot begin",
			delta:  5,
			reason: ReasonRequestCreated,
			prepareMock: func(m *mocks) {
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin transaction: pool closed"))
			},
			expectedError: ErrStorageUnavailable,
		},
		{
			name:   "Stored balance is negative",
			delta:  5,
			reason: ReasonRequestCreated,
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, -3)
			},
			expectedError: ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.ApplyDelta(context.Background(), 1, tt.delta, tt.reason, tt.reference)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestApplyDelta_InsufficientBalanceDetails(t *testing.T) {
	service, m := NewMock(t)
	m.passThroughTx()
	m.lockedBalance(4, 10)

	_, err := service.ApplyDelta(context.Background(), 4, -11, "redeem:1", nil)

	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.UserID)
	assert.Equal(t, int64(10), insufficient.Balance)
	assert.Equal(t, int64(-11), insufficient.Delta)
}

func TestApplyDelta_StorageCauseIsKept(t *testing.T) {
	service, m := NewMock(t)
	cause := errors.New("connection reset")
	m.passThroughTx()
	m.balance.EXPECT().EnsureUserBalance(gomock.Any(), 1).Return(cause)

	_, err := service.ApplyDelta(context.Background(), 1, 5, ReasonRequestCreated, nil)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestRedeem(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expected      *domain.Redemption
		expectedError error
	}{
		{
			name: "Unknown or inactive reward",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.rewards.EXPECT().FindActiveByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name: "Reward lookup fails",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.rewards.EXPECT().FindActiveByID(gomock.Any(), 3).Return(nil, errors.New("db down"))
			},
			expectedError: ErrStorageUnavailable,
		},
		{
			name: "Not enough points",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.rewards.EXPECT().FindActiveByID(gomock.Any(), 3).Return(&domain.Reward{ID: 3, Cost: 30, Active: true}, nil)
				m.lockedBalance(1, 25)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Exact balance",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.rewards.EXPECT().FindActiveByID(gomock.Any(), 3).Return(&domain.Reward{ID: 3, Cost: 25, Active: true}, nil)
				m.lockedBalance(1, 25)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(0)).Return(&domain.AccountBalance{UserID: 1}, nil)
				m.history.EXPECT().Append(gomock.Any(), &domain.HistoryEntry{UserID: 1, Delta: -25, Reason: "redeem:3", Reference: ref("3")}).
					Return(&domain.HistoryEntry{}, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), &domain.Redemption{UserID: 1, RewardID: 3, Cost: 25, Code: "123456789015"}).
					DoAndReturn(func(_ context.Context, r *domain.Redemption) (*domain.Redemption, error) {
						r.ID = 9
						return r, nil
					})
			},
			expected: &domain.Redemption{ID: 9, UserID: 1, RewardID: 3, Cost: 25, Code: "123456789015", Balance: 0},
		},
		{
			name: "Voucher cannot be stored",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.rewards.EXPECT().FindActiveByID(gomock.Any(), 3).Return(&domain.Reward{ID: 3, Cost: 5, Active: true}, nil)
				m.lockedBalance(1, 25)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(20)).Return(&domain.AccountBalance{UserID: 1, Balance: 20}, nil)
				m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.HistoryEntry{}, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate code"))
			},
			expectedError: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			redemption, err := service.Redeem(context.Background(), 1, 3)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, redemption)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, redemption)
			}
		})
	}
}

func TestAwardRequestApproved(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(m *mocks)
		expectedBalance int64
		expectedApplied bool
	}{
		{
			name: "First approval pays",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 25)
				m.history.EXPECT().ExistsByReference(gomock.Any(), 1, ReasonRequestApproved, ref("7")).Return(false, nil)
				m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(35)).Return(&domain.AccountBalance{UserID: 1, Balance: 35}, nil)
				m.history.EXPECT().Append(gomock.Any(), &domain.HistoryEntry{UserID: 1, Delta: 10, Reason: ReasonRequestApproved, Reference: ref("7")}).
					Return(&domain.HistoryEntry{}, nil)
			},
			expectedBalance: 35,
			expectedApplied: true,
		},
		{
			name: "Second approval is suppressed",
			prepareMock: func(m *mocks) {
				m.passThroughTx()
				m.lockedBalance(1, 35)
				m.history.EXPECT().ExistsByReference(gomock.Any(), 1, ReasonRequestApproved, ref("7")).Return(true, nil)
			},
			expectedBalance: 35,
			expectedApplied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, applied, err := service.AwardRequestApproved(context.Background(), 1, 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, balance)
			assert.Equal(t, tt.expectedApplied, applied)
		})
	}
}

func TestAwardDailyLogin_UsesUTCDay(t *testing.T) {
	service, m := NewMock(t)
	bogota := time.FixedZone("COT", -5*60*60)
	now := time.Date(2024, 11, 1, 23, 30, 0, 0, bogota)
	from := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)

	m.passThroughTx()
	m.lockedBalance(1, 20)
	m.history.EXPECT().ExistsInPeriod(gomock.Any(), 1, ReasonDailyLogin, from, from.Add(24*time.Hour)).Return(false, nil)
	m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(22)).Return(&domain.AccountBalance{UserID: 1, Balance: 22}, nil)
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.HistoryEntry{}, nil)

	balance, applied, err := service.AwardDailyLogin(context.Background(), 1, now)
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, int64(22), balance)
}

func TestAwardRegistration_CheckFails(t *testing.T) {
	service, m := NewMock(t)
	m.passThroughTx()
	m.lockedBalance(1, 0)
	m.history.EXPECT().ExistsByReference(gomock.Any(), 1, ReasonRegistration, (*string)(nil)).Return(false, errors.New("db down"))

	_, applied, err := service.AwardRegistration(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, applied)
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(m *mocks)
		expectedBalance int64
		expectedError   error
	}{
		{
			name: "No ledger events yet",
			prepareMock: func(m *mocks) {
				m.balance.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, nil)
			},
			expectedBalance: 0,
		},
		{
			name: "Stored balance",
			prepareMock: func(m *mocks) {
				m.balance.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.AccountBalance{UserID: 1, Balance: 42}, nil)
			},
			expectedBalance: 42,
		},
		{
			name: "Negative balance",
			prepareMock: func(m *mocks) {
				m.balance.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.AccountBalance{UserID: 1, Balance: -1}, nil)
			},
			expectedError: ErrInvariantViolation,
		},
		{
			name: "Storage error",
			prepareMock: func(m *mocks) {
				m.balance.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedError: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.GetBalance(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestGetHistory_Limit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"Default", 0, DefaultHistoryLimit},
		{"Negative", -4, DefaultHistoryLimit},
		{"Within range", 5, 5},
		{"Clamped", 500, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.history.EXPECT().ListByUserID(gomock.Any(), 1, tt.expected).Return([]domain.HistoryEntry{}, nil)

			entries, err := service.GetHistory(context.Background(), 1, tt.limit)
			assert.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestBulkGrant_RejectsBadInput(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.BulkGrant(context.Background(), []int{1}, 0, "campaña")
	assert.ErrorIs(t, err, ErrInvalidDelta)

	_, err = service.BulkGrant(context.Background(), []int{1}, 5, "")
	assert.ErrorIs(t, err, ErrInvalidReason)
}

func TestApplyDelta_UnknownUser(t *testing.T) {
	service, m := NewMock(t)
	m.passThroughTx()
	m.balance.EXPECT().EnsureUserBalance(gomock.Any(), 404).
		Return(&pgconn.PgError{Code: "23503", ConstraintName: "account_balances_user_id_fkey"})

	_, err := service.ApplyDelta(context.Background(), 404, 5, "bonus", nil)

	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestBulkGrant_ReportsEachUser(t *testing.T) {
	service, m := NewMock(t)
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})

	m.lockedBalance(1, 10)
	m.balance.EXPECT().UpdateUserBalance(gomock.Any(), 1, int64(15)).Return(&domain.AccountBalance{UserID: 1, Balance: 15}, nil)
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.HistoryEntry{}, nil)

	m.balance.EXPECT().EnsureUserBalance(gomock.Any(), 99).Return(&pgconn.PgError{Code: "23503"})

	m.balance.EXPECT().EnsureUserBalance(gomock.Any(), 3).Return(errors.New("connection reset"))

	results, err := service.BulkGrant(context.Background(), []int{1, 99, 3}, 5, "campaña")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].UserID)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, int64(15), results[0].Balance)

	assert.Equal(t, 99, results[1].UserID)
	assert.ErrorIs(t, results[1].Err, ErrUnknownUser)
	assert.NotErrorIs(t, results[1].Err, ErrStorageUnavailable)

	assert.Equal(t, 3, results[2].UserID)
	assert.ErrorIs(t, results[2].Err, ErrStorageUnavailable)
}
