package redemptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "user_id", "reward_id", "cost", "code", "redeemed_at", "claimed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO redemptions (user_id, reward_id, cost, code) VALUES ($1, $2, $3, $4) RETURNING id, redeemed_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.Redemption
	}{
		{
			name: "Voucher stored",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 3, int64(20), "123456789015").
					WillReturnRows(pgxmock.NewRows([]string{"id", "redeemed_at"}).AddRow(8, now))
			},
			expected: &domain.Redemption{ID: 8, UserID: 1, RewardID: 3, Cost: 20, Code: "123456789015", RedeemedAt: now},
		},
		{
			name: "Duplicate code",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 3, int64(20), "123456789015").
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.Redemption{UserID: 1, RewardID: 3, Cost: 20, Code: "123456789015"})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, user_id, reward_id, cost, code, redeemed_at, claimed_at FROM redemptions WHERE code = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.Redemption
	}{
		{
			name: "Unclaimed voucher",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("123456789015").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(8, 1, 3, int64(20), "123456789015", now, (*time.Time)(nil)))
			},
			expected: &domain.Redemption{ID: 8, UserID: 1, RewardID: 3, Cost: 20, Code: "123456789015", RedeemedAt: now},
		},
		{
			name: "Unknown code",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("123456789015").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("123456789015").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByCode(context.Background(), "123456789015")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkClaimed(t *testing.T) {
	repo, mock := NewMock(t)
	redeemed := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	claimed := redeemed.Add(time.Hour)
	query := regexp.QuoteMeta(`UPDATE redemptions SET claimed_at = NOW() WHERE code = $1 AND claimed_at IS NULL RETURNING id, user_id, reward_id, cost, code, redeemed_at, claimed_at`)

	mock.ExpectQuery(query).WithArgs("123456789015").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(8, 1, 3, int64(20), "123456789015", redeemed, &claimed))

	result, err := repo.MarkClaimed(context.Background(), "123456789015")
	assert.NoError(t, err)
	assert.Equal(t, &claimed, result.ClaimedAt)

	mock.ExpectQuery(query).WithArgs("123456789015").WillReturnError(pgx.ErrNoRows)

	result, err = repo.MarkClaimed(context.Background(), "123456789015")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
