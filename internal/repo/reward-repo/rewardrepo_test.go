package rewardrepo

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

var columns = []string{"id", "name", "description", "cost", "active", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, name, description, cost, active, created_at FROM rewards WHERE active ORDER BY cost, id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.Reward
	}{
		{
			name: "Active rewards ordered by cost",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(2, "Bolsa", "Bolsa de tela", int64(10), true, now).
					AddRow(1, "Taza", "Taza reciclada", int64(25), true, now)
				mock.ExpectQuery(query).WillReturnRows(rows)
			},
			expected: []domain.Reward{
				{ID: 2, Name: "Bolsa", Description: "Bolsa de tela", Cost: 10, Active: true, CreatedAt: now},
				{ID: 1, Name: "Taza", Description: "Taza reciclada", Cost: 25, Active: true, CreatedAt: now},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActive(context.Background())
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

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, cost, active, created_at FROM rewards ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "Taza", "", int64(25), false, now))

	result, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Reward{{ID: 1, Name: "Taza", Cost: 25, CreatedAt: now}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, name, description, cost, active, created_at FROM rewards WHERE id = $1 AND active`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.Reward
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Bolsa", "", int64(20), true, now))
			},
			expected: &domain.Reward{ID: 3, Name: "Bolsa", Cost: 20, Active: true, CreatedAt: now},
		},
		{
			name: "Missing or inactive",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActiveByID(context.Background(), 3)
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

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, cost, active, created_at FROM rewards WHERE id = $1`)).
		WithArgs(9).WillReturnError(pgx.ErrNoRows)

	result, err := repo.FindByID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO rewards (name, description, cost, active) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)

	mock.ExpectQuery(query).
		WithArgs("Bolsa", "Bolsa de tela", int64(20), true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

	result, err := repo.Create(context.Background(), &domain.Reward{Name: "Bolsa", Description: "Bolsa de tela", Cost: 20, Active: true})
	assert.NoError(t, err)
	assert.Equal(t, &domain.Reward{ID: 5, Name: "Bolsa", Description: "Bolsa de tela", Cost: 20, Active: true, CreatedAt: now}, result)

	mock.ExpectQuery(query).
		WithArgs("Bolsa", "", int64(20), true).
		WillReturnError(errors.New("database error"))

	result, err = repo.Create(context.Background(), &domain.Reward{Name: "Bolsa", Cost: 20, Active: true})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE rewards SET name = $1, description = $2, cost = $3, active = $4 WHERE id = $5 RETURNING created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("Bolsa", "", int64(30), false, 5).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
		},
		{
			name: "Unknown id",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("Bolsa", "", int64(30), false, 5).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("Bolsa", "", int64(30), false, 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), &domain.Reward{ID: 5, Name: "Bolsa", Cost: 30})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM rewards WHERE id = $1`)

	mock.ExpectExec(query).WithArgs(5).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(query).WithArgs(6).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 6)
	assert.NoError(t, err)
	assert.False(t, deleted)

	mock.ExpectExec(query).WithArgs(7).WillReturnError(errors.New("database error"))
	_, err = repo.Delete(context.Background(), 7)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
