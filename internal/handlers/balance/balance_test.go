package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/internal/service/rewardservice"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService, *MockSummaryService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	summary := NewMockSummaryService(ctrl)
	handler := New(service, summary)
	defer ctrl.Finish()
	return handler, service, summary
}

func asUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(auth.WithIdentity(context.Background(), userID, auth.RoleUser))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(35), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 35},
		},
		{
			name: "User without ledger events",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 0},
		},
		{
			name: "Storage unavailable",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).
					Return(int64(0), fmt.Errorf("%w: %w", ledgerservice.ErrStorageUnavailable, errors.New("conn refused")))
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedError: "StorageUnavailable",
		},
		{
			name: "Invariant violation",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), ledgerservice.ErrInvariantViolation)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "InternalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := asUser(httptest.NewRequest(http.MethodGet, "/api/user/balance", nil), 1)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
				return
			}
			var body utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}

func TestGetBalanceHandler_NoIdentity(t *testing.T) {
	handler, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/user/balance", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	ref := "3"
	created := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Default limit",
			url:  "/api/user/history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 0).Return([]domain.HistoryEntry{
					{ID: 2, Delta: -20, Reason: "redeem:3", Reference: &ref, CreatedAt: created},
					{ID: 1, Delta: 20, Reason: "registro", CreatedAt: created},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Explicit limit",
			url:  "/api/user/history?limit=5",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1, 5).Return([]domain.HistoryEntry{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "Invalid limit",
			url:          "/api/user/history?limit=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative limit",
			url:          "/api/user/history?limit=-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := asUser(httptest.NewRequest(http.MethodGet, tt.url, nil), 1)
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.HistoryEntryDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, int64(-20), body[0].Delta)
					assert.Equal(t, "2024-11-01T12:00:00Z", body[0].CreatedAt)
				}
			}
		})
	}
}

func TestGetSummaryHandler(t *testing.T) {
	handler, _, summary := NewMock(t)

	summary.EXPECT().Summary(gomock.Any(), 1).Return(&rewardservice.Summary{
		Balance: 15,
		History: []domain.HistoryEntry{{ID: 1, Delta: 15, Reason: "registro"}},
		Rewards: []domain.Reward{{ID: 3, Name: "Bolsa", Cost: 20, Active: true}},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetSummary(w, asUser(httptest.NewRequest(http.MethodGet, "/api/user/summary", nil), 1))

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.SummaryResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, int64(15), body.Balance)
	assert.Len(t, body.History, 1)
	assert.Equal(t, []dto.RewardDTO{{ID: 3, Name: "Bolsa", Cost: 20, Active: true}}, body.Rewards)
}

func TestGrantHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.GrantResultDTO
	}{
		{
			name: "Partial success",
			body: `{"user_ids":[1,2],"delta":-10,"reason":"campaign"}`,
			prepareMock: func() {
				service.EXPECT().BulkGrant(gomock.Any(), []int{1, 2}, int64(-10), "campaign").Return([]domain.GrantResult{
					{UserID: 1, Balance: 5},
					{UserID: 2, Err: &ledgerservice.InsufficientBalanceError{UserID: 2, Balance: 3, Delta: -10}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GrantResultDTO{
				{UserID: 1, Balance: balancePtr(5)},
				{UserID: 2, Error: "InsufficientBalance"},
			},
		},
		{
			name: "Debit to zero and unknown user",
			body: `{"user_ids":[1,99],"delta":-5,"reason":"campaign"}`,
			prepareMock: func() {
				service.EXPECT().BulkGrant(gomock.Any(), []int{1, 99}, int64(-5), "campaign").Return([]domain.GrantResult{
					{UserID: 1, Balance: 0},
					{UserID: 99, Err: fmt.Errorf("%w: 99", ledgerservice.ErrUnknownUser)},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GrantResultDTO{
				{UserID: 1, Balance: balancePtr(0)},
				{UserID: 99, Error: "NotFound"},
			},
		},
		{
			name: "Zero delta",
			body: `{"user_ids":[1],"delta":0,"reason":"campaign"}`,
			prepareMock: func() {
				service.EXPECT().BulkGrant(gomock.Any(), []int{1}, int64(0), "campaign").Return(nil, ledgerservice.ErrInvalidDelta)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Empty user list",
			body:         `{"user_ids":[],"delta":5,"reason":"campaign"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/points/grant", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Grant(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body []dto.GrantResultDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func balancePtr(v int64) *int64 { return &v }
