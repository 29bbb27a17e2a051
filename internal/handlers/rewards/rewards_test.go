package rewards

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RewardsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withParam(ctx context.Context, r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)
	redeemedAt := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful redemption",
			prepareMock: func() {
				service.EXPECT().Redeem(gomock.Any(), 1, 3).Return(&domain.Redemption{
					UserID: 1, RewardID: 3, Cost: 20, Code: "123456789015", RedeemedAt: redeemedAt, Balance: 15,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				service.EXPECT().Redeem(gomock.Any(), 1, 3).
					Return(nil, &ledgerservice.InsufficientBalanceError{UserID: 1, Balance: 10, Delta: -20})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "InsufficientBalance",
		},
		{
			name: "Reward inactive",
			prepareMock: func() {
				service.EXPECT().Redeem(gomock.Any(), 1, 3).Return(nil, ledgerservice.ErrRewardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "RewardNotFound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			ctx := auth.WithIdentity(context.Background(), 1, auth.RoleUser)
			r := withParam(ctx, httptest.NewRequest(http.MethodPost, "/api/rewards/3/redeem", nil), "id", "3")
			w := httptest.NewRecorder()
			handler.Redeem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.RedeemResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(15), body.Balance)
				assert.Equal(t, "123456789015", body.Voucher.Code)
				assert.Nil(t, body.Voucher.ClaimedAt)
				return
			}
			var body utils.Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}

func TestListActiveHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListActive(gomock.Any()).Return([]domain.Reward{{ID: 1, Name: "Bolsa", Cost: 20, Active: true}}, nil)
	w := httptest.NewRecorder()
	handler.ListActive(w, httptest.NewRequest(http.MethodGet, "/api/rewards", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.RewardDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []dto.RewardDTO{{ID: 1, Name: "Bolsa", Cost: 20, Active: true}}, body)
}

func TestCreateRewardHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Active by default",
			body: `{"name":"Bolsa","cost":20}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), &domain.Reward{Name: "Bolsa", Cost: 20, Active: true}).
					Return(&domain.Reward{ID: 1, Name: "Bolsa", Cost: 20, Active: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Created inactive",
			body: `{"name":"Bolsa","cost":20,"active":false}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), &domain.Reward{Name: "Bolsa", Cost: 20, Active: false}).
					Return(&domain.Reward{ID: 1, Name: "Bolsa", Cost: 20}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Non-positive cost",
			body:         `{"name":"Bolsa","cost":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateReward(w, httptest.NewRequest(http.MethodPost, "/api/admin/rewards", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateAndDeleteRewardHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), &domain.Reward{ID: 3, Name: "Bolsa", Cost: 25, Active: true}).
		Return(nil, ledgerservice.ErrRewardNotFound)
	w := httptest.NewRecorder()
	r := withParam(context.Background(), httptest.NewRequest(http.MethodPut, "/api/admin/rewards/3", bytes.NewBufferString(`{"name":"Bolsa","cost":25}`)), "id", "3")
	handler.UpdateReward(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)

	service.EXPECT().Delete(gomock.Any(), 3).Return(rewardservice.ErrRewardInUse)
	w = httptest.NewRecorder()
	handler.DeleteReward(w, withParam(context.Background(), httptest.NewRequest(http.MethodDelete, "/api/admin/rewards/3", nil), "id", "3"))
	assert.Equal(t, http.StatusConflict, w.Code)

	service.EXPECT().Delete(gomock.Any(), 4).Return(nil)
	w = httptest.NewRecorder()
	handler.DeleteReward(w, withParam(context.Background(), httptest.NewRequest(http.MethodDelete, "/api/admin/rewards/4", nil), "id", "4"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().Get(gomock.Any(), 4).Return(&domain.Reward{ID: 4, Name: "Taza", Cost: 5}, nil)
	w = httptest.NewRecorder()
	handler.GetReward(w, withParam(context.Background(), httptest.NewRequest(http.MethodGet, "/api/admin/rewards/4", nil), "id", "4"))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().ListAll(gomock.Any()).Return([]domain.Reward{{ID: 4}, {ID: 5}}, nil)
	w = httptest.NewRecorder()
	handler.ListAll(w, httptest.NewRequest(http.MethodGet, "/api/admin/rewards", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVoucherHandlers(t *testing.T) {
	handler, service := NewMock(t)
	claimedAt := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		code         string
		claim        bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Claim",
			code:  "123456789015",
			claim: true,
			prepareMock: func() {
				service.EXPECT().ClaimVoucher(gomock.Any(), "123456789015").
					Return(&domain.Redemption{Code: "123456789015", ClaimedAt: &claimedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Claim twice",
			code:  "123456789015",
			claim: true,
			prepareMock: func() {
				service.EXPECT().ClaimVoucher(gomock.Any(), "123456789015").Return(nil, rewardservice.ErrVoucherClaimed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Lookup with typo",
			code: "123456789012",
			prepareMock: func() {
				service.EXPECT().GetVoucher(gomock.Any(), "123456789012").Return(nil, rewardservice.ErrInvalidVoucherCode)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Lookup unknown",
			code: "000000000018",
			prepareMock: func() {
				service.EXPECT().GetVoucher(gomock.Any(), "000000000018").Return(nil, rewardservice.ErrVoucherNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			r := withParam(context.Background(), httptest.NewRequest(http.MethodGet, "/api/admin/vouchers/"+tt.code, nil), "code", tt.code)
			if tt.claim {
				handler.ClaimVoucher(w, r)
			} else {
				handler.GetVoucher(w, r)
			}
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VoucherDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.NotNil(t, body.ClaimedAt)
				assert.Equal(t, "2024-11-02T09:30:00Z", *body.ClaimedAt)
			}
		})
	}
}
