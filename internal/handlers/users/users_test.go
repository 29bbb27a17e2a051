package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/service/authservice"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UsersHandler, *MockService, *MockLedger) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	ledger := NewMockLedger(ctrl)
	handler := New(service, ledger)
	defer ctrl.Finish()
	return handler, service, ledger
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListUsersHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
		{ID: 1, Username: "root", Role: domain.RoleAdmin},
		{ID: 2, Username: "ana", Role: domain.RoleUser},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.UserDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, "admin", body[0].Role)
}

func TestGetUserHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 3).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodGet, "/api/admin/users/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()
			handler.GetUser(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustPointsHandler(t *testing.T) {
	handler, service, ledger := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.BalanceResponseDTO
	}{
		{
			name: "Credit",
			body: `{"delta":50,"reason":"bonus"}`,
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				ledger.EXPECT().Adjust(gomock.Any(), 2, int64(50), "bonus").Return(int64(80), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BalanceResponseDTO{Balance: 80},
		},
		{
			name: "Debit beyond balance",
			body: `{"delta":-100,"reason":"correction"}`,
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				ledger.EXPECT().Adjust(gomock.Any(), 2, int64(-100), "correction").
					Return(int64(0), &ledgerservice.InsufficientBalanceError{UserID: 2, Balance: 30, Delta: -100})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Zero delta",
			body: `{"delta":0,"reason":"noop"}`,
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
				ledger.EXPECT().Adjust(gomock.Any(), 2, int64(0), "noop").Return(int64(0), ledgerservice.ErrInvalidDelta)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"delta":10,"reason":"bonus"}`,
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 2).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed body",
			body:         `{"delta":"ten"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodPost, "/api/admin/users/2/points", bytes.NewBufferString(tt.body)), "2")
			w := httptest.NewRecorder()
			handler.AdjustPoints(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.BalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestCreateUserHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"first_name":"Luis","username":"luis","email":"luis@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), &domain.User{FirstName: "Luis", Username: "luis", Email: "luis@example.com"}, "s3cretpass").
					Return(&domain.User{ID: 9, FirstName: "Luis", Username: "luis", Email: "luis@example.com", Role: domain.RoleUser},
						&domain.Award{Points: ledgerservice.RegistrationPoints, Balance: ledgerservice.RegistrationPoints}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Username taken",
			body: `{"username":"luis","email":"luis@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "s3cretpass").Return(nil, nil, authservice.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Short password",
			body:         `{"username":"luis","email":"luis@example.com","password":"short"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/api/admin/users", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.UserDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 9, body.ID)
				assert.Equal(t, "user", body.Role)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated with new password",
			id:   "2",
			body: `{"first_name":"Ana","username":"ana","email":"ana@example.com","password":"n3wsecret"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), &domain.User{ID: 2, FirstName: "Ana", Username: "ana", Email: "ana@example.com"}, "n3wsecret").
					Return(&domain.User{ID: 2, FirstName: "Ana", Username: "ana", Email: "ana@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Password omitted",
			id:   "2",
			body: `{"username":"ana","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), "").Return(&domain.User{ID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			id:   "42",
			body: `{"username":"ana","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), "").Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Email taken",
			id:   "2",
			body: `{"username":"ana","email":"luis@example.com"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), "").Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Short password",
			id:           "2",
			body:         `{"username":"ana","email":"ana@example.com","password":"short"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			body:         `{"username":"ana","email":"ana@example.com"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodPut, "/api/admin/users/"+tt.id, bytes.NewBufferString(tt.body)), tt.id)
			w := httptest.NewRecorder()
			handler.UpdateUser(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), 2).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Unknown user",
			id:   "42",
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), 42).Return(authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()
			handler.DeleteUser(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
