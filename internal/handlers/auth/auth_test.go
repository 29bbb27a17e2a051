package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/service/authservice"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: 1, Username: "ana", Email: "ana@example.com", Role: domain.RoleUser}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedPoints *dto.PointsDTO
	}{
		{
			name: "Successful registration",
			body: `{"username":"ana","email":"ana@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), &domain.User{Username: "ana", Email: "ana@example.com"}, "s3cretpass").
					Return(user, &domain.Award{Points: ledgerservice.RegistrationPoints, Balance: 20}, nil)
				service.EXPECT().GenerateToken(user).Return("valid_token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedPoints: &dto.PointsDTO{Awarded: 20, Balance: 20},
		},
		{
			name:          "Invalid request body",
			body:          `invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "BadRequest",
		},
		{
			name:          "Short password",
			body:          `{"username":"ana","email":"ana@example.com","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "ValidationFailed",
		},
		{
			name: "Username taken",
			body: `{"username":"ana","email":"ana@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "s3cretpass").
					Return(nil, nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Conflict",
		},
		{
			name: "Token generation fails",
			body: `{"username":"ana","email":"ana@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), "s3cretpass").Return(user, nil, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "InternalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "valid_token", body.Token)
				assert.Equal(t, "Bearer valid_token", w.Header().Get("Authorization"))
				assert.Equal(t, "ana", body.User.Username)
				assert.Equal(t, tt.expectedPoints, body.Points)
				return
			}
			var body utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: 1, Username: "ana", Role: domain.RoleUser}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedPoints *dto.PointsDTO
	}{
		{
			name: "First login of the day",
			body: `{"username":"ana","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "s3cretpass").
					Return(user, &domain.Award{Points: 2, Balance: 22}, nil)
				service.EXPECT().GenerateToken(user).Return("valid_token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedPoints: &dto.PointsDTO{Awarded: 2, Balance: 22},
		},
		{
			name: "Repeated login",
			body: `{"username":"ana","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "s3cretpass").Return(user, nil, nil)
				service.EXPECT().GenerateToken(user).Return("valid_token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"ana","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "wrong").
					Return(nil, nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing password",
			body:         `{"username":"ana"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Storage unavailable",
			body: `{"username":"ana","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ana", "s3cretpass").
					Return(nil, nil, ledgerservice.ErrStorageUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedPoints, body.Points)
			}
		})
	}
}
