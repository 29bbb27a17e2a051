package clientservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestService_Get(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Client{ID: 2}, nil)
	client, err := service.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, client.ID)

	repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
	_, err = service.Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrClientNotFound)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Client{{ID: 2}}, nil)
	clients, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name          string
		client        *domain.Client
		mockSetup     func(repo *MockRepo)
		expectedError error
	}{
		{
			name:   "Normalizes email",
			client: &domain.Client{FirstName: "Luis", Email: " Luis@Example.com "},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), &domain.Client{FirstName: "Luis", Email: "luis@example.com"}).
					Return(&domain.Client{ID: 2, FirstName: "Luis", Email: "luis@example.com"}, nil)
			},
		},
		{
			name:          "Missing first name",
			client:        &domain.Client{FirstName: " "},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: ErrInvalidClient,
		},
		{
			name:   "Storage failure",
			client: &domain.Client{FirstName: "Luis"},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.mockSetup(repo)

			client, err := service.Create(context.Background(), tt.client)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, client.ID)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)
	_, err := service.Update(context.Background(), &domain.Client{ID: 9, FirstName: "Ana"})
	assert.ErrorIs(t, err, ErrClientNotFound)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)
	client, err := service.Update(context.Background(), &domain.Client{ID: 2, FirstName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 2, client.ID)

	repo.EXPECT().Delete(gomock.Any(), 2).Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 2))

	repo.EXPECT().Delete(gomock.Any(), 3).Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 3), ErrClientNotFound)
}
