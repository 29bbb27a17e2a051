package pointservice

import (
	"context"
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

func coord(v float64) *float64 { return &v }

func TestService_Create(t *testing.T) {
	tests := []struct {
		name          string
		point         *domain.CollectionPoint
		mockSetup     func(repo *MockRepo)
		expectedError error
	}{
		{
			name:  "With coordinates",
			point: &domain.CollectionPoint{Name: "Punto Centro", Lat: coord(40.4168), Lng: coord(-3.7038)},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
					p.ID = 1
					return p, nil
				})
			},
		},
		{
			name:  "Without coordinates",
			point: &domain.CollectionPoint{Name: "Punto Norte"},
			mockSetup: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error) {
					p.ID = 1
					return p, nil
				})
			},
		},
		{
			name:          "Only latitude",
			point:         &domain.CollectionPoint{Name: "Punto Sur", Lat: coord(40)},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: ErrInvalidPoint,
		},
		{
			name:          "Latitude out of range",
			point:         &domain.CollectionPoint{Name: "Punto Sur", Lat: coord(91), Lng: coord(0)},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: ErrInvalidPoint,
		},
		{
			name:          "Missing name",
			point:         &domain.CollectionPoint{},
			mockSetup:     func(repo *MockRepo) {},
			expectedError: ErrInvalidPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.mockSetup(repo)

			point, err := service.Create(context.Background(), tt.point)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, point.ID)
		})
	}
}

func TestService_ReadUpdateDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.CollectionPoint{{ID: 1}}, nil)
	points, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, points, 1)

	repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
	_, err = service.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPointNotFound)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)
	_, err = service.Update(context.Background(), &domain.CollectionPoint{ID: 2, Name: "x"})
	assert.ErrorIs(t, err, ErrPointNotFound)

	repo.EXPECT().Delete(gomock.Any(), 1).Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1))
}
