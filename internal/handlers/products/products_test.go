package products

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/service/productservice"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProductsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), "hogar").Return([]domain.Product{
		{ID: 4, Name: "Lámpara", Category: "hogar", Price: decimal.RequireFromString("12.5"), Status: "disponible"},
	}, nil)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/products?category=hogar", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.ProductDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "12.50", body[0].Price)
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "4",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 4).Return(&domain.Product{ID: 4}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 5).Return(nil, productservice.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			id:   "6",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 6).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid id",
			id:           "0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Get(w, withID(httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil), tt.id))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Lámpara","price":"12.50","stock":3}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
					assert.True(t, decimal.RequireFromString("12.5").Equal(p.Price))
					p.ID = 4
					return p, nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Price not a number",
			body:         `{"name":"Lámpara","price":"cheap"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Negative stock",
			body:         `{"name":"Lámpara","price":"1","stock":-1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Rejected by service",
			body: `{"name":"Lámpara","price":"-1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, productservice.ErrInvalidProduct)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateAndDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, productservice.ErrProductNotFound)
	w := httptest.NewRecorder()
	handler.Update(w, withID(httptest.NewRequest(http.MethodPut, "/api/admin/products/9", bytes.NewBufferString(`{"name":"Silla","price":"5"}`)), "9"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	service.EXPECT().Delete(gomock.Any(), 4).Return(nil)
	w = httptest.NewRecorder()
	handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/api/admin/products/4", nil), "4"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
