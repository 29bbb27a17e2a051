package products

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type ProductsHandler struct {
	productService Service
}

func New(productService Service) *ProductsHandler {
	return &ProductsHandler{
		productService: productService,
	}
}

// List godoc
//
//	@Summary	List products
//	@Tags		Products
//	@Produce	json
//	@Param		category	query		string	false	"Only products of this category"
//	@Success	200			{array}		dto.ProductDTO
//	@Router		/api/products [get]
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	response := make([]dto.ProductDTO, len(products))
	for i := range products {
		response[i] = dto.FromProduct(&products[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	dto.ProductDTO
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Router		/api/products/{id} [get]
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProduct(product))
}

// Create godoc
//
//	@Summary	Create a product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ProductRequestDTO	true	"Product"
//	@Success	201		{object}	dto.ProductDTO
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/products [post]
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r, 0)
	if !ok {
		return
	}
	created, err := h.productService.Create(r.Context(), product)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromProduct(created))
}

// Update godoc
//
//	@Summary	Update a product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		request	body		dto.ProductRequestDTO	true	"Product"
//	@Success	200		{object}	dto.ProductDTO
//	@Failure	404		{object}	utils.Response	"Product not found"
//	@Router		/api/admin/products/{id} [put]
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	product, ok := decodeProduct(w, r, id)
	if !ok {
		return
	}
	updated, err := h.productService.Update(r.Context(), product)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProduct(updated))
}

// Delete godoc
//
//	@Summary	Delete a product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Router		/api/admin/products/{id} [delete]
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.productService.Delete(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func decodeProduct(w http.ResponseWriter, r *http.Request, id int) (*domain.Product, bool) {
	var req dto.ProductRequestDTO
	if !httpio.Decode(w, r, &req) {
		return nil, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.RespondWithDetails(w, http.StatusUnprocessableEntity, httpio.CodeValidationFailed,
			map[string]string{"Price": "failed on 'numeric' rule"})
		return nil, false
	}
	return &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
		Stock:       req.Stock,
		Status:      req.Status,
		OwnerID:     req.OwnerID,
		ImageURL:    req.ImageURL,
	}, true
}
