package points

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.CollectionPoint, error)
	Get(ctx context.Context, id int) (*domain.CollectionPoint, error)
	Create(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error)
	Update(ctx context.Context, p *domain.CollectionPoint) (*domain.CollectionPoint, error)
	Delete(ctx context.Context, id int) error
}

type PointsHandler struct {
	pointService Service
}

func New(pointService Service) *PointsHandler {
	return &PointsHandler{
		pointService: pointService,
	}
}

// List godoc
//
//	@Summary	List collection points
//	@Tags		Collection points
//	@Produce	json
//	@Success	200	{array}	dto.CollectionPointDTO
//	@Router		/api/collection-points [get]
func (h *PointsHandler) List(w http.ResponseWriter, r *http.Request) {
	points, err := h.pointService.List(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	response := make([]dto.CollectionPointDTO, len(points))
	for i := range points {
		response[i] = dto.FromCollectionPoint(&points[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get a collection point
//	@Tags		Collection points
//	@Produce	json
//	@Param		id	path		int	true	"Collection point ID"
//	@Success	200	{object}	dto.CollectionPointDTO
//	@Failure	404	{object}	utils.Response	"Collection point not found"
//	@Router		/api/collection-points/{id} [get]
func (h *PointsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	point, err := h.pointService.Get(r.Context(), id)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCollectionPoint(point))
}

// Create godoc
//
//	@Summary	Create a collection point
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CollectionPointRequestDTO	true	"Collection point"
//	@Success	201		{object}	dto.CollectionPointDTO
//	@Failure	400		{object}	utils.Response	"Only one coordinate given"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/collection-points [post]
func (h *PointsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CollectionPointRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	point, err := h.pointService.Create(r.Context(), toPoint(0, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromCollectionPoint(point))
}

// Update godoc
//
//	@Summary	Update a collection point
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Collection point ID"
//	@Param		request	body		dto.CollectionPointRequestDTO	true	"Collection point"
//	@Success	200		{object}	dto.CollectionPointDTO
//	@Failure	404		{object}	utils.Response	"Collection point not found"
//	@Router		/api/admin/collection-points/{id} [put]
func (h *PointsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.CollectionPointRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	point, err := h.pointService.Update(r.Context(), toPoint(id, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCollectionPoint(point))
}

// Delete godoc
//
//	@Summary	Delete a collection point
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Collection point ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Collection point not found"
//	@Router		/api/admin/collection-points/{id} [delete]
func (h *PointsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.pointService.Delete(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toPoint(id int, req dto.CollectionPointRequestDTO) *domain.CollectionPoint {
	return &domain.CollectionPoint{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Schedule: req.Schedule,
		Lat:      req.Lat,
		Lng:      req.Lng,
	}
}
