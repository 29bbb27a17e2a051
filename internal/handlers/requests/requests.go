package requests

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, req *domain.Request) (*domain.Request, *domain.Award, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Request, error)
	ListAll(ctx context.Context) ([]domain.Request, error)
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.Request, *domain.Award, error)
	Delete(ctx context.Context, id int) error
}

type RequestsHandler struct {
	requestService Service
}

func New(requestService Service) *RequestsHandler {
	return &RequestsHandler{
		requestService: requestService,
	}
}

// Create godoc
//
//	@Summary		Submit an exchange or donation request
//	@Description	Stores a pending request and credits the submission points.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRequestDTO	true	"Request"
//	@Success		201		{object}	dto.CreateRequestResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/requests [post]
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r.Context())
	if !ok {
		utils.RespondWithCode(w, http.StatusUnauthorized, httpio.CodeUnauthorized, "authentication required")
		return
	}
	var req dto.CreateRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}

	created, award, err := h.requestService.Create(r.Context(), userID, &domain.Request{
		Type:        domain.RequestType(req.Type),
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateRequestResponseDTO{
		Request: dto.FromRequest(created),
		Points:  dto.FromAward(award),
	})
}

// ListOwn godoc
//
//	@Summary	List my requests
//	@Tags		Requests
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.RequestDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/requests [get]
func (h *RequestsHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r.Context())
	if !ok {
		utils.RespondWithCode(w, http.StatusUnauthorized, httpio.CodeUnauthorized, "authentication required")
		return
	}
	requests, err := h.requestService.ListByUser(r.Context(), userID)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRequests(requests))
}

// ListAll godoc
//
//	@Summary	List every request
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.RequestDTO
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/api/admin/requests [get]
func (h *RequestsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListAll(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRequests(requests))
}

// UpdateStatus godoc
//
//	@Summary		Moderate a request
//	@Description	Approving a request for the first time credits the requester.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request ID"
//	@Param			request	body		dto.UpdateRequestStatusDTO	true	"New status"
//	@Success		200		{object}	dto.UpdateRequestStatusResponseDTO
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/requests/{id}/status [put]
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateRequestStatusDTO
	if !httpio.Decode(w, r, &req) {
		return
	}

	updated, award, err := h.requestService.UpdateStatus(r.Context(), id, domain.RequestStatus(req.Status))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateRequestStatusResponseDTO{
		Request: dto.FromRequest(updated),
		Points:  dto.FromAward(award),
	})
}

// Delete godoc
//
//	@Summary	Delete a request
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Request ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Request not found"
//	@Router		/api/admin/requests/{id} [delete]
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.requestService.Delete(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
