package clients

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int) error
}

type ClientsHandler struct {
	clientService Service
}

func New(clientService Service) *ClientsHandler {
	return &ClientsHandler{
		clientService: clientService,
	}
}

// List godoc
//
//	@Summary	List clients
//	@Tags		Clients
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ClientDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/clients [get]
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	response := make([]dto.ClientDTO, len(clients))
	for i := range clients {
		response[i] = dto.FromClient(&clients[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get a client
//	@Tags		Clients
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Client ID"
//	@Success	200	{object}	dto.ClientDTO
//	@Failure	404	{object}	utils.Response	"Client not found"
//	@Router		/api/clients/{id} [get]
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	client, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromClient(client))
}

// Create godoc
//
//	@Summary	Create a client
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ClientRequestDTO	true	"Client"
//	@Success	201		{object}	dto.ClientDTO
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/clients [post]
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	client, err := h.clientService.Create(r.Context(), toClient(0, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromClient(client))
}

// Update godoc
//
//	@Summary	Update a client
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Client ID"
//	@Param		request	body		dto.ClientRequestDTO	true	"Client"
//	@Success	200		{object}	dto.ClientDTO
//	@Failure	404		{object}	utils.Response	"Client not found"
//	@Router		/api/admin/clients/{id} [put]
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.ClientRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	client, err := h.clientService.Update(r.Context(), toClient(id, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromClient(client))
}

// Delete godoc
//
//	@Summary	Delete a client
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Client ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Client not found"
//	@Router		/api/admin/clients/{id} [delete]
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.clientService.Delete(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toClient(id int, req dto.ClientRequestDTO) *domain.Client {
	return &domain.Client{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}
