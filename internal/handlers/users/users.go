package users

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, *domain.Award, error)
	UpdateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type Ledger interface {
	Adjust(ctx context.Context, userID int, delta int64, reason string) (int64, error)
}

type UsersHandler struct {
	userService Service
	ledger      Ledger
}

func New(userService Service, ledger Ledger) *UsersHandler {
	return &UsersHandler{
		userService: userService,
		ledger:      ledger,
	}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserDTO
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/api/admin/users [get]
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	response := make([]dto.UserDTO, len(users))
	for i := range users {
		response[i] = dto.FromUser(&users[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUser godoc
//
//	@Summary	Get a user
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.UserDTO
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/admin/users/{id} [get]
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

// CreateUser godoc
//
//	@Summary		Create a user
//	@Description	Creates a regular user. The registration bonus is credited as for self sign-up.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"New user"
//	@Success		201		{object}	dto.UserDTO
//	@Failure		409		{object}	utils.Response	"Username or email already taken"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/users [post]
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	user, _, err := h.userService.Register(r.Context(), &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromUser(user))
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Replaces the profile. A non-empty password is re-hashed; the role is kept.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UserUpdateRequestDTO	true	"User profile"
//	@Success		200		{object}	dto.UserDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Username or email already taken"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/users/{id} [put]
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UserUpdateRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	user, err := h.userService.UpdateUser(r.Context(), &domain.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromUser(user))
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Removes the account with its balance, history, redemptions and requests.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	int	true	"User ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id} [delete]
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// AdjustPoints godoc
//
//	@Summary		Adjust a user's points
//	@Description	Manual credit or debit. A debit larger than the balance is rejected.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid delta, invalid reason or insufficient balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		503		{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/users/{id}/points [post]
func (h *UsersHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.AdjustRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	if _, err := h.userService.GetUser(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}

	balance, err := h.ledger.Adjust(r.Context(), id, req.Delta, req.Reason)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}
