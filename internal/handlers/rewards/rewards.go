package rewards

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListActive(ctx context.Context) ([]domain.Reward, error)
	ListAll(ctx context.Context) ([]domain.Reward, error)
	Get(ctx context.Context, id int) (*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Delete(ctx context.Context, id int) error
	Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error)
	GetVoucher(ctx context.Context, code string) (*domain.Redemption, error)
	ClaimVoucher(ctx context.Context, code string) (*domain.Redemption, error)
}

type RewardsHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardsHandler {
	return &RewardsHandler{
		rewardService: rewardService,
	}
}

// ListActive godoc
//
//	@Summary	List active rewards
//	@Tags		Rewards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.RewardDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/rewards [get]
func (h *RewardsHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListActive(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRewards(rewards))
}

// Redeem godoc
//
//	@Summary		Redeem a reward
//	@Description	Debits the reward cost and issues a voucher to collect it.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Reward ID"
//	@Success		200	{object}	dto.RedeemResponseDTO
//	@Failure		400	{object}	utils.Response	"Insufficient balance"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Reward not found or inactive"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/rewards/{id}/redeem [post]
func (h *RewardsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r.Context())
	if !ok {
		utils.RespondWithCode(w, http.StatusUnauthorized, httpio.CodeUnauthorized, "authentication required")
		return
	}
	rewardID, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}

	redemption, err := h.rewardService.Redeem(r.Context(), userID, rewardID)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Balance: redemption.Balance,
		Voucher: dto.FromRedemption(redemption),
	})
}

// ListAll godoc
//
//	@Summary	List all rewards
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.RewardDTO
//	@Failure	403	{object}	utils.Response	"Administrators only"
//	@Router		/api/admin/rewards [get]
func (h *RewardsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardService.ListAll(r.Context())
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRewards(rewards))
}

// GetReward godoc
//
//	@Summary	Get a reward
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Reward ID"
//	@Success	200	{object}	dto.RewardDTO
//	@Failure	404	{object}	utils.Response	"Reward not found"
//	@Router		/api/admin/rewards/{id} [get]
func (h *RewardsHandler) GetReward(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	reward, err := h.rewardService.Get(r.Context(), id)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromReward(reward))
}

// CreateReward godoc
//
//	@Summary	Create a reward
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RewardRequestDTO	true	"Reward"
//	@Success	201		{object}	dto.RewardDTO
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/rewards [post]
func (h *RewardsHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	reward, err := h.rewardService.Create(r.Context(), toReward(0, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromReward(reward))
}

// UpdateReward godoc
//
//	@Summary	Update a reward
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Reward ID"
//	@Param		request	body		dto.RewardRequestDTO	true	"Reward"
//	@Success	200		{object}	dto.RewardDTO
//	@Failure	404		{object}	utils.Response	"Reward not found"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/rewards/{id} [put]
func (h *RewardsHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.RewardRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}
	reward, err := h.rewardService.Update(r.Context(), toReward(id, req))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromReward(reward))
}

// DeleteReward godoc
//
//	@Summary		Delete a reward
//	@Description	Rewards that were already redeemed cannot be deleted, deactivate them instead.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Reward ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Reward not found"
//	@Failure		409	{object}	utils.Response	"Reward has redemptions"
//	@Router			/api/admin/rewards/{id} [delete]
func (h *RewardsHandler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	id, ok := httpio.IntParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.rewardService.Delete(r.Context(), id); err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetVoucher godoc
//
//	@Summary	Look up a voucher
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		code	path		string	true	"Voucher code"
//	@Success	200		{object}	dto.VoucherDTO
//	@Failure	404		{object}	utils.Response	"Voucher not found"
//	@Failure	422		{object}	utils.Response	"Malformed voucher code"
//	@Router		/api/admin/vouchers/{code} [get]
func (h *RewardsHandler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	redemption, err := h.rewardService.GetVoucher(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRedemption(redemption))
}

// ClaimVoucher godoc
//
//	@Summary	Hand out a redeemed reward
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		code	path		string	true	"Voucher code"
//	@Success	200		{object}	dto.VoucherDTO
//	@Failure	404		{object}	utils.Response	"Voucher not found"
//	@Failure	409		{object}	utils.Response	"Voucher already claimed"
//	@Failure	422		{object}	utils.Response	"Malformed voucher code"
//	@Router		/api/admin/vouchers/{code}/claim [post]
func (h *RewardsHandler) ClaimVoucher(w http.ResponseWriter, r *http.Request) {
	redemption, err := h.rewardService.ClaimVoucher(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRedemption(redemption))
}

func toReward(id int, req dto.RewardRequestDTO) *domain.Reward {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.Reward{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
		Active:      active,
	}
}
