package balance

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/dto"
	"github.com/GlebRadaev/ecomarket/internal/handlers/httpio"
	"github.com/GlebRadaev/ecomarket/internal/service/rewardservice"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	GetHistory(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error)
	BulkGrant(ctx context.Context, userIDs []int, delta int64, reason string) ([]domain.GrantResult, error)
}

type SummaryService interface {
	Summary(ctx context.Context, userID int) (*rewardservice.Summary, error)
}

type BalanceHandler struct {
	balanceService Service
	summaryService SummaryService
}

func New(balanceService Service, summaryService SummaryService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		summaryService: summaryService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the points balance of the authenticated user. Users without ledger events have 0.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetHistory godoc
//
//	@Summary		Get points history
//	@Description	History entries of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Number of entries, 1..100"	default(20)
//	@Success		200		{array}		dto.HistoryEntryDTO		"History entries"
//	@Failure		400		{object}	utils.Response			"Invalid limit"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		503		{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithCode(w, http.StatusBadRequest, httpio.CodeBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.balanceService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromHistory(entries))
}

// GetSummary godoc
//
//	@Summary		Get the user's points page
//	@Description	Balance, the latest 20 history entries and the active rewards ordered by cost.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/user/summary [get]
func (h *BalanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.summaryService.Summary(r.Context(), userID)
	if err != nil {
		httpio.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		Balance: summary.Balance,
		History: dto.FromHistory(summary.History),
		Rewards: dto.FromRewards(summary.Rewards),
	})
}

// Grant godoc
//
//	@Summary		Grant points to many users
//	@Description	Applies the same adjustment to every listed user. Each user succeeds or fails on its own.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GrantRequestDTO		true	"Grant request"
//	@Success		200		{array}		dto.GrantResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid delta or reason"
//	@Failure		403		{object}	utils.Response	"Administrators only"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/admin/points/grant [post]
func (h *BalanceHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantRequestDTO
	if !httpio.Decode(w, r, &req) {
		return
	}

	results, err := h.balanceService.BulkGrant(r.Context(), req.UserIDs, req.Delta, req.Reason)
	if err != nil {
		httpio.Error(w, err)
		return
	}

	response := make([]dto.GrantResultDTO, len(results))
	for i, res := range results {
		response[i] = dto.GrantResultDTO{UserID: res.UserID}
		if res.Err != nil {
			_, response[i].Error = httpio.Classify(res.Err)
			continue
		}
		balance := res.Balance
		response[i].Balance = &balance
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func currentUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.CurrentUserID(r.Context())
	if !ok {
		utils.RespondWithCode(w, http.StatusUnauthorized, httpio.CodeUnauthorized, "authentication required")
	}
	return userID, ok
}
