// Package httpio holds the request decoding and error mapping shared by the
// HTTP handlers.
package httpio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/ecomarket/internal/service/authservice"
	"github.com/GlebRadaev/ecomarket/internal/service/clientservice"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/internal/service/pointservice"
	"github.com/GlebRadaev/ecomarket/internal/service/productservice"
	"github.com/GlebRadaev/ecomarket/internal/service/requestservice"
	"github.com/GlebRadaev/ecomarket/internal/service/rewardservice"
	"github.com/GlebRadaev/ecomarket/pkg/utils"
	"github.com/GlebRadaev/ecomarket/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	CodeInsufficientBalance = "InsufficientBalance"
	CodeRewardNotFound      = "RewardNotFound"
	CodeInvalidDelta        = "InvalidDelta"
	CodeInvalidReason       = "InvalidReason"
	CodeBadRequest          = "BadRequest"
	CodeValidationFailed    = "ValidationFailed"
	CodeNotFound            = "NotFound"
	CodeConflict            = "Conflict"
	CodeUnauthorized        = utils.CodeUnauthorized
	CodeStorageUnavailable  = "StorageUnavailable"
	CodeInternalError       = "InternalError"
)

// Decode reads a JSON body into v and checks its validate tags. On failure
// it has already answered and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithCode(w, http.StatusBadRequest, CodeBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		details := validate.Details(err)
		if details == nil {
			utils.RespondWithCode(w, http.StatusBadRequest, CodeBadRequest, err.Error())
			return false
		}
		utils.RespondWithDetails(w, http.StatusUnprocessableEntity, CodeValidationFailed, details)
		return false
	}
	return true
}

// IntParam parses a positive integer URL parameter. On failure it has
// already answered and returns false.
func IntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithCode(w, http.StatusBadRequest, CodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// Error maps a service error to its status code and body.
func Error(w http.ResponseWriter, err error) {
	status, code := Classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		message = "internal server error"
	}
	if status == http.StatusServiceUnavailable {
		zap.L().Error("storage unavailable", zap.Error(err))
		message = "storage unavailable, try again later"
	}
	utils.RespondWithCode(w, status, code, message)
}

// Classify returns the status code and error code err is answered with.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, ledgerservice.ErrInsufficientBalance):
		return http.StatusBadRequest, CodeInsufficientBalance
	case errors.Is(err, ledgerservice.ErrRewardNotFound):
		return http.StatusNotFound, CodeRewardNotFound
	case errors.Is(err, ledgerservice.ErrInvalidDelta):
		return http.StatusBadRequest, CodeInvalidDelta
	case errors.Is(err, ledgerservice.ErrInvalidReason):
		return http.StatusBadRequest, CodeInvalidReason
	case errors.Is(err, ledgerservice.ErrInvariantViolation):
		return http.StatusInternalServerError, CodeInternalError
	case errors.Is(err, ledgerservice.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, CodeStorageUnavailable

	case errors.Is(err, authservice.ErrInvalidCredentials):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, authservice.ErrUsernameTaken),
		errors.Is(err, authservice.ErrEmailTaken),
		errors.Is(err, rewardservice.ErrRewardInUse),
		errors.Is(err, rewardservice.ErrVoucherClaimed):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, rewardservice.ErrInvalidVoucherCode):
		return http.StatusUnprocessableEntity, CodeValidationFailed

	case errors.Is(err, authservice.ErrUserNotFound),
		errors.Is(err, ledgerservice.ErrUnknownUser),
		errors.Is(err, requestservice.ErrRequestNotFound),
		errors.Is(err, rewardservice.ErrVoucherNotFound),
		errors.Is(err, productservice.ErrProductNotFound),
		errors.Is(err, clientservice.ErrClientNotFound),
		errors.Is(err, pointservice.ErrPointNotFound):
		return http.StatusNotFound, CodeNotFound

	case errors.Is(err, requestservice.ErrInvalidRequest),
		errors.Is(err, requestservice.ErrInvalidStatus),
		errors.Is(err, rewardservice.ErrInvalidReward),
		errors.Is(err, productservice.ErrInvalidProduct),
		errors.Is(err, clientservice.ErrInvalidClient),
		errors.Is(err, pointservice.ErrInvalidPoint):
		return http.StatusBadRequest, CodeBadRequest
	}
	return http.StatusInternalServerError, CodeInternalError
}
