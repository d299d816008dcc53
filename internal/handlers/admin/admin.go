package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/retouchbilling/internal/batcher"
	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/dto"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type ChargeService interface {
	Create(ctx context.Context, userID, amount int64, description string) (*domain.AdminCharge, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.AdminCharge, error)
}

type PromoService interface {
	CreateCode(ctx context.Context, code string, freePhotos int, maxUses *int, expiresAt *time.Time) (*domain.PromoCode, error)
}

type BatchRunner interface {
	RunOnce(ctx context.Context) (batcher.Result, error)
}

type AdminHandler struct {
	chargeService ChargeService
	promoService  PromoService
	batchRunner   BatchRunner
}

func New(chargeService ChargeService, promoService PromoService, batchRunner BatchRunner) *AdminHandler {
	return &AdminHandler{
		chargeService: chargeService,
		promoService:  promoService,
		batchRunner:   batchRunner,
	}
}

// statusFor maps a service error kind to the admin-facing status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrIntegrity):
		return http.StatusConflict
	case errors.Is(err, domain.ErrExternal):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CreateCharge godoc
//
//	@Summary		Raise a charge against a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateChargeRequestDTO	true	"Charge"
//	@Success		201		{object}	dto.ChargeDTO				"Charge created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"Admin access required"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		422		{object}	utils.Response				"Invalid amount or description"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/charges [post]
func (h *AdminHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	charge, err := h.chargeService.Create(r.Context(), req.UserID, req.Amount, req.Description)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			utils.RespondWithError(w, code, "Internal server error")
			return
		}
		utils.RespondWithError(w, code, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewChargeDTO(*charge))
}

// GetUserCharges godoc
//
//	@Summary		List charges of a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Success		200		{object}	dto.ChargesResponseDTO	"Pending and paid charges"
//	@Failure		400		{object}	utils.Response			"Invalid user ID"
//	@Failure		403		{object}	utils.Response			"Admin access required"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{userID}/charges [get]
func (h *AdminHandler) GetUserCharges(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	charges, err := h.chargeService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pending, paid := chargeservice.PartitionCharges(charges)
	utils.RespondWithJSON(w, http.StatusOK, dto.ChargesResponseDTO{
		Pending: dto.NewChargeDTOs(pending),
		Paid:    dto.NewChargeDTOs(paid),
	})
}

// CreatePromoCode godoc
//
//	@Summary		Create a promo code
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromoCodeRequestDTO	true	"Promo code"
//	@Success		201		{object}	dto.PromoCodeDTO				"Promo code created"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		403		{object}	utils.Response					"Admin access required"
//	@Failure		409		{object}	utils.Response					"Promo code already exists"
//	@Failure		422		{object}	utils.Response					"Invalid promo code"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/promo-codes [post]
func (h *AdminHandler) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromoCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	promo, err := h.promoService.CreateCode(r.Context(), req.Code, req.FreePhotos, req.MaxUses, req.ExpiresAt)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			utils.RespondWithError(w, code, "Internal server error")
			return
		}
		utils.RespondWithError(w, code, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPromoCodeDTO(promo))
}

// RunDeferredInvoices godoc
//
//	@Summary		Run deferred invoicing now
//	@Description	Invoice the delivered orders of every deferred-billing user without waiting for the schedule.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RunBatchResponseDTO	"Run finished"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		409	{object}	utils.Response			"A run is already in progress"
//	@Failure		500	{object}	dto.RunBatchResponseDTO	"Run failed"
//	@Router			/api/admin/billing/deferred-invoices/run [post]
func (h *AdminHandler) RunDeferredInvoices(w http.ResponseWriter, r *http.Request) {
	result, err := h.batchRunner.RunOnce(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.RunBatchResponseDTO{Success: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RunBatchResponseDTO{
		Success:        result.Success,
		ProcessedUsers: result.ProcessedUsers,
		FailedUsers:    result.FailedUsers,
	})
}
