package charges

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/dto"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
	"github.com/GlebRadaev/retouchbilling/pkg/utils"
)

//go:generate mockgen -source=charges.go -destination=mock_charges.go -package=charges

type Service interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.AdminCharge, error)
	InitiatePayment(ctx context.Context, userID, chargeID int64) (*payment.Checkout, error)
}

type ChargeHandler struct {
	chargeService Service
}

func New(chargeService Service) *ChargeHandler {
	return &ChargeHandler{
		chargeService: chargeService,
	}
}

// GetCharges godoc
//
//	@Summary		Get charges of the user
//	@Description	List the charges raised against the authenticated user, split into pending and paid, newest first.
//	@Tags			Charges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ChargesResponseDTO	"Pending and paid charges"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/charges [get]
func (h *ChargeHandler) GetCharges(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

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

// PayCharge godoc
//
//	@Summary		Pay a charge
//	@Description	Open a checkout session for a pending charge and return the URL to redirect the user to.
//	@Tags			Charges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			chargeID	path		int							true	"Charge ID"
//	@Success		200			{object}	dto.PayChargeResponseDTO	"Checkout URL"
//	@Failure		400			{object}	utils.Response				"Invalid charge ID"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Charge not found"
//	@Failure		409			{object}	utils.Response				"Charge already paid"
//	@Failure		502			{object}	utils.Response				"Payment provider unavailable"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/user/charges/{chargeID}/pay [post]
func (h *ChargeHandler) PayCharge(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	chargeID, err := strconv.ParseInt(chi.URLParam(r, "chargeID"), 10, 64)
	if err != nil || chargeID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid charge ID")
		return
	}

	checkout, err := h.chargeService.InitiatePayment(r.Context(), userID, chargeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Charge not found")
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, "Charge already paid")
		case errors.Is(err, domain.ErrExternal):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayChargeResponseDTO{URL: checkout.URL})
}
