package promo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/dto"
	"github.com/GlebRadaev/retouchbilling/internal/service/promoservice"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
	"github.com/GlebRadaev/retouchbilling/pkg/utils"
)

//go:generate mockgen -source=promo.go -destination=mock_promo.go -package=promo

type Service interface {
	Redeem(ctx context.Context, userID int64, code string) (int, error)
	Balance(ctx context.Context, userID int64) (int, error)
	Spend(ctx context.Context, userID int64, count int) error
	Quote(ctx context.Context, userID int64, photos int) (*domain.Quote, error)
}

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem a promo code
//	@Description	Grant the free photos of a promo code to the authenticated user. Each code can be redeemed once per user.
//	@Tags			Promo
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemPromoRequestDTO	true	"Promo code"
//	@Success		200		{object}	dto.RedeemPromoResponseDTO	"Code redeemed"
//	@Failure		400		{object}	dto.RedeemPromoResponseDTO	"Invalid or expired code"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	dto.RedeemPromoResponseDTO	"User not found"
//	@Failure		409		{object}	dto.RedeemPromoResponseDTO	"Code already redeemed"
//	@Failure		500		{object}	dto.RedeemPromoResponseDTO	"Internal server error"
//	@Router			/api/user/promo/redeem [post]
func (h *PromoHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.RedeemPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.RedeemPromoResponseDTO{Message: "Invalid request body"})
		return
	}

	granted, err := h.promoService.Redeem(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, promoservice.ErrInvalidCode):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.RedeemPromoResponseDTO{Message: "Invalid or expired promo code"})
		case errors.Is(err, promoservice.ErrAlreadyRedeemed):
			utils.RespondWithJSON(w, http.StatusConflict, dto.RedeemPromoResponseDTO{Message: "Promo code already redeemed"})
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithJSON(w, http.StatusNotFound, dto.RedeemPromoResponseDTO{Message: "User not found"})
		default:
			utils.RespondWithJSON(w, http.StatusInternalServerError, dto.RedeemPromoResponseDTO{Message: "Internal server error"})
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemPromoResponseDTO{
		Success:    true,
		Message:    fmt.Sprintf("Promo code redeemed: %d free photos added", granted),
		FreePhotos: &granted,
	})
}

// GetBalance godoc
//
//	@Summary		Get free-photo balance
//	@Tags			Promo
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PromoBalanceResponseDTO	"Remaining free photos"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/promo/balance [get]
func (h *PromoHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	balance, err := h.promoService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PromoBalanceResponseDTO{FreePhotos: balance})
}

// Spend godoc
//
//	@Summary		Spend free photos
//	@Description	Consume free photos from the oldest redemptions first. Nothing is consumed when the balance is too small.
//	@Tags			Promo
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendPromoRequestDTO	true	"Photos to spend"
//	@Success		200		{object}	dto.SpendPromoResponseDTO	"Photos spent"
//	@Failure		400		{object}	utils.Response				"Invalid photo count"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient free-photo balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/promo/spend [post]
func (h *PromoHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.SpendPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.promoService.Spend(r.Context(), userID, req.Photos); err != nil {
		switch {
		case errors.Is(err, promoservice.ErrInsufficient):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient free-photo balance")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrIntegrity):
			utils.RespondWithError(w, http.StatusConflict, "Balance changed, please retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	balance, err := h.promoService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpendPromoResponseDTO{Success: true, FreePhotos: balance})
}

// GetQuote godoc
//
//	@Summary		Price an order
//	@Description	Preview the price of an order of N photos after the free-photo balance is applied.
//	@Tags			Promo
//	@Security		BearerAuth
//	@Produce		json
//	@Param			photos	query		int						true	"Number of photos"
//	@Success		200		{object}	dto.QuoteResponseDTO	"Price preview"
//	@Failure		400		{object}	utils.Response			"Invalid photo count"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/promo/quote [get]
func (h *PromoHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	photos, err := strconv.Atoi(r.URL.Query().Get("photos"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "photos must be a number")
		return
	}

	quote, err := h.promoService.Quote(r.Context(), userID, photos)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQuoteResponseDTO(quote))
}
