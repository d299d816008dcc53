package invoices

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/dto"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
	"github.com/GlebRadaev/retouchbilling/pkg/utils"
)

//go:generate mockgen -source=invoices.go -destination=mock_invoices.go -package=invoices

type Service interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Invoice, error)
	Get(ctx context.Context, userID, invoiceID int64) (*domain.Invoice, []domain.InvoiceItem, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// GetInvoices godoc
//
//	@Summary		Get invoices of the user
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvoiceDTO	"Invoices, newest first"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices [get]
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	invoices, err := h.invoiceService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, dto.NewInvoiceDTO(invoice))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetInvoice godoc
//
//	@Summary		Get an invoice with its items
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			invoiceID	path		int								true	"Invoice ID"
//	@Success		200			{object}	dto.InvoiceDetailsResponseDTO	"Invoice details"
//	@Failure		400			{object}	utils.Response					"Invalid invoice ID"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		404			{object}	utils.Response					"Invoice not found"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/user/invoices/{invoiceID} [get]
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	invoiceID, err := strconv.ParseInt(chi.URLParam(r, "invoiceID"), 10, 64)
	if err != nil || invoiceID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	invoice, items, err := h.invoiceService.Get(r.Context(), userID, invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvoiceDetailsResponseDTO(*invoice, items))
}
