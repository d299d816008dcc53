package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/dto"
	"github.com/GlebRadaev/retouchbilling/pkg/utils"
)

//go:generate mockgen -source=webhook.go -destination=mock_webhook.go -package=webhook

const maxBodyBytes = 64 << 10

type Service interface {
	HandleEvent(ctx context.Context, rawBody []byte, signature string) error
	SignatureHeader() string
}

type WebhookHandler struct {
	webhookService Service
}

func New(webhookService Service) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandlePayment godoc
//
//	@Summary		Payment provider webhook
//	@Description	Receive a signed payment event. A completed payment settles the referenced charge exactly once; redeliveries are acknowledged without changes.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.WebhookResponseDTO	"Event received"
//	@Failure		400	{object}	utils.Response			"Malformed event or inconsistent charge"
//	@Failure		401	{object}	utils.Response			"Invalid signature"
//	@Failure		404	{object}	utils.Response			"Charge not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/webhooks/payment [post]
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := r.Header.Get(h.webhookService.SignatureHeader())
	if err := h.webhookService.HandleEvent(r.Context(), body, signature); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrIntegrity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Charge not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
