package dto

import "github.com/GlebRadaev/retouchbilling/internal/domain"

type ChargeDTO struct {
	ID            int64   `json:"id" example:"7"`
	UserID        int64   `json:"user_id" example:"3"`
	Amount        int64   `json:"amount" example:"2500"`
	AmountDisplay string  `json:"amount_display" example:"25.00"`
	Description   string  `json:"description" example:"Extra retouching pass"`
	Status        string  `json:"status" example:"pending"`
	CreatedAt     string  `json:"created_at" example:"2026-03-10T12:00:00Z"`
	PaidAt        *string `json:"paid_at,omitempty" example:"2026-03-11T08:30:00Z"`
	InvoiceID     *int64  `json:"invoice_id,omitempty" example:"40"`
}

func NewChargeDTO(c domain.AdminCharge) ChargeDTO {
	return ChargeDTO{
		ID:            c.ID,
		UserID:        c.UserID,
		Amount:        c.Amount,
		AmountDisplay: Display(c.Amount),
		Description:   c.Description,
		Status:        c.Status,
		CreatedAt:     formatTime(c.CreatedAt),
		PaidAt:        formatOptionalTime(c.PaidAt),
		InvoiceID:     c.InvoiceID,
	}
}

func NewChargeDTOs(charges []domain.AdminCharge) []ChargeDTO {
	out := make([]ChargeDTO, 0, len(charges))
	for _, c := range charges {
		out = append(out, NewChargeDTO(c))
	}
	return out
}

type ChargesResponseDTO struct {
	Pending []ChargeDTO `json:"pending"`
	Paid    []ChargeDTO `json:"paid"`
}

type CreateChargeRequestDTO struct {
	UserID      int64  `json:"user_id" example:"3"`
	Amount      int64  `json:"amount" example:"2500"`
	Description string `json:"description" example:"Extra retouching pass"`
}

type PayChargeResponseDTO struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_123"`
}
