package dto

import "github.com/GlebRadaev/retouchbilling/internal/domain"

type InvoiceDTO struct {
	ID                 int64  `json:"id" example:"40"`
	InvoiceNumber      string `json:"invoice_number" example:"INV-20260310-1A2B3C4D"`
	TotalAmount        int64  `json:"total_amount" example:"4000"`
	TotalAmountDisplay string `json:"total_amount_display" example:"40.00"`
	Currency           string `json:"currency" example:"eur"`
	Status             string `json:"status" example:"pending"`
	IssueDate          string `json:"issue_date" example:"2026-03-10T02:00:00Z"`
	DueDate            string `json:"due_date" example:"2026-04-09T02:00:00Z"`
}

func NewInvoiceDTO(i domain.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:                 i.ID,
		InvoiceNumber:      i.InvoiceNumber,
		TotalAmount:        i.TotalAmount,
		TotalAmountDisplay: Display(i.TotalAmount),
		Currency:           i.Currency,
		Status:             i.Status,
		IssueDate:          formatTime(i.IssueDate),
		DueDate:            formatTime(i.DueDate),
	}
}

type InvoiceItemDTO struct {
	Description       string `json:"description" example:"Retouching order #R-1001"`
	Quantity          int    `json:"quantity" example:"1"`
	UnitPrice         int64  `json:"unit_price" example:"1000"`
	UnitPriceDisplay  string `json:"unit_price_display" example:"10.00"`
	TotalPrice        int64  `json:"total_price" example:"1000"`
	TotalPriceDisplay string `json:"total_price_display" example:"10.00"`
}

type InvoiceDetailsResponseDTO struct {
	InvoiceDTO
	Items []InvoiceItemDTO `json:"items"`
}

func NewInvoiceDetailsResponseDTO(i domain.Invoice, items []domain.InvoiceItem) InvoiceDetailsResponseDTO {
	resp := InvoiceDetailsResponseDTO{
		InvoiceDTO: NewInvoiceDTO(i),
		Items:      make([]InvoiceItemDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, InvoiceItemDTO{
			Description:       item.Description,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			UnitPriceDisplay:  Display(item.UnitPrice),
			TotalPrice:        item.TotalPrice,
			TotalPriceDisplay: Display(item.TotalPrice),
		})
	}
	return resp
}
