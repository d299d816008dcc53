package dto

import (
	"time"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
)

type RedeemPromoRequestDTO struct {
	Code string `json:"code" example:"SPRING5"`
}

type RedeemPromoResponseDTO struct {
	Success    bool   `json:"success" example:"true"`
	Message    string `json:"message" example:"Promo code redeemed"`
	FreePhotos *int   `json:"free_photos,omitempty" example:"5"`
}

type PromoBalanceResponseDTO struct {
	FreePhotos int `json:"free_photos" example:"3"`
}

type SpendPromoRequestDTO struct {
	Photos int `json:"photos" example:"2"`
}

type SpendPromoResponseDTO struct {
	Success    bool `json:"success" example:"true"`
	FreePhotos int  `json:"free_photos" example:"1"`
}

type QuoteResponseDTO struct {
	Photos               int    `json:"photos" example:"10"`
	FreePhotos           int    `json:"free_photos" example:"3"`
	PayablePhotos        int    `json:"payable_photos" example:"7"`
	PricePerPhoto        int64  `json:"price_per_photo" example:"500"`
	PricePerPhotoDisplay string `json:"price_per_photo_display" example:"5.00"`
	Total                int64  `json:"total" example:"3500"`
	TotalDisplay         string `json:"total_display" example:"35.00"`
	Currency             string `json:"currency" example:"eur"`
}

func NewQuoteResponseDTO(q *domain.Quote) QuoteResponseDTO {
	return QuoteResponseDTO{
		Photos:               q.Photos,
		FreePhotos:           q.FreePhotos,
		PayablePhotos:        q.PayablePhotos,
		PricePerPhoto:        q.PricePerPhoto,
		PricePerPhotoDisplay: Display(q.PricePerPhoto),
		Total:                q.Total,
		TotalDisplay:         Display(q.Total),
		Currency:             q.Currency,
	}
}

type CreatePromoCodeRequestDTO struct {
	Code       string     `json:"code" example:"SPRING5"`
	FreePhotos int        `json:"free_photos" example:"5"`
	MaxUses    *int       `json:"max_uses,omitempty" example:"100"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" example:"2026-06-01T00:00:00Z"`
}

type PromoCodeDTO struct {
	ID          int64   `json:"id" example:"2"`
	Code        string  `json:"code" example:"SPRING5"`
	FreePhotos  int     `json:"free_photos" example:"5"`
	MaxUses     *int    `json:"max_uses,omitempty" example:"100"`
	CurrentUses int     `json:"current_uses" example:"0"`
	IsActive    bool    `json:"is_active" example:"true"`
	ExpiresAt   *string `json:"expires_at,omitempty" example:"2026-06-01T00:00:00Z"`
}

func NewPromoCodeDTO(p *domain.PromoCode) PromoCodeDTO {
	return PromoCodeDTO{
		ID:          p.ID,
		Code:        p.Code,
		FreePhotos:  p.FreePhotos,
		MaxUses:     p.MaxUses,
		CurrentUses: p.CurrentUses,
		IsActive:    p.IsActive,
		ExpiresAt:   formatOptionalTime(p.ExpiresAt),
	}
}
