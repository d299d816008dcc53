package domain

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"

	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type User struct {
	ID              int64     `db:"id"`
	Email           string    `db:"email"`
	FullName        string    `db:"full_name"`
	IsAdmin         bool      `db:"is_admin"`
	DeferredBilling bool      `db:"deferred_billing"`
	CreatedAt       time.Time `db:"created_at"`
}

// Order amounts are integer minor currency units, as are all amounts below.
type Order struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	OrderNumber string     `db:"order_number"`
	TotalAmount int64      `db:"total_amount"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	InvoicedAt  *time.Time `db:"invoiced_at"`
	InvoiceID   *int64     `db:"invoice_id"`
}

type AdminCharge struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	Amount      int64      `db:"amount"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	PaidAt      *time.Time `db:"paid_at"`
	InvoiceID   *int64     `db:"invoice_id"`
}

type Invoice struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	InvoiceNumber string    `db:"invoice_number"`
	TotalAmount   int64     `db:"total_amount"`
	Currency      string    `db:"currency"`
	Status        string    `db:"status"`
	IssueDate     time.Time `db:"issue_date"`
	DueDate       time.Time `db:"due_date"`
	CreatedAt     time.Time `db:"created_at"`
}

type InvoiceItem struct {
	ID          int64  `db:"id"`
	InvoiceID   int64  `db:"invoice_id"`
	Description string `db:"description"`
	Quantity    int    `db:"quantity"`
	UnitPrice   int64  `db:"unit_price"`
	TotalPrice  int64  `db:"total_price"`
}

type PromoCode struct {
	ID          int64      `db:"id"`
	Code        string     `db:"code"`
	FreePhotos  int        `db:"free_photos"`
	MaxUses     *int       `db:"max_uses"`
	CurrentUses int        `db:"current_uses"`
	IsActive    bool       `db:"is_active"`
	ExpiresAt   *time.Time `db:"expires_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Redeemable reports whether the code can still be redeemed at now.
func (p *PromoCode) Redeemable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ExpiresAt != nil && !now.Before(*p.ExpiresAt) {
		return false
	}
	if p.MaxUses != nil && p.CurrentUses >= *p.MaxUses {
		return false
	}
	return true
}

type UserPromoUsage struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	PromoCodeID     int64     `db:"promo_code_id"`
	PhotosUsed      int       `db:"photos_used"`
	PhotosRemaining int       `db:"photos_remaining"`
	UsedAt          time.Time `db:"used_at"`
}

// InvoiceGraceDays is the fixed payment term of every invoice.
const InvoiceGraceDays = 30

func InvoiceDueDate(issued time.Time) time.Time {
	return issued.AddDate(0, 0, InvoiceGraceDays)
}

// Settings is the operation-scoped view of the key/value settings store.
type Settings struct {
	Currency      string
	PricePerPhoto int64
}

// Quote prices an order after free-photo credit is applied.
type Quote struct {
	Photos        int
	FreePhotos    int
	PayablePhotos int
	PricePerPhoto int64
	Total         int64
	Currency      string
}
