package payment

import (
	"context"
	"errors"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

// EventPaymentCompleted is the provider-neutral type of a settled payment.
const EventPaymentCompleted = "payment.completed"

const (
	MetadataChargeID = "charge_id"
	MetadataUserID   = "user_id"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

type Event struct {
	ID       string
	Type     string
	Metadata map[string]string
	Amount   int64
}

type CheckoutRequest struct {
	ChargeID    int64
	UserID      int64
	Amount      int64
	Currency    string
	Description string
}

type Checkout struct {
	SessionID string
	URL       string
}

type Verifier interface {
	VerifyAndParse(rawBody []byte, signature string) (*Event, error)
	SignatureHeader() string
}

type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
}

type Provider interface {
	Verifier
	CheckoutProvider
}
