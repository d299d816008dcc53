package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	stripeSessionCompleted    = "checkout.session.completed"
	stripeAsyncPaymentSuccess = "checkout.session.async_payment_succeeded"
)

type StripeProvider struct {
	sessions      checkoutsession.Client
	webhookSecret string
	successURL    string
	cancelURL     string
	newSession    func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewStripeProvider(secretKey, webhookSecret, successURL, cancelURL string) *StripeProvider {
	p := &StripeProvider{
		sessions:      checkoutsession.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
	p.newSession = p.sessions.New
	return p
}

func (p *StripeProvider) SignatureHeader() string {
	return "Stripe-Signature"
}

func (p *StripeProvider) VerifyAndParse(rawBody []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(rawBody, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	result := &Event{ID: event.ID, Type: string(event.Type)}
	switch string(event.Type) {
	case stripeSessionCompleted, stripeAsyncPaymentSuccess:
		if event.Data == nil {
			return nil, fmt.Errorf("%w: empty event data", ErrMalformedEvent)
		}
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		result.Metadata = session.Metadata
		result.Amount = session.AmountTotal
		// A completed session with a delayed method is settled by the async event.
		if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			result.Type = EventPaymentCompleted
		}
	}
	return result, nil
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			MetadataChargeID: strconv.FormatInt(req.ChargeID, 10),
			MetadataUserID:   strconv.FormatInt(req.UserID, 10),
		},
	}
	params.Context = ctx

	session, err := p.newSession(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &Checkout{SessionID: session.ID, URL: session.URL}, nil
}
