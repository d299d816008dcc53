package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// HMACProvider speaks a provider-neutral protocol: the hex HMAC-SHA256 of the
// raw body is sent in X-Webhook-Signature and checkout happens on a hosted
// payment page addressed by query parameters.
type HMACProvider struct {
	secret      string
	checkoutURL string
	successURL  string
	cancelURL   string
}

type hmacEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Amount   int64             `json:"amount"`
		Metadata map[string]string `json:"metadata"`
	} `json:"data"`
}

func NewHMACProvider(secret, checkoutURL, successURL, cancelURL string) *HMACProvider {
	return &HMACProvider{
		secret:      secret,
		checkoutURL: checkoutURL,
		successURL:  successURL,
		cancelURL:   cancelURL,
	}
}

func (p *HMACProvider) SignatureHeader() string {
	return "X-Webhook-Signature"
}

func (p *HMACProvider) Sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(p.secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (p *HMACProvider) VerifyAndParse(rawBody []byte, signature string) (*Event, error) {
	if p.secret == "" {
		return nil, fmt.Errorf("%w: signing secret is not configured", ErrInvalidSignature)
	}
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	mac := hmac.New(sha256.New, []byte(p.secret))
	mac.Write(rawBody)
	if !hmac.Equal(mac.Sum(nil), sig) {
		return nil, ErrInvalidSignature
	}

	var payload hmacEvent
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return &Event{
		ID:       payload.ID,
		Type:     payload.Type,
		Metadata: payload.Data.Metadata,
		Amount:   payload.Data.Amount,
	}, nil
}

func (p *HMACProvider) CreateCheckout(_ context.Context, req CheckoutRequest) (*Checkout, error) {
	u, err := url.Parse(p.checkoutURL)
	if err != nil {
		return nil, fmt.Errorf("parse checkout url: %w", err)
	}
	sessionID := uuid.NewString()

	q := u.Query()
	q.Set("session", sessionID)
	q.Set(MetadataChargeID, strconv.FormatInt(req.ChargeID, 10))
	q.Set(MetadataUserID, strconv.FormatInt(req.UserID, 10))
	q.Set("amount", strconv.FormatInt(req.Amount, 10))
	q.Set("currency", req.Currency)
	q.Set("description", req.Description)
	q.Set("success_url", p.successURL)
	q.Set("cancel_url", p.cancelURL)
	u.RawQuery = q.Encode()

	return &Checkout{SessionID: sessionID, URL: u.String()}, nil
}
