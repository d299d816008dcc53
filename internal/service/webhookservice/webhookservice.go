package webhookservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	"github.com/GlebRadaev/retouchbilling/internal/service/invoiceservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

//go:generate mockgen -source=webhookservice.go -destination=mock_webhookservice.go -package=webhookservice

type ChargeRepo interface {
	FindByIDForUpdate(ctx context.Context, chargeID int64) (*domain.AdminCharge, error)
	MarkPaid(ctx context.Context, chargeID, invoiceID int64, paidAt time.Time) (bool, error)
}

var (
	ErrInvalidSignature = fmt.Errorf("%w: invalid webhook signature", domain.ErrUnauthorized)
	ErrMalformedEvent   = fmt.Errorf("%w: malformed webhook event", domain.ErrValidation)
	ErrMissingMetadata  = fmt.Errorf("%w: missing charge metadata", domain.ErrValidation)
	ErrChargeNotFound   = fmt.Errorf("%w: charge", domain.ErrNotFound)
	ErrUserMismatch     = fmt.Errorf("%w: event user does not own the charge", domain.ErrIntegrity)
	ErrAmountMismatch   = fmt.Errorf("%w: paid amount differs from the charge", domain.ErrIntegrity)
	ErrChargeChanged    = fmt.Errorf("%w: charge changed while settling", domain.ErrIntegrity)
)

type Service struct {
	txManager pg.TXManager
	charges   ChargeRepo
	invoices  invoiceservice.Repo
	verifier  payment.Verifier
	settings  settingsservice.Resolver
	notifier  notify.Notifier
	now       func() time.Time
}

func New(
	txManager pg.TXManager,
	charges ChargeRepo,
	invoices invoiceservice.Repo,
	verifier payment.Verifier,
	settings settingsservice.Resolver,
	notifier notify.Notifier,
) *Service {
	return &Service{
		txManager: txManager,
		charges:   charges,
		invoices:  invoices,
		verifier:  verifier,
		settings:  settings,
		notifier:  notifier,
		now:       time.Now,
	}
}

// SignatureHeader names the request header carrying the provider signature.
func (s *Service) SignatureHeader() string {
	return s.verifier.SignatureHeader()
}

// HandleEvent settles the charge referenced by a payment completed event.
// Events of other types are accepted without side effects, and a charge that
// is already paid is left untouched, so redelivery is safe.
func (s *Service) HandleEvent(ctx context.Context, rawBody []byte, signature string) error {
	event, err := s.verifier.VerifyAndParse(rawBody, signature)
	if err != nil {
		zap.L().Warn("rejected webhook", zap.Error(err))
		if errors.Is(err, payment.ErrMalformedEvent) {
			return ErrMalformedEvent
		}
		return ErrInvalidSignature
	}
	if event.Type != payment.EventPaymentCompleted {
		zap.L().Debug("ignoring webhook event", zap.String("eventID", event.ID), zap.String("type", event.Type))
		return nil
	}

	chargeID, userID, err := chargeRef(event)
	if err != nil {
		zap.L().Error("webhook event without charge reference", zap.String("eventID", event.ID), zap.Error(err))
		return err
	}

	settings, err := s.settings.Resolve(ctx)
	if err != nil {
		zap.L().Warn("using default settings", zap.Error(err))
	}

	var settled *domain.AdminCharge
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		charge, err := s.charges.FindByIDForUpdate(ctx, chargeID)
		if err != nil {
			return err
		}
		if charge == nil {
			return ErrChargeNotFound
		}
		if charge.Status == domain.ChargeStatusPaid {
			zap.L().Info("charge already paid", zap.Int64("chargeID", chargeID), zap.String("eventID", event.ID))
			return nil
		}
		if charge.UserID != userID {
			return fmt.Errorf("%w: charge %d belongs to user %d, event names %d", ErrUserMismatch, chargeID, charge.UserID, userID)
		}
		if event.Amount > 0 && event.Amount != charge.Amount {
			return fmt.Errorf("%w: paid %d, charged %d", ErrAmountMismatch, event.Amount, charge.Amount)
		}

		now := s.now()
		invoice, err := s.invoices.Create(ctx, &domain.Invoice{
			UserID:        charge.UserID,
			InvoiceNumber: invoiceservice.NewNumber(now),
			TotalAmount:   charge.Amount,
			Currency:      settings.Currency,
			Status:        domain.InvoiceStatusPaid,
			IssueDate:     now,
			DueDate:       domain.InvoiceDueDate(now),
		})
		if err != nil {
			return err
		}
		err = s.invoices.CreateItems(ctx, invoice.ID, []domain.InvoiceItem{{
			Description: charge.Description,
			Quantity:    1,
			UnitPrice:   charge.Amount,
			TotalPrice:  charge.Amount,
		}})
		if err != nil {
			return err
		}

		ok, err := s.charges.MarkPaid(ctx, charge.ID, invoice.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrChargeChanged
		}

		charge.Status = domain.ChargeStatusPaid
		charge.PaidAt = &now
		charge.InvoiceID = &invoice.ID
		settled = charge
		return nil
	})
	if err != nil {
		zap.L().Error("failed to settle charge",
			zap.Int64("chargeID", chargeID),
			zap.String("eventID", event.ID),
			zap.Error(err),
		)
		return err
	}
	if settled == nil {
		return nil
	}

	zap.L().Info("charge paid",
		zap.Int64("chargeID", settled.ID),
		zap.Int64("userID", settled.UserID),
		zap.Int64("invoiceID", *settled.InvoiceID),
	)
	s.notifier.NotifyUser(ctx, notify.Message{
		UserID:  settled.UserID,
		Subject: "Payment received",
		Body:    fmt.Sprintf("We received your payment for %q. Thank you!", settled.Description),
	})
	return nil
}

func chargeRef(event *payment.Event) (chargeID, userID int64, err error) {
	chargeID, err = strconv.ParseInt(event.Metadata[payment.MetadataChargeID], 10, 64)
	if err != nil || chargeID <= 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingMetadata, payment.MetadataChargeID)
	}
	userID, err = strconv.ParseInt(event.Metadata[payment.MetadataUserID], 10, 64)
	if err != nil || userID <= 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingMetadata, payment.MetadataUserID)
	}
	return chargeID, userID, nil
}
