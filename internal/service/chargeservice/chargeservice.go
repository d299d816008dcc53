package chargeservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

//go:generate mockgen -source=chargeservice.go -destination=mock_chargeservice.go -package=chargeservice

type Repo interface {
	Create(ctx context.Context, charge *domain.AdminCharge) (*domain.AdminCharge, error)
	FindByID(ctx context.Context, chargeID int64) (*domain.AdminCharge, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.AdminCharge, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
}

var (
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description is required", domain.ErrValidation)
	ErrUserNotFound       = fmt.Errorf("%w: user", domain.ErrNotFound)
	ErrChargeNotFound     = fmt.Errorf("%w: charge", domain.ErrNotFound)
	ErrAlreadyPaid        = fmt.Errorf("%w: charge is already paid", domain.ErrConflict)
)

type Service struct {
	repo     Repo
	users    UserRepo
	checkout payment.CheckoutProvider
	settings settingsservice.Resolver
}

func New(repo Repo, users UserRepo, checkout payment.CheckoutProvider, settings settingsservice.Resolver) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		checkout: checkout,
		settings: settings,
	}
}

// Create records a pending charge raised by an admin against a user.
func (s *Service) Create(ctx context.Context, userID, amount int64, description string) (*domain.AdminCharge, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidDescription
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	charge, err := s.repo.Create(ctx, &domain.AdminCharge{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Status:      domain.ChargeStatusPending,
	})
	if err != nil {
		zap.L().Error("failed to create charge", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("charge created",
		zap.Int64("chargeID", charge.ID),
		zap.Int64("userID", userID),
		zap.Int64("amount", amount),
	)
	return charge, nil
}

// ListForUser returns the user's charges, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.AdminCharge, error) {
	charges, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get charges", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return charges, nil
}

// PartitionCharges splits charges into pending and paid, keeping their order.
func PartitionCharges(charges []domain.AdminCharge) (pending, paid []domain.AdminCharge) {
	pending = []domain.AdminCharge{}
	paid = []domain.AdminCharge{}
	for _, charge := range charges {
		if charge.Status == domain.ChargeStatusPaid {
			paid = append(paid, charge)
			continue
		}
		pending = append(pending, charge)
	}
	return pending, paid
}

// InitiatePayment opens a checkout session for one of the caller's pending
// charges. The charge is only settled by the payment webhook.
func (s *Service) InitiatePayment(ctx context.Context, userID, chargeID int64) (*payment.Checkout, error) {
	charge, err := s.repo.FindByID(ctx, chargeID)
	if err != nil {
		zap.L().Error("failed to get charge", zap.Int64("chargeID", chargeID), zap.Error(err))
		return nil, err
	}
	if charge == nil || charge.UserID != userID {
		return nil, ErrChargeNotFound
	}
	if charge.Status != domain.ChargeStatusPending {
		return nil, ErrAlreadyPaid
	}

	settings, err := s.settings.Resolve(ctx)
	if err != nil {
		zap.L().Warn("using default settings", zap.Error(err))
	}

	checkout, err := s.checkout.CreateCheckout(ctx, payment.CheckoutRequest{
		ChargeID:    charge.ID,
		UserID:      charge.UserID,
		Amount:      charge.Amount,
		Currency:    settings.Currency,
		Description: charge.Description,
	})
	if err != nil {
		zap.L().Error("failed to create checkout", zap.Int64("chargeID", chargeID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrExternal, err)
	}
	return checkout, nil
}
