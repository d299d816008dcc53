package promoservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
)

//go:generate mockgen -source=promoservice.go -destination=mock_promoservice.go -package=promoservice

type Repo interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.PromoCode, error)
	CreateCode(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	CreateUsage(ctx context.Context, usage *domain.UserPromoUsage) (bool, error)
	IncrementUses(ctx context.Context, promoID int64) error
	SumRemaining(ctx context.Context, userID int64) (int, error)
	ListUsagesForUpdate(ctx context.Context, userID int64) ([]domain.UserPromoUsage, error)
	DecrementUsage(ctx context.Context, usageID int64, n int) (bool, error)
}

type UserRepo interface {
	LockByID(ctx context.Context, userID int64) (bool, error)
}

var (
	ErrInvalidCode      = fmt.Errorf("%w: promo code is invalid or expired", domain.ErrValidation)
	ErrAlreadyRedeemed  = fmt.Errorf("%w: promo code already redeemed", domain.ErrConflict)
	ErrInsufficient     = fmt.Errorf("%w: insufficient free-photo balance", domain.ErrConflict)
	ErrInvalidPhotos    = fmt.Errorf("%w: photo count must be positive", domain.ErrValidation)
	ErrInvalidGrant     = fmt.Errorf("%w: free photos must be positive", domain.ErrValidation)
	ErrInvalidMaxUses   = fmt.Errorf("%w: max uses must be positive", domain.ErrValidation)
	ErrCodeExists       = fmt.Errorf("%w: promo code already exists", domain.ErrConflict)
	ErrUserNotFound     = fmt.Errorf("%w: user", domain.ErrNotFound)
	ErrConcurrentChange = fmt.Errorf("%w: promo usage changed during spend", domain.ErrIntegrity)
)

type Service struct {
	txManager pg.TXManager
	repo      Repo
	users     UserRepo
	settings  settingsservice.Resolver
	now       func() time.Time
}

func New(txManager pg.TXManager, repo Repo, users UserRepo, settings settingsservice.Resolver) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
		users:     users,
		settings:  settings,
		now:       time.Now,
	}
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Redeem grants the code's free photos to the user and returns the grant.
func (s *Service) Redeem(ctx context.Context, userID int64, code string) (int, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return 0, ErrInvalidCode
	}

	var granted int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.users.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}

		promo, err := s.repo.FindByCodeForUpdate(ctx, normalized)
		if err != nil {
			return err
		}
		if promo == nil || !promo.Redeemable(s.now()) {
			return ErrInvalidCode
		}

		usage := &domain.UserPromoUsage{
			UserID:      userID,
			PromoCodeID: promo.ID,
			PhotosUsed:  promo.FreePhotos,
		}
		created, err := s.repo.CreateUsage(ctx, usage)
		if err != nil {
			return err
		}
		if !created {
			return ErrAlreadyRedeemed
		}

		if err := s.repo.IncrementUses(ctx, promo.ID); err != nil {
			return err
		}
		granted = promo.FreePhotos
		return nil
	})
	if err != nil {
		zap.L().Info("promo redemption rejected", zap.Int64("userID", userID), zap.String("code", normalized), zap.Error(err))
		return 0, err
	}

	zap.L().Info("promo code redeemed", zap.Int64("userID", userID), zap.String("code", normalized), zap.Int("granted", granted))
	return granted, nil
}

func (s *Service) Balance(ctx context.Context, userID int64) (int, error) {
	total, err := s.repo.SumRemaining(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get free-photo balance", zap.Int64("userID", userID), zap.Error(err))
		return 0, err
	}
	if total < 0 {
		return 0, nil
	}
	return total, nil
}

type decrement struct {
	usageID int64
	photos  int
}

// allocate takes count photos from usages in the given order and fails when
// they don't hold enough.
func allocate(usages []domain.UserPromoUsage, count int) ([]decrement, error) {
	var plan []decrement
	left := count
	for _, u := range usages {
		if left == 0 {
			break
		}
		if u.PhotosRemaining <= 0 {
			continue
		}
		take := min(u.PhotosRemaining, left)
		plan = append(plan, decrement{usageID: u.ID, photos: take})
		left -= take
	}
	if left > 0 {
		return nil, ErrInsufficient
	}
	return plan, nil
}

// Spend consumes count free photos, oldest redemption first. On failure no
// usage row changes.
func (s *Service) Spend(ctx context.Context, userID int64, count int) error {
	if count <= 0 {
		return ErrInvalidPhotos
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.users.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}

		usages, err := s.repo.ListUsagesForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		plan, err := allocate(usages, count)
		if err != nil {
			return err
		}

		for _, step := range plan {
			ok, err := s.repo.DecrementUsage(ctx, step.usageID, step.photos)
			if err != nil {
				return err
			}
			if !ok {
				return ErrConcurrentChange
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Info("free-photo spend rejected", zap.Int64("userID", userID), zap.Int("photos", count), zap.Error(err))
		return err
	}

	zap.L().Info("free photos spent", zap.Int64("userID", userID), zap.Int("photos", count))
	return nil
}

// Quote prices photos for the user without consuming any credit.
func (s *Service) Quote(ctx context.Context, userID int64, photos int) (*domain.Quote, error) {
	if photos <= 0 {
		return nil, ErrInvalidPhotos
	}

	settings, err := s.settings.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	free := min(balance, photos)
	payable := photos - free
	return &domain.Quote{
		Photos:        photos,
		FreePhotos:    free,
		PayablePhotos: payable,
		PricePerPhoto: settings.PricePerPhoto,
		Total:         int64(payable) * settings.PricePerPhoto,
		Currency:      settings.Currency,
	}, nil
}

func (s *Service) CreateCode(ctx context.Context, code string, freePhotos int, maxUses *int, expiresAt *time.Time) (*domain.PromoCode, error) {
	normalized := NormalizeCode(code)
	switch {
	case normalized == "":
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	case freePhotos <= 0:
		return nil, ErrInvalidGrant
	case maxUses != nil && *maxUses <= 0:
		return nil, ErrInvalidMaxUses
	}

	created, err := s.repo.CreateCode(ctx, &domain.PromoCode{
		Code:       normalized,
		FreePhotos: freePhotos,
		MaxUses:    maxUses,
		IsActive:   true,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		zap.L().Error("failed to create promo code", zap.String("code", normalized), zap.Error(err))
		return nil, err
	}
	if created == nil {
		return nil, ErrCodeExists
	}

	zap.L().Info("promo code created", zap.String("code", normalized), zap.Int("freePhotos", freePhotos))
	return created, nil
}
