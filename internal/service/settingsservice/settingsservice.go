package settingsservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
)

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

const (
	KeyCurrency      = "currency"
	KeyPricePerPhoto = "price_per_photo"
)

type Repo interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

type Resolver interface {
	Resolve(ctx context.Context) (domain.Settings, error)
}

type Service struct {
	repo     Repo
	defaults domain.Settings
}

func New(repo Repo, defaults domain.Settings) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
	}
}

// Resolve overlays the stored settings on the configured defaults. Stored
// values that don't parse are ignored.
func (s *Service) Resolve(ctx context.Context) (domain.Settings, error) {
	settings := s.defaults

	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return settings, fmt.Errorf("%w: load settings: %v", domain.ErrExternal, err)
	}

	if v, ok := values[KeyCurrency]; ok {
		if currency := strings.ToLower(strings.TrimSpace(v)); currency != "" {
			settings.Currency = currency
		} else {
			zap.L().Warn("ignoring empty setting", zap.String("key", KeyCurrency))
		}
	}
	if v, ok := values[KeyPricePerPhoto]; ok {
		price, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || price < 0 {
			zap.L().Warn("ignoring malformed setting", zap.String("key", KeyPricePerPhoto), zap.String("value", v))
		} else {
			settings.PricePerPhoto = price
		}
	}
	return settings, nil
}
