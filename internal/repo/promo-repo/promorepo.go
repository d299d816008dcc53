package promorepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByCodeForUpdate(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `
		SELECT id, code, free_photos, max_uses, current_uses, is_active, expires_at, created_at
		FROM promo_codes
		WHERE code = $1
		FOR UPDATE
	`
	var promo domain.PromoCode
	err := r.db.QueryRow(ctx, query, code).Scan(&promo.ID, &promo.Code, &promo.FreePhotos, &promo.MaxUses,
		&promo.CurrentUses, &promo.IsActive, &promo.ExpiresAt, &promo.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find promo code", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &promo, nil
}

// CreateCode returns nil when the code already exists.
func (r *Repository) CreateCode(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	query := `
		INSERT INTO promo_codes (code, free_photos, max_uses, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, current_uses, created_at
	`
	created := *promo
	err := r.db.QueryRow(ctx, query, promo.Code, promo.FreePhotos, promo.MaxUses, promo.IsActive, promo.ExpiresAt).
		Scan(&created.ID, &created.CurrentUses, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't save promo code", zap.String("code", promo.Code), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// CreateUsage reports false when the user already redeemed the code.
func (r *Repository) CreateUsage(ctx context.Context, usage *domain.UserPromoUsage) (bool, error) {
	query := `
		INSERT INTO user_promo_usage (user_id, promo_code_id, photos_used, photos_remaining)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id, promo_code_id) DO NOTHING
		RETURNING id, used_at
	`
	err := r.db.QueryRow(ctx, query, usage.UserID, usage.PromoCodeID, usage.PhotosUsed).Scan(&usage.ID, &usage.UsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save promo usage", zap.Int64("userID", usage.UserID), zap.Error(err))
		return false, err
	}
	usage.PhotosRemaining = usage.PhotosUsed
	return true, nil
}

func (r *Repository) IncrementUses(ctx context.Context, promoID int64) error {
	_, err := r.db.Exec(ctx, "UPDATE promo_codes SET current_uses = current_uses + 1 WHERE id = $1", promoID)
	if err != nil {
		zap.L().Error("can't increment promo uses", zap.Int64("promoID", promoID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SumRemaining(ctx context.Context, userID int64) (int, error) {
	query := "SELECT COALESCE(SUM(photos_remaining), 0) FROM user_promo_usage WHERE user_id = $1"
	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("can't sum free photos", zap.Int64("userID", userID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

// ListUsagesForUpdate returns the spendable usages oldest first and locks them
// until the enclosing transaction ends.
func (r *Repository) ListUsagesForUpdate(ctx context.Context, userID int64) ([]domain.UserPromoUsage, error) {
	query := `
		SELECT id, user_id, promo_code_id, photos_used, photos_remaining, used_at
		FROM user_promo_usage
		WHERE user_id = $1 AND photos_remaining > 0
		ORDER BY used_at, id
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get promo usages", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var usages []domain.UserPromoUsage
	for rows.Next() {
		var u domain.UserPromoUsage
		if err := rows.Scan(&u.ID, &u.UserID, &u.PromoCodeID, &u.PhotosUsed, &u.PhotosRemaining, &u.UsedAt); err != nil {
			zap.L().Error("can't scan promo usage row", zap.Error(err))
			return nil, err
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate promo usage rows", zap.Error(err))
		return nil, err
	}
	return usages, nil
}

// DecrementUsage reports false when the usage has fewer than n photos left.
func (r *Repository) DecrementUsage(ctx context.Context, usageID int64, n int) (bool, error) {
	query := `
		UPDATE user_promo_usage
		SET photos_remaining = photos_remaining - $1
		WHERE id = $2 AND photos_remaining >= $1
	`
	tag, err := r.db.Exec(ctx, query, n, usageID)
	if err != nil {
		zap.L().Error("can't decrement promo usage", zap.Int64("usageID", usageID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
