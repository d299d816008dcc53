package userrepo

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

func (repo *Repository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, email, full_name, is_admin, deferred_billing, created_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Email, &user.FullName, &user.IsAdmin, &user.DeferredBilling, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// LockByID takes the user row lock for the rest of the current transaction.
func (repo *Repository) LockByID(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := repo.db.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't lock user", zap.Int64("userID", userID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (repo *Repository) FindDeferredBilling(ctx context.Context) ([]int64, error) {
	rows, err := repo.db.Query(ctx, "SELECT id FROM users WHERE deferred_billing = TRUE ORDER BY id")
	if err != nil {
		zap.L().Error("can't get deferred billing users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate deferred billing users", zap.Error(err))
		return nil, err
	}
	return ids, nil
}
