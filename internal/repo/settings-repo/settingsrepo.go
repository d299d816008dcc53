package settingsrepo

import (
	"context"

	"go.uber.org/zap"

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

func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, "SELECT key, value FROM settings")
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan setting row", zap.Error(err))
			return nil, err
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate setting rows", zap.Error(err))
		return nil, err
	}
	return settings, nil
}
