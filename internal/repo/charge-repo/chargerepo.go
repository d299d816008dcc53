package chargerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
)

const chargeColumns = "id, user_id, amount, description, status, created_at, paid_at, invoice_id"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCharge(row pgx.Row, charge *domain.AdminCharge) error {
	return row.Scan(&charge.ID, &charge.UserID, &charge.Amount, &charge.Description, &charge.Status,
		&charge.CreatedAt, &charge.PaidAt, &charge.InvoiceID)
}

func (r *Repository) Create(ctx context.Context, charge *domain.AdminCharge) (*domain.AdminCharge, error) {
	query := `
		INSERT INTO admin_charges (user_id, amount, description, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING ` + chargeColumns
	var created domain.AdminCharge
	err := scanCharge(r.db.QueryRow(ctx, query, charge.UserID, charge.Amount, charge.Description), &created)
	if err != nil {
		zap.L().Error("can't save charge", zap.Int64("userID", charge.UserID), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, chargeID int64) (*domain.AdminCharge, error) {
	return r.findByID(ctx, "SELECT "+chargeColumns+" FROM admin_charges WHERE id = $1", chargeID)
}

// FindByIDForUpdate locks the charge row until the enclosing transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, chargeID int64) (*domain.AdminCharge, error) {
	return r.findByID(ctx, "SELECT "+chargeColumns+" FROM admin_charges WHERE id = $1 FOR UPDATE", chargeID)
}

func (r *Repository) findByID(ctx context.Context, query string, chargeID int64) (*domain.AdminCharge, error) {
	var charge domain.AdminCharge
	err := scanCharge(r.db.QueryRow(ctx, query, chargeID), &charge)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find charge", zap.Int64("chargeID", chargeID), zap.Error(err))
		return nil, err
	}
	return &charge, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]domain.AdminCharge, error) {
	query := `
		SELECT ` + chargeColumns + `
		FROM admin_charges
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get charges", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var charges []domain.AdminCharge
	for rows.Next() {
		var charge domain.AdminCharge
		if err := scanCharge(rows, &charge); err != nil {
			zap.L().Error("can't scan charge row", zap.Error(err))
			return nil, err
		}
		charges = append(charges, charge)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate charge rows", zap.Error(err))
		return nil, err
	}
	return charges, nil
}

// MarkPaid moves a pending charge to paid. It reports false when the charge
// was not pending.
func (r *Repository) MarkPaid(ctx context.Context, chargeID, invoiceID int64, paidAt time.Time) (bool, error) {
	query := `
		UPDATE admin_charges
		SET status = 'paid', paid_at = $1, invoice_id = $2
		WHERE id = $3 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, paidAt, invoiceID, chargeID)
	if err != nil {
		zap.L().Error("can't mark charge paid", zap.Int64("chargeID", chargeID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
