package orderrepo

import (
	"context"
	"time"

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

// FindUninvoicedDelivered locks the returned rows until the enclosing
// transaction ends.
func (r *Repository) FindUninvoicedDelivered(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, order_number, total_amount, status, created_at, invoiced_at, invoice_id
		FROM orders
		WHERE user_id = $1 AND status = 'delivered' AND invoiced_at IS NULL
		ORDER BY created_at, id
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get uninvoiced orders", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.TotalAmount, &order.Status,
			&order.CreatedAt, &order.InvoicedAt, &order.InvoiceID)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// MarkInvoiced returns the number of orders that moved to invoiced. Orders
// already invoiced or no longer delivered are left untouched.
func (r *Repository) MarkInvoiced(ctx context.Context, orderIDs []int64, invoiceID int64, invoicedAt time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET invoiced_at = $1, invoice_id = $2
		WHERE id = ANY($3) AND invoiced_at IS NULL AND status = 'delivered'
	`
	tag, err := r.db.Exec(ctx, query, invoicedAt, invoiceID, orderIDs)
	if err != nil {
		zap.L().Error("can't mark orders invoiced", zap.Int64("invoiceID", invoiceID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
