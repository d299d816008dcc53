package invoicerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
)

const invoiceColumns = "id, user_id, invoice_number, total_amount, currency, status, issue_date, due_date, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanInvoice(row pgx.Row, invoice *domain.Invoice) error {
	return row.Scan(&invoice.ID, &invoice.UserID, &invoice.InvoiceNumber, &invoice.TotalAmount, &invoice.Currency,
		&invoice.Status, &invoice.IssueDate, &invoice.DueDate, &invoice.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	query := `
		INSERT INTO invoices (user_id, invoice_number, total_amount, currency, status, issue_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	created := *invoice
	err := r.db.QueryRow(ctx, query, invoice.UserID, invoice.InvoiceNumber, invoice.TotalAmount, invoice.Currency,
		invoice.Status, invoice.IssueDate, invoice.DueDate).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Int64("userID", invoice.UserID), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) CreateItems(ctx context.Context, invoiceID int64, items []domain.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range items {
		_, err := r.db.Exec(ctx, query, invoiceID, item.Description, item.Quantity, item.UnitPrice, item.TotalPrice)
		if err != nil {
			zap.L().Error("can't save invoice item", zap.Int64("invoiceID", invoiceID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := scanInvoice(r.db.QueryRow(ctx, "SELECT "+invoiceColumns+" FROM invoices WHERE id = $1", invoiceID), &invoice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Int64("invoiceID", invoiceID), zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE user_id = $1
		ORDER BY issue_date DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get invoices", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate invoice rows", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (r *Repository) FindItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, total_price
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		zap.L().Error("can't get invoice items", zap.Int64("invoiceID", invoiceID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.TotalPrice)
		if err != nil {
			zap.L().Error("can't scan invoice item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate invoice item rows", zap.Error(err))
		return nil, err
	}
	return items, nil
}
