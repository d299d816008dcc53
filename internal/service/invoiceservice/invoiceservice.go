package invoiceservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
)

//go:generate mockgen -source=invoiceservice.go -destination=mock_invoiceservice.go -package=invoiceservice

type Repo interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	CreateItems(ctx context.Context, invoiceID int64, items []domain.InvoiceItem) error
	FindByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Invoice, error)
	FindItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error)
}

type OrderRepo interface {
	FindUninvoicedDelivered(ctx context.Context, userID int64) ([]domain.Order, error)
	MarkInvoiced(ctx context.Context, orderIDs []int64, invoiceID int64, invoicedAt time.Time) (int64, error)
}

var (
	ErrInvoiceNotFound = fmt.Errorf("%w: invoice", domain.ErrNotFound)
	ErrOrdersChanged   = fmt.Errorf("%w: orders changed while invoicing", domain.ErrIntegrity)
)

type Service struct {
	txManager pg.TXManager
	repo      Repo
	orders    OrderRepo
	now       func() time.Time
}

func New(txManager pg.TXManager, repo Repo, orders OrderRepo) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
		orders:    orders,
		now:       time.Now,
	}
}

// NewNumber returns a human readable invoice number, e.g. INV-20260310-1A2B3C4D.
func NewNumber(issued time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", issued.UTC().Format("20060102"), suffix)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	invoices, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get invoices", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// Get returns the invoice with its items. Invoices of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, userID, invoiceID int64) (*domain.Invoice, []domain.InvoiceItem, error) {
	invoice, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		zap.L().Error("failed to get invoice", zap.Int64("invoiceID", invoiceID), zap.Error(err))
		return nil, nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, nil, ErrInvoiceNotFound
	}

	items, err := s.repo.FindItems(ctx, invoiceID)
	if err != nil {
		zap.L().Error("failed to get invoice items", zap.Int64("invoiceID", invoiceID), zap.Error(err))
		return nil, nil, err
	}
	return invoice, items, nil
}

// InvoiceDeliveredOrders bills every delivered, not yet invoiced order of the
// user with one pending invoice. It returns nil when there is nothing to bill.
// The invoice, its items and the order updates commit together.
func (s *Service) InvoiceDeliveredOrders(ctx context.Context, userID int64, settings domain.Settings) (*domain.Invoice, error) {
	var invoice *domain.Invoice
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		orders, err := s.orders.FindUninvoicedDelivered(ctx, userID)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}

		var total int64
		ids := make([]int64, 0, len(orders))
		items := make([]domain.InvoiceItem, 0, len(orders))
		for _, order := range orders {
			total += order.TotalAmount
			ids = append(ids, order.ID)
			items = append(items, domain.InvoiceItem{
				Description: "Retouching order #" + order.OrderNumber,
				Quantity:    1,
				UnitPrice:   order.TotalAmount,
				TotalPrice:  order.TotalAmount,
			})
		}

		now := s.now()
		created, err := s.repo.Create(ctx, &domain.Invoice{
			UserID:        userID,
			InvoiceNumber: NewNumber(now),
			TotalAmount:   total,
			Currency:      settings.Currency,
			Status:        domain.InvoiceStatusPending,
			IssueDate:     now,
			DueDate:       domain.InvoiceDueDate(now),
		})
		if err != nil {
			return err
		}
		if err := s.repo.CreateItems(ctx, created.ID, items); err != nil {
			return err
		}

		marked, err := s.orders.MarkInvoiced(ctx, ids, created.ID, now)
		if err != nil {
			return err
		}
		if marked != int64(len(ids)) {
			return fmt.Errorf("%w: marked %d of %d orders", ErrOrdersChanged, marked, len(ids))
		}

		invoice = created
		return nil
	})
	if err != nil {
		zap.L().Error("failed to invoice delivered orders", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	if invoice != nil {
		zap.L().Info("deferred invoice created",
			zap.Int64("userID", userID),
			zap.Int64("invoiceID", invoice.ID),
			zap.String("invoiceNumber", invoice.InvoiceNumber),
			zap.Int64("total", invoice.TotalAmount),
		)
	}
	return invoice, nil
}
