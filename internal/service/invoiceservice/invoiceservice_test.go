package invoiceservice

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
)

var (
	now      = time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	settings = domain.Settings{Currency: "eur", PricePerPhoto: 500}
)

type mocks struct {
	tx     *pg.MockTXManager
	repo   *MockRepo
	orders *MockOrderRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:     pg.NewMockTXManager(ctrl),
		repo:   NewMockRepo(ctrl),
		orders: NewMockOrderRepo(ctrl),
	}
	service := New(m.tx, m.repo, m.orders)
	service.now = func() time.Time { return now }
	defer ctrl.Finish()
	return service, m
}

func runInTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestNewNumber(t *testing.T) {
	number := NewNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^INV-20260310-[0-9A-F]{8}$`), number)
	assert.NotEqual(t, number, NewNumber(now))
}

func TestService_InvoiceDeliveredOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, UserID: 3, OrderNumber: "R-1001", TotalAmount: 1000, Status: domain.OrderStatusDelivered},
		{ID: 2, UserID: 3, OrderNumber: "R-1002", TotalAmount: 2500, Status: domain.OrderStatusDelivered},
		{ID: 3, UserID: 3, OrderNumber: "R-1003", TotalAmount: 500, Status: domain.OrderStatusDelivered},
	}

	t.Run("Three delivered orders become one invoice", func(t *testing.T) {
		service, m := NewMock(t)
		runInTx(m.tx)
		m.orders.EXPECT().FindUninvoicedDelivered(gomock.Any(), int64(3)).Return(orders, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
				assert.Equal(t, int64(3), invoice.UserID)
				assert.Equal(t, int64(4000), invoice.TotalAmount)
				assert.Equal(t, "eur", invoice.Currency)
				assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
				assert.Equal(t, now, invoice.IssueDate)
				assert.Equal(t, now.AddDate(0, 0, 30), invoice.DueDate)
				created := *invoice
				created.ID = 40
				return &created, nil
			})
		m.repo.EXPECT().CreateItems(gomock.Any(), int64(40), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, items []domain.InvoiceItem) error {
				require.Len(t, items, 3)
				var sum int64
				for _, item := range items {
					assert.Equal(t, 1, item.Quantity)
					assert.Equal(t, item.UnitPrice, item.TotalPrice)
					sum += item.TotalPrice
				}
				assert.Equal(t, int64(4000), sum)
				assert.Equal(t, "Retouching order #R-1002", items[1].Description)
				return nil
			})
		m.orders.EXPECT().MarkInvoiced(gomock.Any(), []int64{1, 2, 3}, int64(40), now).Return(int64(3), nil)

		invoice, err := service.InvoiceDeliveredOrders(context.Background(), 3, settings)
		require.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, int64(40), invoice.ID)
		assert.Equal(t, int64(4000), invoice.TotalAmount)
	})

	t.Run("Nothing to invoice", func(t *testing.T) {
		service, m := NewMock(t)
		runInTx(m.tx)
		m.orders.EXPECT().FindUninvoicedDelivered(gomock.Any(), int64(3)).Return(nil, nil)

		invoice, err := service.InvoiceDeliveredOrders(context.Background(), 3, settings)
		assert.NoError(t, err)
		assert.Nil(t, invoice)
	})

	t.Run("Item insert fails before orders are touched", func(t *testing.T) {
		service, m := NewMock(t)
		runInTx(m.tx)
		m.orders.EXPECT().FindUninvoicedDelivered(gomock.Any(), int64(3)).Return(orders, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Invoice{ID: 40}, nil)
		m.repo.EXPECT().CreateItems(gomock.Any(), int64(40), gomock.Any()).Return(errors.New("database error"))

		invoice, err := service.InvoiceDeliveredOrders(context.Background(), 3, settings)
		assert.Error(t, err)
		assert.Nil(t, invoice)
	})

	t.Run("Orders invoiced concurrently", func(t *testing.T) {
		service, m := NewMock(t)
		runInTx(m.tx)
		m.orders.EXPECT().FindUninvoicedDelivered(gomock.Any(), int64(3)).Return(orders, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Invoice{ID: 40}, nil)
		m.repo.EXPECT().CreateItems(gomock.Any(), int64(40), gomock.Any()).Return(nil)
		m.orders.EXPECT().MarkInvoiced(gomock.Any(), []int64{1, 2, 3}, int64(40), now).Return(int64(2), nil)

		invoice, err := service.InvoiceDeliveredOrders(context.Background(), 3, settings)
		assert.ErrorIs(t, err, ErrOrdersChanged)
		assert.ErrorIs(t, err, domain.ErrIntegrity)
		assert.Nil(t, invoice)
	})
}

func TestService_ListForUser(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    []domain.Invoice
		expectErr   bool
	}{
		{
			name: "Invoices found",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), int64(3)).Return([]domain.Invoice{{ID: 41}, {ID: 40}}, nil)
			},
			expected: []domain.Invoice{{ID: 41}, {ID: 40}},
		},
		{
			name: "Database error",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByUserID(gomock.Any(), int64(3)).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			invoices, err := service.ListForUser(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, invoices)
		})
	}
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedItems []domain.InvoiceItem
		expectedError error
	}{
		{
			name: "Own invoice",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(40)).Return(&domain.Invoice{ID: 40, UserID: 3}, nil)
				m.repo.EXPECT().FindItems(gomock.Any(), int64(40)).Return([]domain.InvoiceItem{{ID: 1, InvoiceID: 40}}, nil)
			},
			expectedItems: []domain.InvoiceItem{{ID: 1, InvoiceID: 40}},
		},
		{
			name: "Invoice of another user",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(40)).Return(&domain.Invoice{ID: 40, UserID: 9}, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "Missing invoice",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(40)).Return(nil, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "Items unavailable",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(40)).Return(&domain.Invoice{ID: 40, UserID: 3}, nil)
				m.repo.EXPECT().FindItems(gomock.Any(), int64(40)).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			invoice, items, err := service.Get(context.Background(), 3, 40)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, invoice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(40), invoice.ID)
			assert.Equal(t, tt.expectedItems, items)
		})
	}
}
