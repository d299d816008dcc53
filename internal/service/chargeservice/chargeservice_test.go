package chargeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

type mocks struct {
	repo     *MockRepo
	users    *MockUserRepo
	checkout *payment.MockCheckoutProvider
	settings *settingsservice.MockResolver
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockRepo(ctrl),
		users:    NewMockUserRepo(ctrl),
		checkout: payment.NewMockCheckoutProvider(ctrl),
		settings: settingsservice.NewMockResolver(ctrl),
	}
	defer ctrl.Finish()
	return New(m.repo, m.users, m.checkout, m.settings), m
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		description   string
		prepareMock   func(m *mocks)
		expected      *domain.AdminCharge
		expectedError error
	}{
		{
			name:        "Charge created",
			amount:      2500,
			description: "  Extra retouching pass ",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&domain.User{ID: 3}, nil)
				m.repo.EXPECT().Create(gomock.Any(), &domain.AdminCharge{
					UserID:      3,
					Amount:      2500,
					Description: "Extra retouching pass",
					Status:      domain.ChargeStatusPending,
				}).Return(&domain.AdminCharge{ID: 7, UserID: 3, Amount: 2500, Status: domain.ChargeStatusPending}, nil)
			},
			expected: &domain.AdminCharge{ID: 7, UserID: 3, Amount: 2500, Status: domain.ChargeStatusPending},
		},
		{
			name:          "Zero amount",
			amount:        0,
			description:   "Extra",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			amount:        -100,
			description:   "Extra",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Blank description",
			amount:        100,
			description:   "   ",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidDescription,
		},
		{
			name:        "Unknown user",
			amount:      100,
			description: "Extra",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:        "Database error",
			amount:      100,
			description: "Extra",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&domain.User{ID: 3}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			charge, err := service.Create(context.Background(), 3, tt.amount, tt.description)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, charge)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, charge)
		})
	}
}

func TestService_Create_ValidationKind(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.Create(context.Background(), 3, 0, "Extra")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListForUser(t *testing.T) {
	t.Run("Charges found", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), int64(3)).Return([]domain.AdminCharge{{ID: 2}, {ID: 1}}, nil)

		charges, err := service.ListForUser(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, []domain.AdminCharge{{ID: 2}, {ID: 1}}, charges)
	})

	t.Run("Database error", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(gomock.Any(), int64(3)).Return(nil, errors.New("database error"))

		charges, err := service.ListForUser(context.Background(), 3)
		assert.Error(t, err)
		assert.Nil(t, charges)
	})
}

func TestPartitionCharges(t *testing.T) {
	charges := []domain.AdminCharge{
		{ID: 4, Status: domain.ChargeStatusPending},
		{ID: 3, Status: domain.ChargeStatusPaid},
		{ID: 2, Status: domain.ChargeStatusPending},
		{ID: 1, Status: domain.ChargeStatusPaid},
	}

	pending, paid := PartitionCharges(charges)
	assert.Equal(t, []domain.AdminCharge{charges[0], charges[2]}, pending)
	assert.Equal(t, []domain.AdminCharge{charges[1], charges[3]}, paid)

	pending, paid = PartitionCharges(nil)
	assert.Empty(t, pending)
	assert.NotNil(t, pending)
	assert.Empty(t, paid)
	assert.NotNil(t, paid)
}

func TestService_InitiatePayment(t *testing.T) {
	pendingCharge := &domain.AdminCharge{ID: 7, UserID: 3, Amount: 2500, Description: "Extra", Status: domain.ChargeStatusPending}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expected      *payment.Checkout
		expectedKind  error
		expectedError error
	}{
		{
			name: "Checkout created",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pendingCharge, nil)
				m.settings.EXPECT().Resolve(gomock.Any()).Return(domain.Settings{Currency: "eur"}, nil)
				m.checkout.EXPECT().CreateCheckout(gomock.Any(), payment.CheckoutRequest{
					ChargeID:    7,
					UserID:      3,
					Amount:      2500,
					Currency:    "eur",
					Description: "Extra",
				}).Return(&payment.Checkout{SessionID: "cs_1", URL: "https://pay.example/cs_1"}, nil)
			},
			expected: &payment.Checkout{SessionID: "cs_1", URL: "https://pay.example/cs_1"},
		},
		{
			name: "Missing charge",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedError: ErrChargeNotFound,
		},
		{
			name: "Charge of another user",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.AdminCharge{ID: 7, UserID: 9, Status: domain.ChargeStatusPending}, nil)
			},
			expectedError: ErrChargeNotFound,
		},
		{
			name: "Charge already paid",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.AdminCharge{ID: 7, UserID: 3, Status: domain.ChargeStatusPaid}, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name: "Provider unavailable",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pendingCharge, nil)
				m.settings.EXPECT().Resolve(gomock.Any()).Return(domain.Settings{Currency: "eur"}, nil)
				m.checkout.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedKind: domain.ErrExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			checkout, err := service.InitiatePayment(context.Background(), 3, 7)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, checkout)
			case tt.expectedKind != nil:
				assert.ErrorIs(t, err, tt.expectedKind)
				assert.Nil(t, checkout)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, checkout)
			}
		})
	}
}
