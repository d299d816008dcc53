package promoservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type mocks struct {
	tx       *pg.MockTXManager
	repo     *MockRepo
	users    *MockUserRepo
	settings *settingsservice.MockResolver
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:       pg.NewMockTXManager(ctrl),
		repo:     NewMockRepo(ctrl),
		users:    NewMockUserRepo(ctrl),
		settings: settingsservice.NewMockResolver(ctrl),
	}
	service := New(m.tx, m.repo, m.users, m.settings)
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

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SPRING5", NormalizeCode("  spring5 \n"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestService_Redeem(t *testing.T) {
	past := now.Add(-time.Hour)
	one := 1

	tests := []struct {
		name          string
		code          string
		prepareMock   func(m *mocks)
		expected      int
		expectedError error
	}{
		{
			name: "Valid code is redeemed",
			code: "  spring5 ",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				gomock.InOrder(
					m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil),
					m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
						Return(&domain.PromoCode{ID: 2, Code: "SPRING5", FreePhotos: 5, IsActive: true}, nil),
					m.repo.EXPECT().CreateUsage(gomock.Any(), &domain.UserPromoUsage{UserID: 3, PromoCodeID: 2, PhotosUsed: 5}).
						Return(true, nil),
					m.repo.EXPECT().IncrementUses(gomock.Any(), int64(2)).Return(nil),
				)
			},
			expected: 5,
		},
		{
			name:          "Blank code",
			code:          "   ",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidCode,
		},
		{
			name: "User without account row",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(false, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Unknown code",
			code: "NOPE",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "NOPE").Return(nil, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name: "Inactive code",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
					Return(&domain.PromoCode{ID: 2, FreePhotos: 5, IsActive: false}, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name: "Expired code",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
					Return(&domain.PromoCode{ID: 2, FreePhotos: 5, IsActive: true, ExpiresAt: &past}, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name: "Use cap exhausted",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
					Return(&domain.PromoCode{ID: 2, FreePhotos: 5, IsActive: true, MaxUses: &one, CurrentUses: 1}, nil)
			},
			expectedError: ErrInvalidCode,
		},
		{
			name: "Second redemption by the same user",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
					Return(&domain.PromoCode{ID: 2, FreePhotos: 5, IsActive: true}, nil)
				m.repo.EXPECT().CreateUsage(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedError: ErrAlreadyRedeemed,
		},
		{
			name: "Counter update fails",
			code: "SPRING5",
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil)
				m.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SPRING5").
					Return(&domain.PromoCode{ID: 2, FreePhotos: 5, IsActive: true}, nil)
				m.repo.EXPECT().CreateUsage(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().IncrementUses(gomock.Any(), int64(2)).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			granted, err := service.Redeem(context.Background(), 3, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Zero(t, granted)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, granted)
		})
	}
}

func TestService_Balance(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    int
		expectErr   bool
	}{
		{
			name: "Sum of remaining photos",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().SumRemaining(gomock.Any(), int64(3)).Return(7, nil)
			},
			expected: 7,
		},
		{
			name: "Never negative",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().SumRemaining(gomock.Any(), int64(3)).Return(-1, nil)
			},
			expected: 0,
		},
		{
			name: "Database error",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().SumRemaining(gomock.Any(), int64(3)).Return(0, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.Balance(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, balance)
		})
	}
}

func TestAllocate(t *testing.T) {
	usages := []domain.UserPromoUsage{
		{ID: 30, PhotosRemaining: 1},
		{ID: 31, PhotosRemaining: 0},
		{ID: 32, PhotosRemaining: 3},
		{ID: 33, PhotosRemaining: 2},
	}

	tests := []struct {
		name        string
		count       int
		expected    []decrement
		expectedErr error
	}{
		{
			name:     "Fits in the oldest row",
			count:    1,
			expected: []decrement{{usageID: 30, photos: 1}},
		},
		{
			name:     "Spans rows oldest first",
			count:    3,
			expected: []decrement{{usageID: 30, photos: 1}, {usageID: 32, photos: 2}},
		},
		{
			name:     "Whole balance",
			count:    6,
			expected: []decrement{{usageID: 30, photos: 1}, {usageID: 32, photos: 3}, {usageID: 33, photos: 2}},
		},
		{
			name:        "More than the balance",
			count:       7,
			expectedErr: ErrInsufficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := allocate(usages, tt.count)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, plan)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, plan)

			total := 0
			for _, step := range plan {
				total += step.photos
			}
			assert.Equal(t, tt.count, total)
		})
	}
}

func TestService_Spend(t *testing.T) {
	usages := []domain.UserPromoUsage{
		{ID: 30, UserID: 3, PhotosUsed: 5, PhotosRemaining: 1},
		{ID: 31, UserID: 3, PhotosUsed: 3, PhotosRemaining: 3},
	}

	tests := []struct {
		name          string
		count         int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:  "Spend across two redemptions",
			count: 3,
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				gomock.InOrder(
					m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil),
					m.repo.EXPECT().ListUsagesForUpdate(gomock.Any(), int64(3)).Return(usages, nil),
					m.repo.EXPECT().DecrementUsage(gomock.Any(), int64(30), 1).Return(true, nil),
					m.repo.EXPECT().DecrementUsage(gomock.Any(), int64(31), 2).Return(true, nil),
				)
			},
		},
		{
			name:  "Spend 3 with balance 2",
			count: 3,
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				gomock.InOrder(
					m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil),
					m.repo.EXPECT().ListUsagesForUpdate(gomock.Any(), int64(3)).Return([]domain.UserPromoUsage{
						{ID: 30, UserID: 3, PhotosUsed: 5, PhotosRemaining: 2},
					}, nil),
				)
			},
			expectedError: ErrInsufficient,
		},
		{
			name:          "Zero photos",
			count:         0,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidPhotos,
		},
		{
			name:  "Unknown user",
			count: 1,
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(false, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:  "Row changed under the lock",
			count: 1,
			prepareMock: func(m *mocks) {
				runInTx(m.tx)
				gomock.InOrder(
					m.users.EXPECT().LockByID(gomock.Any(), int64(3)).Return(true, nil),
					m.repo.EXPECT().ListUsagesForUpdate(gomock.Any(), int64(3)).Return(usages, nil),
					m.repo.EXPECT().DecrementUsage(gomock.Any(), int64(30), 1).Return(false, nil),
				)
			},
			expectedError: ErrConcurrentChange,
		},
		{
			name:  "Transaction cannot start",
			count: 1,
			prepareMock: func(m *mocks) {
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin transaction: connection refused"))
			},
			expectedError: errors.New("begin transaction: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.Spend(context.Background(), 3, tt.count)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Quote(t *testing.T) {
	settings := domain.Settings{Currency: "eur", PricePerPhoto: 500}

	tests := []struct {
		name          string
		photos        int
		prepareMock   func(m *mocks)
		expected      *domain.Quote
		expectedError error
	}{
		{
			name:   "Credit covers part of the order",
			photos: 10,
			prepareMock: func(m *mocks) {
				m.settings.EXPECT().Resolve(gomock.Any()).Return(settings, nil)
				m.repo.EXPECT().SumRemaining(gomock.Any(), int64(3)).Return(4, nil)
			},
			expected: &domain.Quote{Photos: 10, FreePhotos: 4, PayablePhotos: 6, PricePerPhoto: 500, Total: 3000, Currency: "eur"},
		},
		{
			name:   "Credit covers the whole order",
			photos: 2,
			prepareMock: func(m *mocks) {
				m.settings.EXPECT().Resolve(gomock.Any()).Return(settings, nil)
				m.repo.EXPECT().SumRemaining(gomock.Any(), int64(3)).Return(4, nil)
			},
			expected: &domain.Quote{Photos: 2, FreePhotos: 2, PayablePhotos: 0, PricePerPhoto: 500, Total: 0, Currency: "eur"},
		},
		{
			name:          "Negative photo count",
			photos:        -1,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidPhotos,
		},
		{
			name:   "Settings unavailable",
			photos: 1,
			prepareMock: func(m *mocks) {
				m.settings.EXPECT().Resolve(gomock.Any()).Return(settings, domain.ErrExternal)
			},
			expectedError: domain.ErrExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			quote, err := service.Quote(context.Background(), 3, tt.photos)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, quote)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quote)
		})
	}
}

func TestService_CreateCode(t *testing.T) {
	zero := 0
	ten := 10
	expires := now.AddDate(0, 1, 0)

	tests := []struct {
		name          string
		code          string
		freePhotos    int
		maxUses       *int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:       "Code created",
			code:       "summer10",
			freePhotos: 10,
			maxUses:    &ten,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CreateCode(gomock.Any(), &domain.PromoCode{
					Code: "SUMMER10", FreePhotos: 10, MaxUses: &ten, IsActive: true, ExpiresAt: &expires,
				}).Return(&domain.PromoCode{ID: 8, Code: "SUMMER10", FreePhotos: 10, MaxUses: &ten, IsActive: true, ExpiresAt: &expires}, nil)
			},
		},
		{
			name:          "Blank code",
			code:          " ",
			freePhotos:    10,
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "No free photos",
			code:          "SUMMER10",
			freePhotos:    0,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidGrant,
		},
		{
			name:          "Zero max uses",
			code:          "SUMMER10",
			freePhotos:    10,
			maxUses:       &zero,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidMaxUses,
		},
		{
			name:       "Duplicate code",
			code:       "SUMMER10",
			freePhotos: 10,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CreateCode(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrCodeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			promo, err := service.CreateCode(context.Background(), tt.code, tt.freePhotos, tt.maxUses, &expires)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, promo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(8), promo.ID)
			assert.Equal(t, "SUMMER10", promo.Code)
		})
	}
}
