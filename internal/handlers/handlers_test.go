package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/handlers/admin"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/webhook"
	"github.com/GlebRadaev/retouchbilling/internal/service"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/invoiceservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/promoservice"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		PromoService:   promoservice.New(nil, nil, nil, nil),
		ChargeService:  chargeservice.New(nil, nil, nil, nil),
		InvoiceService: invoiceservice.New(nil, nil, nil),
		WebhookService: webhook.NewMockService(ctrl),
	}

	h := New(services, admin.NewMockBatchRunner(ctrl), auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.PromoHandler)
	assert.NotNil(t, h.ChargeHandler)
	assert.NotNil(t, h.InvoiceHandler)
	assert.NotNil(t, h.AdminHandler)
	assert.NotNil(t, h.WebhookHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPromoHandler := NewMockPromoHandler(ctrl)
	mockChargeHandler := NewMockChargeHandler(ctrl)
	mockInvoiceHandler := NewMockInvoiceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)

	mockPromoHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().Spend(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().GetQuote(gomock.Any(), gomock.Any()).AnyTimes()
	mockChargeHandler.EXPECT().GetCharges(gomock.Any(), gomock.Any()).AnyTimes()
	mockChargeHandler.EXPECT().PayCharge(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().GetInvoices(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvoiceHandler.EXPECT().GetInvoice(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetUserCharges(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CreatePromoCode(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RunDeferredInvoices(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().HandlePayment(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	userToken, _ := jwtService.GenerateJWT(3, false, time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT(1, true, time.Now().Add(time.Hour))

	h := &Handlers{
		PromoHandler:   mockPromoHandler,
		ChargeHandler:  mockChargeHandler,
		InvoiceHandler: mockInvoiceHandler,
		AdminHandler:   mockAdminHandler,
		WebhookHandler: mockWebhookHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/webhooks/payment", "", http.StatusOK},
		{"POST", "/api/user/promo/redeem", "", http.StatusUnauthorized},
		{"POST", "/api/user/promo/redeem", userToken, http.StatusOK},
		{"GET", "/api/user/promo/balance", userToken, http.StatusOK},
		{"POST", "/api/user/promo/spend", userToken, http.StatusOK},
		{"GET", "/api/user/promo/quote?photos=3", userToken, http.StatusOK},
		{"GET", "/api/user/charges", "", http.StatusUnauthorized},
		{"GET", "/api/user/charges", userToken, http.StatusOK},
		{"POST", "/api/user/charges/7/pay", userToken, http.StatusOK},
		{"GET", "/api/user/invoices", userToken, http.StatusOK},
		{"GET", "/api/user/invoices/40", userToken, http.StatusOK},
		{"POST", "/api/admin/charges", "", http.StatusUnauthorized},
		{"POST", "/api/admin/charges", userToken, http.StatusForbidden},
		{"POST", "/api/admin/charges", adminToken, http.StatusOK},
		{"GET", "/api/admin/users/3/charges", adminToken, http.StatusOK},
		{"POST", "/api/admin/promo-codes", adminToken, http.StatusOK},
		{"POST", "/api/admin/billing/deferred-invoices/run", userToken, http.StatusForbidden},
		{"POST", "/api/admin/billing/deferred-invoices/run", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
