package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	"github.com/GlebRadaev/retouchbilling/internal/repo"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/invoiceservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/promoservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/webhookservice"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		TxManager:    pg.NewMockTXManager(ctrl),
		OrderRepo:    invoiceservice.NewMockOrderRepo(ctrl),
		InvoiceRepo:  invoiceservice.NewMockRepo(ctrl),
		PromoRepo:    promoservice.NewMockRepo(ctrl),
		SettingsRepo: settingsservice.NewMockRepo(ctrl),
	}

	services := New(repos, payment.NewMockProvider(ctrl), notify.NewMockNotifier(ctrl), domain.Settings{Currency: "eur"})

	assert.NotNil(t, services.Settings)
	assert.IsType(t, &promoservice.Service{}, services.PromoService)
	assert.IsType(t, &chargeservice.Service{}, services.ChargeService)
	assert.IsType(t, &invoiceservice.Service{}, services.InvoiceService)
	assert.IsType(t, &webhookservice.Service{}, services.WebhookService)
}
