package service

import (
	"github.com/GlebRadaev/retouchbilling/internal/batcher"
	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/admin"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/charges"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/invoices"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/promo"
	"github.com/GlebRadaev/retouchbilling/internal/handlers/webhook"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/repo"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/invoiceservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/promoservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/webhookservice"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

type PromoService interface {
	promo.Service
	admin.PromoService
}

type ChargeService interface {
	charges.Service
	admin.ChargeService
}

type InvoiceService interface {
	invoices.Service
	batcher.Invoicer
}

type Services struct {
	Settings       settingsservice.Resolver
	PromoService   PromoService
	ChargeService  ChargeService
	InvoiceService InvoiceService
	WebhookService webhook.Service
}

func New(repo *repo.Repositories, provider payment.Provider, notifier notify.Notifier, defaults domain.Settings) *Services {
	settings := settingsservice.New(repo.SettingsRepo, defaults)

	return &Services{
		Settings:       settings,
		PromoService:   promoservice.New(repo.TxManager, repo.PromoRepo, repo.UserRepo, settings),
		ChargeService:  chargeservice.New(repo.ChargeRepo, repo.UserRepo, provider, settings),
		InvoiceService: invoiceservice.New(repo.TxManager, repo.InvoiceRepo, repo.OrderRepo),
		WebhookService: webhookservice.New(repo.TxManager, repo.ChargeRepo, repo.InvoiceRepo, provider, settings, notifier),
	}
}
