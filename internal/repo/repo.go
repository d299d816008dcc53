package repo

import (
	"github.com/GlebRadaev/retouchbilling/internal/batcher"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	chargerepo "github.com/GlebRadaev/retouchbilling/internal/repo/charge-repo"
	invoicerepo "github.com/GlebRadaev/retouchbilling/internal/repo/invoice-repo"
	orderrepo "github.com/GlebRadaev/retouchbilling/internal/repo/order-repo"
	promorepo "github.com/GlebRadaev/retouchbilling/internal/repo/promo-repo"
	settingsrepo "github.com/GlebRadaev/retouchbilling/internal/repo/settings-repo"
	userrepo "github.com/GlebRadaev/retouchbilling/internal/repo/user-repo"
	"github.com/GlebRadaev/retouchbilling/internal/service/chargeservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/invoiceservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/promoservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/internal/service/webhookservice"
)

type UserRepo interface {
	chargeservice.UserRepo
	promoservice.UserRepo
	batcher.UserRepo
	notify.UserRepo
}

type ChargeRepo interface {
	chargeservice.Repo
	webhookservice.ChargeRepo
}

type Repositories struct {
	TxManager    pg.TXManager
	UserRepo     UserRepo
	OrderRepo    invoiceservice.OrderRepo
	ChargeRepo   ChargeRepo
	InvoiceRepo  invoiceservice.Repo
	PromoRepo    promoservice.Repo
	SettingsRepo settingsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:    txManager,
		UserRepo:     userrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		ChargeRepo:   chargerepo.New(conn),
		InvoiceRepo:  invoicerepo.New(conn),
		PromoRepo:    promorepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
	}
}
