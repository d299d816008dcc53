package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/retouchbilling/docs"
	adminhandlers "github.com/GlebRadaev/retouchbilling/internal/handlers/admin"
	chargeshandlers "github.com/GlebRadaev/retouchbilling/internal/handlers/charges"
	invoiceshandlers "github.com/GlebRadaev/retouchbilling/internal/handlers/invoices"
	promohandlers "github.com/GlebRadaev/retouchbilling/internal/handlers/promo"
	webhookhandlers "github.com/GlebRadaev/retouchbilling/internal/handlers/webhook"
	"github.com/GlebRadaev/retouchbilling/internal/service"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type PromoHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	GetQuote(w http.ResponseWriter, r *http.Request)
}

type ChargeHandler interface {
	GetCharges(w http.ResponseWriter, r *http.Request)
	PayCharge(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	GetInvoices(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreateCharge(w http.ResponseWriter, r *http.Request)
	GetUserCharges(w http.ResponseWriter, r *http.Request)
	CreatePromoCode(w http.ResponseWriter, r *http.Request)
	RunDeferredInvoices(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandlePayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PromoHandler   PromoHandler
	ChargeHandler  ChargeHandler
	InvoiceHandler InvoiceHandler
	AdminHandler   AdminHandler
	WebhookHandler WebhookHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, batchRunner adminhandlers.BatchRunner, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		PromoHandler:   promohandlers.New(s.PromoService),
		ChargeHandler:  chargeshandlers.New(s.ChargeService),
		InvoiceHandler: invoiceshandlers.New(s.InvoiceService),
		AdminHandler:   adminhandlers.New(s.ChargeService, s.PromoService, batchRunner),
		WebhookHandler: webhookhandlers.New(s.WebhookService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/api/webhooks/payment", h.WebhookHandler.HandlePayment)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/api/user", func(r chi.Router) {
			r.Route("/promo", func(r chi.Router) {
				r.Post("/redeem", h.PromoHandler.Redeem)
				r.Get("/balance", h.PromoHandler.GetBalance)
				r.Post("/spend", h.PromoHandler.Spend)
				r.Get("/quote", h.PromoHandler.GetQuote)
			})
			r.Route("/charges", func(r chi.Router) {
				r.Get("/", h.ChargeHandler.GetCharges)
				r.Post("/{chargeID}/pay", h.ChargeHandler.PayCharge)
			})
			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.InvoiceHandler.GetInvoices)
				r.Get("/{invoiceID}", h.InvoiceHandler.GetInvoice)
			})
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly)
			r.Post("/charges", h.AdminHandler.CreateCharge)
			r.Get("/users/{userID}/charges", h.AdminHandler.GetUserCharges)
			r.Post("/promo-codes", h.AdminHandler.CreatePromoCode)
			r.Post("/billing/deferred-invoices/run", h.AdminHandler.RunDeferredInvoices)
		})
	})

	return r
}
