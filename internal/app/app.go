package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/batcher"
	"github.com/GlebRadaev/retouchbilling/internal/config"
	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/handlers"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/pg"
	"github.com/GlebRadaev/retouchbilling/internal/repo"
	"github.com/GlebRadaev/retouchbilling/internal/service"
	"github.com/GlebRadaev/retouchbilling/pkg/auth"
	"github.com/GlebRadaev/retouchbilling/pkg/clients"
	"github.com/GlebRadaev/retouchbilling/pkg/locker"
	"github.com/GlebRadaev/retouchbilling/pkg/logger"
	"github.com/GlebRadaev/retouchbilling/pkg/payment"
)

const lockPrefix = "retouch-billing:lock:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	batcher  *batcher.Service
	notifier *notify.Service
	redis    *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return fmt.Errorf("can't init payment provider: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	lock, err := a.newLocker(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.notifier = notify.New(cfg.EmailServiceURL, a.repo.UserRepo, clients.NewHTTPClient(), notify.NewWorkerPool(cfg.NotifyWorkers))
	a.srv = service.New(a.repo, provider, a.notifier, defaultSettings(cfg))
	a.batcher = batcher.New(
		a.repo.UserRepo,
		a.srv.InvoiceService,
		a.srv.Settings,
		a.notifier,
		lock,
		cfg.BatchInterval,
		cfg.BatchTimeout,
	)
	a.api = handlers.New(a.srv, a.batcher, auth.NewJWTService(cfg.JWTSecret))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startBatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("paymentProvider", cfg.PaymentProvider),
		zap.Bool("redisLock", a.redis != nil),
	)
	return nil
}

func defaultSettings(cfg *config.Config) domain.Settings {
	return domain.Settings{
		Currency:      cfg.Currency,
		PricePerPhoto: cfg.PricePerPhoto,
	}
}

func newProvider(cfg *config.Config) (payment.Provider, error) {
	switch cfg.PaymentProvider {
	case config.PaymentProviderStripe:
		if cfg.StripeSecretKey == "" || cfg.WebhookSecret == "" {
			return nil, fmt.Errorf("stripe provider needs STRIPE_SECRET_KEY and PAYMENT_WEBHOOK_SECRET")
		}
		return payment.NewStripeProvider(cfg.StripeSecretKey, cfg.WebhookSecret, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL), nil
	case config.PaymentProviderHMAC:
		if cfg.WebhookSecret == "" {
			return nil, fmt.Errorf("hmac provider needs PAYMENT_WEBHOOK_SECRET")
		}
		return payment.NewHMACProvider(cfg.WebhookSecret, cfg.CheckoutBaseURL, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL), nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %q", cfg.PaymentProvider)
	}
}

func (a *Application) newLocker(ctx context.Context, cfg *config.Config) (locker.Locker, error) {
	if cfg.RedisAddr == "" {
		return locker.NopLocker{}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	a.redis = client
	return locker.NewRedisLocker(client, lockPrefix), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.notifier.Close()
		if a.redis != nil {
			a.redis.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startBatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.batcher.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
