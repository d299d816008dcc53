package batcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/internal/notify"
	"github.com/GlebRadaev/retouchbilling/internal/service/settingsservice"
	"github.com/GlebRadaev/retouchbilling/pkg/locker"
)

//go:generate mockgen -source=batcher.go -destination=mock_batcher.go -package=batcher

const lockKey = "deferred-invoices"

var ErrAlreadyRunning = fmt.Errorf("%w: deferred invoicing is already running", domain.ErrConflict)

type UserRepo interface {
	FindDeferredBilling(ctx context.Context) ([]int64, error)
}

type Invoicer interface {
	InvoiceDeliveredOrders(ctx context.Context, userID int64, settings domain.Settings) (*domain.Invoice, error)
}

type Result struct {
	Success        bool
	ProcessedUsers int
	FailedUsers    int
}

type Service struct {
	users    UserRepo
	invoicer Invoicer
	settings settingsservice.Resolver
	notifier notify.Notifier
	locker   locker.Locker
	interval time.Duration
	timeout  time.Duration
	running  atomic.Bool
}

func New(
	users UserRepo,
	invoicer Invoicer,
	settings settingsservice.Resolver,
	notifier notify.Notifier,
	lock locker.Locker,
	interval, timeout time.Duration,
) *Service {
	return &Service{
		users:    users,
		invoicer: invoicer,
		settings: settings,
		notifier: notifier,
		locker:   lock,
		interval: interval,
		timeout:  timeout,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deferred invoice batcher started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Error("Deferred invoice batcher disabled: non-positive interval", zap.Duration("interval", s.interval))
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping batcher")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				zap.L().Error("Deferred invoice run failed", zap.Error(err))
			}
		}
	}
}

// RunOnce invoices the delivered orders of every deferred-billing user.
// Users are handled one at a time, each in its own transaction; a failed
// user is logged and skipped.
func (s *Service) RunOnce(ctx context.Context) (Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRunning
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	release, ok, err := s.locker.Acquire(ctx, lockKey, s.timeout)
	if err != nil {
		return Result{}, fmt.Errorf("%w: acquire batch lock: %v", domain.ErrExternal, err)
	}
	if !ok {
		return Result{}, ErrAlreadyRunning
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			zap.L().Warn("Failed to release batch lock", zap.Error(err))
		}
	}()

	settings, err := s.settings.Resolve(ctx)
	if err != nil {
		zap.L().Warn("Using default settings", zap.Error(err))
	}

	userIDs, err := s.users.FindDeferredBilling(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch deferred billing users", zap.Error(err))
		return Result{}, err
	}

	var result Result
	var messages []notify.Message
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			zap.L().Warn("Deferred invoice run interrupted", zap.Error(ctx.Err()))
			break
		}

		invoice, err := s.invoicer.InvoiceDeliveredOrders(ctx, userID, settings)
		if err != nil {
			result.FailedUsers++
			zap.L().Error("Failed to invoice user", zap.Int64("userID", userID), zap.Error(err))
			continue
		}
		if invoice == nil {
			continue
		}

		result.ProcessedUsers++
		messages = append(messages, notify.Message{
			UserID:  userID,
			Subject: "New invoice " + invoice.InvoiceNumber,
			Body: fmt.Sprintf("Invoice %s for your delivered orders is due on %s.",
				invoice.InvoiceNumber, invoice.DueDate.Format(time.DateOnly)),
		})
	}

	if len(messages) > 0 {
		s.notifier.NotifyMany(ctx, messages)
	}

	result.Success = true
	zap.L().Info("Deferred invoice run finished",
		zap.Int("users", len(userIDs)),
		zap.Int("processedUsers", result.ProcessedUsers),
		zap.Int("failedUsers", result.FailedUsers),
	)
	return result, nil
}
