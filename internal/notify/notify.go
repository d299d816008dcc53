package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/pkg/clients"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

const sendTimeout = 10 * time.Second

type Message struct {
	UserID  int64
	Subject string
	Body    string
}

type Notifier interface {
	NotifyUser(ctx context.Context, msg Message)
	NotifyMany(ctx context.Context, msgs []Message)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
}

type emailRequest struct {
	To      string `json:"to"`
	Name    string `json:"name,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Service struct {
	url        string
	userRepo   UserRepo
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(url string, userRepo UserRepo, client clients.HTTPClientI, workerPool WorkerPoolI) *Service {
	return &Service{
		url:        url,
		userRepo:   userRepo,
		client:     client,
		workerPool: workerPool,
	}
}

// NotifyUser queues one message. Delivery failures are logged only.
func (s *Service) NotifyUser(ctx context.Context, msg Message) {
	if err := s.enqueue(ctx, msg); err != nil {
		zap.L().Error("can't queue notification", zap.Int64("userID", msg.UserID), zap.Error(err))
	}
}

func (s *Service) NotifyMany(ctx context.Context, msgs []Message) {
	var g errgroup.Group
	for _, msg := range msgs {
		msg := msg
		g.Go(func() error {
			return s.enqueue(ctx, msg)
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error queueing notifications", zap.Error(err))
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}

func (s *Service) enqueue(ctx context.Context, msg Message) error {
	// Tasks outlive the request that queued them.
	taskCtx := context.WithoutCancel(ctx)
	return s.workerPool.AddTask(ctx, func() error {
		sendCtx, cancel := context.WithTimeout(taskCtx, sendTimeout)
		defer cancel()
		return s.send(sendCtx, msg)
	})
}

func (s *Service) send(ctx context.Context, msg Message) error {
	if s.url == "" {
		zap.L().Info("email service is not configured, notification dropped",
			zap.Int64("userID", msg.UserID), zap.String("subject", msg.Subject))
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, msg.UserID)
	if err != nil {
		return fmt.Errorf("find user %d: %w", msg.UserID, err)
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", msg.UserID, domain.ErrNotFound)
	}

	body, err := json.Marshal(emailRequest{
		To:      user.Email,
		Name:    user.FullName,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := s.client.Post(ctx, s.url+"/api/send", headers, body)
	if err != nil {
		return fmt.Errorf("send email to user %d: %w", msg.UserID, err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("email service responded with status %d", statusCode)
	}

	zap.L().Debug("notification sent", zap.Int64("userID", msg.UserID), zap.String("subject", msg.Subject))
	return nil
}
