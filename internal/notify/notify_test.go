package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/retouchbilling/internal/domain"
	"github.com/GlebRadaev/retouchbilling/pkg/clients"
)

type mocks struct {
	users  *MockUserRepo
	client *clients.MockHTTPClientI
	pool   *MockWorkerPoolI
}

func NewMock(t *testing.T, url string) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:  NewMockUserRepo(ctrl),
		client: clients.NewMockHTTPClientI(ctrl),
		pool:   NewMockWorkerPoolI(ctrl),
	}
	service := New(url, m.users, m.client, m.pool)
	defer ctrl.Finish()
	return service, m
}

// runInline executes queued tasks synchronously and records their errors.
func runInline(pool *MockWorkerPoolI, taskErrs *[]error) *gomock.Call {
	return pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			*taskErrs = append(*taskErrs, task())
			return nil
		})
}

func TestService_NotifyUser(t *testing.T) {
	msg := Message{UserID: 7, Subject: "Payment received", Body: "Invoice INV-1 is paid."}

	tests := []struct {
		name        string
		url         string
		prepareMock func(m *mocks)
		expectErr   bool
	}{
		{
			name: "Email sent",
			url:  "http://mail:9025",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.User{ID: 7, Email: "anna@example.com", FullName: "Anna"}, nil)
				m.client.EXPECT().Post(gomock.Any(), "http://mail:9025/api/send", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						assert.Equal(t, "application/json", headers.Get("Content-Type"))
						var req emailRequest
						require.NoError(t, json.Unmarshal(body, &req))
						assert.Equal(t, emailRequest{
							To:      "anna@example.com",
							Name:    "Anna",
							Subject: "Payment received",
							Body:    "Invoice INV-1 is paid.",
						}, req)
						return http.StatusAccepted, nil, nil
					})
			},
		},
		{
			name:        "Email service not configured",
			url:         "",
			prepareMock: func(m *mocks) {},
		},
		{
			name: "Unknown user",
			url:  "http://mail:9025",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Email service rejects",
			url:  "http://mail:9025",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.User{ID: 7, Email: "anna@example.com"}, nil)
				m.client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Email service unreachable",
			url:  "http://mail:9025",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.User{ID: 7, Email: "anna@example.com"}, nil)
				m.client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("dial tcp: connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.url)
			var taskErrs []error
			runInline(m.pool, &taskErrs)
			tt.prepareMock(m)

			service.NotifyUser(context.Background(), msg)

			require.Len(t, taskErrs, 1)
			if tt.expectErr {
				assert.Error(t, taskErrs[0])
			} else {
				assert.NoError(t, taskErrs[0])
			}
		})
	}
}

func TestService_NotifyUser_QueueFailureIsSwallowed(t *testing.T) {
	service, m := NewMock(t, "http://mail:9025")
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(ErrPoolClosed)

	assert.NotPanics(t, func() {
		service.NotifyUser(context.Background(), Message{UserID: 1})
	})
}

func TestService_NotifyMany(t *testing.T) {
	service, m := NewMock(t, "")
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	service.NotifyMany(context.Background(), []Message{
		{UserID: 1, Subject: "Invoice"},
		{UserID: 2, Subject: "Invoice"},
		{UserID: 3, Subject: "Invoice"},
	})
}

func TestService_NotifyUser_TaskSurvivesCanceledRequest(t *testing.T) {
	service, m := NewMock(t, "")

	var queued Task
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			queued = task
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	service.NotifyUser(ctx, Message{UserID: 1})
	cancel()

	require.NotNil(t, queued)
	assert.NoError(t, queued())
}

func TestService_Close(t *testing.T) {
	service, m := NewMock(t, "")
	m.pool.EXPECT().Close()

	service.Close()
}
