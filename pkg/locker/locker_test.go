package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	_ Client = (*redis.Client)(nil)
	_ Client = (*MockClient)(nil)
	_ Locker = (*RedisLocker)(nil)
	_ Locker = (*MockLocker)(nil)
	_ Locker = NopLocker{}
)

func NewMock(t *testing.T) (*RedisLocker, *MockClient) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)
	locker := NewRedisLocker(client, "retouch:")
	defer ctrl.Finish()
	return locker, client
}

func TestRedisLocker_Acquire(t *testing.T) {
	locker, client := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedOK  bool
		expectErr   bool
	}{
		{
			name: "Lock acquired",
			prepareMock: func() {
				client.EXPECT().SetNX(gomock.Any(), "retouch:deferred-invoices", gomock.Any(), time.Minute).
					Return(redis.NewBoolResult(true, nil))
			},
			expectedOK: true,
		},
		{
			name: "Lock held by another replica",
			prepareMock: func() {
				client.EXPECT().SetNX(gomock.Any(), "retouch:deferred-invoices", gomock.Any(), time.Minute).
					Return(redis.NewBoolResult(false, nil))
			},
			expectedOK: false,
		},
		{
			name: "Redis unavailable",
			prepareMock: func() {
				client.EXPECT().SetNX(gomock.Any(), "retouch:deferred-invoices", gomock.Any(), time.Minute).
					Return(redis.NewBoolResult(false, errors.New("connection refused")))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			release, ok, err := locker.Acquire(context.Background(), "deferred-invoices", time.Minute)
			if tt.expectErr {
				assert.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			if ok {
				assert.NotNil(t, release)
			} else {
				assert.Nil(t, release)
			}
		})
	}
}

func TestRedisLocker_Release(t *testing.T) {
	tests := []struct {
		name        string
		evalResult  *redis.Cmd
		expectedErr error
		expectErr   bool
	}{
		{
			name:       "Token matches",
			evalResult: redis.NewCmdResult(int64(1), nil),
		},
		{
			name:        "Lock expired and was taken over",
			evalResult:  redis.NewCmdResult(int64(0), nil),
			expectedErr: ErrNotHeld,
			expectErr:   true,
		},
		{
			name:       "Redis error",
			evalResult: redis.NewCmdResult(nil, errors.New("connection reset")),
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker, client := NewMock(t)

			var token interface{}
			client.EXPECT().SetNX(gomock.Any(), "retouch:batch", gomock.Any(), time.Second).
				DoAndReturn(func(_ context.Context, _ string, value interface{}, _ time.Duration) *redis.BoolCmd {
					token = value
					return redis.NewBoolResult(true, nil)
				})
			client.EXPECT().Eval(gomock.Any(), releaseScript, []string{"retouch:batch"}, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ []string, args ...interface{}) *redis.Cmd {
					require.Len(t, args, 1)
					assert.Equal(t, token, args[0])
					return tt.evalResult
				})

			release, ok, err := locker.Acquire(context.Background(), "batch", time.Second)
			require.NoError(t, err)
			require.True(t, ok)

			err = release(context.Background())
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestNopLocker(t *testing.T) {
	release, ok, err := NopLocker{}.Acquire(context.Background(), "any", time.Second)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, release(context.Background()))
}
