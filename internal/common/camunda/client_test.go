// internal/common/camunda/client_test.go
package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"design-missions/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() *RetryConfig {
	return &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   bool
	}{
		{name: "first attempt succeeds", errs: []error{nil}, wantCalls: 1},
		{name: "transient then success", errs: []error{errors.New("rpc error: code = Unavailable"), nil}, wantCalls: 2},
		{name: "permanent error stops immediately", errs: []error{errors.New("permission denied")}, wantCalls: 1, wantErr: true},
		{
			name:      "gives up after max retries",
			errs:      []error{errors.New("connection refused"), errors.New("connection refused"), errors.New("connection refused"), errors.New("connection refused")},
			wantCalls: 4,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), fastRetry(), func(context.Context) error {
				err := tt.errs[calls]
				calls++
				return err
			})
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rc := &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}
	err := Retry(ctx, rc, func(context.Context) error { return errors.New("deadline exceeded") })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoffDelay(t *testing.T) {
	rc := &RetryConfig{BaseDelay: time.Second, MaxDelay: 10 * time.Second}
	assert.Equal(t, time.Second, backoffDelay(rc, 0))
	assert.Equal(t, 4*time.Second, backoffDelay(rc, 2))
	assert.Equal(t, 10*time.Second, backoffDelay(rc, 5))
}

func TestIsRetryableZeebeError(t *testing.T) {
	assert.True(t, isRetryableZeebeError(errors.New("dial tcp: Connection Refused")))
	assert.True(t, isRetryableZeebeError(errors.New("context deadline exceeded")))
	assert.False(t, isRetryableZeebeError(errors.New("NOT_FOUND: job")))
}

func TestConfigFrom(t *testing.T) {
	c := ConfigFrom(config.CamundaConfig{BrokerAddress: "zeebe:26500"})
	assert.Equal(t, "zeebe:26500", c.GatewayAddress)
	assert.Equal(t, 10*time.Second, c.ConnectionTimeout)
	assert.Same(t, DefaultRetryConfig, c.RetryConfig)

	c = ConfigFrom(config.CamundaConfig{Timeout: 1500})
	assert.Equal(t, 1500*time.Millisecond, c.ConnectionTimeout)
}
