package emailjs_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"printdrop/internal/adapters/out/emailjs"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmation(t *testing.T) ports.OrderConfirmation {
	t.Helper()
	total, err := kernel.NewMoney(65)
	require.NoError(t, err)
	return ports.OrderConfirmation{
		Email:        "asha@example.com",
		CustomerName: "Asha Rao",
		OrderID:      kernel.NewUUID(),
		Total:        total,
	}
}

func TestNotifierSendsTemplateParams(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, "OK")
	}))
	defer server.Close()

	msg := confirmation(t)
	n := emailjs.NewNotifier(emailjs.Config{
		Endpoint:   server.URL,
		ServiceID:  "svc",
		TemplateID: "tpl",
		PrivateKey: "key",
	})

	require.NoError(t, n.NotifyOrderConfirmed(context.Background(), msg))

	assert.Equal(t, "svc", got["service_id"])
	assert.Equal(t, "tpl", got["template_id"])
	assert.Equal(t, "key", got["user_id"])
	params := got["template_params"].(map[string]any)
	assert.Equal(t, "asha@example.com", params["to_email"])
	assert.Equal(t, "Asha Rao", params["customer_name"])
	assert.Equal(t, msg.OrderID.String(), params["order_id"])
	assert.InDelta(t, 65, params["total_amount"], 0)
}

func TestNotifierReportsProviderErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer server.Close()

	n := emailjs.NewNotifier(emailjs.Config{Endpoint: server.URL, ServiceID: "s", TemplateID: "t", PrivateKey: "k"})

	err := n.NotifyOrderConfirmed(context.Background(), confirmation(t))

	require.ErrorIs(t, err, errs.ErrDependencyFailed)
	assert.Contains(t, err.Error(), "Public Key is invalid")
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, emailjs.Config{}.Enabled())
	assert.False(t, emailjs.Config{ServiceID: "s", TemplateID: "t"}.Enabled())
	assert.True(t, emailjs.Config{ServiceID: "s", TemplateID: "t", PrivateKey: "k"}.Enabled())
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderConfirmed(ctx context.Context, msg ports.OrderConfirmation) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestAsyncNotifierDeliversInBackground(t *testing.T) {
	msg := confirmation(t)
	next := new(MockNotifier)
	next.On("NotifyOrderConfirmed", mock.Anything, msg).Return(errors.New("smtp down")).Once()

	async := emailjs.NewAsyncNotifier(next, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, async.NotifyOrderConfirmed(ctx, msg))
	cancel()
	async.Close()

	next.AssertExpectations(t)
}

type countingNotifier struct{ calls atomic.Int32 }

func (c *countingNotifier) NotifyOrderConfirmed(ctx context.Context, _ ports.OrderConfirmation) error {
	c.calls.Add(1)
	return ctx.Err()
}

func TestAsyncNotifierDropsAfterClose(t *testing.T) {
	next := &countingNotifier{}
	async := emailjs.NewAsyncNotifier(next, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	async.Close()

	require.NoError(t, async.NotifyOrderConfirmed(context.Background(), confirmation(t)))

	assert.Equal(t, int32(0), next.calls.Load())
}
