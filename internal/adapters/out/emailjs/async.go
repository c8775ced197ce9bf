package emailjs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"printdrop/internal/core/ports"
)

// AsyncNotifier hands each message to a goroutine and returns at once, so a
// slow mail provider never delays the request that placed the order.
// Failures are only logged.
type AsyncNotifier struct {
	next    ports.Notifier
	timeout time.Duration
	logger  *slog.Logger

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewAsyncNotifier(next ports.Notifier, timeout time.Duration, logger *slog.Logger) *AsyncNotifier {
	return &AsyncNotifier{
		next:    next,
		timeout: timeout,
		logger:  logger.With("component", "notifier"),
	}
}

// NotifyOrderConfirmed never fails. Messages sent after Close are dropped.
func (a *AsyncNotifier) NotifyOrderConfirmed(ctx context.Context, msg ports.OrderConfirmation) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		a.logger.WarnContext(ctx, "notifier closed, dropping confirmation", "order_id", msg.OrderID.String())
		return nil
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()

		if err := a.next.NotifyOrderConfirmed(sendCtx, msg); err != nil {
			a.logger.ErrorContext(sendCtx, "order confirmation failed",
				"order_id", msg.OrderID.String(), "error", err)
		}
	}()
	return nil
}

// Close stops accepting messages and waits for the in-flight ones.
func (a *AsyncNotifier) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.wg.Wait()
}

// Noop drops every message. It is used when mail is not configured.
type Noop struct{}

func (Noop) NotifyOrderConfirmed(context.Context, ports.OrderConfirmation) error {
	return nil
}
