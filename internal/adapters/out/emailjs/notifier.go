// Package emailjs sends order confirmations through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PrivateKey string
	Timeout    time.Duration
}

// Enabled reports whether enough settings are present to send mail.
func (c Config) Enabled() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PrivateKey != ""
}

type Notifier struct {
	cfg    Config
	client *http.Client
}

func NewNotifier(cfg Config) *Notifier {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Notifier{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	ToEmail      string `json:"to_email"`
	CustomerName string `json:"customer_name"`
	OrderID      string `json:"order_id"`
	TotalAmount  int64  `json:"total_amount"`
}

func (n *Notifier) NotifyOrderConfirmed(ctx context.Context, msg ports.OrderConfirmation) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:  n.cfg.ServiceID,
		TemplateID: n.cfg.TemplateID,
		UserID:     n.cfg.PrivateKey,
		TemplateParams: templateParams{
			ToEmail:      msg.Email,
			CustomerName: msg.CustomerName,
			OrderID:      msg.OrderID.String(),
			TotalAmount:  msg.Total.Amount(),
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.NewDependencyFailedError("emailjs", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.NewDependencyFailedError("emailjs",
			fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(detail)))
	}
	return nil
}
