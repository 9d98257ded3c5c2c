package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/shopfront/internal/core/port"
)

var _ port.ConfirmationSender = (*Mailer)(nil)

type httpDoer interface {
	Do(r *http.Request) (*http.Response, error)
}

// A Mailer delivers order confirmations through an HTTP mail relay.
// One attempt per call: retrying is the customer's decision, made from
// the payment screen.
type Mailer struct {
	cl        httpDoer
	endpoint  string
	serviceID string
	template  string
	userID    string
}

type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	UserID     string
	Timeout    time.Duration
}

func New(cfg Config) Mailer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return Mailer{
		cl:        &http.Client{Timeout: timeout},
		endpoint:  cfg.Endpoint,
		serviceID: cfg.ServiceID,
		template:  cfg.TemplateID,
		userID:    cfg.UserID,
	}
}

type relayPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (m Mailer) SendOrderConfirmation(
	ctx context.Context, fields map[string]string,
) error {
	const op = "Mailer.SendOrderConfirmation"
	log := slog.With("op", op)

	payload := relayPayload{
		ServiceID:      m.serviceID,
		TemplateID:     m.template,
		UserID:         m.userID,
		TemplateParams: fields,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, m.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.cl.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Error("failed to close response body", "err", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: relay responded %s", op, res.Status)
	}

	log.Info("confirmation sent", "orderNumber", fields["order_number"])
	return nil
}
