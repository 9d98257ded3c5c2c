package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
)

var _ port.CheckoutFlow = (*Service)(nil)

var (
	// ErrAppendOrder reports an order-history persistence failure. The
	// confirmation itself still stands: the append is best effort and
	// the failure is surfaced, not swallowed.
	ErrAppendOrder = errors.New("failed to append order history")

	// ErrNotificationSend reports an order-confirmation delivery
	// failure. The checkout stays in payment selection so the customer
	// can re-attempt.
	ErrNotificationSend = errors.New("failed to send order confirmation")
)

type Opt func(*Service)

// RandOpt replaces the randomness source, pinning shipping fees and
// order-number suffixes under test.
func RandOpt(rnd domain.Rand) Opt {
	return func(s *Service) {
		s.rnd = rnd
	}
}

// NowOpt replaces the clock used for order timestamps.
func NowOpt(now func() time.Time) Opt {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates the ordering flow over the injected
// collaborators: catalog snapshots, order history, the order event
// stream and the confirmation sender.
type Service struct {
	catalog  port.CatalogReader
	orders   port.OrderAppender
	events   port.OrderEventsProducer
	notifier port.ConfirmationSender
	rnd      domain.Rand
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.Checkout
}

func New(
	catalog port.CatalogReader,
	orders port.OrderAppender,
	events port.OrderEventsProducer,
	notifier port.ConfirmationSender,
	opts ...Opt,
) *Service {
	s := &Service{
		catalog:  catalog,
		orders:   orders,
		events:   events,
		notifier: notifier,
		rnd:      domain.SystemRand(),
		now:      time.Now,
		sessions: make(map[string]*domain.Checkout),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartCheckout begins a fresh journey for the session, replacing any
// previous one.
func (s *Service) StartCheckout(sessionID string) *domain.Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	co := domain.NewCheckout()
	s.sessions[sessionID] = co
	return co
}

func (s *Service) FindCheckout(sessionID string) (*domain.Checkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	co, ok := s.sessions[sessionID]
	return co, ok
}

// Search matches the keyword against a fresh catalog snapshot and
// replaces the checkout results. Blank keywords are a no-op: prior
// results stay untouched.
func (s *Service) Search(
	ctx context.Context, co *domain.Checkout, keyword string,
) error {
	const op = "Service.Search"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(keyword) == "" {
		return nil
	}

	catalog, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	matches := domain.SearchCatalog(keyword, catalog)
	if err := co.ApplySearch(keyword, matches); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ConfirmOrder assembles the priced summary from the cart and a fresh
// catalog snapshot, advances the checkout and appends the record to
// the order history. A history failure is returned alongside the
// summary wrapped in [ErrAppendOrder]; the confirmation stands. The
// order event mirror is best effort and only logged.
func (s *Service) ConfirmOrder(
	ctx context.Context, co *domain.Checkout,
) (domain.OrderSummary, error) {
	const op = "Service.ConfirmOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := co.EnsureConfirmable(); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	catalog, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return domain.OrderSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	summary := domain.AssembleOrder(
		co.Cart(), co.Region(), catalog, s.rnd, s.now(),
	)

	if err := co.BeginOrderConfirmation(summary); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	record := domain.OrderRecord{OrderSummary: summary}

	s.produceOrderEvent(ctx, record)

	if err := s.orders.AppendOrder(ctx, record); err != nil {
		log.Error("failed to append order history",
			"orderNumber", summary.OrderNumber, "err", err)
		return summary, fmt.Errorf("%s: %w: %w", op, ErrAppendOrder, err)
	}

	log.Info("order confirmed",
		"orderNumber", summary.OrderNumber, "total", summary.Total)
	return summary, nil
}

func (s *Service) produceOrderEvent(
	ctx context.Context, record domain.OrderRecord,
) {
	const op = "Service.produceOrderEvent"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceOrder(ctx, record); err != nil {
		slog.With("op", op).Error("failed to produce order event",
			"orderNumber", record.OrderNumber, "err", err)
	}
}

// SubmitPayment validates the chosen method, attempts the confirmation
// send and only then completes the checkout and clears the cart. On a
// send failure the checkout stays in payment selection and the error
// is wrapped in [ErrNotificationSend].
func (s *Service) SubmitPayment(
	ctx context.Context, co *domain.Checkout, method string,
) error {
	const op = "Service.SubmitPayment"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := co.ValidatePaymentMethod(method); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	summary, ok := co.Summary()
	if !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidTransition)
	}

	fields := confirmationFields(co, summary, method)
	if err := s.notifier.SendOrderConfirmation(ctx, fields); err != nil {
		log.Error("failed to send order confirmation",
			"orderNumber", summary.OrderNumber, "err", err)
		return fmt.Errorf("%s: %w: %w", op, ErrNotificationSend, err)
	}

	if err := co.CompletePayment(method); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout complete",
		"orderNumber", summary.OrderNumber, "paymentMethod", method)
	return nil
}

func confirmationFields(
	co *domain.Checkout, summary domain.OrderSummary, method string,
) map[string]string {
	var items []string
	for _, it := range summary.Items {
		items = append(items, fmt.Sprintf(
			"%s x %d = $%d", it.Name, it.Quantity, it.Quantity*it.UnitPrice,
		))
	}

	opt, _ := domain.PaymentOptionByMethod(method)

	return map[string]string{
		"order_number":    summary.OrderNumber,
		"order_date":      summary.Timestamp.Format("2006-01-02 15:04"),
		"region":          co.Region(),
		"items":           strings.Join(items, "\n"),
		"subtotal":        fmt.Sprintf("%d", summary.Subtotal),
		"shipping":        fmt.Sprintf("%d", summary.ShippingFee),
		"total":           fmt.Sprintf("%d", summary.Total),
		"payment_method":  opt.Name,
		"payment_details": opt.Description,
	}
}
