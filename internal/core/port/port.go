package port

import (
	"context"

	"github.com/niksmo/shopfront/internal/core/domain"
)

// CatalogReader exposes the product catalog as a cheap point-in-time
// snapshot, re-read before each search and each order confirmation.
type CatalogReader interface {
	ListProducts(context.Context) ([]domain.Product, error)
}

// CatalogStore is the admin-facing write side of the catalog.
type CatalogStore interface {
	CatalogReader
	UpsertProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, name string) error
}

// OrderAppender persists confirmed orders to the order history.
type OrderAppender interface {
	AppendOrder(context.Context, domain.OrderRecord) error
}

// OrderHistory is the admin-facing read side of the order history.
type OrderHistory interface {
	ListOrders(context.Context) ([]domain.OrderRecord, error)
}

// OrderEventsProducer mirrors confirmed orders onto the order stream,
// best effort.
type OrderEventsProducer interface {
	ProduceOrder(context.Context, domain.OrderRecord) error
}

// ConfirmationSender delivers the order confirmation, one attempt per
// checkout call.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, fields map[string]string) error
}

// AdminGate answers whether a presented credential grants access to
// admin-only surfaces.
type AdminGate interface {
	IsAdmin(token string) bool
}

// RegionStats serves aggregated per-region order counters.
type RegionStats interface {
	RegionStats(regionCode string) (orders int64, revenue int64, err error)
}

// CheckoutFlow is the inbound surface of the ordering flow, one
// checkout journey per session.
type CheckoutFlow interface {
	StartCheckout(sessionID string) *domain.Checkout
	FindCheckout(sessionID string) (*domain.Checkout, bool)
	Search(ctx context.Context, co *domain.Checkout, keyword string) error
	ConfirmOrder(ctx context.Context, co *domain.Checkout) (domain.OrderSummary, error)
	SubmitPayment(ctx context.Context, co *domain.Checkout, method string) error
}
