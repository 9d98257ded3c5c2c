package domain

import (
	"fmt"
	"time"
)

// Order timestamps and order-number dates use the shop's home zone.
var orderLocation = loadOrderLocation()

func loadOrderLocation() *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

type OrderLineItem struct {
	Name      string
	Quantity  int
	UnitPrice int
}

// An OrderSummary is the immutable, priced record produced once a cart
// is confirmed. Subtotal equals the sum of unit price times quantity
// over items, priced from the catalog snapshot at assembly time.
type OrderSummary struct {
	OrderNumber   string
	Items         []OrderLineItem
	Subtotal      int
	ShippingFee   int
	Total         int
	Timestamp     time.Time
	Region        string
	PaymentMethod string
}

// An OrderRecord is the persisted form of a confirmed order: the
// summary plus the region and the payment method placeholder.
type OrderRecord struct {
	OrderSummary
}

// OrderNumber generates a conventionally unique order number in the
// form YYMMDD-RRRR: the confirmation date in the shop zone and a
// zero-padded random 4-digit suffix. Collisions are possible and not
// checked.
func OrderNumber(now time.Time, rnd Rand) string {
	date := now.In(orderLocation).Format("060102")
	return fmt.Sprintf("%s-%04d", date, rnd.IntN(10000))
}

// AssembleOrder joins the cart entries with the catalog snapshot into a
// priced summary. Products missing from the snapshot price as zero.
// The payment method is stamped later, at payment submission.
func AssembleOrder(
	cart *Cart, regionCode string, catalog []Product,
	rnd Rand, now time.Time,
) OrderSummary {
	var items []OrderLineItem
	var subtotal int
	for _, e := range cart.Entries() {
		price := PriceOf(catalog, e.ProductName)
		items = append(items, OrderLineItem{
			Name:      e.ProductName,
			Quantity:  e.Quantity,
			UnitPrice: price,
		})
		subtotal += price * e.Quantity
	}

	fee := ShippingFee(regionCode, subtotal, rnd)

	return OrderSummary{
		OrderNumber: OrderNumber(now, rnd),
		Items:       items,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
		Timestamp:   now.In(orderLocation),
		Region:      regionCode,
	}
}
