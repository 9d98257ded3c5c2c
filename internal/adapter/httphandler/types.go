package httphandler

import (
	"time"

	"github.com/niksmo/shopfront/internal/core/domain"
)

type (
	Product struct {
		Name     string `json:"name"`
		Price    int    `json:"price"`
		Size     string `json:"size"`
		Category string `json:"category"`
		Special  bool   `json:"special"`
		ImageURL string `json:"image_url"`
	}

	CartItem struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}

	OrderItem struct {
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice int    `json:"unit_price"`
	}

	OrderSummary struct {
		OrderNumber   string      `json:"order_number"`
		Items         []OrderItem `json:"items"`
		Subtotal      int         `json:"subtotal"`
		ShippingFee   int         `json:"shipping_fee"`
		Total         int         `json:"total"`
		ConfirmedAt   time.Time   `json:"confirmed_at"`
		Region        string      `json:"region"`
		PaymentMethod string      `json:"payment_method,omitempty"`
	}

	PaymentOption struct {
		Method       string `json:"method"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Instructions string `json:"instructions"`
		AmountDue    int    `json:"amount_due"`
	}

	Region struct {
		Code           string `json:"code"`
		FeeDescription string `json:"fee_description"`
	}

	CheckoutView struct {
		State          string              `json:"state"`
		Region         string              `json:"region,omitempty"`
		Preferences    map[string][]string `json:"preferences,omitempty"`
		Keyword        string              `json:"keyword,omitempty"`
		Results        []Product           `json:"results,omitempty"`
		Selection      []string            `json:"selection,omitempty"`
		Cart           []CartItem          `json:"cart"`
		Summary        *OrderSummary       `json:"summary,omitempty"`
		PaymentOptions []PaymentOption     `json:"payment_options,omitempty"`
	}
)

type (
	RegionRequest struct {
		Region string `json:"region"`
	}

	PreferenceRequest struct {
		Category string `json:"category"`
		Value    string `json:"value"`
	}

	SearchRequest struct {
		Keyword string `json:"keyword"`
	}

	SelectRequest struct {
		Name string `json:"name"`
	}

	QuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	PaymentRequest struct {
		Method string `json:"method"`
	}
)

type RegionStats struct {
	Region  string `json:"region"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

func toProductView(v domain.Product) Product {
	return Product{
		Name:     v.Name,
		Price:    v.Price,
		Size:     v.Size,
		Category: v.Category,
		Special:  v.Special,
		ImageURL: v.ImageURL,
	}
}

func toSummaryView(v domain.OrderSummary) OrderSummary {
	s := OrderSummary{
		OrderNumber:   v.OrderNumber,
		Subtotal:      v.Subtotal,
		ShippingFee:   v.ShippingFee,
		Total:         v.Total,
		ConfirmedAt:   v.Timestamp,
		Region:        v.Region,
		PaymentMethod: v.PaymentMethod,
	}
	for _, it := range v.Items {
		s.Items = append(s.Items, OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return s
}

func toCheckoutView(co *domain.Checkout) CheckoutView {
	view := CheckoutView{
		State:       co.State().String(),
		Region:      co.Region(),
		Preferences: co.Preferences(),
		Keyword:     co.Keyword(),
		Selection:   co.Selection(),
		Cart:        []CartItem{},
	}

	for _, p := range co.Results() {
		view.Results = append(view.Results, toProductView(p))
	}

	for _, e := range co.Cart().Entries() {
		view.Cart = append(view.Cart, CartItem{
			Name:     e.ProductName,
			Quantity: e.Quantity,
		})
	}

	if summary, ok := co.Summary(); ok {
		s := toSummaryView(summary)
		view.Summary = &s

		if co.State() == domain.StateSelectingPayment {
			for _, o := range domain.PaymentOptions(co.Region()) {
				view.PaymentOptions = append(view.PaymentOptions, PaymentOption{
					Method:       o.Method,
					Name:         o.Name,
					Description:  o.Description,
					Instructions: o.Instructions,
					AmountDue:    o.AmountDue(summary.Total),
				})
			}
		}
	}

	return view
}
