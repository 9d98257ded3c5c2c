package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberRe = regexp.MustCompile(`^\d{6}-\d{4}$`)

func TestOrderNumber(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		for range 20 {
			n := domain.OrderNumber(time.Now(), domain.SystemRand())
			assert.Regexp(t, orderNumberRe, n)
		}
	})

	t.Run("ZeroPaddedSuffix", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		n := domain.OrderNumber(now, stubRand{7})
		assert.Equal(t, "260901-0007", n)
	})
}

func TestAssembleOrder(t *testing.T) {
	catalog := []domain.Product{
		{Name: "A", Price: 50},
		{Name: "B", Price: 30},
	}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("JoinsAndTotals", func(t *testing.T) {
		var cart domain.Cart
		cart.Add("A")
		cart.Add("A")
		cart.Add("B")

		s := domain.AssembleOrder(&cart, "Toronto", catalog, stubRand{2}, now)

		require.Len(t, s.Items, 2)
		assert.Equal(t, domain.OrderLineItem{"A", 2, 50}, s.Items[0])
		assert.Equal(t, domain.OrderLineItem{"B", 1, 30}, s.Items[1])
		assert.Equal(t, 130, s.Subtotal)
		assert.Equal(t, 0, s.ShippingFee) // 130 >= 120, free shipping
		assert.Equal(t, 130, s.Total)
		assert.Equal(t, "Toronto", s.Region)
		assert.Empty(t, s.PaymentMethod)
		assert.Regexp(t, orderNumberRe, s.OrderNumber)
	})

	t.Run("SubtotalMatchesCart", func(t *testing.T) {
		var cart domain.Cart
		cart.Add("A")
		cart.Add("B")
		cart.Add("B")

		s := domain.AssembleOrder(&cart, "Toronto", catalog, stubRand{0}, now)
		assert.Equal(t, cart.Subtotal(catalog), s.Subtotal)
	})

	t.Run("TotalIsSubtotalPlusFee", func(t *testing.T) {
		var cart domain.Cart
		cart.Add("A")

		s := domain.AssembleOrder(
			&cart, "Toronto", catalog, domain.SystemRand(), now,
		)
		assert.Equal(t, s.Subtotal+s.ShippingFee, s.Total)
		assert.GreaterOrEqual(t, s.ShippingFee, 10)
		assert.LessOrEqual(t, s.ShippingFee, 15)
	})

	t.Run("MissingProductPricesZero", func(t *testing.T) {
		var cart domain.Cart
		cart.Add("gone")

		s := domain.AssembleOrder(&cart, "Mars", catalog, stubRand{0}, now)
		require.Len(t, s.Items, 1)
		assert.Zero(t, s.Items[0].UnitPrice)
		assert.Zero(t, s.Subtotal)
		assert.Equal(t, domain.FallbackFee, s.ShippingFee)
	})
}
