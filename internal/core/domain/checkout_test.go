package domain_test

import (
	"testing"
	"time"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoppingCheckout(t *testing.T) *domain.Checkout {
	t.Helper()
	co := domain.NewCheckout()
	require.NoError(t, co.ChooseRegion("Toronto"))
	return co
}

func confirmingCheckout(t *testing.T) *domain.Checkout {
	t.Helper()
	co := shoppingCheckout(t)
	co.Cart().Add("A")
	summary := domain.AssembleOrder(
		co.Cart(), co.Region(),
		[]domain.Product{{Name: "A", Price: 50}},
		stubRand{0}, time.Now(),
	)
	require.NoError(t, co.BeginOrderConfirmation(summary))
	return co
}

func TestCheckoutChooseRegion(t *testing.T) {
	t.Run("WelcomeToShopping", func(t *testing.T) {
		co := domain.NewCheckout()
		require.Equal(t, domain.StateWelcome, co.State())

		require.NoError(t, co.ChooseRegion("Quebec"))
		assert.Equal(t, domain.StateSelectingPreferences, co.State())
		assert.Equal(t, "Quebec", co.Region())
	})

	t.Run("BlankRegionRejected", func(t *testing.T) {
		co := domain.NewCheckout()
		assert.ErrorIs(t, co.ChooseRegion("  "), domain.ErrRegionRequired)
		assert.Equal(t, domain.StateWelcome, co.State())
	})

	t.Run("OnlyFromWelcome", func(t *testing.T) {
		co := shoppingCheckout(t)
		assert.ErrorIs(
			t, co.ChooseRegion("Alberta"), domain.ErrInvalidTransition,
		)
	})
}

func TestCheckoutSearchAndSelection(t *testing.T) {
	results := []domain.Product{{Name: "A"}, {Name: "B"}}

	t.Run("ApplySearchReplacesResultsClearsSelection", func(t *testing.T) {
		co := shoppingCheckout(t)
		require.NoError(t, co.ApplySearch("a", results))
		require.NoError(t, co.ToggleSelect("A"))

		require.NoError(t, co.ApplySearch("b", results[1:]))
		assert.Empty(t, co.Selection())
		assert.Len(t, co.Results(), 1)
		assert.Equal(t, "b", co.Keyword())
	})

	t.Run("ToggleSelect", func(t *testing.T) {
		co := shoppingCheckout(t)
		require.NoError(t, co.ApplySearch("a", results))

		require.NoError(t, co.ToggleSelect("A"))
		require.NoError(t, co.ToggleSelect("B"))
		assert.Equal(t, []string{"A", "B"}, co.Selection())

		require.NoError(t, co.ToggleSelect("A"))
		assert.Equal(t, []string{"B"}, co.Selection())
	})

	t.Run("AddSelectedKeepsKeywordClearsResults", func(t *testing.T) {
		co := shoppingCheckout(t)
		require.NoError(t, co.ApplySearch("a", results))
		require.NoError(t, co.ToggleSelect("A"))
		require.NoError(t, co.ToggleSelect("A"))
		require.NoError(t, co.ToggleSelect("A"))

		require.NoError(t, co.AddSelectedToCart())

		entries := co.Cart().Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Quantity)
		assert.Empty(t, co.Selection())
		assert.Empty(t, co.Results())
		assert.Equal(t, "a", co.Keyword())
	})
}

func TestCheckoutPreferences(t *testing.T) {
	co := shoppingCheckout(t)

	require.NoError(t, co.TogglePreference(domain.PreferenceTypes, "menthol"))
	require.NoError(t, co.TogglePreference(domain.PreferenceSizes, "100s"))
	assert.Equal(t, []string{"menthol"}, co.Preferences()[domain.PreferenceTypes])

	require.NoError(t, co.TogglePreference(domain.PreferenceTypes, "menthol"))
	assert.Empty(t, co.Preferences()[domain.PreferenceTypes])
}

func TestCheckoutConfirmation(t *testing.T) {
	t.Run("EmptyCartRejected", func(t *testing.T) {
		co := shoppingCheckout(t)
		assert.ErrorIs(t, co.EnsureConfirmable(), domain.ErrEmptyCart)
	})

	t.Run("AdvancesToConfirming", func(t *testing.T) {
		co := confirmingCheckout(t)
		assert.Equal(t, domain.StateConfirmingOrder, co.State())

		summary, ok := co.Summary()
		require.True(t, ok)
		assert.Equal(t, 50, summary.Subtotal)
	})

	t.Run("SummaryAbsentBeforeConfirming", func(t *testing.T) {
		co := shoppingCheckout(t)
		_, ok := co.Summary()
		assert.False(t, ok)
	})
}

func TestCheckoutPayment(t *testing.T) {
	t.Run("RequiresMethod", func(t *testing.T) {
		co := confirmingCheckout(t)
		require.NoError(t, co.ProceedToPayment())
		assert.ErrorIs(
			t, co.ValidatePaymentMethod(""), domain.ErrPaymentMethodRequired,
		)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		co := confirmingCheckout(t)
		require.NoError(t, co.ProceedToPayment())
		assert.ErrorIs(
			t, co.ValidatePaymentMethod("crypto"),
			domain.ErrPaymentMethodUnknown,
		)
	})

	t.Run("CashOutsideToronto", func(t *testing.T) {
		co := domain.NewCheckout()
		require.NoError(t, co.ChooseRegion("Alberta"))
		co.Cart().Add("A")
		summary := domain.AssembleOrder(
			co.Cart(), co.Region(), nil, stubRand{0}, time.Now(),
		)
		require.NoError(t, co.BeginOrderConfirmation(summary))
		require.NoError(t, co.ProceedToPayment())

		assert.ErrorIs(
			t, co.ValidatePaymentMethod("cash"),
			domain.ErrPaymentMethodRegion,
		)
	})

	t.Run("CompleteClearsCart", func(t *testing.T) {
		co := confirmingCheckout(t)
		require.NoError(t, co.ProceedToPayment())
		require.NoError(t, co.CompletePayment("etransfer"))

		assert.Equal(t, domain.StateComplete, co.State())
		assert.True(t, co.Cart().IsEmpty())

		summary, ok := co.Summary()
		require.True(t, ok)
		assert.Equal(t, "etransfer", summary.PaymentMethod)
	})
}

func TestCheckoutBack(t *testing.T) {
	t.Run("ShoppingToWelcomeDiscardsRegion", func(t *testing.T) {
		co := shoppingCheckout(t)
		require.NoError(t, co.Back())
		assert.Equal(t, domain.StateWelcome, co.State())
		assert.Empty(t, co.Region())
	})

	t.Run("ConfirmingToShoppingKeepsCart", func(t *testing.T) {
		co := confirmingCheckout(t)
		require.NoError(t, co.Back())

		assert.Equal(t, domain.StateSelectingPreferences, co.State())
		assert.Equal(t, 1, co.Cart().Len())
		_, ok := co.Summary()
		assert.False(t, ok)
	})

	t.Run("PaymentToConfirmingKeepsSummary", func(t *testing.T) {
		co := confirmingCheckout(t)
		require.NoError(t, co.ProceedToPayment())
		require.NoError(t, co.Back())

		assert.Equal(t, domain.StateConfirmingOrder, co.State())
		_, ok := co.Summary()
		assert.True(t, ok)
	})

	t.Run("NoBackFromWelcome", func(t *testing.T) {
		co := domain.NewCheckout()
		assert.ErrorIs(t, co.Back(), domain.ErrInvalidTransition)
	})
}

func TestCheckoutStartNewOrder(t *testing.T) {
	co := confirmingCheckout(t)
	require.NoError(t, co.ProceedToPayment())
	require.NoError(t, co.CompletePayment("alipay"))

	require.NoError(t, co.StartNewOrder())

	assert.Equal(t, domain.StateSelectingPreferences, co.State())
	assert.Equal(t, "Toronto", co.Region()) // region retained
	assert.True(t, co.Cart().IsEmpty())
	assert.Empty(t, co.Keyword())
	assert.Empty(t, co.Results())
	_, ok := co.Summary()
	assert.False(t, ok)
}
