package domain_test

import (
	"testing"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentOptions(t *testing.T) {
	t.Run("CashOnlyInToronto", func(t *testing.T) {
		toronto := domain.PaymentOptions("Toronto")
		require.Len(t, toronto, 3)

		alberta := domain.PaymentOptions("Alberta")
		require.Len(t, alberta, 2)
		for _, o := range alberta {
			assert.NotEqual(t, "cash", o.Method)
		}
	})

	t.Run("ByMethod", func(t *testing.T) {
		opt, ok := domain.PaymentOptionByMethod("alipay")
		require.True(t, ok)
		assert.Equal(t, 10, opt.SurchargePct)

		_, ok = domain.PaymentOptionByMethod("crypto")
		assert.False(t, ok)
	})
}

func TestAmountDue(t *testing.T) {
	alipay, _ := domain.PaymentOptionByMethod("alipay")
	etransfer, _ := domain.PaymentOptionByMethod("etransfer")

	assert.Equal(t, 110, alipay.AmountDue(100))
	assert.Equal(t, 100, etransfer.AmountDue(100))
}
