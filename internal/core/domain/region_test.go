package domain_test

import (
	"testing"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	rnd := domain.SystemRand()

	t.Run("FreeAtThreshold", func(t *testing.T) {
		assert.Zero(t, domain.ShippingFee("Toronto", 120, rnd))
	})

	t.Run("FreeAboveThreshold", func(t *testing.T) {
		assert.Zero(t, domain.ShippingFee("Toronto", 500, rnd))
	})

	t.Run("WithinBandBelowThreshold", func(t *testing.T) {
		for range 50 {
			fee := domain.ShippingFee("Toronto", 119, rnd)
			assert.GreaterOrEqual(t, fee, 10)
			assert.LessOrEqual(t, fee, 15)
		}
	})

	t.Run("UnknownRegionFallback", func(t *testing.T) {
		assert.Equal(t, 15, domain.ShippingFee("Mars", 0, rnd))
		assert.Equal(t, 15, domain.ShippingFee("Mars", 10000, rnd))
	})

	t.Run("PinnedRand", func(t *testing.T) {
		rnd := stubRand{3}
		assert.Equal(t, 13, domain.ShippingFee("Toronto", 100, rnd))
	})
}

func TestFeeDescription(t *testing.T) {
	assert.Equal(
		t, "fee $10-15, free over $120", domain.FeeDescription("Toronto"),
	)
	assert.Equal(t, "fee $15-20", domain.FeeDescription("Mars"))
}

func TestRegions(t *testing.T) {
	rs := domain.Regions()
	assert.Len(t, rs, 7)
	assert.Equal(t, "Toronto", rs[0].Code)

	region, ok := domain.RegionByCode("Alberta")
	assert.True(t, ok)
	assert.Equal(t, 250, region.FreeShippingThreshold)

	_, ok = domain.RegionByCode("Mars")
	assert.False(t, ok)
}

// stubRand always returns its fixed value.
type stubRand struct {
	v int
}

func (r stubRand) IntN(int) int { return r.v }
