package domain

import "fmt"

// A Region is a shipping-rate zone: an inclusive fee band and a
// free-shipping subtotal threshold. Reference data, defined once.
type Region struct {
	Code                  string
	FeeMin                int
	FeeMax                int
	FreeShippingThreshold int
}

// FallbackFee applies when the region code is unrecognized.
const FallbackFee = 15

var regions = []Region{
	{"Toronto", 10, 15, 120},
	{"Ontario", 15, 20, 200},
	{"Quebec", 15, 20, 200},
	{"BritishColumbia", 20, 25, 250},
	{"NovaScotia", 20, 25, 250},
	{"Manitoba", 15, 20, 200},
	{"Alberta", 20, 25, 250},
}

// Regions returns the region table in display order.
func Regions() []Region {
	rs := make([]Region, len(regions))
	copy(rs, regions)
	return rs
}

func RegionByCode(code string) (Region, bool) {
	for _, r := range regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// ShippingFee computes the fee for an order subtotal shipped to the
// region. Unknown regions fall back to a fixed fee, never an error.
// At or above the free-shipping threshold the fee is zero; below it the
// fee is a uniform random integer in the region band, re-drawn on every
// evaluation (variable shipping by weight and distance).
func ShippingFee(regionCode string, subtotal int, rnd Rand) int {
	region, ok := RegionByCode(regionCode)
	if !ok {
		return FallbackFee
	}

	if subtotal >= region.FreeShippingThreshold {
		return 0
	}

	return region.FeeMin + rnd.IntN(region.FeeMax-region.FeeMin+1)
}

// FeeDescription renders the fee band for display surfaces,
// e.g. "fee $10-15, free over $120".
func FeeDescription(regionCode string) string {
	region, ok := RegionByCode(regionCode)
	if !ok {
		return "fee $15-20"
	}
	return fmt.Sprintf(
		"fee $%d-%d, free over $%d",
		region.FeeMin, region.FeeMax, region.FreeShippingThreshold,
	)
}
