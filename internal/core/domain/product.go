package domain

type Product struct {
	Name     string
	Price    int
	Size     string
	Category string
	Special  bool
	ImageURL string
}

// PriceOf returns the price of the named product in the catalog snapshot.
// A product missing from the snapshot prices as zero.
func PriceOf(catalog []Product, name string) int {
	for _, p := range catalog {
		if p.Name == name {
			return p.Price
		}
	}
	return 0
}
