package domain

type CartEntry struct {
	ProductName string
	Quantity    int
}

// A Cart is an ordered collection of entries, insertion order preserved
// for display. At most one entry exists per product name: adding an
// already carted product merges into the existing entry.
type Cart struct {
	entries []CartEntry
}

func (c *Cart) Entries() []CartEntry {
	return c.entries
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Add merges the named product into the cart: an existing entry gains
// one unit, otherwise a new entry with quantity 1 is appended.
func (c *Cart) Add(productName string) {
	for i := range c.entries {
		if c.entries[i].ProductName == productName {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, CartEntry{productName, 1})
}

// UpdateQuantity replaces the quantity at index. A non-positive
// quantity is rejected silently; quantity has no upper bound.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.entries) {
		return ErrIndexOutOfRange
	}
	if quantity <= 0 {
		return nil
	}
	c.entries[index].Quantity = quantity
	return nil
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.entries) {
		return ErrIndexOutOfRange
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.entries = nil
}

// Subtotal prices the cart against the catalog snapshot. Entries
// referencing products no longer in the catalog contribute zero.
func (c *Cart) Subtotal(catalog []Product) int {
	var sum int
	for _, e := range c.entries {
		sum += PriceOf(catalog, e.ProductName) * e.Quantity
	}
	return sum
}
