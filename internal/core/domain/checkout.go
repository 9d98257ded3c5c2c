package domain

import "strings"

type CheckoutState string

const (
	StateWelcome              CheckoutState = "welcome"
	StateSelectingPreferences CheckoutState = "selecting_preferences"
	StateConfirmingOrder      CheckoutState = "confirming_order"
	StateSelectingPayment     CheckoutState = "selecting_payment"
	StateComplete             CheckoutState = "complete"
)

func (s CheckoutState) String() string {
	return string(s)
}

// Preference categories shown during the shopping phase.
const (
	PreferenceTypes   = "types"
	PreferenceSizes   = "sizes"
	PreferenceBudgets = "budgets"
	PreferenceSpecial = "special"
)

type Preferences map[string][]string

// Toggle adds the value to the category, or removes it when present.
func (p Preferences) Toggle(category, value string) {
	current := p[category]
	for i, v := range current {
		if v == value {
			p[category] = append(current[:i], current[i+1:]...)
			return
		}
	}
	p[category] = append(current, value)
}

// A Checkout drives one customer journey through the ordering flow:
// region selection, shopping, order confirmation, payment selection
// and completion, with backward transitions. Single logical user, no
// internal locking.
type Checkout struct {
	state         CheckoutState
	region        string
	preferences   Preferences
	keyword       string
	results       []Product
	selection     []string
	cart          Cart
	summary       *OrderSummary
	paymentMethod string
}

func NewCheckout() *Checkout {
	return &Checkout{
		state:       StateWelcome,
		preferences: make(Preferences),
	}
}

func (c *Checkout) State() CheckoutState { return c.state }
func (c *Checkout) Region() string       { return c.region }
func (c *Checkout) Keyword() string      { return c.keyword }
func (c *Checkout) Results() []Product   { return c.results }
func (c *Checkout) Selection() []string  { return c.selection }

func (c *Checkout) Cart() *Cart { return &c.cart }

func (c *Checkout) Preferences() Preferences { return c.preferences }

func (c *Checkout) PaymentMethod() string { return c.paymentMethod }

// Summary returns the working order summary, present from
// ConfirmingOrder onward.
func (c *Checkout) Summary() (OrderSummary, bool) {
	if c.summary == nil {
		return OrderSummary{}, false
	}
	return *c.summary, true
}

func (c *Checkout) ensure(states ...CheckoutState) error {
	for _, s := range states {
		if c.state == s {
			return nil
		}
	}
	return ErrInvalidTransition
}

// ChooseRegion moves Welcome to SelectingPreferences. The code is not
// checked against the region table: shipping falls back softly for
// unknown regions.
func (c *Checkout) ChooseRegion(code string) error {
	if err := c.ensure(StateWelcome); err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return ErrRegionRequired
	}
	c.region = code
	c.state = StateSelectingPreferences
	return nil
}

func (c *Checkout) TogglePreference(category, value string) error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	c.preferences.Toggle(category, value)
	return nil
}

// ApplySearch replaces the search results for a re-run keyword and
// clears the selection tracked against the prior results. Callers skip
// the call entirely for blank keywords: search is a no-op on blank
// input and prior results stay.
func (c *Checkout) ApplySearch(keyword string, results []Product) error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	c.keyword = keyword
	c.results = results
	c.selection = nil
	return nil
}

// ToggleSelect marks or unmarks a product from the current results.
func (c *Checkout) ToggleSelect(name string) error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	for i, v := range c.selection {
		if v == name {
			c.selection = append(c.selection[:i], c.selection[i+1:]...)
			return nil
		}
	}
	c.selection = append(c.selection, name)
	return nil
}

// AddSelectedToCart merges every selected product into the cart in
// selection order, then clears the selection and the results view.
// The keyword is retained.
func (c *Checkout) AddSelectedToCart() error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	for _, name := range c.selection {
		c.cart.Add(name)
	}
	c.selection = nil
	c.results = nil
	return nil
}

func (c *Checkout) UpdateQuantity(index, quantity int) error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	return c.cart.UpdateQuantity(index, quantity)
}

func (c *Checkout) RemoveFromCart(index int) error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	return c.cart.Remove(index)
}

// EnsureConfirmable guards order confirmation: the customer must be
// shopping with a non-empty cart. Checked before the order assembler
// runs.
func (c *Checkout) EnsureConfirmable() error {
	if err := c.ensure(StateSelectingPreferences); err != nil {
		return err
	}
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}
	return nil
}

// BeginOrderConfirmation stores the assembled summary and moves to
// ConfirmingOrder.
func (c *Checkout) BeginOrderConfirmation(summary OrderSummary) error {
	if err := c.EnsureConfirmable(); err != nil {
		return err
	}
	c.summary = &summary
	c.state = StateConfirmingOrder
	return nil
}

func (c *Checkout) ProceedToPayment() error {
	if err := c.ensure(StateConfirmingOrder); err != nil {
		return err
	}
	c.state = StateSelectingPayment
	return nil
}

// ValidatePaymentMethod guards payment submission: the method must be
// chosen, known and available in the chosen region.
func (c *Checkout) ValidatePaymentMethod(method string) error {
	if err := c.ensure(StateSelectingPayment); err != nil {
		return err
	}
	if strings.TrimSpace(method) == "" {
		return ErrPaymentMethodRequired
	}
	opt, ok := PaymentOptionByMethod(method)
	if !ok {
		return ErrPaymentMethodUnknown
	}
	if opt.RegionOnly != "" && opt.RegionOnly != c.region {
		return ErrPaymentMethodRegion
	}
	return nil
}

// CompletePayment stamps the method on the summary and moves to
// Complete. The cart is cleared here, after the notification attempt
// resolved, so a failed send never loses order data.
func (c *Checkout) CompletePayment(method string) error {
	if err := c.ValidatePaymentMethod(method); err != nil {
		return err
	}
	c.paymentMethod = method
	c.summary.PaymentMethod = method
	c.state = StateComplete
	c.cart.Clear()
	return nil
}

// Back performs the backward transition for the current state.
func (c *Checkout) Back() error {
	switch c.state {
	case StateSelectingPreferences:
		c.region = ""
		c.state = StateWelcome
	case StateConfirmingOrder:
		c.summary = nil
		c.state = StateSelectingPreferences
	case StateSelectingPayment:
		c.state = StateConfirmingOrder
	default:
		return ErrInvalidTransition
	}
	return nil
}

// StartNewOrder resets the journey after completion: cart, keyword,
// results and the working summary are cleared, the region is retained
// and shopping resumes. Order history is untouched.
func (c *Checkout) StartNewOrder() error {
	if err := c.ensure(StateComplete); err != nil {
		return err
	}
	c.cart.Clear()
	c.keyword = ""
	c.results = nil
	c.selection = nil
	c.summary = nil
	c.paymentMethod = ""
	c.state = StateSelectingPreferences
	return nil
}
