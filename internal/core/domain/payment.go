package domain

// A PaymentOption describes a supported payment method and its display
// instructions. No money moves: the method is recorded and the
// instructions are shown to the customer.
type PaymentOption struct {
	Method       string
	Name         string
	Description  string
	Instructions string
	SurchargePct int
	RegionOnly   string
}

var paymentOptions = []PaymentOption{
	{
		Method:       "alipay",
		Name:         "Alipay",
		Description:  "10% processing surcharge",
		Instructions: "put the order number in the transfer note",
		SurchargePct: 10,
	},
	{
		Method:       "etransfer",
		Name:         "E-transfer",
		Description:  "use the order number as the password",
		Instructions: "use the order number as the transfer password",
	},
	{
		Method:       "cash",
		Name:         "Cash",
		Description:  "Toronto area only",
		Instructions: "show the order number on handover",
		RegionOnly:   "Toronto",
	},
}

// PaymentOptions returns the methods available in the region, in
// display order. Region-bound methods are hidden elsewhere.
func PaymentOptions(regionCode string) []PaymentOption {
	var opts []PaymentOption
	for _, o := range paymentOptions {
		if o.RegionOnly != "" && o.RegionOnly != regionCode {
			continue
		}
		opts = append(opts, o)
	}
	return opts
}

func PaymentOptionByMethod(method string) (PaymentOption, bool) {
	for _, o := range paymentOptions {
		if o.Method == method {
			return o, true
		}
	}
	return PaymentOption{}, false
}

// AmountDue applies the option surcharge to the order total.
func (o PaymentOption) AmountDue(total int) int {
	return total + total*o.SurchargePct/100
}
