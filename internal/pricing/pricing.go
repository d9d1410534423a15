package pricing

// Flat shipping fee and sales tax rate applied at checkout.
const (
	ShippingFee = 4.99
	TaxRate     = 0.08
)

// Breakdown is the price summary shown to the customer and embedded in the
// order at placement time.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ProductPricing is the unit price table keyed by product type and size,
// served verbatim by GET /api/pricing.
var ProductPricing = map[string]map[string]float64{
	"postcard": {
		"small":  1.50,
		"medium": 2.50,
		"large":  3.50,
	},
	"poster": {
		"small":  12.99,
		"medium": 19.99,
		"large":  29.99,
	},
}

// Filters maps the accepted display-filter tokens to their labels. Filters
// are a browser-side CSS transform only and are never applied to the stored
// image bytes.
var Filters = map[string]string{
	"none":             "None",
	"grayscale(100%)":  "B&W",
	"sepia(70%)":       "Sepia",
	"brightness(120%)": "Bright",
	"contrast(150%)":   "Contrast",
	"saturate(200%)":   "Vibrant",
}

// CalculateTotal computes the price breakdown for a line item. Shipping and
// tax are only added at checkout; step-3 live subtotals pass false.
func CalculateTotal(unitPrice float64, quantity int, includeTaxAndShipping bool) Breakdown {
	subtotal := unitPrice * float64(quantity)

	var shipping, tax float64
	if includeTaxAndShipping {
		shipping = ShippingFee
		tax = subtotal * TaxRate
	}

	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// UnitPrice looks up the unit price for a product type and size. The second
// return value reports whether the combination exists.
func UnitPrice(productType, productSize string) (float64, bool) {
	sizes, ok := ProductPricing[productType]
	if !ok {
		return 0, false
	}
	price, ok := sizes[productSize]
	return price, ok
}

// ValidProductType reports whether productType is a known product.
func ValidProductType(productType string) bool {
	_, ok := ProductPricing[productType]
	return ok
}

// ValidProductSize reports whether productSize is a known size.
func ValidProductSize(productSize string) bool {
	switch productSize {
	case "small", "medium", "large":
		return true
	}
	return false
}

// ValidFilter reports whether filter is one of the accepted tokens.
func ValidFilter(filter string) bool {
	_, ok := Filters[filter]
	return ok
}
