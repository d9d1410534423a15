// Package wizard models the four-step order flow as an explicit state
// struct: upload, edit, product selection, checkout. Steps are strictly
// linear; each forward transition is gated on the previous step's output,
// Back returns to the immediate predecessor without clearing sibling fields,
// and StartOver discards everything.
package wizard

import (
	"errors"
	"fmt"

	"printperfect-backend/internal/models"
	"printperfect-backend/internal/pricing"
)

type Step int

const (
	StepUpload Step = iota + 1
	StepEdit
	StepProduct
	StepCheckout
)

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepEdit:
		return "edit"
	case StepProduct:
		return "product"
	case StepCheckout:
		return "checkout"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrNoImage         = errors.New("an uploaded image is required to continue")
	ErrNoProduct       = errors.New("a product type must be selected to continue")
	ErrWrongStep       = errors.New("operation not allowed at this step")
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrAtLastStep      = errors.New("already at the last step")
	ErrInvalidFilter   = errors.New("unknown filter token")
	ErrInvalidProduct  = errors.New("unknown product type or size")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 100")
)

// Wizard holds the in-progress order. The zero value is not usable; New
// returns a wizard at the upload step with all defaults applied.
type Wizard struct {
	step Step

	imageID  int
	imageURL string

	rotation int
	filter   string

	productType string
	productSize string
	quantity    int
	unitPrice   float64
	totalPrice  float64
}

func New() *Wizard {
	w := &Wizard{}
	w.reset()
	return w
}

func (w *Wizard) reset() {
	w.step = StepUpload
	w.imageID = 0
	w.imageURL = ""
	w.rotation = 0
	w.filter = "none"
	w.productType = ""
	w.productSize = "medium"
	w.quantity = 1
	w.unitPrice = 0
	w.totalPrice = 0
}

func (w *Wizard) Step() Step          { return w.step }
func (w *Wizard) ImageID() int        { return w.imageID }
func (w *Wizard) ImageURL() string    { return w.imageURL }
func (w *Wizard) Rotation() int       { return w.rotation }
func (w *Wizard) Filter() string      { return w.filter }
func (w *Wizard) ProductType() string { return w.productType }
func (w *Wizard) ProductSize() string { return w.productSize }
func (w *Wizard) Quantity() int       { return w.quantity }
func (w *Wizard) UnitPrice() float64  { return w.unitPrice }
func (w *Wizard) TotalPrice() float64 { return w.totalPrice }

// SetImage records a successful upload. Only valid at the upload step.
func (w *Wizard) SetImage(id int, url string) error {
	if w.step != StepUpload {
		return ErrWrongStep
	}
	w.imageID = id
	w.imageURL = url
	return nil
}

// Continue advances to the next step, enforcing each step's gate: upload
// requires an image, product selection requires a chosen product type. The
// edit step has no gate; any rotation/filter combination is acceptable.
func (w *Wizard) Continue() error {
	switch w.step {
	case StepUpload:
		if w.imageID == 0 {
			return ErrNoImage
		}
	case StepEdit:
		// No validation: the defaults (rotation 0, filter "none") are fine.
	case StepProduct:
		if w.productType == "" {
			return ErrNoProduct
		}
	case StepCheckout:
		return ErrAtLastStep
	}
	w.step++
	return nil
}

// Back moves to the immediate predecessor, preserving entered data.
func (w *Wizard) Back() error {
	if w.step == StepUpload {
		return ErrAtFirstStep
	}
	w.step--
	return nil
}

// StartOver resets the whole wizard to the upload step, discarding all
// in-progress data. An already-uploaded file is not deleted from storage.
func (w *Wizard) StartOver() {
	w.reset()
}

// RotateClockwise adds 90 degrees. Rotation accumulates without bound, so
// repeated turns can exceed 360 or go negative.
func (w *Wizard) RotateClockwise() { w.rotation += 90 }

// RotateCounterclockwise subtracts 90 degrees.
func (w *Wizard) RotateCounterclockwise() { w.rotation -= 90 }

// SetFilter selects one of the fixed display-filter tokens.
func (w *Wizard) SetFilter(filter string) error {
	if !pricing.ValidFilter(filter) {
		return ErrInvalidFilter
	}
	w.filter = filter
	return nil
}

// SelectProduct records the product choice, looks up the unit price and
// recomputes the running subtotal (tax and shipping are added at checkout).
func (w *Wizard) SelectProduct(productType, productSize string, quantity int) error {
	if quantity < 1 || quantity > 100 {
		return ErrInvalidQuantity
	}
	unitPrice, ok := pricing.UnitPrice(productType, productSize)
	if !ok {
		return ErrInvalidProduct
	}

	w.productType = productType
	w.productSize = productSize
	w.quantity = quantity
	w.unitPrice = unitPrice
	w.totalPrice = pricing.CalculateTotal(unitPrice, quantity, false).Total
	return nil
}

// Checkout computes the final price breakdown with tax and shipping and
// returns the order payload to submit. Only valid at the checkout step.
func (w *Wizard) Checkout(info models.CustomerInfo) (*models.CreateOrderRequest, error) {
	if w.step != StepCheckout {
		return nil, ErrWrongStep
	}

	breakdown := pricing.CalculateTotal(w.unitPrice, w.quantity, true)
	info.Shipping = breakdown.Shipping
	info.Tax = breakdown.Tax
	info.Total = breakdown.Total

	return &models.CreateOrderRequest{
		ImageID:      w.imageID,
		ProductType:  w.productType,
		ProductSize:  w.productSize,
		Quantity:     w.quantity,
		UnitPrice:    w.unitPrice,
		TotalPrice:   breakdown.Total,
		Rotation:     w.rotation,
		Filter:       w.filter,
		CustomerInfo: info,
	}, nil
}

// Complete resets the wizard after a confirmed order, returning to the
// upload step with all fields at their defaults.
func (w *Wizard) Complete() {
	w.reset()
}
