package checkout

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoShippingMethod = errors.New("no shipping method selected")
	ErrAtInitialStage   = errors.New("already at the first stage")
	ErrWrongStage       = errors.New("operation not valid for current stage")
)

type Stage string

const (
	StageCartReview     Stage = "cart_review"
	StageAddress        Stage = "address"
	StageShippingMethod Stage = "shipping_method"
	StagePayment        Stage = "payment"
	StageConfirmation   Stage = "confirmation"
)

// stageOrder is strictly linear; no skipping.
var stageOrder = []Stage{
	StageCartReview,
	StageAddress,
	StageShippingMethod,
	StagePayment,
	StageConfirmation,
}

func (s Stage) index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Flow is the customer-facing checkout wizard. One stage is active at a
// time; forward transitions are gated by per-stage validators, Back is
// always permitted from any non-initial stage.
type Flow struct {
	stage          Stage
	address        Address
	shippingMethod string
}

func NewFlow() *Flow {
	return &Flow{stage: StageCartReview}
}

func (f *Flow) Stage() Stage           { return f.stage }
func (f *Flow) Address() Address       { return f.address }
func (f *Flow) ShippingMethod() string { return f.shippingMethod }

// SubmitCartReview advances past cart review. An empty cart keeps the
// customer on the review stage.
func (f *Flow) SubmitCartReview(cartEmpty bool) error {
	if f.stage != StageCartReview {
		return ErrWrongStage
	}
	if cartEmpty {
		return ErrEmptyCart
	}
	f.stage = StageAddress
	return nil
}

func (f *Flow) SubmitAddress(addr Address) error {
	if f.stage != StageAddress {
		return ErrWrongStage
	}
	if err := addr.Validate(); err != nil {
		return err
	}
	f.address = addr
	f.stage = StageShippingMethod
	return nil
}

func (f *Flow) SubmitShippingMethod(method string) error {
	if f.stage != StageShippingMethod {
		return ErrWrongStage
	}
	if method == "" {
		return ErrNoShippingMethod
	}
	f.shippingMethod = method
	f.stage = StagePayment
	return nil
}

// AtPayment reports whether the flow is ready to hand off to the payment
// provider. The confirmation stage is never reached by a forward
// transition; the customer arrives there only through the post-payment
// redirect route.
func (f *Flow) AtPayment() bool {
	return f.stage == StagePayment
}

// Back returns exactly one step and is unguarded.
func (f *Flow) Back() error {
	i := f.stage.index()
	if i <= 0 {
		return ErrAtInitialStage
	}
	f.stage = stageOrder[i-1]
	return nil
}

// UpdateAddressDraft stores partial address input without validation, so
// autofill and manual edits can interleave before the stage is submitted.
func (f *Flow) UpdateAddressDraft(addr Address) {
	f.address = addr
}
