package commands

import (
	"context"
	"log/slog"

	"shopfront/internal/domain/checkout"
	"shopfront/internal/infra"
	"shopfront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStage    = errs.New("invalid checkout stage")
	ErrStageValidation = errs.New("checkout stage validation failed")
)

type AdvanceRequest struct {
	Address        *checkout.Address
	ShippingMethod string
	SuccessURL     string
	CancelURL      string
}

type FlowView struct {
	Stage          checkout.Stage
	Address        checkout.Address
	ShippingMethod string
}

type AdvanceResult struct {
	Flow        FlowView
	RedirectURL string // set only when the payment stage hands off to the provider
	SessionID   string
}

type CheckoutFlowCommands interface {
	GetFlow(ownerID uuid.UUID) FlowView
	Advance(ctx context.Context, ownerID uuid.UUID, req AdvanceRequest) (*AdvanceResult, error)
	Back(ownerID uuid.UUID) (*FlowView, error)
	LookupPostalCode(ctx context.Context, ownerID uuid.UUID, postalCode string) (*checkout.PostalLookupResult, error)
}

type checkoutFlowUseCaseImpl struct {
	flows    FlowStore
	carts    CartRepository
	checkout CheckoutCommands
	lookup   AddressLookup
}

func NewCheckoutFlowCommands(flows FlowStore, carts CartRepository, checkoutCommands CheckoutCommands, lookup AddressLookup) CheckoutFlowCommands {
	return &checkoutFlowUseCaseImpl{
		flows:    flows,
		carts:    carts,
		checkout: checkoutCommands,
		lookup:   lookup,
	}
}

func (uc *checkoutFlowUseCaseImpl) GetFlow(ownerID uuid.UUID) FlowView {
	return toFlowView(uc.loadFlow(ownerID))
}

// Advance runs the validator of the current stage and moves one step
// forward. The payment stage is terminal: instead of a normal transition it
// invokes the session initiator and returns the provider redirect URL.
func (uc *checkoutFlowUseCaseImpl) Advance(ctx context.Context, ownerID uuid.UUID, req AdvanceRequest) (*AdvanceResult, error) {
	f := uc.loadFlow(ownerID)

	switch f.Stage() {
	case checkout.StageCartReview:
		empty, err := uc.cartIsEmpty(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if err := f.SubmitCartReview(empty); err != nil {
			return nil, errs.Mark(err, ErrStageValidation)
		}

	case checkout.StageAddress:
		if req.Address == nil {
			return nil, errs.Mark(checkout.ErrMissingField, ErrStageValidation)
		}
		if err := f.SubmitAddress(*req.Address); err != nil {
			return nil, errs.Mark(err, ErrStageValidation)
		}

	case checkout.StageShippingMethod:
		if err := f.SubmitShippingMethod(req.ShippingMethod); err != nil {
			return nil, errs.Mark(err, ErrStageValidation)
		}

	case checkout.StagePayment:
		session, err := uc.checkout.CreateSession(ctx, ownerID, req.SuccessURL, req.CancelURL)
		if err != nil {
			return nil, err
		}
		uc.flows.Save(ownerID, f)
		return &AdvanceResult{
			Flow:        toFlowView(f),
			RedirectURL: session.RedirectURL,
			SessionID:   session.SessionID,
		}, nil

	default:
		return nil, ErrInvalidStage
	}

	uc.flows.Save(ownerID, f)
	return &AdvanceResult{Flow: toFlowView(f)}, nil
}

func (uc *checkoutFlowUseCaseImpl) Back(ownerID uuid.UUID) (*FlowView, error) {
	f := uc.loadFlow(ownerID)
	if err := f.Back(); err != nil {
		return nil, errs.Mark(err, ErrInvalidStage)
	}
	uc.flows.Save(ownerID, f)
	view := toFlowView(f)
	return &view, nil
}

// LookupPostalCode is advisory autofill. A failed lookup returns the error
// to the caller but leaves the stored draft untouched, so manual entry is
// never blocked.
func (uc *checkoutFlowUseCaseImpl) LookupPostalCode(ctx context.Context, ownerID uuid.UUID, postalCode string) (*checkout.PostalLookupResult, error) {
	if !checkout.IsLookupTriggered(postalCode) {
		return nil, nil
	}

	result, err := uc.lookup.Lookup(ctx, postalCode)
	if err != nil {
		slog.Warn("postal code lookup failed", "postal_code", postalCode, "error", err)
		return nil, err
	}

	f := uc.loadFlow(ownerID)
	if f.Stage() == checkout.StageAddress {
		addr := f.Address()
		addr.PostalCode = postalCode
		addr.ApplyLookup(*result)
		f.UpdateAddressDraft(addr)
		uc.flows.Save(ownerID, f)
	}
	return result, nil
}

func (uc *checkoutFlowUseCaseImpl) loadFlow(ownerID uuid.UUID) *checkout.Flow {
	if f := uc.flows.Get(ownerID); f != nil {
		return f
	}
	f := checkout.NewFlow()
	uc.flows.Save(ownerID, f)
	return f
}

func (uc *checkoutFlowUseCaseImpl) cartIsEmpty(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	c, err := uc.carts.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return true, nil
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.IsEmpty(), nil
}

func toFlowView(f *checkout.Flow) FlowView {
	return FlowView{
		Stage:          f.Stage(),
		Address:        f.Address(),
		ShippingMethod: f.ShippingMethod(),
	}
}
