package bootstrap

import (
	"shopfront/internal/infra/payment"
	"shopfront/internal/infra/postal"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/commands"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound HTTP clients: the payment provider and
// the postal code lookup service.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentClient,
			fx.As(new(commands.PaymentGateway)),
		),
		NewSignatureVerifier,
		fx.Annotate(
			NewPostalClient,
			fx.As(new(commands.AddressLookup)),
		),
	),
)

func NewPaymentClient(cfg config.Config) *payment.Client {
	return payment.NewClient(cfg.Payment)
}

func NewSignatureVerifier(cfg config.Config) *payment.SignatureVerifier {
	return payment.NewSignatureVerifier(cfg.Payment.WebhookSecret)
}

func NewPostalClient(cfg config.Config) *postal.Client {
	return postal.NewClient(cfg.Postal)
}
