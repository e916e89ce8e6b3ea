package components

import (
	"log/slog"

	"internship-checkout/internal/infra/cache"
	"internship-checkout/internal/infra/gateway/razorpay"
	"internship-checkout/internal/infra/marketplace"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

// RepositoryModule wires the adapters that are not Postgres: redis caches,
// the marketplace API and the checkout widget.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Redis
		fx.Annotate(
			cache.NewCatalogStore,
			fx.As(new(shared.CouponCatalogCache)),
		),
		fx.Annotate(
			cache.NewSnapshotStore,
			fx.As(new(shared.SnapshotStore)),
		),
		// Marketplace
		fx.Annotate(
			NewMarketplaceClient,
			fx.As(new(shared.MarketplaceClient)),
		),
		// Checkout widget
		NewCheckoutLoader,
		fx.Annotate(
			NewCheckoutWidget,
			fx.As(new(shared.CheckoutWidget)),
		),
	),
)

func NewMarketplaceClient(cfg config.Config, logger *slog.Logger) *marketplace.Client {
	return marketplace.NewClient(cfg.Marketplace, nil, logger)
}

func NewCheckoutLoader(cfg config.Config, logger *slog.Logger) *razorpay.Loader {
	return razorpay.NewLoader(cfg.Checkout, nil, logger)
}

func NewCheckoutWidget(cfg config.Config, loader *razorpay.Loader) *razorpay.Widget {
	return razorpay.NewWidget(cfg.Checkout, loader)
}
