package razorpay

import (
	"context"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/usecase/shared"
)

// Widget builds checkout options for orders created by the marketplace.
type Widget struct {
	loader       *Loader
	keyID        string
	merchantName string
	themeColor   string
}

func NewWidget(cfg config.CheckoutConfig, loader *Loader) *Widget {
	return &Widget{
		loader:       loader,
		keyID:        cfg.KeyID,
		merchantName: cfg.MerchantName,
		themeColor:   cfg.ThemeColor,
	}
}

func (w *Widget) Ensure(ctx context.Context) error {
	return w.loader.Ensure(ctx)
}

func (w *Widget) ScriptURL() string {
	return w.loader.ScriptURL()
}

func (w *Widget) KeyID() string {
	return w.keyID
}

func (w *Widget) Options(order application.Order, description string, prefill shared.Prefill) shared.WidgetOptions {
	return shared.WidgetOptions{
		Key:         w.keyID,
		Amount:      order.Amount.Paise(),
		Currency:    order.Currency,
		OrderID:     order.ID,
		Name:        w.merchantName,
		Description: description,
		Prefill:     prefill,
		Theme:       shared.WidgetTheme{Color: w.themeColor},
	}
}
