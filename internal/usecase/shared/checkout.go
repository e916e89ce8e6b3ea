package shared

import (
	"context"

	"internship-checkout/internal/domain/application"
)

// CheckoutWidget prepares the browser-side payment widget.
type CheckoutWidget interface {
	// Ensure fails with errs.ErrCheckoutUnavailable when the widget cannot be loaded.
	Ensure(ctx context.Context) error
	Options(order application.Order, description string, prefill Prefill) WidgetOptions
	ScriptURL() string
	KeyID() string
}

type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type WidgetTheme struct {
	Color string `json:"color,omitempty"`
}

// WidgetOptions is handed to the widget unchanged; Amount is in paise.
type WidgetOptions struct {
	Key         string      `json:"key"`
	Amount      int64       `json:"amount"`
	Currency    string      `json:"currency"`
	OrderID     string      `json:"order_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Prefill     Prefill     `json:"prefill"`
	Theme       WidgetTheme `json:"theme"`
}
