//go:build unit

package razorpay

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"
	"internship-checkout/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Ensure(t *testing.T) {
	t.Run("probes once and remembers success", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("/* checkout */"))
		}))
		defer srv.Close()

		loader := NewLoader(config.CheckoutConfig{ScriptURL: srv.URL, ProbeScript: true}, nil, nil)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, loader.Ensure(t.Context()))
			}()
		}
		wg.Wait()
		require.NoError(t, loader.Ensure(t.Context()))

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("failure is not cached and fails closed", func(t *testing.T) {
		var healthy atomic.Bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !healthy.Load() {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		loader := NewLoader(config.CheckoutConfig{ScriptURL: srv.URL, ProbeScript: true}, nil, nil)

		err := loader.Ensure(t.Context())
		testutil.AssertIs(t, err, errs.ErrCheckoutUnavailable)

		healthy.Store(true)
		assert.NoError(t, loader.Ensure(t.Context()))
	})

	t.Run("probing disabled", func(t *testing.T) {
		loader := NewLoader(config.CheckoutConfig{ScriptURL: "http://127.0.0.1:1/none.js", ProbeScript: false}, nil, nil)
		assert.NoError(t, loader.Ensure(t.Context()))
	})
}

func TestWidget_Options(t *testing.T) {
	cfg := config.CheckoutConfig{KeyID: "rzp_test_key", MerchantName: "Internship Portal", ThemeColor: "#3399cc"}
	widget := NewWidget(cfg, NewLoader(cfg, nil, nil))

	amount, err := money.FromFloat(499.99)
	require.NoError(t, err)

	opts := widget.Options(
		application.Order{ID: "order_1", Amount: amount, Currency: "INR"},
		"Backend Internship",
		shared.Prefill{Name: "Asha", Email: "asha@example.com"},
	)

	assert.Equal(t, shared.WidgetOptions{
		Key:         "rzp_test_key",
		Amount:      49999,
		Currency:    "INR",
		OrderID:     "order_1",
		Name:        "Internship Portal",
		Description: "Backend Internship",
		Prefill:     shared.Prefill{Name: "Asha", Email: "asha@example.com"},
		Theme:       shared.WidgetTheme{Color: "#3399cc"},
	}, opts)
}
