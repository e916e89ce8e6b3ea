package razorpay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

const probeTimeout = 10 * time.Second

// Loader makes sure the checkout script is reachable before any order is
// handed to the browser. A successful probe is remembered for the life of
// the process; a failed one is not.
type Loader struct {
	httpClient *http.Client
	scriptURL  string
	probe      bool
	ready      atomic.Bool
	group      singleflight.Group
	logger     *slog.Logger
}

func NewLoader(cfg config.CheckoutConfig, httpClient *http.Client, logger *slog.Logger) *Loader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: probeTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		httpClient: httpClient,
		scriptURL:  cfg.ScriptURL,
		probe:      cfg.ProbeScript,
		logger:     logger,
	}
}

func (l *Loader) Ensure(ctx context.Context) error {
	if !l.probe || l.ready.Load() {
		return nil
	}

	// concurrent callers share one probe
	_, err, _ := l.group.Do(l.scriptURL, func() (any, error) {
		if l.ready.Load() {
			return nil, nil
		}
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), probeTimeout)
		defer cancel()
		if err := l.fetch(probeCtx); err != nil {
			return nil, err
		}
		l.ready.Store(true)
		return nil, nil
	})
	if err != nil {
		l.logger.Error("checkout script probe failed", slog.String("url", l.scriptURL), slog.Any("error", err))
		return errs.Mark(errs.Wrap(err, "checkout script unavailable"), errs.ErrCheckoutUnavailable)
	}
	return nil
}

func (l *Loader) ScriptURL() string {
	return l.scriptURL
}

func (l *Loader) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.scriptURL, nil)
	if err != nil {
		return err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
