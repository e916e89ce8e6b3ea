package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/pkg/metrics"
)

const maxResponseBytes = 1 << 20

// Client talks to the marketplace REST API on behalf of a signed-in user.
// It never retries: every repeat is a fresh user action.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

func (c *Client) getJSON(ctx context.Context, sess session.Session, op, path string, out any) error {
	req, err := c.newRequest(ctx, sess, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, op, out)
}

func (c *Client) postJSON(ctx context.Context, sess session.Session, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to encode request body")
	}
	req, err := c.newRequest(ctx, sess, http.MethodPost, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, op, out)
}

func (c *Client) newRequest(ctx context.Context, sess session.Session, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build marketplace request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// envelope is the part every marketplace response shares.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) do(req *http.Request, op string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamLatency.WithLabelValues(op, "transport_error").Observe(time.Since(start).Seconds())
		c.logger.Warn("marketplace request failed",
			slog.String("operation", op),
			slog.String("path", req.URL.Path),
			slog.Any("error", err))
		return errs.Mark(errs.Wrapf(err, "marketplace %s", op), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()
	metrics.UpstreamLatency.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "marketplace %s: read body", op), errs.ErrUpstreamUnavailable)
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upErr := &infra.UpstreamError{Status: resp.StatusCode, Message: env.text()}
		if upErr.Message == "" {
			upErr.Message = http.StatusText(resp.StatusCode)
		}
		level := slog.LevelInfo
		if resp.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		c.logger.Log(req.Context(), level, "marketplace rejected request",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.String("message", upErr.Message))
		if resp.StatusCode == http.StatusUnauthorized {
			return errs.Mark(upErr, errs.ErrUnauthenticated)
		}
		return upErr
	}

	if env.Success != nil && !*env.Success {
		msg := env.text()
		if msg == "" {
			msg = fmt.Sprintf("%s was not successful", op)
		}
		return &infra.UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "marketplace %s: decode response", op), errs.ErrUpstreamUnavailable)
	}
	return nil
}

// isRejection reports whether err is a 4xx business answer rather than a
// transport or server fault.
func isRejection(err error) (*infra.UpstreamError, bool) {
	upErr, ok := infra.AsUpstream(err)
	if !ok || errs.Is(err, errs.ErrUnauthenticated) {
		return nil, false
	}
	return upErr, errs.Is(err, errs.ErrUpstreamRejected)
}
