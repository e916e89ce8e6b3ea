package errs

import "errors"

// Cross-layer sentinel errors shared by infra and usecase packages
var (
	// Upstream (marketplace API) errors
	ErrUpstreamUnavailable = errors.New("marketplace unavailable")
	ErrUpstreamRejected    = errors.New("marketplace rejected request")
	ErrUnauthenticated     = errors.New("session not accepted by marketplace")

	// Checkout widget errors
	ErrCheckoutUnavailable = errors.New("checkout widget unavailable")

	// Cache errors
	ErrCacheMiss = errors.New("cache miss")
)
