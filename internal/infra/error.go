package infra

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"internship-checkout/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	if kind != KindNotFound && kind != KindDuplicateKey {
		slogger.Error("Repository error: "+msg, slog.String("kind", string(kind)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
)

// UpstreamError is a non-2xx marketplace response. Message is the server's
// own text and is shown to the user as-is.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("marketplace responded %d: %s", e.Status, e.Message)
}

// Unwrap classifies the reply: a 5xx is the marketplace failing, anything else
// is the marketplace saying no.
func (e *UpstreamError) Unwrap() error {
	if e.Status >= http.StatusInternalServerError {
		return errs.ErrUpstreamUnavailable
	}
	return errs.ErrUpstreamRejected
}

func AsUpstream(err error) (*UpstreamError, bool) {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
