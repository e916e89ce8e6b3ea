package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err or any of its causes is, or was marked as, reference.
// Use it instead of the standard errors.Is for anything passed through Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithUserMessage attaches a message that is safe to show to the end user.
func WithUserMessage(err error, msg string) error {
	if err == nil || msg == "" {
		return err
	}
	return cr.WithHint(err, msg)
}

// UserMessage returns the outermost user-facing message attached to err, or fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return fallback
	}
	return hints[len(hints)-1]
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
