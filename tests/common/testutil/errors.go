//go:build unit || e2e

package testutil

import (
	"testing"

	"internship-checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertIs is assert.ErrorIs that also follows errs.Mark.
func AssertIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected %q in error chain, got: %v", target, err)
}
