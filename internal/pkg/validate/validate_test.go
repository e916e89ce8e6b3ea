//go:build unit

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicant struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func TestCheck(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, Check(applicant{Name: "Asha", Email: "asha@example.com"}))
	})

	t.Run("first failure is translated", func(t *testing.T) {
		err := Check(applicant{Name: "Asha", Email: "not-an-email"})
		require.Error(t, err)
		assert.Equal(t, "Email must be a valid email address", err.Error())
	})

	t.Run("missing required field", func(t *testing.T) {
		err := Check(applicant{Email: "asha@example.com"})
		require.Error(t, err)
		assert.Equal(t, "Name is a required field", err.Error())
	})
}
