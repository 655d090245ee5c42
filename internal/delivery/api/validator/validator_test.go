package validator

import (
	"testing"

	domainerrors "dispatch/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1,max=10"`
	Decision string `json:"decision" validate:"oneof=APPROVE REJECT"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleRequest{Name: "x", Quantity: 2, Decision: "APPROVE"}))
	})

	t.Run("reports fields by json name", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Quantity: 11, Decision: "MAYBE"})
		require.Error(t, err)
		assert.True(t, domainerrors.IsValidation(err))

		appErr, ok := err.(domainerrors.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Details(), "name is required")
		assert.Contains(t, appErr.Details(), "quantity must be at most 10")
		assert.Contains(t, appErr.Details(), "decision must be one of: APPROVE REJECT")
	})
}
