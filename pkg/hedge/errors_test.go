package hedge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	errs.Add(nil)
	assert.True(t, errs.IsEmpty())
	assert.NoError(t, errs.Err())

	errs.Add(invalid("odds", 0, "must be positive, got %v", 0))
	var single *ValidationError
	require.True(t, errors.As(errs.Err(), &single))
	assert.Equal(t, "odds[0]: must be positive, got 0", single.Error())

	errs.Add(invalid("total_amount", -1, "must be finite"))
	err := errs.Err()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "odds[0]: must be positive, got 0; total_amount: must be finite", err.Error())
}
