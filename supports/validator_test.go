package supports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	Name  string `json:"name" validate:"required"`
	Size  string `json:"size,omitempty" validate:"required"`
	Notes string
}

func TestValidatePasses(t *testing.T) {
	err := XValidator{}.Validate(&part{Name: "case", Size: "XL"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONNames(t *testing.T) {
	err := XValidator{}.Validate(&part{Name: "case"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 1)
	assert.Contains(t, verr.Errors, "size")
	assert.Equal(t, "Field validation for 'size' failed on the 'required' tag", verr.Message)
	assert.Contains(t, err.Error(), `"errors":{"size":`)
}

func TestValidateAllMissing(t *testing.T) {
	err := XValidator{}.Validate(part{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 2)
	assert.Equal(t, verr.Errors["name"], verr.Message)
}

func TestValidateNonStruct(t *testing.T) {
	err := XValidator{}.Validate("not a struct")
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
