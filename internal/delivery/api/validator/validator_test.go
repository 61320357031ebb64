package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redeemBody struct {
	Action string `json:"action" validate:"required,oneof=redeem"`
	Points int64  `json:"points" validate:"gt=0"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&redeemBody{Action: "redeem", Points: 10}))

	err := v.Validate(&redeemBody{Action: "spend"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{
		{Field: "action", Rule: "oneof", Param: "redeem"},
		{Field: "points", Rule: "gt", Param: "0"},
	}, verr.Fields)
	assert.Equal(t, "action must satisfy oneof=redeem; points must satisfy gt=0", err.Error())
}

func TestRequestValidator_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")
	assert.Error(t, err)
}
