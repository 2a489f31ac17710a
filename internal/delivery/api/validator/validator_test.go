package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Status   string `json:"status" validate:"required,shipment_status"`
	Priority string `json:"priority" validate:"omitempty,priority"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "ada@example.com", Status: "in_transit", Priority: "EXPRESS"}))

	err := v.Validate(&sampleRequest{Email: "not-an-email", Status: "LOST", Priority: "SLOW"})
	require.Error(t, err)

	fields := Fields(err)
	require.Len(t, fields, 3)
	assert.Equal(t, FieldError{Field: "email", Rule: "email"}, fields[0])
	assert.Equal(t, "status", fields[1].Field)
	assert.Equal(t, "shipment_status", fields[1].Rule)
	assert.Equal(t, "priority", fields[2].Field)
}

func TestFields_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Fields(errors.New("boom")))
}
