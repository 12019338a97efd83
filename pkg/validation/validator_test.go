package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeePayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required,max=5"`
	Email     string `json:"email" validate:"required"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	err := v.Struct(employeePayload{LastName: "Chauhan"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, map[string]string{
		"firstName": "is required",
		"lastName":  "must be at most 5 characters long",
		"email":     "is required",
	}, details)
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var p employeePayload
	err := json.Unmarshal([]byte(`{"firstName": 12}`), &p)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
