package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"go-jobportal-api/pkg/validation"
)

func TestValidAppStatus(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type req struct {
		Status string `validate:"required,app_status"`
	}

	assert.NoError(t, v.Struct(req{Status: "accepted"}))
	assert.NoError(t, v.Struct(req{Status: "rejected"}))
	assert.Error(t, v.Struct(req{Status: "pending"}))
	assert.Error(t, v.Struct(req{Status: "reviewed"}))
	assert.Error(t, v.Struct(req{}))
}
