package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("app_status", ValidAppStatus)
}

// ValidAppStatus accepts only the decision statuses of the application
// workflow. "pending" is the initial state and never a valid target.
func ValidAppStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == "accepted" || val == "rejected"
}
