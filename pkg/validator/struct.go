package validator

import (
	"fmt"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"

	"github.com/communitycal/events-api/pkg/helper"
)

// StructValidator struct
type StructValidator struct {
	validator *validatorengine.Validate
}

// NewStructValidator using go-playground validator
// https://github.com/go-playground/validator (all struct tags will be here)
func NewStructValidator() *StructValidator {
	return &StructValidator{
		validator: validatorengine.New(),
	}
}

// ValidateStruct function, returns MultiError keyed by lowercased field name
func (v *StructValidator) ValidateStruct(data interface{}) error {
	if err := v.validator.Struct(data); err != nil {
		switch errs := err.(type) {
		case validatorengine.ValidationErrors:
			multiError := helper.NewMultiError()
			for _, e := range errs {
				message := fmt.Errorf("field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag())
				multiError.Append(strings.ToLower(e.Field()), message)
			}
			if multiError.HasError() {
				return multiError
			}
		default:
			return err
		}
	}

	return nil
}
