package validator

import (
	"fmt"

	v10 "github.com/go-playground/validator/v10"
)

// Validator provides struct validation over `validate` tags.
type Validator interface {
	Validate(interface{}) error
	ValidateVar(value interface{}, rules string) error
}

type validator struct {
	v *v10.Validate
}

func New() Validator {
	return &validator{v: v10.New()}
}

func (val *validator) Validate(obj interface{}) error {
	if err := val.v.Struct(obj); err != nil {
		if errs, ok := err.(v10.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("%s failed on the '%s' rule", first.Field(), first.Tag())
		}
		return err
	}
	return nil
}

func (val *validator) ValidateVar(value interface{}, rules string) error {
	return val.v.Var(value, rules)
}
