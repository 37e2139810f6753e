package config

import (
	stdErrors "errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
)

// validate is a package-level singleton; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return naming.IsValidIdentifier(fl.Field().String())
	})
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})
	return v
}

// Validate checks the struct rules. Each failed rule becomes a
// *errors.ConfigError; several are joined.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrs) {
		return &errors.ConfigError{Err: err}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &errors.ConfigError{Field: fe.Namespace(), Err: ruleError(fe)})
	}
	return stdErrors.Join(errs...)
}

func ruleError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("is required")
	case "required_without":
		return fmt.Errorf("is required when %s is empty", fe.Param())
	case "oneof":
		return fmt.Errorf("%q must be one of %s", fe.Value(), fe.Param())
	case "identifier":
		return fmt.Errorf("%q is not a valid identifier", fe.Value())
	case "glob":
		return fmt.Errorf("%q is not a valid glob pattern", fe.Value())
	default:
		return fmt.Errorf("failed rule %q (value %v)", fe.Tag(), fe.Value())
	}
}
