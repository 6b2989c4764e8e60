package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report query parameter names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation("nocontrol", validateNoControl)
	_ = v.RegisterValidation("category", validateCategory)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ValidationMsgFormat
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = ValidationMsgRequired
		case "nocontrol":
			errs[field] = ValidationMsgNoControl
		case "category":
			errs[field] = ValidationMsgCategory
		case "max":
			if e.Kind() == reflect.String {
				errs[field] = fmt.Sprintf(ValidationMsgMaxFmt, e.Param())
			} else {
				errs[field] = fmt.Sprintf(ValidationMsgLimitFmt, e.Param())
			}
		case "min":
			errs[field] = fmt.Sprintf(ValidationMsgMinFmt, e.Param())
		default:
			errs[field] = ValidationMsgInvalid
		}
	}

	return errs
}

// validateNoControl rejects strings carrying control characters (NUL, newlines, tabs)
func validateNoControl(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// validateCategory accepts the known category ids; empty is left to "required"
func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return domain.Category(value).IsValid()
}
