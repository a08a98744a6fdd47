package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"product-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so error keys match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "decimal_gt", decimalGreaterThan)
	mustRegister(v, "decimal_lt", decimalLessThan)
	mustRegister(v, "decimal_places", decimalPlaces)

	return &CustomValidator{
		validator: v,
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

// Decimal rules compare exactly; float64 conversion loses small values.

func decimalGreaterThan(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.GreaterThan(decimal.RequireFromString(fl.Param()))
}

func decimalLessThan(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.LessThan(decimal.RequireFromString(fl.Param()))
}

func decimalPlaces(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("validator: bad decimal_places param %q", fl.Param()))
	}
	return d.Equal(d.Truncate(int32(places)))
}

// Validate checks i against its struct tags. Constraint violations are
// returned as *apperror.ValidationError holding every failing field.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.NewValidation(cv.FormatValidationErrors(validationErrors))
	}
	return err
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "notblank":
				errors[field] = field + " must not be blank"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt", "decimal_gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lt", "decimal_lt":
				errors[field] = field + " must be less than " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "decimal_places":
				errors[field] = field + " must have at most " + e.Param() + " decimal places"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
