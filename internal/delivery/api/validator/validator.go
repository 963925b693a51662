// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs on c.Validate.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports json field names and knows the domain enums.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// registration never fails: tags and functions are static
	_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return entity.SubscriptionTier(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= constants.MaxPasswordBytes
	})
	_ = v.RegisterValidation("sellerstatus", func(fl validator.FieldLevel) bool {
		return entity.VerificationStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate returns ErrValidationFailed listing every offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_with":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gte", "lte":
		return field + " is out of range"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "tier":
		return field + " must be one of: FREE BASIC PREMIUM"
	case "sellerstatus":
		return field + " must be one of: PENDING VERIFIED REJECTED"
	case "bcryptlen":
		return field + " must be at most " + strconv.Itoa(constants.MaxPasswordBytes) + " bytes"
	case "url":
		return field + " must be a valid URL"
	case "latitude", "longitude":
		return field + " must be a valid " + fe.Tag()
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
