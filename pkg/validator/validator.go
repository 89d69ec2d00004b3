package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"anoa.com/internfundraiser/pkg/apperror"
	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates v against its `validate` tags. Failures wrap apperror.ErrInvalidInput.
func Struct(v any) error {
	if err := get().Struct(v); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidInput, FormatValidationError(err))
	}
	return nil
}

func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getFieldName(fe validator.FieldError) string {
	fieldNames := map[string]string{
		"Email":               "Email",
		"Password":            "Password",
		"ReferralCode":        "Referral code",
		"DonationsRaised":     "Donations raised",
		"LeaderboardPosition": "Leaderboard position",
		"TotalInterns":        "Total interns",
	}

	if name, ok := fieldNames[fe.Field()]; ok {
		return name
	}
	// Keeps the index for slice elements, e.g. "Rewards[2].Threshold".
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return fe.Field()
}
