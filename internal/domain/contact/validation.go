package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

var phoneLayouts = []*regexp.Regexp{
	// North American, optional country code and extension: (555) 123-4567, +1-555-123-4567 x101
	regexp.MustCompile(`(?i)^(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})(\s?(x|ext\.?|extension)\s?([0-9]{1,5}))?$`),
	// E.164
	regexp.MustCompile(`^\+[1-9]\d{1,14}$`),
	// International with separators: +44 20 1234 5678
	regexp.MustCompile(`(?i)^\+?[1-9]\d{0,3}[-.\s]?\(?[0-9]{1,4}\)?[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,9}(\s?(x|ext\.?|extension)\s?([0-9]{1,5}))?$`),
}

var formatValidator = newFormatValidator()

func newFormatValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone_layout", func(fl validator.FieldLevel) bool {
		return matchesPhoneLayout(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		n := len(PhoneDigits(fl.Field().String()))
		return n >= minPhoneDigits && n <= maxPhoneDigits
	})
	return v
}

// contactFormat lists fields in the order they are checked.
type contactFormat struct {
	Phone string `validate:"omitempty,phone_layout,phone_digits"`
	Email string `validate:"omitempty,email"`
}

// FormatError describes the first malformed field of a contact draft.
type FormatError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ValidateContactDraft checks phone and email formats. Empty values are accepted.
func ValidateContactDraft(draft ContactDraft) error {
	err := formatValidator.Struct(contactFormat{
		Phone: strings.TrimSpace(draft.Phone),
		Email: strings.ToLower(strings.TrimSpace(draft.Email)),
	})
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "Phone":
		reason := "Invalid phone number format. Please use a valid format like: (555) 123-4567, +1-555-123-4567, or +44 20 1234 5678"
		if fieldErr.Tag() == "phone_digits" {
			reason = "Phone number must contain between 10 and 15 digits"
		}
		return &FormatError{Field: "phone number", Reason: reason, Err: ErrInvalidPhone}
	default:
		return &FormatError{Field: "email", Reason: "Invalid email address format", Err: ErrInvalidEmail}
	}
}

func matchesPhoneLayout(phone string) bool {
	for _, layout := range phoneLayouts {
		if layout.MatchString(phone) {
			return true
		}
	}
	return false
}
