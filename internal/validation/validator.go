package validation

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"argus/internal/config"
	apperrors "argus/internal/errors"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDescriptionLength checks the trimmed rune count against configured limits
func (v *Validator) IsValidDescriptionLength(s string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= v.minLength() && length <= v.maxLength()
}

// HasControlCharacters reports whether s contains newlines, tabs or other
// control characters, which would break the one-line-per-task listing.
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) minLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMinLength
	}
	return 1
}

func (v *Validator) maxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500
}

// ParsePosition converts user input into a 1-based task position. Anything
// that is not a positive integer is reported as a missing task, the same as
// a position past the end of the list.
func ParsePosition(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	position, err := strconv.Atoi(trimmed)
	if err != nil || position < 1 {
		return 0, apperrors.NewNotFoundError("task", trimmed).WithContext("input", input)
	}
	return position, nil
}
