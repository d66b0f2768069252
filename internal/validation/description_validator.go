package validation

import (
	"unicode/utf8"

	"argus/internal/config"
)

const descriptionField = "description"

// DescriptionValidator validates task descriptions before a task is created
type DescriptionValidator struct {
	validator *Validator
}

// NewDescriptionValidator creates a validator using default limits
func NewDescriptionValidator() *DescriptionValidator {
	return &DescriptionValidator{validator: NewValidator()}
}

// NewDescriptionValidatorWithConfig creates a validator using configured limits
func NewDescriptionValidatorWithConfig(cfg *config.Config) *DescriptionValidator {
	return &DescriptionValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateDescription validates a description for task creation
func (dv *DescriptionValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !utf8.ValidString(description) {
		validationError.AddInvalidValueError(descriptionField, description, "not valid UTF-8 text")
		return validationError
	}

	trimmed := dv.validator.TrimAndValidateString(description)
	if !dv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(descriptionField)
		return validationError
	}

	if !dv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError(descriptionField, trimmed, dv.validator.minLength(), dv.validator.maxLength())
	}

	if dv.validator.HasControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError(descriptionField, trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidDescription returns the trimmed description if it is valid
func (dv *DescriptionValidator) GetValidDescription(description string) (string, error) {
	if err := dv.ValidateDescription(description); err != nil {
		return "", err
	}
	return dv.validator.TrimAndValidateString(description), nil
}
