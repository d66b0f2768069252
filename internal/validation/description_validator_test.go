package validation

import (
	"strings"
	"testing"

	"argus/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionValidator_ValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		errorTypes  []ValidationErrorType
	}{
		{name: "valid", description: "buy milk"},
		{name: "valid with punctuation", description: "email Ana (re: invoice #42)"},
		{name: "empty", description: "", errorTypes: []ValidationErrorType{ErrorTypeRequired}},
		{name: "whitespace", description: "   ", errorTypes: []ValidationErrorType{ErrorTypeRequired}},
		{name: "too long", description: strings.Repeat("a", 501), errorTypes: []ValidationErrorType{ErrorTypeInvalidLength}},
		{name: "embedded newline", description: "a\nb", errorTypes: []ValidationErrorType{ErrorTypeInvalidCharacter}},
		{name: "invalid utf-8", description: "caf\xe9 & <tea>", errorTypes: []ValidationErrorType{ErrorTypeInvalidValue}},
		{name: "valid multibyte", description: "café & <tea>"},
	}

	dv := NewDescriptionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dv.ValidateDescription(tt.description)
			if len(tt.errorTypes) == 0 {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			var types []ValidationErrorType
			for _, fe := range ve.Errors {
				types = append(types, fe.Type)
			}
			assert.Equal(t, tt.errorTypes, types)
		})
	}
}

func TestDescriptionValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 4
	dv := NewDescriptionValidatorWithConfig(cfg)

	assert.NoError(t, dv.ValidateDescription("four"))
	assert.Error(t, dv.ValidateDescription("fives"))
}

func TestDescriptionValidator_GetValidDescription(t *testing.T) {
	dv := NewDescriptionValidator()

	got, err := dv.GetValidDescription("  walk the dog \n")
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", got)

	got, err = dv.GetValidDescription("\n")
	assert.Error(t, err)
	assert.Empty(t, got)
}
