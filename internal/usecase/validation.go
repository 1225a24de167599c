package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type field struct {
	name  string
	value string
}

// requireFields reports every empty field. Whitespace-only values count as present.
func requireFields(fields ...field) []ValidationError {
	var errors []ValidationError
	for _, f := range fields {
		if f.value == "" {
			errors = append(errors, ValidationError{f.name, "is required"})
		}
	}
	return errors
}

func ValidateSendTextInput(input SendTextInput) []ValidationError {
	return requireFields(
		field{"number", input.Number},
		field{"message", input.Message},
	)
}

func ValidateSendImageInput(input SendImageInput) []ValidationError {
	return requireFields(
		field{"number", input.Number},
		field{"imageUrl", input.ImageURL},
	)
}

func ValidateSendFileInput(input SendFileInput) []ValidationError {
	return requireFields(
		field{"number", input.Number},
		field{"filename", input.Filename},
		field{"base64", input.Base64},
	)
}

func missingParameter(validationErrors []ValidationError) error {
	if len(validationErrors) == 0 {
		return nil
	}

	names := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		names = append(names, e.Field)
	}
	return &DomainError{
		Code:    CodeMissingParameter,
		Message: MissingParameterMessage,
		Fields:  names,
	}
}

func joinFields(fields []string) string {
	return strings.Join(fields, ",")
}
