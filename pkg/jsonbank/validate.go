package jsonbank

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotJSON = validation.NewError("validation_is_json", "must be valid JSON")

// isJSON is an ozzo rule accepting valid JSON text.
var isJSON = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if !json.Valid([]byte(s)) {
		return errNotJSON
	}
	return nil
})

// firstFieldError converts the result of validation.ValidateStruct into an
// *Error for the first failing field in order. Fields are keyed by their Go
// names since the inputs carry no json tags.
func firstFieldError(err error, order ...string) *Error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return newError(CodeBadRequest, err.Error())
	}

	for _, field := range order {
		fieldErr, ok := fieldErrs[field]
		if !ok {
			continue
		}
		var ruleErr validation.Error
		if errors.As(fieldErr, &ruleErr) && ruleErr.Code() == errNotJSON.Code() {
			return errInvalidJSON()
		}
		return newError(CodeBadRequest, field+" is required")
	}
	return newError(CodeBadRequest, err.Error())
}

// requireJSON fails with CodeInvalidJSON when content is not JSON.
func requireJSON(content string) *Error {
	if err := validation.Validate(content, isJSON); err != nil {
		return errInvalidJSON()
	}
	return nil
}

// IsValidJSON reports whether s is valid JSON text.
func IsValidJSON(s string) bool {
	return validation.Validate(s, isJSON) == nil
}

func (in CreateDocumentInput) validate() *Error {
	return firstFieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Project, validation.Required),
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Content, validation.Required, isJSON),
	), "Project", "Name", "Content")
}

func (in CreateFolderInput) validate() *Error {
	return firstFieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Project, validation.Required),
		validation.Field(&in.Name, validation.Required),
	), "Project", "Name")
}

// validate checks the input before the file is read. Content is checked
// after reading.
func (in UploadDocumentInput) validate() *Error {
	return firstFieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Project, validation.Required),
	), "Project")
}
