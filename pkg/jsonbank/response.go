package jsonbank

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// apiErrorEnvelope is the conventional error body: {"error": {"code", "message"}}.
type apiErrorEnvelope struct {
	Code    *string `json:"code"`
	Message *string `json:"message"`
}

// decode interprets resp as a JSON value of type T, or as an error.
func decode[T any](resp *rawResponse) (T, error) {
	var result T
	if !resp.ok() {
		return result, decodeError(resp)
	}
	if err := json.Unmarshal(resp.body, &result); err != nil {
		return result, newError(CodeDefault, err.Error())
	}
	return result, nil
}

// decodeInto is decode for a caller-supplied destination.
func decodeInto(resp *rawResponse, v any) error {
	if !resp.ok() {
		return decodeError(resp)
	}
	if err := json.Unmarshal(resp.body, v); err != nil {
		return newError(CodeDefault, err.Error())
	}
	return nil
}

// decodeText returns the body as-is on success.
func decodeText(resp *rawResponse) (string, error) {
	if !resp.ok() {
		return "", decodeError(resp)
	}
	return string(resp.body), nil
}

// decodeError normalizes a non-2xx response. Server codes are kept verbatim.
func decodeError(resp *rawResponse) *Error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return newError(resp.status, err.Error())
	}

	raw, ok := body["error"]
	if !ok {
		return newError(resp.status, "Unknown error")
	}

	var envelope apiErrorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Code == nil || envelope.Message == nil {
		return newError(resp.status, "Unknown error")
	}

	return newError(*envelope.Code, *envelope.Message)
}

// validator is implemented by decoded server objects with required fields.
type validator interface {
	validate() error
}

// decodeValid is decode followed by the type's schema check.
func decodeValid[T any, PT interface {
	*T
	validator
}](resp *rawResponse) (*T, error) {
	result, err := decode[T](resp)
	if err != nil {
		return nil, err
	}
	if err := PT(&result).validate(); err != nil {
		return nil, newError(CodeDefault, "invalid response: "+err.Error())
	}
	return &result, nil
}

// requiredIdentity checks the fields every stored resource carries.
func requiredIdentity(structPtr any, id, project, path *string) error {
	return validation.ValidateStruct(structPtr,
		validation.Field(id, validation.Required),
		validation.Field(project, validation.Required),
		validation.Field(path, validation.Required),
	)
}
