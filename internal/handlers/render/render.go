package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Error codes shared by the whole API
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeRouteNotFound     = "ROUTE_NOT_FOUND"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
)

var validate = newValidator()

type Struct any

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	ErrorCode string            `json:"errorCode"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Render data in success envelope with 200 status
func JSON(w http.ResponseWriter, data any) {
	Success(w, http.StatusOK, "", data)
}

// Render message and data (both optional) in success envelope
func Success(w http.ResponseWriter, code int, message string, data any) {
	jsonWithStatus(w, SuccessResponse{Success: true, Message: message, Data: data}, code)
}

// Render error envelope
func Error(w http.ResponseWriter, code int, errorCode string, message string) {
	response := ErrorResponse{
		Message:   message,
		ErrorCode: errorCode,
	}

	jsonWithStatus(w, response, code)
}

// Render json DecodeError
func DecodeError(w http.ResponseWriter, err error) {
	var message string

	// Try to provide more specific error message based on error type
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		message = fmt.Sprintf("Invalid data type for field '%s'", typeErr.Field)
	default:
		message = fmt.Sprintf("Failed to parse JSON: %s", err.Error())
	}

	Error(w, http.StatusBadRequest, CodeValidation, message)
}

// Render ValidationErrors
func ValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	response := ErrorResponse{
		Message:   "Request validation failed",
		ErrorCode: CodeValidation,
		Fields:    make(map[string]string, len(errs)),
	}

	// Create user-friendly error messages based on validation tag
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required", "notblank":
			message = "This field is required"
		case "min", "gte":
			message = fmt.Sprintf("Value is too short (minimum %s)", fieldError.Param())
		case "max", "lte":
			message = fmt.Sprintf("Value is too long (maximum %s)", fieldError.Param())
		case "email":
			message = "Must be a valid email"
		case "url":
			message = "Must be a valid URL"
		case "oneof":
			message = fmt.Sprintf("Must be one of: %s", fieldError.Param())
		case "uuid":
			message = "Must be a valid id"
		default:
			message = "Invalid value"
		}

		response.Fields[fieldError.Field()] = message
	}

	jsonWithStatus(w, response, http.StatusBadRequest)
}

// Validate value using struct tags. Writes validation error response if value is invalid
func Validate[T Struct](w http.ResponseWriter, value T) error {
	err := validate.Struct(value)
	if err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			Error(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
			return err
		}
		ValidationErrors(w, errs)
		return err
	}

	return nil
}

// BindAndValidate decodes JSON request body into type T and validates it using struct tags.
// Returns the decoded value and writes appropriate error responses for decoding or validation failures.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, err)
		return value, err
	}

	return value, Validate(w, value)
}

// renderJSONWithStatus sends data as json and enforces status code
func jsonWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
