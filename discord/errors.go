package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/palaver-chat/palaver/palaverjson"
)

var (
	ErrUnauthorized = errors.New("improper token was passed")

	// ErrInvalidOperationAsBot is returned before any request is issued when
	// a bot account attempts an operation restricted to user accounts.
	ErrInvalidOperationAsBot = errors.New("invalid operation as a bot account")
)

// MissingFieldError is returned when a decoded record lacks a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnknownVariantError is returned when a wire discriminant falls outside the
// known set. Value carries the offending raw value for diagnostics.
type UnknownVariantError struct {
	Kind  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Kind, e.Value)
}

// RestError contains the error structure that is returned by discord.
type RestError struct {
	Request      *http.Request
	Response     *http.Response
	Message      *ErrorMessage
	ResponseBody []byte
}

// ErrorMessage represents a basic error message.
type ErrorMessage struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Code    int32           `json:"code"`
}

func NewRestError(req *http.Request, resp *http.Response, body []byte) *RestError {
	var errorMessage ErrorMessage

	_ = palaverjson.Unmarshal(body, &errorMessage)

	return &RestError{
		Request:      req,
		Response:     resp,
		ResponseBody: body,
		Message:      &errorMessage,
	}
}

func (r *RestError) Error() string {
	return fmt.Sprintf("%s: %s", r.Response.Status, r.Message.Message)
}
