package predictorapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

const fallbackErrorMessage = "an error occurred"

var errBodyTooLarge = crerr.Newf("response body exceeds limit of %d bytes", maxResponseBytes)

// Error is the single failure shape returned by every Client method. Status is 0
// when the request never produced a response.
type Error struct {
	Message string
	Status  int
	Data    any

	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if crerr.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Status
	}
	return 0
}

func newTransportError(err error) *Error {
	message := ""
	if err != nil {
		message = strings.TrimSpace(err.Error())
	}
	if message == "" {
		message = fallbackErrorMessage
	}
	return &Error{Message: message, cause: err}
}

func newStatusError(status int, raw []byte) *Error {
	data := decodeErrorBody(raw)

	message := detailMessage(data)
	if message == "" && status > 0 {
		message = fmt.Sprintf("request failed with status code %d", status)
	}
	if message == "" {
		message = fallbackErrorMessage
	}

	return &Error{Message: message, Status: status, Data: data}
}

func newDecodeError(status int, raw []byte, err error) *Error {
	wrapped := crerr.Wrap(err, "decode response body")
	return &Error{
		Message: wrapped.Error(),
		Status:  status,
		Data:    decodeErrorBody(raw),
		cause:   wrapped,
	}
}

func decodeErrorBody(raw []byte) any {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	var decoded any
	if err := sonic.UnmarshalString(text, &decoded); err != nil {
		return text
	}
	return decoded
}

// detailMessage extracts the backend's "detail" field. Validation failures carry
// a list there, which is rendered as compact JSON.
func detailMessage(data any) string {
	body, ok := data.(map[string]any)
	if !ok {
		return ""
	}

	switch detail := body["detail"].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(detail)
	default:
		encoded, err := sonic.MarshalString(detail)
		if err != nil {
			return fmt.Sprint(detail)
		}
		return encoded
	}
}
