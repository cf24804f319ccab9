package fetch

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry"
)

// Sentinel errors.  Raised with Here() so failures carry a stack, and
// matched with merry.Is.
var (
	// ErrInvalidResultType is returned when a call's effective
	// ResultType is not one of the recognized values.  This is a
	// configuration bug in the caller, so it is never suppressed by
	// NoThrow.
	ErrInvalidResultType = merry.New("fetch: invalid result type")

	// ErrImmutable is returned by Mutate on an immutable client.
	ErrImmutable = merry.New("fetch: client is immutable")
)

// RequestError is the failure descriptor for an unsuccessful request.
// It is returned when result extraction fails, when the response status
// indicates failure, or when the transport produces no response at all
// (Status is -1 in that case).
//
// The json tags give the plain-record serialization:
// {message, status, method, url, body}.
type RequestError struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Method  string      `json:"method"`
	URL     string      `json:"url"`
	Body    interface{} `json:"body"`

	cause error
}

func newRequestError(message, method, url string, status int, body interface{}, cause error) *RequestError {
	return &RequestError{
		Message: message,
		Status:  status,
		Method:  strings.ToUpper(method),
		URL:     url,
		Body:    body,
		cause:   cause,
	}
}

// Error implements error.
func (e *RequestError) Error() string {
	return fmt.Sprintf("fetch: %s %s: %s", e.Method, e.URL, e.Message)
}

// Unwrap returns the underlying transport or extraction error, if any.
func (e *RequestError) Unwrap() error {
	return e.cause
}
