package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError reports a failed call to the analytics service.
// StatusCode is 0 when the request never got a response.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Message    string // user-facing summary, e.g. "failed to fetch order status overview"
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %d %s: %v", e.Message, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %d %s", e.Message, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Summary returns the generic message shown in place of a failed view.
func Summary(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
