package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrConnectivity marks operations where no candidate endpoint could
	// be reached at the transport level (DNS, refused, timeout).
	ErrConnectivity = errors.New("no endpoint reachable")

	// ErrAuth marks token acquisition where no login candidate yielded a
	// usable token.
	ErrAuth = errors.New("no usable token obtained")

	// ErrTransport marks a network-layer failure of a single typed
	// operation (the request never completed).
	ErrTransport = errors.New("transport failure")

	// ErrDecode marks an unparseable or shape-mismatched response body.
	ErrDecode = errors.New("undecodable response")

	// ErrCreation marks a chat-creation success response that is missing
	// the required identity field.
	ErrCreation = errors.New("no chat identity in response")
)

// StatusError reports a reached endpoint that answered with a non-success
// HTTP status. Distinguishable from transport and decode failures via
// [errors.As].
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

// mapHTTPError converts a completed resty response into a *StatusError when
// the status is outside the 2xx range, nil otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
}
