package hrapi

import (
	"errors"
	"fmt"
)

// GraphQLError is a structured error reported by the HR API inside a
// well-formed response envelope (business rules, field validation).
type GraphQLError struct {
	Message string `json:"message"`
}

func (e *GraphQLError) Error() string {
	return e.Message
}

// RequestError is a transport-level failure: the request never produced a
// usable response envelope. The gateway in front of the HR API is known to
// report status codes in several places depending on which layer rejected
// the request, so every observed location is retained for inspection.
type RequestError struct {
	// HTTPStatus is the status of the HTTP response, if one arrived.
	HTTPStatus int
	// StatusCode and Status are top-level fields some gateway layers
	// put into the error body.
	StatusCode int
	Status     int
	// ResultStatusCode is the nested result.statusCode variant.
	ResultStatusCode int
	// Errs carries any structured errors that still accompanied the
	// failed response.
	Errs []GraphQLError

	Err error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hr api request: %v", e.Err)
	}
	return fmt.Sprintf("hr api request: status %d", e.statusCode())
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) statusCode() int {
	switch {
	case e.StatusCode != 0:
		return e.StatusCode
	case e.Status != 0:
		return e.Status
	case e.ResultStatusCode != 0:
		return e.ResultStatusCode
	default:
		return e.HTTPStatus
	}
}

// StatusCodeOf extracts the most specific status code carried by a
// transport error, probing every location the gateway is known to use.
// It returns 0 when err is not a transport error or carries no code.
func StatusCodeOf(err error) int {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return 0
	}
	return reqErr.statusCode()
}

// FirstGraphQLMessage returns the first structured error message attached
// to err, whether err is a GraphQLError itself or a transport error that
// still carried structured errors. The second return reports presence.
func FirstGraphQLMessage(err error) (string, bool) {
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return gqlErr.Message, true
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && len(reqErr.Errs) > 0 {
		return reqErr.Errs[0].Message, true
	}
	return "", false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// ErrNotConfigured is returned when the client has no endpoint configured.
var ErrNotConfigured = errors.New("hr api endpoint not configured")
