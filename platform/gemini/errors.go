package gemini

import "errors"

const unknownAPIError = "An unknown API error occurred."

// ErrTimeout is returned when the upstream call exceeds its deadline.
var ErrTimeout = errors.New("the upstream API did not respond in time")

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
