package etymology

import (
	"errors"
	"fmt"
)

// ErrAttemptsExhausted is returned when every lookup attempt came back without results.
var ErrAttemptsExhausted = errors.New("gave up")

type NoResultsFoundError struct {
	Query string
}

func (e *NoResultsFoundError) Error() string {
	return fmt.Sprintf("No etymology found for '%s'.", e.Query)
}

// ConnectivityError reports that the request never got a response.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return "Could not query etymonline.com; check internet connection."
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
