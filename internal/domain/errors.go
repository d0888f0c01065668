package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// InvalidParameterError is a client-facing error naming the offending
// request parameter. The HTTP layer maps it to a 400 response.
type InvalidParameterError struct {
	Parameter string
	Message   string
}

func (e InvalidParameterError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("invalid parameter %s", e.Parameter)
	}
	return e.Message
}

// Is enables errors.Is matching on InvalidParameterError.
func (e InvalidParameterError) Is(target error) bool {
	_, ok := target.(InvalidParameterError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidParameterError)
	return ok
}

// ErrInvalidParameter is the sentinel error for invalid request parameters.
var ErrInvalidParameter = InvalidParameterError{}
