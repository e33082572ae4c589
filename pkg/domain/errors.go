package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound   *notFoundError
	ErrInvalidPlan      = errors.New("invalid plan, must be one of 'free', 'bronze', 'silver' or 'gold'")
	ErrInvalidIP        = errors.New("invalid ip address")
	ErrStoreUnavailable = errors.New("event store unavailable")
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
