package domain

import "fmt"

// NotFoundError signals that a referenced entity does not exist.
// Handlers map it to a 404 response.
type NotFoundError struct {
	Resource string // Entity kind: user, group, payer
	ID       uint   // The missing id
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ValidationError signals malformed split input: an unknown split type,
// percentages not summing to 100, or missing required splits.
// Handlers map it to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// InvalidStateError signals a structurally valid request with no eligible
// participants, such as an equal split over an empty group.
// Handlers map it to a 400 response.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return e.Msg
}
