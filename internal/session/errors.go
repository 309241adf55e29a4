package session

import "fmt"

// NotFoundError indicates the session ID is unknown to the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ExpiredError indicates the session existed but passed its TTL.
type ExpiredError struct {
	ID string
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("session expired: %s", e.ID)
}
