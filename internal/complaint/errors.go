package complaint

import "fmt"

// ValidationError reports a missing or empty required submission field.
// It is user-correctable and maps to HTTP 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: required field %q is missing or empty", e.Field)
}

// PersistenceError reports that the complaint store was unavailable or the
// write/read failed. Maps to HTTP 500.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError reports that the email notification could not be sent.
// The complaint record remains persisted; this maps to HTTP 500 with a
// message naming the notification step.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
