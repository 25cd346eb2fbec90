package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

type InvalidMonthError struct {
	ErrorMessage
	Month int
}

// UpstreamFetchError means the seed source was unreachable, answered with a
// non-success status, or returned a body that is not a record list.
type UpstreamFetchError struct {
	ErrorMessage
	Source string
	Status int
	Err    error
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

type BulkInsertError struct {
	ErrorMessage
	Err error
}

func (e *BulkInsertError) Unwrap() error { return e.Err }

type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// CombinedQueryError is returned when any part of the combined view fails.
type CombinedQueryError struct {
	ErrorMessage
	Err error
}

func (e *CombinedQueryError) Unwrap() error { return e.Err }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidMonthError(month int) *InvalidMonthError {
	return &InvalidMonthError{
		ErrorMessage: ErrorMessage{Message: "Invalid month. Month must be between 1 and 12."},
		Month:        month,
	}
}

func NewUpstreamFetchError(source string, status int, err error) *UpstreamFetchError {
	msg := fmt.Sprintf("fetch %s", source)
	switch {
	case err != nil:
		msg = fmt.Sprintf("%s: %v", msg, err)
	case status != 0:
		msg = fmt.Sprintf("%s: unexpected status %d", msg, status)
	}
	return &UpstreamFetchError{
		ErrorMessage: ErrorMessage{Message: msg},
		Source:       source,
		Status:       status,
		Err:          err,
	}
}

func NewBulkInsertError(message string, err error) *BulkInsertError {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &BulkInsertError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewCombinedQueryError(err error) *CombinedQueryError {
	return &CombinedQueryError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("combined query failed: %v", err)},
		Err:          err,
	}
}
