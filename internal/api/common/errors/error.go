package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ValidationErr(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// EmptyInputError is returned by every statistic computed over no values.
type EmptyInputError struct {
	Statistic string
}

func (e EmptyInputError) Error() string {
	return fmt.Sprintf("%s requires at least one value", e.Statistic)
}

func EmptyInputErr(statistic string) EmptyInputError {
	return EmptyInputError{
		Statistic: statistic,
	}
}

type NoUniqueModeError struct {
	Distinct int
}

func (e NoUniqueModeError) Error() string {
	return fmt.Sprintf("no unique mode: %d values occur equally often", e.Distinct)
}

func NoUniqueModeErr(distinct int) NoUniqueModeError {
	return NoUniqueModeError{
		Distinct: distinct,
	}
}

type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func StorageErr(op string, err error) StorageError {
	return StorageError{
		Op:  op,
		Err: errors.Wrapf(err, "failed to %s readings", op),
	}
}
