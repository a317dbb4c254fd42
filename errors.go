package codec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InsufficientBitsError reports a decode that attempted to consume more bytes
// than remained in the input.
type InsufficientBitsError struct {
	Needed    int
	Available int
	err       error
}

func newInsufficientBitsError(needed, available int) *InsufficientBitsError {
	return &InsufficientBitsError{
		Needed:    needed,
		Available: available,
		err:       errors.Newf("insufficient bits: needed %d bytes, only %d available", needed, available),
	}
}

func (e *InsufficientBitsError) Error() string { return e.err.Error() }
func (e *InsufficientBitsError) Unwrap() error { return e.err }

// EncodingError reports an encode-time precondition violation, e.g. Bytes(n)
// given a value of the wrong length.
type EncodingError struct {
	Message string
	err      error
}

func newEncodingError(format string, args ...interface{}) *EncodingError {
	err := errors.Newf(format, args...)
	return &EncodingError{Message: err.Error(), err: err}
}

func (e *EncodingError) Error() string { return e.err.Error() }
func (e *EncodingError) Unwrap() error { return e.err }

// ConstantMismatchError reports that Constant decoded bytes not equal to the
// expected literal.
type ConstantMismatchError struct {
	Expected ByteVector
	Actual   ByteVector
	err      error
}

func newConstantMismatchError(expected, actual ByteVector) *ConstantMismatchError {
	return &ConstantMismatchError{
		Expected: expected,
		Actual:   actual,
		err:      errors.Newf("constant mismatch: expected %x, got %x", expected.ToSlice(), actual.ToSlice()),
	}
}

func (e *ConstantMismatchError) Error() string { return e.err.Error() }
func (e *ConstantMismatchError) Unwrap() error { return e.err }

// ConversionError reports that an Xmap/ExMap function, or a record
// isomorphism, produced an invalid result.
type ConversionError struct {
	Message string
	err      error
}

func newConversionError(format string, args ...interface{}) *ConversionError {
	err := errors.Newf(format, args...)
	return &ConversionError{Message: err.Error(), err: err}
}

func (e *ConversionError) Error() string { return e.err.Error() }
func (e *ConversionError) Unwrap() error { return e.err }

// ContextError wraps an inner codec error with a label pushed by WithContext.
// Nested ContextErrors print as "label1 / label2 / ... / <kind message>",
// pointing at the exact field path that failed.
type ContextError struct {
	Label string
	Inner error
}

func pushContext(label string, err error) error {
	if err == nil {
		return nil
	}
	return &ContextError{Label: label, Inner: err}
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s / %s", e.Label, e.Inner.Error())
}

func (e *ContextError) Unwrap() error { return e.Inner }
