// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the sale and inventory engine
type ErrorKind string

// Error kinds
const (
	KindValidation           ErrorKind = "ValidationError"
	KindLotNotFound          ErrorKind = "LotNotFound"
	KindInsufficientStock    ErrorKind = "InsufficientStock"
	KindRestockTargetMissing ErrorKind = "RestockTargetMissing"
	KindInvalidField         ErrorKind = "InvalidField"
	KindTransactionConflict  ErrorKind = "TransactionConflict"
	KindPersistence          ErrorKind = "PersistenceError"
	KindNotFound             ErrorKind = "NotFound"
)

// Error is a classified, human-readable failure. Message is shown to the
// end user verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error

	sentinel bool
}

// Kind sentinels for errors.Is
var (
	ErrValidation           = &Error{Kind: KindValidation, Message: string(KindValidation), sentinel: true}
	ErrLotNotFound          = &Error{Kind: KindLotNotFound, Message: string(KindLotNotFound), sentinel: true}
	ErrInsufficientStock    = &Error{Kind: KindInsufficientStock, Message: string(KindInsufficientStock), sentinel: true}
	ErrRestockTargetMissing = &Error{Kind: KindRestockTargetMissing, Message: string(KindRestockTargetMissing), sentinel: true}
	ErrInvalidField         = &Error{Kind: KindInvalidField, Message: string(KindInvalidField), sentinel: true}
	ErrTransactionConflict  = &Error{Kind: KindTransactionConflict, Message: string(KindTransactionConflict), sentinel: true}
	ErrPersistence          = &Error{Kind: KindPersistence, Message: string(KindPersistence), sentinel: true}
	ErrNotFound             = &Error{Kind: KindNotFound, Message: string(KindNotFound), sentinel: true}
)

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any error of the same kind against a kind sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.sentinel {
		return false
	}
	return t.Kind == e.Kind
}

// NewError creates a classified error with a formatted message
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies err, keeping it in the chain
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// ValidationErrorf is shorthand for a KindValidation error
func ValidationErrorf(format string, args ...any) *Error {
	return NewError(KindValidation, format, args...)
}

// InsufficientStockError builds the standard stock shortfall message
func InsufficientStockError(requested, available int, name, location string) *Error {
	if location == "" {
		location = "N/A"
	}
	return NewError(KindInsufficientStock,
		"Cannot sell %d item(s). Only %d available for '%s' at '%s'.",
		requested, available, name, location)
}

// SupplyShortageError is the shortfall message for consumed shipping supplies
func SupplyShortageError(requested, available int, name, location string) *Error {
	if location == "" {
		location = "N/A"
	}
	return NewError(KindInsufficientStock,
		"Cannot use %d unit(s). Only %d available for '%s' at '%s'.",
		requested, available, name, location)
}

// KindOf returns the kind of err. Unclassified errors are PersistenceError.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindPersistence
}

// IsRetryable reports whether the caller may resubmit the same request
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}
