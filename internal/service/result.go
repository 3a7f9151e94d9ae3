// ABOUTME: Result kinds for service operations, so callers can tell
// ABOUTME: business-rule failures apart from storage failures.
package service

import (
	"errors"

	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

// Kind classifies the outcome of a service operation.
type Kind int

const (
	Ok Kind = iota
	ValidationFailed
	InsufficientStock
	NotFound
	StorageError
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case ValidationFailed:
		return "validation failed"
	case InsufficientStock:
		return "insufficient stock"
	case NotFound:
		return "not found"
	case StorageError:
		return "storage error"
	}
	return "unknown"
}

// Result is the outcome of a service call: a kind plus a human message.
type Result struct {
	Kind    Kind
	Message string
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Kind == Ok
}

func ok(message string) Result {
	return Result{Kind: Ok, Message: message}
}

func invalid(message string) Result {
	return Result{Kind: ValidationFailed, Message: message}
}

// classify maps store errors onto result kinds.
func classify(err error, successMsg, failureMsg string) Result {
	switch {
	case err == nil:
		return ok(successMsg)
	case errors.Is(err, pharmacydb.ErrInsufficientStock):
		return Result{Kind: InsufficientStock, Message: "insufficient stock"}
	case errors.Is(err, pharmacydb.ErrNoStockRow), errors.Is(err, pharmacydb.ErrNotFound):
		return Result{Kind: NotFound, Message: failureMsg + ": " + err.Error()}
	default:
		return Result{Kind: StorageError, Message: failureMsg + ": " + err.Error()}
	}
}
