// Package ferr defines fincore's error taxonomy: a small, closed set
// of error kinds every component reports through, rather than ad hoc
// sentinel values scattered per package. Callers distinguish kinds
// with errors.As against *Error, or with errors.Is against AsTarget(kind).
package ferr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind enumerates the distinct error conditions fincore can signal.
type Kind int

const (
	// InvalidSchedule is raised eagerly, before first emission, for
	// any violation of the amortization schedule invariants.
	InvalidSchedule Kind = iota
	// InvalidAmount covers negative principal, rate, or percent-of-CDI.
	InvalidAmount
	// MissingIndexData means the CDI backend could not supply a rate
	// a CDI-indexed computation required.
	MissingIndexData
	// PrepaymentExceedsBalance means an extraordinary prepayment
	// exceeded the outstanding balance; Excess carries the overage.
	PrepaymentExceedsBalance
	// ReconciliationError means the terminal balance failed to close
	// to zero within tolerance. Indicates a bug; should be unreachable.
	ReconciliationError
)

func (k Kind) String() string {
	switch k {
	case InvalidSchedule:
		return "InvalidSchedule"
	case InvalidAmount:
		return "InvalidAmount"
	case MissingIndexData:
		return "MissingIndexData"
	case PrepaymentExceedsBalance:
		return "PrepaymentExceedsBalance"
	case ReconciliationError:
		return "ReconciliationError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type every fincore component returns.
// It carries a Kind so callers can branch on the taxonomy without
// string matching, plus an optional Excess for PrepaymentExceedsBalance.
type Error struct {
	Kind   Kind
	Msg    string
	Excess decimal.Decimal
	wrapped error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.wrapped }

// Is supports errors.Is(err, ferr.AsTarget(ferr.InvalidSchedule))-style
// checks by matching the target's Kind against *Error.Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && e.Kind == k.Kind
}

// kindSentinel lets a Kind value itself act as an errors.Is target,
// e.g. errors.Is(err, ferr.AsTarget(ferr.MissingIndexData)).
type kindSentinel struct{ Kind Kind }

// AsTarget wraps a Kind so it can be used as the target of errors.Is.
func AsTarget(k Kind) error { return kindSentinel{Kind: k} }

func (kindSentinel) Error() string { return "ferr kind sentinel" }

// New builds a plain *Error of the given kind.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Newf builds a plain *Error of the given kind with a formatted message.
func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind that wraps another error.
func Wrap(k Kind, err error, msg string) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf("%s: %s", msg, err), wrapped: err}
}

// PrepaymentExceeds builds the PrepaymentExceedsBalance error carrying
// the excess amount (prepayment minus outstanding balance).
func PrepaymentExceeds(excess decimal.Decimal) *Error {
	return &Error{
		Kind:   PrepaymentExceedsBalance,
		Msg:    fmt.Sprintf("prepayment exceeds outstanding balance by %s", excess.StringFixed(2)),
		Excess: excess,
	}
}

// KindOf reports the Kind of err if it is (or wraps) a *ferr.Error.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
