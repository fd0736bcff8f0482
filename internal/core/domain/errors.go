package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSlotUnavailable = errors.New("slot is no longer available")
	ErrNotFound        = errors.New("not found")
)

type ErrorKind int

const (
	KindStoreFailure ErrorKind = iota
	KindValidation
	KindNotFound
	KindSlotUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindSlotUnavailable:
		return "slot_unavailable"
	default:
		return "store_failure"
	}
}

// Error is the failure type returned by the core services. Kind is what
// callers branch on; Msg is safe to show to a client.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}

// KindOf classifies err. Bare adapter sentinels are recognised too, and
// anything unknown counts as a store failure.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	switch {
	case errors.Is(err, ErrSlotUnavailable):
		return KindSlotUnavailable
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindStoreFailure
	}
}
