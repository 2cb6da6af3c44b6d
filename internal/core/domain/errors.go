package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindForbidden
	KindRoomWithoutCapacity
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindRoomWithoutCapacity:
		return "ROOM_WITHOUT_CAPACITY"
	case KindTransient:
		return "TRANSIENT"
	default:
		return "UNKNOWN"
	}
}

// Error is the failure type returned by the booking core. Two errors match
// under errors.Is when their kinds are equal.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "No result for this search!"}
	ErrForbidden           = &Error{Kind: KindForbidden, Message: "Forbidden Error"}
	ErrRoomWithoutCapacity = &Error{Kind: KindRoomWithoutCapacity, Message: "There is no capacity for this room"}
	ErrUnavailable         = &Error{Kind: KindTransient, Message: "Store temporarily unavailable"}
)

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func RoomWithoutCapacity() error {
	return &Error{Kind: KindRoomWithoutCapacity, Message: ErrRoomWithoutCapacity.Message}
}

// Unavailable marks err as a transient store failure raised by op.
func Unavailable(op string, err error) error {
	return &Error{Kind: KindTransient, Message: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PublicMessage is the text safe to show a caller for err.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindNotFound:
		return ErrNotFound.Message
	case KindForbidden:
		return ErrForbidden.Message
	case KindRoomWithoutCapacity:
		return ErrRoomWithoutCapacity.Message
	case KindTransient:
		return ErrUnavailable.Message
	default:
		return "internal server error"
	}
}
