package garlic

import (
	"time"

	"github.com/google/uuid"
)

// Verdict classifies an inspected value.
type Verdict int

const (
	VerdictEmpty Verdict = iota
	VerdictPresent
	VerdictInvalid
)

func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "empty"
	case VerdictPresent:
		return "present"
	case VerdictInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	verdict   Verdict
	hasValue  bool
}

func Empty[T any]() Result[T] {
	return Result[T]{
		verdict:   VerdictEmpty,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// EmptyWith records a value that was resolved but classified as empty.
func EmptyWith[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		verdict:   VerdictEmpty,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Present[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		verdict:   VerdictPresent,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Invalid[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		verdict:   VerdictInvalid,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Verdict() Verdict {
	return r.verdict
}

func (r Result[T]) IsEmpty() bool {
	return r.verdict == VerdictEmpty
}

func (r Result[T]) IsPresent() bool {
	return r.verdict == VerdictPresent
}

func (r Result[T]) IsInvalid() bool {
	return r.verdict == VerdictInvalid
}

// HasValue reports whether a value was resolved, even an empty one.
func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
