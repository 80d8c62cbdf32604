package garlic

import "time"

// NDArray is satisfied by dense n-dimensional array values.
type NDArray interface {
	// Size returns the total number of elements
	Size() int
	// Shape returns the length of every dimension
	Shape() []int
}

// Tensor is satisfied by tensor values.
type Tensor interface {
	// NumElements returns the total number of elements
	NumElements() int
	// Dims returns the number of dimensions
	Dims() int
}

type VerdictProvider[T any] interface {
	// Value returns the resolved value
	Value() T
	// Verdict returns the classification of the value
	Verdict() Verdict
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError extends VerdictProvider with the error behind an invalid verdict
type WithError[T any] interface {
	VerdictProvider[T]
	// Err returns the error if the input was rejected
	Err() error
	// IsInvalid returns true if the input was rejected
	IsInvalid() bool
}
