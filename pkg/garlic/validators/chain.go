package validators

// chain threads a value through validation steps and stops at the first
// error. A processed chain skips the remaining steps without failing.
type chain[T any] struct {
	value     T
	err       error
	processed bool
}

func start[T any](v T, err error) chain[T] {
	return chain[T]{value: v, err: err}
}

func (c chain[T]) then(step func(T) (T, error)) chain[T] {
	if c.err != nil || c.processed {
		return c
	}
	v, err := step(c.value)
	return chain[T]{value: v, err: err}
}

// finishIf marks the chain processed when cond holds, keeping the current value.
func (c chain[T]) finishIf(cond func(T) bool) chain[T] {
	if c.err != nil || c.processed {
		return c
	}
	if cond(c.value) {
		c.processed = true
	}
	return c
}

func (c chain[T]) result() (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return c.value, nil
}
