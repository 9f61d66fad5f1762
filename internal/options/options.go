// Package options implements the generic functional-option pattern used by the
// encoder constructors.
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may fail.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first failure.
// nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}
