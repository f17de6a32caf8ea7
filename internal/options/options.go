// Package options implements generic functional options.
//
// A package exposing options declares its own option type as an alias:
//
//	type EncoderOption = options.Option[*encoderConfig]
//
//	func WithLevel(level int) EncoderOption {
//	    return options.New(func(c *encoderConfig) error {
//	        if level < 0 {
//	            return errors.New("level must not be negative")
//	        }
//	        c.level = level
//	        return nil
//	    })
//	}
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
//
// Nil options are skipped. The returned error wraps the option's error and
// names its position in opts.
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
