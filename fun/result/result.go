// Package result implements a Result{value, error} "sum type" that has a value
// only when error is nil.
//
// Note that in many cases, it is more idiomatic for a function to return a
// naked (value, error); construct a Result from one with [New].
package result

// Result is a (value, error) "sum type" that has a value only when error is
// nil.
type Result[V any] struct {
    Value V
    Error error
}

// Ok returns true if the Result's error is nil.
func (r Result[V]) Ok() bool {
    return r.Error == nil
}

// New returns a Result. It is syntax sugar for Result{value, error}. If error
// is a known constant, use [Some] or [Error] instead.
func New[V any](value V, err error) Result[V] {
    if err != nil { return Error[V](err) }
    return Some(value)
}

// Unpack returns a plain (value, error) tuple from a Result.
func (r Result[V]) Unpack() (V, error) {
    return r.Value, r.Error
}

// Error returns a Result type that represents an error.
func Error[V any](err error) Result[V] {
    return Result[V]{Error: err}
}

// Some (a.k.a. "Just") returns a Result that contains a value with a nil error.
func Some[V any](value V) Result[V] {
    return Result[V]{
        Value: value,
        Error: nil,
    }
}
