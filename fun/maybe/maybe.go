// Package maybe implements a Maybe{value, ok} "sum type" that has a value only
// when ok is true.
//
// Note that in many cases, it is more idiomatic for a function to return a
// naked (value, ok); construct a Maybe from one with [New].
package maybe

import (
    "fmt"
)

// Maybe is a (value, ok) "sum type" that has a value only when ok is
// true.
type Maybe[V any] struct {
    Value V
    Ok bool
}

// New returns a Maybe. It is syntax sugar for Maybe{value, ok}. If ok is
// a known constant, use [Some] or [Nothing] instead.
func New[V any](value V, ok bool) Maybe[V] {
    if !ok { return Nothing[V]() }
    return Some(value)
}

// Unpack returns a plain (value, ok) tuple from a Maybe.
func (m Maybe[V]) Unpack() (V, bool) {
    return m.Value, m.Ok
}

// Must returns a Maybe's value. If the Maybe is not ok, panics.
func (m Maybe[V]) Must() V {
    if !m.Ok {
        panic(fmt.Sprintf("Maybe[%T].Must called on missing value.", m))
    }
    return m.Value
}

// Nothing returns a (typed) Maybe that has no value.
func Nothing[V any]() Maybe[V] {
    return Maybe[V]{}
}

// Some (a.k.a. "Just") returns a Maybe that contains a value.
func Some[V any](value V) Maybe[V] {
    return Maybe[V]{
        Value: value,
        Ok:    true,
    }
}
