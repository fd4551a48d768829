// Package value implements an erased-value container: a boxed owner of an
// arbitrary value whose runtime type is known by a [typeid.ID]. Carriers are
// the currency the engine moves between tasks: a task's output is wrapped
// into a Carrier, cloned once per outgoing wire, and downcast back to a
// concrete type by each consumer (and, eventually, by the caller via
// dag.ValueOf).
package value

import (
    "github.com/tawesoft/dagrun/operator"
    "github.com/tawesoft/dagrun/typeid"
)

// Carrier owns a value of a type fixed at construction and known by its
// fingerprint. The zero Carrier is not valid; use [New].
type Carrier struct {
    v  any
    id typeid.ID
}

// New boxes v as a Carrier, capturing T's fingerprint.
func New[T any](v T) Carrier {
    return Carrier{v: v, id: typeid.Of[T]()}
}

// Fingerprint returns the carrier's type fingerprint.
func (c Carrier) Fingerprint() typeid.ID {
    return c.id
}

// Clone returns a second, independent Carrier holding the same value. Go has
// no generic Clone trait: the copy is a plain assignment of the boxed value,
// which is value-copy semantics for the primitives and small structs this
// engine targets. A payload type with reference semantics (slice, map,
// pointer) aliases across clones exactly as a shallow Rust Clone on a
// reference-counted type would.
func (c Carrier) Clone() Carrier {
    return Carrier{v: c.v, id: c.id}
}

// DowncastTo attempts to recover a concrete T from the carrier. It succeeds
// exactly when T's fingerprint equals the carrier's stored fingerprint; on
// failure it returns the zero T and false, and never panics, so the caller
// may try a different type or report a diagnostic using Fingerprint.
func DowncastTo[T any](c Carrier) (T, bool) {
    var want typeid.ID = typeid.Of[T]()
    if !want.Equal(c.id) {
        return operator.Zero[T](), false
    }
    // The comma-ok form keeps a nil payload of an interface type T from
    // panicking: it yields the nil T.
    v, _ := c.v.(T)
    return v, true
}
