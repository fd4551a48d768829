// Package typeid implements a stable runtime type fingerprint used to check
// that a producer's output type agrees with a consumer's declared input
// type, without requiring any structural or sub-typing relationship between
// the two.
package typeid

import (
    "fmt"
    "reflect"
)

// ID is a type fingerprint: a pair of {stable identity, human-readable name}.
// Equality, ordering and hashing must only ever consider the identity; the
// name exists purely for diagnostics and error messages.
type ID struct {
    identity reflect.Type
    name     string
}

// Of returns the fingerprint for type T. Two fingerprints obtained from Of
// compare Equal iff T is the identical type in both calls, regardless of how
// many times Of is called or from which package.
func Of[T any]() ID {
    var zero T
    t := reflect.TypeOf(&zero).Elem()
    return ID{identity: t, name: t.String()}
}

// OfValue returns the fingerprint of the dynamic type of v. v may be nil
// only if it is a typed nil (an interface value with a concrete type and a
// nil pointer); an untyped nil has no type to fingerprint and OfValue panics.
func OfValue(v any) ID {
    t := reflect.TypeOf(v)
    if t == nil {
        panic("typeid.OfValue: called with an untyped nil, which has no runtime type")
    }
    return ID{identity: t, name: t.String()}
}

// Name returns the fingerprint's advisory, human-readable name. It must
// never be used for equality checks.
func (id ID) Name() string {
    return id.name
}

// Equal reports whether id and other are fingerprints of the identical
// type. Only the stable identity is compared.
func (id ID) Equal(other ID) bool {
    return id.identity == other.identity
}

// String implements fmt.Stringer, returning the advisory name.
func (id ID) String() string {
    return id.name
}

// GoString implements fmt.GoStringer for more useful panic/error output.
func (id ID) GoString() string {
    return fmt.Sprintf("typeid.ID{%s}", id.name)
}
