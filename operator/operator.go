// Package operator implements small language-level helpers as functions;
// its only export is Zero, the zero value of a type.
package operator

// Zero returns the zero value for any type.
func Zero[T any]() T {
    var t T
    return t
}
