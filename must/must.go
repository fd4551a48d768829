// Package must implements
package must

import (
    "fmt"
)

// Check panics if the error is not nil. Otherwise, it returns a nil error (so
// that it is convenient to chain).
func Check(err error) error {
    if err != nil {
        panic(fmt.Errorf("must.Check: unexpected error: %w", err))
    }
    return nil
}
