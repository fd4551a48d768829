// Package slots implements a positional, typed slot buffer: an ordered
// sequence of N optional cells, one per declared input position of a task.
// Each cell's type is fixed when the buffer is built; inserting a value of
// the wrong type, or at an out-of-range position, fails without mutating
// the buffer.
package slots

import (
    "strconv"

    "github.com/tawesoft/dagrun/fun/maybe"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

// InsertErrorKind names why [Buffer.Insert] failed.
type InsertErrorKind int

const (
    // TypeMismatch means the carrier's fingerprint differs from the cell's
    // declared type.
    TypeMismatch InsertErrorKind = iota
    // OutOfRange means the index is >= the buffer's arity.
    OutOfRange
)

// InsertError reports why an insert failed, and hands back the carrier the
// caller tried to insert so it isn't silently lost.
type InsertError struct {
    Kind     InsertErrorKind
    Index    int
    Expected typeid.ID // zero value when Kind is OutOfRange
    Got      typeid.ID // zero value when Kind is OutOfRange
    Value    value.Carrier
}

func (e *InsertError) Error() string {
    switch e.Kind {
    case TypeMismatch:
        return "slots: type mismatch at index " + strconv.Itoa(e.Index) +
            ": expected " + e.Expected.Name() + ", got " + e.Got.Name()
    case OutOfRange:
        return "slots: index " + strconv.Itoa(e.Index) + " out of range"
    default:
        return "slots: insert error"
    }
}

// TakeError reports that [Buffer.Drain] was called while a cell was still
// empty.
type TakeError struct {
    FirstEmpty int
}

func (e *TakeError) Error() string {
    return "slots: drain called with empty cell at index " + strconv.Itoa(e.FirstEmpty)
}

// Buffer is a fixed-arity, positionally-typed collection of optional cells.
type Buffer struct {
    types []typeid.ID
    cells []maybe.Maybe[value.Carrier]
}

// New returns an empty Buffer whose N cells are declared with the given
// types, in position order.
func New(types []typeid.ID) *Buffer {
    cells := make([]maybe.Maybe[value.Carrier], len(types))
    declared := make([]typeid.ID, len(types))
    copy(declared, types)
    return &Buffer{types: declared, cells: cells}
}

// Arity returns the number of cells in the buffer.
func (b *Buffer) Arity() int {
    return len(b.cells)
}

// TypeAt returns the declared fingerprint for cell i.
func (b *Buffer) TypeAt(i int) typeid.ID {
    return b.types[i]
}

// FirstEmpty reports the smallest index whose cell is empty. The second
// return is false when every cell is filled ("full").
func (b *Buffer) FirstEmpty() (int, bool) {
    for i, c := range b.cells {
        if !c.Ok {
            return i, true
        }
    }
    return 0, false
}

// Full reports whether every cell is filled.
func (b *Buffer) Full() bool {
    _, empty := b.FirstEmpty()
    return !empty
}

// Insert places c into cell i. On TypeMismatch or OutOfRange the buffer is
// left unchanged and the carrier is returned to the caller via the error.
func (b *Buffer) Insert(i int, c value.Carrier) error {
    if i < 0 || i >= len(b.cells) {
        return &InsertError{Kind: OutOfRange, Index: i, Value: c}
    }
    want := b.types[i]
    got := c.Fingerprint()
    if !want.Equal(got) {
        return &InsertError{
            Kind: TypeMismatch, Index: i,
            Expected: want, Got: got, Value: c,
        }
    }
    b.cells[i] = maybe.Some(c)
    return nil
}

// Drain returns every cell's value, by position, and empties the buffer. If
// any cell is still empty it instead returns a TakeError and leaves the
// buffer untouched.
func (b *Buffer) Drain() ([]value.Carrier, error) {
    if i, empty := b.FirstEmpty(); empty {
        return nil, &TakeError{FirstEmpty: i}
    }
    out := make([]value.Carrier, len(b.cells))
    for i, c := range b.cells {
        out[i] = c.Value
        b.cells[i] = maybe.Nothing[value.Carrier]()
    }
    return out, nil
}

