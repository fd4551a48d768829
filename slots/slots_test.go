package slots_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/dagrun/slots"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

func newBuffer() *slots.Buffer {
    return slots.New([]typeid.ID{typeid.Of[int](), typeid.Of[string]()})
}

func TestFirstEmptyAndFull(t *testing.T) {
    b := newBuffer()
    i, empty := b.FirstEmpty()
    assert.True(t, empty)
    assert.Equal(t, 0, i)
    assert.False(t, b.Full())

    assert.NoError(t, b.Insert(0, value.New(1)))
    i, empty = b.FirstEmpty()
    assert.True(t, empty)
    assert.Equal(t, 1, i)

    assert.NoError(t, b.Insert(1, value.New("x")))
    assert.True(t, b.Full())
}

func TestInsertTypeMismatch(t *testing.T) {
    b := newBuffer()
    err := b.Insert(0, value.New("wrong type"))
    assert.Error(t, err)

    var mismatch *slots.InsertError
    assert.ErrorAs(t, err, &mismatch)
    assert.Equal(t, slots.TypeMismatch, mismatch.Kind)

    // buffer unchanged: the cell is still empty.
    i, empty := b.FirstEmpty()
    assert.True(t, empty)
    assert.Equal(t, 0, i)
}

func TestInsertOutOfRange(t *testing.T) {
    b := newBuffer()
    err := b.Insert(5, value.New(1))
    assert.Error(t, err)

    var oor *slots.InsertError
    assert.ErrorAs(t, err, &oor)
    assert.Equal(t, slots.OutOfRange, oor.Kind)
}

func TestDrain(t *testing.T) {
    b := newBuffer()
    _, err := b.Drain()
    var take *slots.TakeError
    assert.ErrorAs(t, err, &take)
    assert.Equal(t, 0, take.FirstEmpty)

    assert.NoError(t, b.Insert(0, value.New(1)))
    assert.NoError(t, b.Insert(1, value.New("x")))

    out, err := b.Drain()
    assert.NoError(t, err)
    assert.Len(t, out, 2)

    v0, ok := value.DowncastTo[int](out[0])
    assert.True(t, ok)
    assert.Equal(t, 1, v0)

    v1, ok := value.DowncastTo[string](out[1])
    assert.True(t, ok)
    assert.Equal(t, "x", v1)

    // drained buffer is empty again.
    _, empty := b.FirstEmpty()
    assert.True(t, empty)
}
