package maybe_test

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/dagrun/fun/maybe"
)

func TestMaybe(t *testing.T) {
    some := maybe.Some(42)
    v, ok := some.Unpack()
    assert.True(t, ok)
    assert.Equal(t, 42, v)
    assert.Equal(t, 42, some.Must())

    nothing := maybe.Nothing[int]()
    v, ok = nothing.Unpack()
    assert.False(t, ok)
    assert.Equal(t, 0, v)
    assert.Panics(t, func() { nothing.Must() })
}

func TestNew(t *testing.T) {
    assert.Equal(t, maybe.Some("x"), maybe.New("x", true))
    assert.Equal(t, maybe.Nothing[string](), maybe.New("x", false))
}
