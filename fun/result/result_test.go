package result_test

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/dagrun/fun/result"
)

func TestResult(t *testing.T) {
    ok := result.Some(42)
    v, err := ok.Unpack()
    assert.NoError(t, err)
    assert.Equal(t, 42, v)
    assert.True(t, ok.Ok())

    boom := errors.New("boom")
    failed := result.Error[int](boom)
    v, err = failed.Unpack()
    assert.Equal(t, boom, err)
    assert.Equal(t, 0, v)
    assert.False(t, failed.Ok())
}

func TestNew(t *testing.T) {
    assert.Equal(t, result.Some("x"), result.New("x", nil))
    boom := errors.New("boom")
    assert.Equal(t, result.Error[string](boom), result.New("", boom))
}
