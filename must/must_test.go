package must_test

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/dagrun/must"
)

func TestCheck(t *testing.T) {
    assert.NotPanics(t, func() {
        err := must.Check(nil)
        assert.NoError(t, err)
    })

    assert.Panics(t, func() {
        must.Check(errors.New("oops"))
    })
}
