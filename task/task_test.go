package task_test

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/tawesoft/dagrun/task"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

func TestFrom0Infallible(t *testing.T) {
    literal := task.From0Infallible(func(ctx context.Context) int { return 1 })
    assert.Equal(t, 0, literal.Arity())
    assert.True(t, literal.OutputType().Equal(typeid.Of[int]()))

    future := literal.Run(context.Background(), nil)
    carrier, err := future.Await(context.Background())
    assert.NoError(t, err)

    v, ok := value.DowncastTo[int](carrier)
    assert.True(t, ok)
    assert.Equal(t, 1, v)
}

func TestFrom2Sum(t *testing.T) {
    sum := task.From2(func(ctx context.Context, a, b int) (int, error) {
        return a + b, nil
    })

    assert.Equal(t, 2, sum.Arity())
    assert.True(t, sum.InputType(0).Equal(typeid.Of[int]()))
    assert.True(t, sum.InputType(1).Equal(typeid.Of[int]()))

    inputs := []value.Carrier{value.New(2), value.New(3)}
    future := sum.Run(context.Background(), inputs)
    carrier, err := future.Await(context.Background())
    assert.NoError(t, err)

    v, ok := value.DowncastTo[int](carrier)
    assert.True(t, ok)
    assert.Equal(t, 5, v)
}

func TestRunPropagatesError(t *testing.T) {
    boom := errors.New("boom")
    failing := task.From0(func(ctx context.Context) (int, error) {
        return 0, boom
    })

    future := failing.Run(context.Background(), nil)
    _, err := future.Await(context.Background())
    assert.Equal(t, boom, err)
}

func TestAwaitRespectsCancellation(t *testing.T) {
    blocked := task.From0(func(ctx context.Context) (int, error) {
        <-ctx.Done()
        return 0, ctx.Err()
    })

    ctx, cancel := context.WithCancel(context.Background())
    future := blocked.Run(ctx, nil)
    cancel()

    _, err := future.Await(ctx)
    assert.Error(t, err)
}
