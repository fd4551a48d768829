package task

import (
    "context"

    "github.com/tawesoft/dagrun/fun/result"
    "github.com/tawesoft/dagrun/value"
)

// Future is a handle to a task computation already running in its own
// goroutine. It is produced by [Task.Run] and consumed exactly once by the
// Runner.
type Future struct {
    cancel  context.CancelFunc
    channel chan result.Result[value.Carrier]
}

// newFuture starts compute in a new goroutine under a context derived from
// ctx, and returns a handle that yields its one (value, error) result.
//
// Send happens exactly once: the result channel is buffered to depth 1 and
// is read by exactly one Await call.
func newFuture(ctx context.Context, compute func(context.Context) (value.Carrier, error)) Future {
    derived, cancel := context.WithCancel(ctx)
    f := Future{
        cancel:  cancel,
        channel: make(chan result.Result[value.Carrier], 1),
    }
    go runCompute(derived, compute, f.channel)
    return f
}

func runCompute(
    ctx context.Context,
    compute func(context.Context) (value.Carrier, error),
    channel chan result.Result[value.Carrier],
) {
    v, err := compute(ctx)
    channel <- result.New(v, err)
}

// Await blocks until the computation completes or ctx is cancelled,
// whichever happens first.
func (f Future) Await(ctx context.Context) (value.Carrier, error) {
    select {
    case <-ctx.Done():
        return value.Carrier{}, ctx.Err()
    case r := <-f.channel:
        return r.Unpack()
    }
}

// Cancel cancels the context the computation was started with. It does not
// guarantee the goroutine stops immediately; well-behaved compute functions
// observe ctx.Done() themselves.
func (f Future) Cancel() {
    f.cancel()
}
