// Package task implements the one-shot computation abstraction the engine
// schedules: a fixed input arity, an input type fingerprint per position, a
// success output type, and a consume-and-run operation that returns a
// [Future]. Constructors are provided for arity 0 through 8, matching the
// recommended minimum fixed maximum arity; an "Infallible" constructor
// family sugars the common case of a task that cannot itself fail.
package task

import (
    "context"

    "github.com/tawesoft/dagrun/tuple"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

// Task is any value from which the engine can derive arity, input types,
// output type, and a consume-and-run [Future].
type Task interface {
    // Arity returns the number of declared input positions.
    Arity() int
    // InputType returns the declared fingerprint of input position i.
    // Panics if i is out of range.
    InputType(i int) typeid.ID
    // OutputType returns the declared fingerprint of the success value.
    OutputType() typeid.ID
    // Run consumes the task and the filled inputs (already downcast-checked
    // by the caller's construction-time wiring) and starts the computation,
    // returning a Future of its (success, error) result.
    Run(ctx context.Context, inputs []value.Carrier) Future
}

func decode[T any](inputs []value.Carrier, i int) T {
    v, ok := value.DowncastTo[T](inputs[i])
    if !ok {
        panic("task: input slot type disagreed with declared type at call time; this is a construction-time invariant violation")
    }
    return v
}

// --- arity 0 ---

type task0[O any] struct {
    f func(ctx context.Context) (O, error)
}

// From0 builds a zero-arity task from f.
func From0[O any](f func(ctx context.Context) (O, error)) Task {
    return task0[O]{f: f}
}

// From0Infallible builds a zero-arity task whose computation cannot fail.
func From0Infallible[O any](f func(ctx context.Context) O) Task {
    return task0[O]{f: func(ctx context.Context) (O, error) { return f(ctx), nil }}
}

func (t task0[O]) Arity() int { return 0 }
func (t task0[O]) InputType(i int) typeid.ID { panic("task: input index out of range for arity 0") }
func (t task0[O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task0[O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        tuple.ToT0()
        out, err := t.f(ctx)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 1 ---

type task1[A1, O any] struct {
    f func(ctx context.Context, a1 A1) (O, error)
}

func From1[A1, O any](f func(ctx context.Context, a1 A1) (O, error)) Task {
    return task1[A1, O]{f: f}
}

func From1Infallible[A1, O any](f func(ctx context.Context, a1 A1) O) Task {
    return task1[A1, O]{f: func(ctx context.Context, a1 A1) (O, error) { return f(ctx, a1), nil }}
}

func (t task1[A1, O]) Arity() int { return 1 }
func (t task1[A1, O]) InputType(i int) typeid.ID {
    if i == 0 {
        return typeid.Of[A1]()
    }
    panic("task: input index out of range for arity 1")
}
func (t task1[A1, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task1[A1, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT1(decode[A1](inputs, 0))
        a1 := args.Unpack()
        out, err := t.f(ctx, a1)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 2 ---

type task2[A1, A2, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2) (O, error)
}

func From2[A1, A2, O any](f func(ctx context.Context, a1 A1, a2 A2) (O, error)) Task {
    return task2[A1, A2, O]{f: f}
}

func From2Infallible[A1, A2, O any](f func(ctx context.Context, a1 A1, a2 A2) O) Task {
    return task2[A1, A2, O]{f: func(ctx context.Context, a1 A1, a2 A2) (O, error) { return f(ctx, a1, a2), nil }}
}

func (t task2[A1, A2, O]) Arity() int { return 2 }
func (t task2[A1, A2, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    }
    panic("task: input index out of range for arity 2")
}
func (t task2[A1, A2, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task2[A1, A2, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT2(decode[A1](inputs, 0), decode[A2](inputs, 1))
        a1, a2 := args.Unpack()
        out, err := t.f(ctx, a1, a2)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 3 ---

type task3[A1, A2, A3, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3) (O, error)
}

func From3[A1, A2, A3, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3) (O, error)) Task {
    return task3[A1, A2, A3, O]{f: f}
}

func From3Infallible[A1, A2, A3, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3) O) Task {
    return task3[A1, A2, A3, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3) (O, error) { return f(ctx, a1, a2, a3), nil }}
}

func (t task3[A1, A2, A3, O]) Arity() int { return 3 }
func (t task3[A1, A2, A3, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    }
    panic("task: input index out of range for arity 3")
}
func (t task3[A1, A2, A3, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task3[A1, A2, A3, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT3(decode[A1](inputs, 0), decode[A2](inputs, 1), decode[A3](inputs, 2))
        a1, a2, a3 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 4 ---

type task4[A1, A2, A3, A4, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4) (O, error)
}

func From4[A1, A2, A3, A4, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4) (O, error)) Task {
    return task4[A1, A2, A3, A4, O]{f: f}
}

func From4Infallible[A1, A2, A3, A4, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4) O) Task {
    return task4[A1, A2, A3, A4, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4) (O, error) { return f(ctx, a1, a2, a3, a4), nil }}
}

func (t task4[A1, A2, A3, A4, O]) Arity() int { return 4 }
func (t task4[A1, A2, A3, A4, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    case 3:
        return typeid.Of[A4]()
    }
    panic("task: input index out of range for arity 4")
}
func (t task4[A1, A2, A3, A4, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task4[A1, A2, A3, A4, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT4(
            decode[A1](inputs, 0), decode[A2](inputs, 1),
            decode[A3](inputs, 2), decode[A4](inputs, 3),
        )
        a1, a2, a3, a4 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3, a4)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 5 ---

type task5[A1, A2, A3, A4, A5, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (O, error)
}

func From5[A1, A2, A3, A4, A5, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (O, error)) Task {
    return task5[A1, A2, A3, A4, A5, O]{f: f}
}

func From5Infallible[A1, A2, A3, A4, A5, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) O) Task {
    return task5[A1, A2, A3, A4, A5, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (O, error) { return f(ctx, a1, a2, a3, a4, a5), nil }}
}

func (t task5[A1, A2, A3, A4, A5, O]) Arity() int { return 5 }
func (t task5[A1, A2, A3, A4, A5, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    case 3:
        return typeid.Of[A4]()
    case 4:
        return typeid.Of[A5]()
    }
    panic("task: input index out of range for arity 5")
}
func (t task5[A1, A2, A3, A4, A5, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task5[A1, A2, A3, A4, A5, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT5(
            decode[A1](inputs, 0), decode[A2](inputs, 1), decode[A3](inputs, 2),
            decode[A4](inputs, 3), decode[A5](inputs, 4),
        )
        a1, a2, a3, a4, a5 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3, a4, a5)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 6 ---

type task6[A1, A2, A3, A4, A5, A6, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (O, error)
}

func From6[A1, A2, A3, A4, A5, A6, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (O, error)) Task {
    return task6[A1, A2, A3, A4, A5, A6, O]{f: f}
}

func From6Infallible[A1, A2, A3, A4, A5, A6, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) O) Task {
    return task6[A1, A2, A3, A4, A5, A6, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (O, error) { return f(ctx, a1, a2, a3, a4, a5, a6), nil }}
}

func (t task6[A1, A2, A3, A4, A5, A6, O]) Arity() int { return 6 }
func (t task6[A1, A2, A3, A4, A5, A6, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    case 3:
        return typeid.Of[A4]()
    case 4:
        return typeid.Of[A5]()
    case 5:
        return typeid.Of[A6]()
    }
    panic("task: input index out of range for arity 6")
}
func (t task6[A1, A2, A3, A4, A5, A6, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task6[A1, A2, A3, A4, A5, A6, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT6(
            decode[A1](inputs, 0), decode[A2](inputs, 1), decode[A3](inputs, 2),
            decode[A4](inputs, 3), decode[A5](inputs, 4), decode[A6](inputs, 5),
        )
        a1, a2, a3, a4, a5, a6 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3, a4, a5, a6)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 7 ---

type task7[A1, A2, A3, A4, A5, A6, A7, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) (O, error)
}

func From7[A1, A2, A3, A4, A5, A6, A7, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) (O, error)) Task {
    return task7[A1, A2, A3, A4, A5, A6, A7, O]{f: f}
}

func From7Infallible[A1, A2, A3, A4, A5, A6, A7, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) O) Task {
    return task7[A1, A2, A3, A4, A5, A6, A7, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) (O, error) { return f(ctx, a1, a2, a3, a4, a5, a6, a7), nil }}
}

func (t task7[A1, A2, A3, A4, A5, A6, A7, O]) Arity() int { return 7 }
func (t task7[A1, A2, A3, A4, A5, A6, A7, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    case 3:
        return typeid.Of[A4]()
    case 4:
        return typeid.Of[A5]()
    case 5:
        return typeid.Of[A6]()
    case 6:
        return typeid.Of[A7]()
    }
    panic("task: input index out of range for arity 7")
}
func (t task7[A1, A2, A3, A4, A5, A6, A7, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task7[A1, A2, A3, A4, A5, A6, A7, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT7(
            decode[A1](inputs, 0), decode[A2](inputs, 1), decode[A3](inputs, 2),
            decode[A4](inputs, 3), decode[A5](inputs, 4), decode[A6](inputs, 5),
            decode[A7](inputs, 6),
        )
        a1, a2, a3, a4, a5, a6, a7 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3, a4, a5, a6, a7)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}

// --- arity 8 ---

type task8[A1, A2, A3, A4, A5, A6, A7, A8, O any] struct {
    f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) (O, error)
}

func From8[A1, A2, A3, A4, A5, A6, A7, A8, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) (O, error)) Task {
    return task8[A1, A2, A3, A4, A5, A6, A7, A8, O]{f: f}
}

func From8Infallible[A1, A2, A3, A4, A5, A6, A7, A8, O any](f func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) O) Task {
    return task8[A1, A2, A3, A4, A5, A6, A7, A8, O]{f: func(ctx context.Context, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) (O, error) { return f(ctx, a1, a2, a3, a4, a5, a6, a7, a8), nil }}
}

func (t task8[A1, A2, A3, A4, A5, A6, A7, A8, O]) Arity() int { return 8 }
func (t task8[A1, A2, A3, A4, A5, A6, A7, A8, O]) InputType(i int) typeid.ID {
    switch i {
    case 0:
        return typeid.Of[A1]()
    case 1:
        return typeid.Of[A2]()
    case 2:
        return typeid.Of[A3]()
    case 3:
        return typeid.Of[A4]()
    case 4:
        return typeid.Of[A5]()
    case 5:
        return typeid.Of[A6]()
    case 6:
        return typeid.Of[A7]()
    case 7:
        return typeid.Of[A8]()
    }
    panic("task: input index out of range for arity 8")
}
func (t task8[A1, A2, A3, A4, A5, A6, A7, A8, O]) OutputType() typeid.ID { return typeid.Of[O]() }
func (t task8[A1, A2, A3, A4, A5, A6, A7, A8, O]) Run(ctx context.Context, inputs []value.Carrier) Future {
    return newFuture(ctx, func(ctx context.Context) (value.Carrier, error) {
        args := tuple.ToT8(
            decode[A1](inputs, 0), decode[A2](inputs, 1), decode[A3](inputs, 2),
            decode[A4](inputs, 3), decode[A5](inputs, 4), decode[A6](inputs, 5),
            decode[A7](inputs, 6), decode[A8](inputs, 7),
        )
        a1, a2, a3, a4, a5, a6, a7, a8 := args.Unpack()
        out, err := t.f(ctx, a1, a2, a3, a4, a5, a6, a7, a8)
        if err != nil {
            return value.Carrier{}, err
        }
        return value.New(out), nil
    })
}
