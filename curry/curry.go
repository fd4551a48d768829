// Package curry implements the pending node: a task coupled with the slot
// buffer that accumulates its inputs before it can run.
package curry

import (
    "context"

    "github.com/tawesoft/dagrun/slots"
    "github.com/tawesoft/dagrun/task"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

// Curried couples a task with its slot buffer.
type Curried struct {
    task   task.Task
    inputs *slots.Buffer
}

// New builds a Curried wrapping t, with an empty slot buffer sized and typed
// to t's declared arity.
func New(t task.Task) *Curried {
    types := make([]typeid.ID, t.Arity())
    for i := range types {
        types[i] = t.InputType(i)
    }
    return &Curried{task: t, inputs: slots.New(types)}
}

// Arity forwards to the wrapped task.
func (c *Curried) Arity() int { return c.task.Arity() }

// InputType forwards to the wrapped task.
func (c *Curried) InputType(i int) typeid.ID { return c.task.InputType(i) }

// OutputType forwards to the wrapped task.
func (c *Curried) OutputType() typeid.ID { return c.task.OutputType() }

// Ready reports whether every input slot has been filled.
func (c *Curried) Ready() bool {
    return c.inputs.Full()
}

// Curry fills slot i with carrier. Errors and their (TypeMismatch,
// OutOfRange) taxonomy are identical to [slots.Buffer.Insert].
func (c *Curried) Curry(i int, carrier value.Carrier) error {
    return c.inputs.Insert(i, carrier)
}

// Call consumes the node: it drains the slot buffer and starts the task,
// returning its Future. The Runner never calls Call unless Ready is true;
// Call returns the slot buffer's TakeError if called prematurely.
func (c *Curried) Call(ctx context.Context) (task.Future, error) {
    drained, err := c.inputs.Drain()
    if err != nil {
        return task.Future{}, err
    }
    return c.task.Run(ctx, drained), nil
}
