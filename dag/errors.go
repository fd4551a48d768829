package dag

import (
    "fmt"

    "github.com/tawesoft/dagrun/typeid"
)

// HasStartedError means the caller tried to modify a node's inputs after it
// left the Pending state.
type HasStartedError struct {
    Node NodeID
}

func (e *HasStartedError) Error() string {
    return fmt.Sprintf("dag: node %d has already started running, its inputs can no longer be modified", e.Node)
}

// OutOfRangeError means a slot index was >= the task's declared arity.
type OutOfRangeError struct {
    Arity int
    Slot  int
}

func (e *OutOfRangeError) Error() string {
    return fmt.Sprintf("dag: slot %d is out of range for a task of arity %d", e.Slot, e.Arity)
}

// TypeMismatchError means a wire's two endpoints disagree on type: the
// producer's declared output fingerprint differs from the consumer's
// declared input fingerprint at the wired slot.
type TypeMismatchError struct {
    Input  typeid.ID
    Output typeid.ID
}

func (e *TypeMismatchError) Error() string {
    return fmt.Sprintf("dag: type mismatch: input slot declared %s, producer declared output %s", e.Input, e.Output)
}

// WouldCycleError means adding the requested edge would create a directed
// cycle. The graph is left exactly as it was before the call.
type WouldCycleError struct{}

func (e *WouldCycleError) Error() string {
    return "dag: adding this dependency would create a cycle"
}

// ErrorWithTask wraps a construction error alongside the task the caller
// passed in, so that a potentially expensive-to-build task value is handed
// back rather than silently dropped.
type ErrorWithTask[T any] struct {
    Err  error
    Task T
}

func (e *ErrorWithTask[T]) Error() string {
    return e.Err.Error()
}

func (e *ErrorWithTask[T]) Unwrap() error {
    return e.Err
}
