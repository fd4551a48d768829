package dag

import (
    "github.com/tawesoft/dagrun/curry"
    "github.com/tawesoft/dagrun/task"
    "github.com/tawesoft/dagrun/typeid"
    "github.com/tawesoft/dagrun/value"
)

// NodeID is a stable handle to a node, valid for the lifetime of the Graph
// that created it.
type NodeID int

// NodeState names which of the three lifecycle states a node inhabits.
type NodeState int

const (
    // Pending holds a curried task; dependencies may still be added or
    // redirected.
    Pending NodeState = iota
    // Running holds only the declared output type; the in-flight future is
    // owned by the Runner.
    Running
    // Ready holds the final produced value and its fingerprint.
    Ready
)

func (s NodeState) String() string {
    switch s {
    case Pending:
        return "Pending"
    case Running:
        return "Running"
    case Ready:
        return "Ready"
    default:
        return "unknown"
    }
}

// node is the graph's internal, mutable record for one task. At most one of
// pending/value is meaningful at a time, selected by state; a Running node
// carries only its outputType.
type node struct {
    state      NodeState
    outputType typeid.ID

    pending *curry.Curried // meaningful iff state == Pending
    future  task.Future     // never assigned: the Runner keeps each in-flight future in its own goroutine
    value   value.Carrier   // meaningful iff state == Ready
}

// NodeSnapshot is a read-only view of one node's final state, returned by
// [Graph.Nodes]. It is a snapshot: later mutation of the graph does not
// retroactively change a NodeSnapshot already returned to the caller.
type NodeSnapshot struct {
    ID         NodeID
    State      NodeState
    OutputType typeid.ID

    // Value and HasValue are only meaningful when State == Ready.
    Value    value.Carrier
    HasValue bool
}
