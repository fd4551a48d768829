// Package dag implements the graph data model, the construction API, and the
// concurrent Runner that drives a task graph to completion. See the sibling
// packages typeid, value, slots, task and curry for the leaf abstractions
// the graph is built from.
package dag

import (
    "github.com/tawesoft/dagrun/curry"
    "github.com/tawesoft/dagrun/operator"
    "github.com/tawesoft/dagrun/task"
    "github.com/tawesoft/dagrun/value"
)

func downcast[T any](c value.Carrier) (T, bool) {
    return value.DowncastTo[T](c.Clone())
}

type edgeKey struct {
    consumer NodeID
    slot     int
}

type outEdge struct {
    consumer NodeID
    slot     int
}

// Graph owns a set of nodes and the directed edges wiring their inputs and
// outputs together. The zero value is not valid; use [New].
type Graph struct {
    nodes []*node

    // incoming indexes (consumer, slot) -> producer, enforcing at most one
    // incoming edge per slot.
    incoming map[edgeKey]NodeID
    // outgoing indexes producer -> its outgoing edges, for fan-out during a
    // run.
    outgoing map[NodeID][]outEdge
}

// New returns an empty graph.
func New() *Graph {
    return &Graph{
        incoming: make(map[edgeKey]NodeID),
        outgoing: make(map[NodeID][]outEdge),
    }
}

// NewNode allocates a Pending node wrapping t and returns its stable handle.
func (g *Graph) NewNode(t task.Task) NodeID {
    id := NodeID(len(g.nodes))
    g.nodes = append(g.nodes, &node{
        state:      Pending,
        outputType: t.OutputType(),
        pending:    curry.New(t),
    })
    return id
}

func (g *Graph) mustNode(id NodeID) *node {
    if int(id) < 0 || int(id) >= len(g.nodes) {
        panic("dag: NodeID does not belong to this graph")
    }
    return g.nodes[id]
}

// AddParent allocates a new Pending node wrapping t, and wires its output
// into child's input at slot. If child already has a producer at slot, the
// old edge is replaced; the old producer node is retained in the graph.
//
// On error, t is returned unconsumed via the ErrorWithTask wrapper.
func (g *Graph) AddParent(t task.Task, child NodeID, slot int) (NodeID, error) {
    c := g.mustNode(child)
    if c.state != Pending {
        return 0, &ErrorWithTask[task.Task]{Err: &HasStartedError{Node: child}, Task: t}
    }
    if slot < 0 || slot >= c.pending.Arity() {
        return 0, &ErrorWithTask[task.Task]{Err: &OutOfRangeError{Arity: c.pending.Arity(), Slot: slot}, Task: t}
    }
    want := c.pending.InputType(slot)
    got := t.OutputType()
    if !want.Equal(got) {
        return 0, &ErrorWithTask[task.Task]{Err: &TypeMismatchError{Input: want, Output: got}, Task: t}
    }

    g.removeEdgeAt(child, slot)
    parentID := g.NewNode(t)
    g.addEdge(parentID, child, slot)
    return parentID, nil
}

// AddChild allocates a new Pending node wrapping t, and wires parent's
// output into the new node's input at slot. parent need not be Pending: its
// output type is known in any of the three states.
func (g *Graph) AddChild(parent NodeID, t task.Task, slot int) (NodeID, error) {
    p := g.mustNode(parent)
    if slot < 0 || slot >= t.Arity() {
        return 0, &ErrorWithTask[task.Task]{Err: &OutOfRangeError{Arity: t.Arity(), Slot: slot}, Task: t}
    }
    want := t.InputType(slot)
    got := p.outputType
    if !want.Equal(got) {
        return 0, &ErrorWithTask[task.Task]{Err: &TypeMismatchError{Input: want, Output: got}, Task: t}
    }

    childID := g.NewNode(t)
    g.addEdge(parent, childID, slot)
    return childID, nil
}

// UpdateDependency rewires child's input at slot to be produced by parent,
// replacing any existing edge there. It fails with HasStarted, OutOfRange,
// TypeMismatch (as AddParent), or WouldCycle if the new edge would create a
// directed cycle; on any error the graph is left exactly as it was.
func (g *Graph) UpdateDependency(parent NodeID, child NodeID, slot int) error {
    c := g.mustNode(child)
    p := g.mustNode(parent)
    if c.state != Pending {
        return &HasStartedError{Node: child}
    }
    if slot < 0 || slot >= c.pending.Arity() {
        return &OutOfRangeError{Arity: c.pending.Arity(), Slot: slot}
    }
    want := c.pending.InputType(slot)
    got := p.outputType
    if !want.Equal(got) {
        return &TypeMismatchError{Input: want, Output: got}
    }
    // Adding parent -> child@slot would cycle iff child can already reach
    // parent; a pre-insertion reachability check avoids the source's
    // add-then-rollback.
    if g.reachable(child, parent) {
        return &WouldCycleError{}
    }

    g.removeEdgeAt(child, slot)
    g.addEdge(parent, child, slot)
    return nil
}

// RemoveDependency removes the edge feeding child's slot, if any, and
// reports whether one existed.
func (g *Graph) RemoveDependency(child NodeID, slot int) bool {
    _, ok := g.incoming[edgeKey{consumer: child, slot: slot}]
    if !ok {
        return false
    }
    g.removeEdgeAt(child, slot)
    return true
}

// ValueOf returns a clone of node's stored value if it is Ready and its
// fingerprint equals T's; otherwise it returns the zero T and false. It
// never panics, regardless of node's state.
func ValueOf[T any](g *Graph, id NodeID) (T, bool) {
    n := g.mustNode(id)
    if n.state != Ready {
        return operator.Zero[T](), false
    }
    return downcast[T](n.value)
}

// Nodes returns a snapshot of every node's current state. Unlike the
// source's consuming into_nodes, this does not invalidate the graph: Go has
// no ownership-transfer semantics to enforce a one-shot call, so Nodes may
// be called any number of times.
func (g *Graph) Nodes() []NodeSnapshot {
    out := make([]NodeSnapshot, len(g.nodes))
    for i, n := range g.nodes {
        snap := NodeSnapshot{ID: NodeID(i), State: n.state, OutputType: n.outputType}
        if n.state == Ready {
            snap.Value = n.value
            snap.HasValue = true
        }
        out[i] = snap
    }
    return out
}

func (g *Graph) addEdge(producer, consumer NodeID, slot int) {
    key := edgeKey{consumer: consumer, slot: slot}
    g.incoming[key] = producer
    g.outgoing[producer] = append(g.outgoing[producer], outEdge{consumer: consumer, slot: slot})
}

func (g *Graph) removeEdgeAt(consumer NodeID, slot int) {
    key := edgeKey{consumer: consumer, slot: slot}
    producer, ok := g.incoming[key]
    if !ok {
        return
    }
    delete(g.incoming, key)
    edges := g.outgoing[producer]
    for i, e := range edges {
        if e.consumer == consumer && e.slot == slot {
            g.outgoing[producer] = append(edges[:i], edges[i+1:]...)
            break
        }
    }
}

// reachable reports whether to is reachable from from by following outgoing
// edges (a directed path from -> ... -> to).
func (g *Graph) reachable(from, to NodeID) bool {
    if from == to {
        return true
    }
    visited := make(map[NodeID]bool)
    queue := []NodeID{from}
    for len(queue) > 0 {
        cur := queue[0]
        queue = queue[1:]
        if visited[cur] {
            continue
        }
        visited[cur] = true
        for _, e := range g.outgoing[cur] {
            if e.consumer == to {
                return true
            }
            if !visited[e.consumer] {
                queue = append(queue, e.consumer)
            }
        }
    }
    return false
}
