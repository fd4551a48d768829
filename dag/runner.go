package dag

import (
    "context"
    "fmt"

    "golang.org/x/sync/errgroup"

    "github.com/tawesoft/dagrun/must"
    "github.com/tawesoft/dagrun/value"
)

type completion struct {
    id      NodeID
    carrier value.Carrier
    err     error
}

// Run drives every node to completion, extracting the maximum parallelism
// the graph's dependencies permit. It returns the first error raised by any
// task, at which point every other in-flight task is cancelled and the
// graph is left with a mix of Ready and Running nodes. The graph structure
// (its nodes and edges) must not be mutated concurrently with Run.
func (g *Graph) Run(ctx context.Context) error {
    return g.run(ctx)
}

// RunInfallible is [Run] for a graph built entirely from the task package's
// "...Infallible" constructors, whose tasks are statically known never to
// return an error. If a task does return a non-nil error anyway, this is a
// construction-time contract violation and RunInfallible panics rather than
// inventing an error return the signature doesn't have.
func (g *Graph) RunInfallible(ctx context.Context) {
    if err := g.run(ctx); err != nil {
        panic(fmt.Errorf("dag: RunInfallible observed a task error; only wire tasks built with the Infallible constructors: %w", err))
    }
}

func (g *Graph) run(ctx context.Context) error {
    runCtx, cancel := context.WithCancel(ctx)
    defer cancel()

    group, groupCtx := errgroup.WithContext(runCtx)
    completions := make(chan completion)
    inFlight := 0

    start := func(id NodeID) {
        n := g.nodes[id]
        future, err := n.pending.Call(groupCtx)
        must.Check(err)
        n.pending = nil
        n.state = Running
        inFlight++

        group.Go(func() error {
            carrier, ferr := future.Await(groupCtx)
            select {
            case completions <- completion{id: id, carrier: carrier, err: ferr}:
            case <-groupCtx.Done():
            }
            return ferr
        })
    }

    // Setup: start every node whose slot buffer is already full, typically
    // the zero-arity "literal" tasks that seed the graph.
    for i, n := range g.nodes {
        if n.state == Pending && n.pending.Ready() {
            start(NodeID(i))
        }
    }

    for inFlight > 0 {
        select {
        case c := <-completions:
            inFlight--
            if c.err != nil {
                cancel()
                _ = group.Wait()
                return c.err
            }
            g.fanOut(c, start)
            n := g.nodes[c.id]
            n.value = c.carrier
            n.state = Ready
        case <-groupCtx.Done():
            // A sibling's context was cancelled without a completion of its
            // own reaching us (e.g. the outer ctx was cancelled directly).
            _ = group.Wait()
            return groupCtx.Err()
        }
    }
    return nil
}

// fanOut clones c's carrier into every outgoing edge's consumer slot, and
// starts any consumer that becomes ready as a result.
func (g *Graph) fanOut(c completion, start func(NodeID)) {
    for _, e := range g.outgoing[c.id] {
        consumer := g.nodes[e.consumer]
        if consumer.state != Pending {
            // Only arises if the graph was mutated mid-run, which is
            // unsupported; normal construction never leaves this reachable.
            continue
        }
        must.Check(consumer.pending.Curry(e.slot, c.carrier.Clone()))
        if consumer.pending.Ready() {
            start(e.consumer)
        }
    }
}
