package dag_test

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/dagrun/dag"
    "github.com/tawesoft/dagrun/internal/test"
    "github.com/tawesoft/dagrun/task"
)

func literalTask(v int) task.Task {
    return task.From0Infallible(func(ctx context.Context) int { return v })
}

func identityTask() task.Task {
    return task.From1(func(ctx context.Context, a int) (int, error) { return a, nil })
}

func sumTask() task.Task {
    return task.From2(func(ctx context.Context, a, b int) (int, error) { return a + b, nil })
}

// Scenario 1: a linear chain of three nodes, producing 1, identity, identity.
func TestLinearChain(t *testing.T) {
    g := dag.New()
    n1 := g.NewNode(literalTask(1))
    n2, err := g.AddChild(n1, identityTask(), 0)
    require.NoError(t, err)
    n3, err := g.AddChild(n2, identityTask(), 0)
    require.NoError(t, err)

    require.NoError(t, g.Run(context.Background()))

    v, ok := dag.ValueOf[int](g, n3)
    assert.True(t, ok)
    assert.Equal(t, 1, v)
}

// Scenario 2: a diamond where a literal-1 node fans out to two identities
// feeding a sum.
func TestDiamondFanOut(t *testing.T) {
    g := dag.New()
    lit := g.NewNode(literalTask(1))
    a, err := g.AddChild(lit, identityTask(), 0)
    require.NoError(t, err)
    b, err := g.AddChild(lit, identityTask(), 0)
    require.NoError(t, err)

    root := g.NewNode(sumTask())
    require.NoError(t, g.UpdateDependency(a, root, 0))
    require.NoError(t, g.UpdateDependency(b, root, 1))

    require.NoError(t, g.Run(context.Background()))

    v, ok := dag.ValueOf[int](g, root)
    assert.True(t, ok)
    assert.Equal(t, 2, v)
}

// Scenario 3: a Fibonacci ladder of sums, up to N=44.
func TestFibonacciLadder(t *testing.T) {
    g := dag.New()
    prev2 := g.NewNode(literalTask(1))
    prev := g.NewNode(literalTask(1))

    const n = 44
    for i := 0; i < n; i++ {
        next := g.NewNode(sumTask())
        require.NoError(t, g.UpdateDependency(prev2, next, 0))
        require.NoError(t, g.UpdateDependency(prev, next, 1))
        prev2, prev = prev, next
    }

    require.NoError(t, g.Run(context.Background()))

    // Seeded with two 1s (F(1), F(2)) and 44 further sums lands on F(46).
    v, ok := dag.ValueOf[int](g, prev)
    assert.True(t, ok)
    assert.Equal(t, 1836311903, v)
}

// Scenario 4: a balanced binary tree of sums, depth 10, leaves all literal 1.
func TestBalancedTreeOfSums(t *testing.T) {
    g := dag.New()

    var build func(depth int) dag.NodeID
    build = func(depth int) dag.NodeID {
        if depth == 0 {
            return g.NewNode(literalTask(1))
        }
        left := build(depth - 1)
        right := build(depth - 1)
        root := g.NewNode(sumTask())
        require.NoError(t, g.UpdateDependency(left, root, 0))
        require.NoError(t, g.UpdateDependency(right, root, 1))
        return root
    }

    root := build(10)
    require.NoError(t, g.Run(context.Background()))

    v, ok := dag.ValueOf[int](g, root)
    assert.True(t, ok)
    assert.Equal(t, 1024, v)
}

// Scenario 5: wiring an int-typed slot to a float64-typed producer fails
// construction, and leaves the graph unchanged.
func TestTypeMismatch(t *testing.T) {
    g := dag.New()
    child := g.NewNode(identityTask())

    literalFloat := task.From0Infallible(func(ctx context.Context) float64 { return 1.0 })
    _, err := g.AddParent(literalFloat, child, 0)
    require.Error(t, err)

    var withTask *dag.ErrorWithTask[task.Task]
    require.ErrorAs(t, err, &withTask)

    var mismatch *dag.TypeMismatchError
    assert.ErrorAs(t, err, &mismatch)

    // the graph is unchanged: child still has no incoming edge at slot 0.
    assert.False(t, g.RemoveDependency(child, 0))
}

// Scenario 6: updating a dependency that would close a cycle fails with
// WouldCycleError, leaving the graph unchanged.
func TestWouldCycle(t *testing.T) {
    g := dag.New()
    a := g.NewNode(identityTask())
    b, err := g.AddChild(a, identityTask(), 0) // a -> b @ 0
    require.NoError(t, err)

    err = g.UpdateDependency(b, a, 0) // would add b -> a, closing a cycle
    require.Error(t, err)

    var cycle *dag.WouldCycleError
    assert.ErrorAs(t, err, &cycle)
}

// Scenario 7: once a node leaves Pending, modifying its inputs fails with
// HasStartedError.
func TestHasStarted(t *testing.T) {
    g := dag.New()
    parent := g.NewNode(literalTask(1))
    child, err := g.AddChild(parent, identityTask(), 0)
    require.NoError(t, err)

    require.NoError(t, g.Run(context.Background()))

    err = g.UpdateDependency(child, parent, 0)
    require.Error(t, err)

    var started *dag.HasStartedError
    require.ErrorAs(t, err, &started)
    assert.Equal(t, parent, started.Node)
}

// Scenario 8: in try mode, one task's error short-circuits Run and cancels
// a sibling that was still in-flight.
func TestFailFastCancelsSiblings(t *testing.T) {
    test.Completes(t, 150*time.Millisecond, func() {
        g := dag.New()

        slow := task.From0(func(ctx context.Context) (int, error) {
            select {
            case <-time.After(2 * time.Second):
                return 1, nil
            case <-ctx.Done():
                return 0, ctx.Err()
            }
        })
        boom := errors.New("boom")
        failing := task.From0(func(ctx context.Context) (int, error) {
            return 0, boom
        })

        slowID := g.NewNode(slow)
        g.NewNode(failing)

        err := g.Run(context.Background())
        require.Error(t, err)
        assert.Equal(t, boom, err)

        for _, snap := range g.Nodes() {
            if snap.ID == slowID {
                assert.NotEqual(t, dag.Ready, snap.State)
            }
        }
    })
}
