package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/classics/bfs"
	"github.com/gostructs/classics/graph"
)

// adjList is a minimal bfs.Adjacency used to exercise the walker without
// going through the matrix graph.
type adjList [][]int

func (a adjList) VertexCount() int { return len(a) }

func (a adjList) Neighbors(v int) ([]int, error) { return a[v], nil }

// failing returns an error for one vertex.
type failing struct {
	adjList
	bad int
}

func (f failing) Neighbors(v int) ([]int, error) {
	if v == f.bad {
		return nil, errors.New("boom")
	}
	return f.adjList[v], nil
}

// chain builds an undirected path 0-1-...-(n-1) on the matrix graph.
func chain(t testing.TB, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddConnection(i, i+1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.Search(nil, 0, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Walk(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := adjList{{1}, {0}}
	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err = bfs.Search(g, p[0], p[1])
		assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange, "pair %v", p)
	}
	_, err = bfs.Walk(adjList{}, 0)
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)

	_, err = bfs.Walk(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.Walk(adjList{nil}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, 0, res.Depth[0])
	assert.False(t, res.Found)

	res, err = bfs.Search(adjList{nil}, 0, 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// 0–1–2–3–0
	g := adjList{{1, 3}, {0, 2}, {1, 3}, {0, 2}}
	res, err := bfs.Walk(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 3: 0, 2: 1}, res.Parent)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := adjList{{1}, {0}, {3}, {2}}

	res, err := bfs.Walk(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))

	res, err = bfs.Search(g, 2, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{2, 3}, res.Order)
}

// TestBFS_StopsAtTarget checks that the search ends once the target is discovered.
func TestBFS_StopsAtTarget(t *testing.T) {
	g := chain(t, 10)
	res, err := bfs.Search(g, 0, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.False(t, res.Reached(4))
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit) and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 3)
	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{0, []int{0, 1, 2}},
		{10, []int{0, 1, 2}},
	}
	for _, c := range cases {
		res, err := bfs.Walk(g, 0, bfs.WithMaxDepth(c.depth))
		require.NoError(t, err)
		assert.Equal(t, c.want, res.Order, "MaxDepth=%d", c.depth)
	}

	res, err := bfs.Search(g, 0, 2, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found, "target beyond MaxDepth")
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 3)
	res, err := bfs.Walk(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and repeated neighbors never enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := adjList{{0, 1, 1}, {0, 0}}
	enqueued := 0
	res, err := bfs.Walk(g, 0, bfs.WithOnEnqueue(func(int, int) { enqueued++ }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, 2, enqueued)
}

// TestBFS_DenseGraphTerminates runs on a complete graph with self-loops,
// where revisiting without a visited set would never drain the frontier.
func TestBFS_DenseGraphTerminates(t *testing.T) {
	const n = 16
	g, err := graph.New(n)
	require.NoError(t, err)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			require.NoError(t, g.AddConnection(a, b))
		}
	}
	dequeued := 0
	res, err := bfs.Walk(g, 5, bfs.WithOnDequeue(func(int, int) { dequeued++ }))
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n, dequeued)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, 3)
	var enq, deq, vis []string
	entry := func(prefix string, v, d int) string { return fmt.Sprintf("%s:%d@%d", prefix, v, d) }

	_, err := bfs.Walk(g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, entry("e", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, entry("d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, entry("v", v, d)); return nil }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"e:0@0", "e:1@1", "e:2@2"}, enq)
	assert.Equal(t, []string{"d:0@0", "d:1@1", "d:2@2"}, deq)
	assert.Equal(t, []string{"v:0@0", "v:1@1", "v:2@2"}, vis)
}

// TestSearch_HooksIncludeTarget asserts that the target passes through every
// hook exactly once, including the start == end case.
func TestSearch_HooksIncludeTarget(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		want       []int
	}{
		{"far end", 0, 2, []int{0, 1, 2}},
		{"start is end", 1, 1, []int{1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var enq, deq, vis []int
			res, err := bfs.Search(chain(t, 3), c.start, c.end,
				bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
				bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
				bfs.WithOnVisit(func(v, _ int) error { vis = append(vis, v); return nil }),
			)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, c.want, enq)
			assert.Equal(t, c.want, deq)
			assert.Equal(t, c.want, vis)
			assert.Equal(t, c.want, res.Order)
		})
	}
}

func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop here")
	_, err := bfs.Walk(chain(t, 5), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.True(t, strings.Contains(err.Error(), "OnVisit error at 2"))
}

func TestBFS_NeighborErrors(t *testing.T) {
	_, err := bfs.Walk(failing{adjList: adjList{{1}, {0}}, bad: 1}, 0)
	assert.ErrorIs(t, err, bfs.ErrNeighbors)

	// neighbor index outside the graph
	_, err = bfs.Walk(adjList{{7}}, 0)
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.Walk(adjList{nil, nil}, 0)
	require.NoError(t, err)

	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	_, err = res.PathTo(1)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	_, err = res.Distance(1)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(g, 0, 99, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
