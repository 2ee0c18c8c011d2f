package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/classics/builder"
	"github.com/gostructs/classics/graph"
)

func degrees(t *testing.T, g *graph.Graph) []int {
	t.Helper()
	out := make([]int, g.VertexCount())
	for v := range out {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}
	return out
}

func TestBuild_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		con     builder.Constructor
		edges   int
		degrees []int
	}{
		{"path", 4, builder.Path(), 3, []int{1, 2, 2, 1}},
		{"cycle", 4, builder.Cycle(), 4, []int{2, 2, 2, 2}},
		{"star", 4, builder.Star(2), 3, []int{1, 1, 3, 1}},
		{"complete", 4, builder.Complete(), 6, []int{3, 3, 3, 3}},
		{"grid", 6, builder.Grid(2, 3), 7, []int{2, 3, 2, 2, 3, 2}},
		{"single path", 1, builder.Path(), 0, []int{0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := builder.Build(c.n, c.con)
			require.NoError(t, err)
			assert.Equal(t, c.edges, g.EdgeCount())
			assert.Equal(t, c.degrees, degrees(t, g))
		})
	}
}

func TestBuild_Compose(t *testing.T) {
	g, err := builder.Build(5, builder.Path(), builder.Star(0))
	require.NoError(t, err)
	// path 4 edges + star adds 0-2,0-3,0-4 (0-1 already present)
	assert.Equal(t, 7, g.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(0, builder.Path())
	assert.ErrorIs(t, err, graph.ErrBadCapacity)

	_, err = builder.Build(2, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(3, builder.Star(3))
	assert.ErrorIs(t, err, builder.ErrShapeMismatch)

	_, err = builder.Build(5, builder.Grid(2, 2))
	assert.ErrorIs(t, err, builder.ErrShapeMismatch)
	_, err = builder.Build(4, builder.Grid(0, 4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(4, builder.RandomSparse(1.5, 1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(3, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.Build(20, builder.RandomSparse(0.3, 99))
	require.NoError(t, err)
	b, err := builder.Build(20, builder.RandomSparse(0.3, 99))
	require.NoError(t, err)
	assert.Equal(t, a.Matrix(), b.Matrix())

	none, err := builder.Build(10, builder.RandomSparse(0, 1))
	require.NoError(t, err)
	assert.Zero(t, none.EdgeCount())

	all, err := builder.Build(10, builder.RandomSparse(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 45, all.EdgeCount())
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "empty", "path", "Cycle", "star", "complete"} {
		con, err := builder.Named(name)
		require.NoError(t, err, name)
		_, err = builder.Build(4, con)
		require.NoError(t, err, name)
	}
	_, err := builder.Named("hexagram")
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
