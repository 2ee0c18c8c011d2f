package builder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gostructs/classics/graph"
)

// Constructor adds the edges of one topology to g.
type Constructor func(g *graph.Graph) error

// Build creates a graph with n vertices and applies cons in order.
func Build(n int, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Named returns the constructor for a parameter-free shape name:
// "empty", "path", "cycle", "star" (center 0) or "complete".
func Named(name string) (Constructor, error) {
	switch strings.ToLower(name) {
	case "", "empty":
		return func(*graph.Graph) error { return nil }, nil
	case "path":
		return Path(), nil
	case "cycle":
		return Cycle(), nil
	case "star":
		return Star(0), nil
	case "complete":
		return Complete(), nil
	default:
		return nil, fmt.Errorf("unknown shape %q: %w", name, ErrConstructFailed)
	}
}

// connect adds a–b, attaching method context to any error.
func connect(method string, g *graph.Graph, a, b int) error {
	if err := g.AddConnection(a, b); err != nil {
		return fmt.Errorf("%s: AddConnection(%d,%d): %w", method, a, b, err)
	}
	return nil
}

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodRandom   = "RandomSparse"

	minCycleNodes = 3
)

// Path connects 0–1–…–(n-1).
func Path() Constructor {
	return func(g *graph.Graph) error {
		for i := 0; i+1 < g.VertexCount(); i++ {
			if err := connect(methodPath, g, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle connects i–(i+1)%n for every i. Requires n >= 3.
func Cycle() Constructor {
	return func(g *graph.Graph) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star connects center to every other vertex.
func Star(center int) Constructor {
	return func(g *graph.Graph) error {
		n := g.VertexCount()
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d, n=%d: %w", methodStar, center, n, ErrShapeMismatch)
		}
		for v := 0; v < n; v++ {
			if v == center {
				continue
			}
			if err := connect(methodStar, g, center, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete connects every distinct pair.
func Complete() Constructor {
	return func(g *graph.Graph) error {
		n := g.VertexCount()
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if err := connect(methodComplete, g, a, b); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid lays out a rows×cols lattice (vertex = r*cols + c) with 4-neighbor edges.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph) error {
		if rows <= 0 || cols <= 0 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		if rows*cols != g.VertexCount() {
			return fmt.Errorf("%s: %dx%d != %d vertices: %w", methodGrid, rows, cols, g.VertexCount(), ErrShapeMismatch)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := connect(methodGrid, g, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, v, v+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse connects each distinct pair independently with probability p,
// drawing from a source seeded with seed.
func RandomSparse(p float64, seed int64) Constructor {
	return func(g *graph.Graph) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandom, p, ErrInvalidProbability)
		}
		rng := rand.New(rand.NewSource(seed))
		n := g.VertexCount()
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if rng.Float64() >= p {
					continue
				}
				if err := connect(methodRandom, g, a, b); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
