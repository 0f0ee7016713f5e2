package colonymat

import (
	"fmt"
	"math"
)

// NoEdge is the internal representation of the SOP file format's "no edge"
// sentinel (1 000 000 in the input, normalized to +∞ on load per spec.md §6).
const NoEdge = math.MaxInt32

// IntDense is a square, row-major matrix of int values. It backs the SOP
// edge-weight matrix.
type IntDense struct {
	n    int
	data []int
}

// NewIntDense allocates an n×n IntDense matrix, every entry initialized to fill.
func NewIntDense(n int, fill int) (*IntDense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	data := make([]int, n*n)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &IntDense{n: n, data: data}, nil
}

// N returns the matrix order.
func (m *IntDense) N() int { return m.n }

func (m *IntDense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("colonymat.IntDense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *IntDense) At(row, col int) (int, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *IntDense) Set(row, col int, v int) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RouteLength sums edge weights over consecutive pairs of route, per
// graph.Graph.route_length in the original implementation. Returns NoEdge
// (saturating, never overflows) if any traversed edge is NoEdge.
func (m *IntDense) RouteLength(route []int) int {
	if len(route) < 2 {
		return 0
	}
	total := 0
	for i := 1; i < len(route); i++ {
		w, err := m.At(route[i-1], route[i])
		if err != nil || w >= NoEdge || total >= NoEdge {
			return NoEdge
		}
		total += w
	}
	if total < 0 || total >= NoEdge {
		return NoEdge
	}

	return total
}

// Raw exposes the backing slice read-only-by-convention.
func (m *IntDense) Raw() []int { return m.data }
