package colonymat

import "fmt"

// Dense is a square, row-major matrix of float64 values. It backs both the
// pheromone matrix τ and the visibility matrix η (§3 of SPEC_FULL.md). n is
// the shared row/column count; data holds n*n elements in row-major order.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n Dense matrix, every entry initialized to fill.
//
// Complexity: O(n²) time and memory.
func NewDense(n int, fill float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	data := make([]float64, n*n)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Dense{n: n, data: data}, nil
}

// N returns the matrix order (rows == cols == N()).
func (m *Dense) N() int { return m.n }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("colonymat.Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates delta into the current value at (row, col).
func (m *Dense) Add(row, col int, delta float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// EvaporateAll scales every entry by (1-rho), the update phase's step 1
// (§4.1.3). rho is expected in [0,1]; callers validate via antparams.
func (m *Dense) EvaporateAll(rho float64) {
	keep := 1 - rho
	for i := range m.data {
		m.data[i] *= keep
	}
}

// ClampAll clips every entry into [min, max], the update phase's step 3.
func (m *Dense) ClampAll(min, max float64) {
	for i, v := range m.data {
		switch {
		case v < min:
			m.data[i] = min
		case v > max:
			m.data[i] = max
		}
	}
}

// Raw exposes the backing slice for callers that need bulk access to it.
// The returned slice aliases m's storage; callers must not resize it.
func (m *Dense) Raw() []float64 { return m.data }
