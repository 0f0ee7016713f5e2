package colonymat

import "fmt"

// BoolDense is a square, row-major matrix of bool values. It backs the SOP
// precedence matrix: dependencies.At(i, j) == true means "j must be visited
// before i" (orientation (a), the canonical choice per spec.md §9).
type BoolDense struct {
	n    int
	data []bool
}

// NewBoolDense allocates an n×n BoolDense matrix, every entry false.
func NewBoolDense(n int) (*BoolDense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	return &BoolDense{n: n, data: make([]bool, n*n)}, nil
}

// N returns the matrix order.
func (m *BoolDense) N() int { return m.n }

func (m *BoolDense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("colonymat.BoolDense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *BoolDense) At(row, col int) (bool, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *BoolDense) Set(row, col int, v bool) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
