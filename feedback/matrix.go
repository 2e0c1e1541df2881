package feedback

import (
	"errors"
	"fmt"

	"github.com/wordletree/wordletree/word"
)

// ErrInvalidDimensions indicates a requested matrix has a non-positive
// row or column count.
var ErrInvalidDimensions = errors.New("feedback: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside the
// matrix's bounds.
var ErrIndexOutOfBounds = errors.New("feedback: index out of bounds")

func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major table of feedback codes, one row per target
// index and one column per guess index. Rows need not range over the
// full target set: hard mode builds a Matrix over G×G instead of T×G.
type Matrix struct {
	rows, cols int
	data       []word.Code
}

// NewMatrix allocates a rows×cols Matrix of zero-valued codes.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix{rows: rows, cols: cols, data: make([]word.Code, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.cols {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.cols + col, nil
}

// At returns the feedback code at (row, col).
func (m *Matrix) At(row, col int) (word.Code, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns the feedback code at (row, col).
func (m *Matrix) Set(row, col int, v word.Code) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// AtFast returns the code at (row, col) without bounds checking, for
// hot loops that have already established the index is valid (the
// kernel package's scoring inner loops).
func (m *Matrix) AtFast(row, col int) word.Code {
	return m.data[row*m.cols+col]
}

// Row returns the backing slice for row, aliasing the matrix's
// storage. Callers must not retain it past the matrix's lifetime if
// the matrix may be mutated afterward.
func (m *Matrix) Row(row int) []word.Code {
	return m.data[row*m.cols : (row+1)*m.cols]
}
