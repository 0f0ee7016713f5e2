package sopfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/problem"
)

const noEdgeSentinel = 1000000

// Load reads and parses an SOP instance file at path.
func Load(path string) (*problem.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := parse(f)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parse(r io.Reader) (*problem.Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		name, comment      string
		lower, upper       = -1, -1
		n                  = -2 // -2: no section seen, -1: section seen, dimension line pending
		weights            *colonymat.IntDense
		deps               *colonymat.BoolDense
		row                int
		lineNo             int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if name == "" {
			if v, ok := readKey("NAME", line); ok {
				name = v
				continue
			}
		}
		if comment == "" {
			if v, ok := readKey("COMMENT", line); ok {
				comment = v
				continue
			}
		}
		if v, ok := readKey("SOLUTION_BOUNDS", line); ok {
			a, b, err := parseBounds(v)
			if err != nil {
				return nil, &wrapLineErr{lineNo, err}
			}
			lower, upper = a, b
			continue
		}

		if strings.TrimSpace(line) == "EDGE_WEIGHT_SECTION" {
			n = -1
			continue
		}

		if n == -1 {
			dim, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || dim <= 0 {
				return nil, &wrapLineErr{lineNo, ErrMalformedDimension}
			}
			n = dim

			var errW, errD error
			weights, errW = colonymat.NewIntDense(n, colonymat.NoEdge)
			deps, errD = colonymat.NewBoolDense(n)
			if errW != nil {
				return nil, errW
			}
			if errD != nil {
				return nil, errD
			}
			continue
		}

		if n > 0 && row < n {
			fields := strings.Fields(line)
			if len(fields) != n {
				return nil, &wrapLineErr{lineNo, ErrMalformedRow}
			}
			for col, field := range fields {
				v, err := strconv.Atoi(field)
				if err != nil {
					return nil, &wrapLineErr{lineNo, ErrMalformedRow}
				}
				if v == -1 {
					_ = deps.Set(row, col, true)
					_ = weights.Set(row, col, -1)
					continue
				}
				if v == noEdgeSentinel {
					v = colonymat.NoEdge
				}
				_ = weights.Set(row, col, v)
			}
			row++
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, ErrMissingEdgeWeightSection
	}
	if row < n {
		return nil, ErrTruncatedMatrix
	}

	return problem.New(name, comment, lower, upper, weights, deps)
}

func readKey(key, line string) (string, bool) {
	if !strings.HasPrefix(line, key) {
		return "", false
	}
	rest := line[len(key):]
	rest = strings.TrimLeft(rest, ": \t")
	return rest, true
}

func parseBounds(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		a, err := strconv.Atoi(strings.TrimSpace(s[:idx]))
		if err != nil {
			return 0, 0, fmt.Errorf("sopfile: malformed SOLUTION_BOUNDS %q: %w", s, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		if err != nil {
			return 0, 0, fmt.Errorf("sopfile: malformed SOLUTION_BOUNDS %q: %w", s, err)
		}
		return a, b, nil
	}
	a, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("sopfile: malformed SOLUTION_BOUNDS %q: %w", s, err)
	}
	return a, a, nil
}

type wrapLineErr struct {
	line int
	err  error
}

func (e *wrapLineErr) Error() string { return fmt.Sprintf("line %d: %s", e.line, e.err) }
func (e *wrapLineErr) Unwrap() error { return e.err }
