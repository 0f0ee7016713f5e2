package sopfile

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sopaco/colonymat"
	"github.com/katalvlaran/sopaco/problem"
)

// Save writes p back out in the SOP instance file format, the inverse of
// Load, used by spec.md §8's round-trip property.
func Save(w io.Writer, p *problem.Problem) error {
	bw := &errWriter{w: w}

	if p.Name != "" {
		bw.printf("NAME: %s\n", p.Name)
	}
	if p.Comment != "" {
		bw.printf("COMMENT: %s\n", p.Comment)
	}
	if p.LowerBound >= 0 || p.UpperBound >= 0 {
		bw.printf("SOLUTION_BOUNDS: %d,%d\n", p.LowerBound, p.UpperBound)
	}

	n := p.N()
	bw.printf("EDGE_WEIGHT_SECTION\n")
	bw.printf("%d\n", n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, _ := p.Dependencies.At(i, j)
			if d {
				bw.printf("-1")
			} else {
				v, _ := p.Weights.At(i, j)
				if v == colonymat.NoEdge {
					v = noEdgeSentinel
				}
				bw.printf("%d", v)
			}
			if j < n-1 {
				bw.printf(" ")
			}
		}
		bw.printf("\n")
	}

	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
