package report

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/sopaco/profiler"
)

var csvHeader = "variant;problem;timestamp;rounds;prep;optr;opts;adva;eval;upda;score;score_cap\n"

// WriteCSV appends one semicolon-separated row to w, per spec.md §6. The
// caller decides writeHeader: true on file creation or whenever not
// appending to an existing file.
func WriteCSV(w io.Writer, writeHeader bool, s Summary) error {
	if writeHeader {
		if _, err := io.WriteString(w, csvHeader); err != nil {
			return err
		}
	}

	prep := avgMillis(s.Prof, "prep")
	optr := avgMillis(s.Prof, "optr")
	opts := avgMillis(s.Prof, "opts")
	adva := avgMillis(s.Prof, "adva")
	eval := avgMillis(s.Prof, "eval")
	upda := avgMillis(s.Prof, "upda")

	_, err := fmt.Fprintf(w, "%s;%s;%s;%d;%f;%f;%f;%f;%f;%f;%d;%d\n",
		s.variantLabel(), s.Problem, s.Timestamp, s.Rounds,
		prep, optr, opts, adva, eval, upda,
		s.BestLength, s.ScoreCap)
	return err
}

func avgMillis(p *profiler.Profiler, id string) float64 {
	if p == nil {
		return 0
	}
	_, _, avg, err := p.Analyze(id)
	if err != nil {
		return 0
	}
	return float64(avg) / float64(time.Millisecond)
}
