package report

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/sopaco/profiler"
)

// WriteHuman writes the free-form text report shown when no --output path
// is given (spec.md §6): prepare/execution time, best length against known
// bounds, per-phase min/max/avg for every measurement the profiler
// recorded, and a rounds-per-second score.
func WriteHuman(w io.Writer, s Summary) error {
	if s.Prof == nil {
		s.Prof = &profiler.Profiler{}
	}

	fmt.Fprintf(w, "Finished!\n")
	fmt.Fprintf(w, "Variant: %s\n", s.variantLabel())
	fmt.Fprintf(w, "Result length: %d (%d)\n", s.BestLength, s.ScoreCap)
	fmt.Fprintf(w, "Prepare Time: %sms\n", formatMillis(s.Prof, "prep"))
	fmt.Fprintf(w, "Execution Time: %sms\n", formatMillis(s.Prof, "optr"))

	if min, max, avg, err := s.Prof.Analyze("opts"); err == nil {
		fmt.Fprintf(w, "Step Time:\n")
		fmt.Fprintf(w, "  min: %.3fms\n", millis(min))
		fmt.Fprintf(w, "  max: %.3fms\n", millis(max))
		fmt.Fprintf(w, "  avg: %.3fms\n", millis(avg))
	}

	for _, id := range s.Prof.Keys() {
		if id == "opts" || id == "prep" || id == "optr" {
			continue
		}
		min, max, avg, err := s.Prof.Analyze(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "Measurement '%s':\n", id)
		fmt.Fprintf(w, "  min: %.3fms\n", millis(min))
		fmt.Fprintf(w, "  max: %.3fms\n", millis(max))
		fmt.Fprintf(w, "  avg: %.3fms\n", millis(avg))
	}

	if optr, _, _, err := s.Prof.Analyze("optr"); err == nil && optr > 0 {
		rps := float64(s.Rounds) / (float64(optr) / float64(time.Second))
		fmt.Fprintf(w, "Score: %.3f RPS\n", rps)
	}

	return nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatMillis(p *profiler.Profiler, id string) string {
	if p == nil {
		return "0"
	}
	_, _, avg, err := p.Analyze(id)
	if err != nil {
		return "0"
	}
	return fmt.Sprintf("%.3f", millis(avg))
}
