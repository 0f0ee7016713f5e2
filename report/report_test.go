package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/report"
	"github.com/stretchr/testify/require"
)

func sampleProfiler(t *testing.T) *profiler.Profiler {
	t.Helper()

	var p profiler.Profiler
	for _, id := range []string{"prep", "optr", "opts", "adva", "eval", "upda"} {
		p.Start(id)
		time.Sleep(time.Microsecond)
		p.Stop(id)
	}
	return &p
}

func TestWriteCSV_HeaderAndRow(t *testing.T) {
	t.Parallel()

	s := report.Summary{
		Variant:    "sequential",
		Problem:    "br17.sop",
		Timestamp:  "2026-07-31T00:00:00Z",
		Rounds:     100,
		BestLength: 42,
		ScoreCap:   39,
		Prof:       sampleProfiler(t),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, true, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "variant;problem;timestamp;rounds;prep;optr;opts;adva;eval;upda;score;score_cap", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "sequential;br17.sop;2026-07-31T00:00:00Z;100;"))
	require.True(t, strings.HasSuffix(lines[1], ";42;39"))
}

func TestWriteCSV_NoHeaderWhenAppending(t *testing.T) {
	t.Parallel()

	s := report.Summary{Variant: "sequential", Problem: "p.sop", Prof: sampleProfiler(t)}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, false, s))
	require.False(t, strings.HasPrefix(buf.String(), "variant;"))
}

func TestWriteCSV_VariantArgsSuffix(t *testing.T) {
	t.Parallel()

	s := report.Summary{Variant: "workgroup", VariantArgs: "group=16", Prof: sampleProfiler(t)}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, true, s))
	require.Contains(t, buf.String(), "workgroup:group=16;")
}

func TestWriteHuman_IncludesKeySections(t *testing.T) {
	t.Parallel()

	s := report.Summary{
		Variant:    "sequential",
		Rounds:     500,
		BestLength: 55,
		ScoreCap:   39,
		Prof:       sampleProfiler(t),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteHuman(&buf, s))

	out := buf.String()
	require.Contains(t, out, "Finished!")
	require.Contains(t, out, "Result length: 55 (39)")
	require.Contains(t, out, "Step Time:")
	require.Contains(t, out, "Measurement 'adva':")
	require.Contains(t, out, "Score:")
}

func TestWriteHuman_NilProfilerIsSafe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteHuman(&buf, report.Summary{Variant: "sequential"}))
	require.Contains(t, buf.String(), "Finished!")
}
