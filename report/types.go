package report

import "github.com/katalvlaran/sopaco/profiler"

// Summary describes one finished optimization run, gathering everything
// either writer needs.
type Summary struct {
	Variant     string
	VariantArgs string
	Problem     string
	Timestamp   string
	Rounds      uint
	BestLength  int
	ScoreCap    int // known lower solution bound, -1 if unknown
	Prof        *profiler.Profiler
}

// variantLabel returns the variant name, suffixed with ":args" when
// VariantArgs is non-empty (spec.md §6).
func (s Summary) variantLabel() string {
	if s.VariantArgs == "" {
		return s.Variant
	}
	return s.Variant + ":" + s.VariantArgs
}
