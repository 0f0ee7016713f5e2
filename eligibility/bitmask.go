package eligibility

import "github.com/katalvlaran/sopaco/colonymat"

// BitMask is the packed-word form of eligibility used by the work-group
// colony engine (spec.md §3, dependency-matrix orientation (a)). Each row
// holds WordsPerRow() consecutive words of WordBits() bits; bit (col %
// WordBits()) of word (row*WordsPerRow() + col/WordBits()) is set whenever
// the corresponding dependency edge is present.
//
// Swap controls which matrix axis becomes the row: with swap=false, row j
// holds the set of nodes i with dependencies.At(i,j) (the nodes that depend
// on j); with swap=true, row i holds the set of nodes j that i depends on.
// Both orientations are kept because different back-ends walk the relation
// in different directions.
type BitMask struct {
	n           int
	wordBits    int
	wordsPerRow int
	words       []uint64
}

// Build packs deps into a BitMask using wordBits-bit words (32 or 64).
func Build(deps *colonymat.BoolDense, wordBits int, swap bool) (*BitMask, error) {
	if wordBits != 32 && wordBits != 64 {
		return nil, ErrUnsupportedWordBits
	}

	n := deps.N()
	wordsPerRow := n / wordBits
	if n%wordBits != 0 {
		wordsPerRow++
	}

	bm := &BitMask{
		n:           n,
		wordBits:    wordBits,
		wordsPerRow: wordsPerRow,
		words:       make([]uint64, n*wordsPerRow),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := deps.At(i, j)
			if !v {
				continue
			}
			row, col := j, i
			if swap {
				row, col = i, j
			}
			wordIdx := row*wordsPerRow + col/wordBits
			bit := uint(col % wordBits)
			bm.words[wordIdx] |= uint64(1) << bit
		}
	}

	return bm, nil
}

// N returns the node count the mask was built from.
func (b *BitMask) N() int { return b.n }

// WordBits returns the configured word width (32 or 64).
func (b *BitMask) WordBits() int { return b.wordBits }

// WordsPerRow returns the number of words used to cover one row.
func (b *BitMask) WordsPerRow() int { return b.wordsPerRow }

// Words returns the flattened row-major word storage.
func (b *BitMask) Words() []uint64 { return b.words }

// Test reports whether bit col of row is set.
func (b *BitMask) Test(row, col int) bool {
	wordIdx := row*b.wordsPerRow + col/b.wordBits
	bit := uint(col % b.wordBits)
	return b.words[wordIdx]&(uint64(1)<<bit) != 0
}
