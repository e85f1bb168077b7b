// Package align computes optimal global alignments of two symbol sequences
// (DNA, RNA or any byte alphabet) under a fixed edit-cost model, and
// reconstructs the two gapped strings that achieve that cost.
//
// 🚀 What is global alignment?
//
//	Given two sequences, find the cheapest way to turn one into the other
//	using matches, substitutions and insertions/deletions (indels), aligned
//	end to end (Needleman–Wunsch).  Typical uses:
//	  • comparing a read against a reference of similar length
//	  • scoring mutations between two versions of a gene
//	  • teaching and checking dynamic-programming alignment by hand
//
// ✨ Key features:
//   - full mode: exact O(N·M) table with deterministic tie-breaking
//   - banded mode: fixed band of width 2d+1 (d = 3) around the diagonal,
//     O(N·d) time & memory, exact whenever the optimal path stays in band
//   - a capacity guard refusing banded alignment of very unequal lengths
//   - alignment limit L: only the first L symbols of each input are used
//   - reported alignments are truncated to the first 100 symbols
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	res, err := align.Align("AACT", "AAT", false, 1000)
//	if err != nil {
//	  // ErrEmptySequence or ErrBadAlignLength
//	}
//	fmt.Println(res.Cost)     // -4
//	fmt.Println(res.Aligned1) // AACT
//	fmt.Println(res.Aligned2) // AA-T
//
// Cost model:
//
//	match = -3, substitution = +1, indel = +5
//
// Performance:
//
//   - Full:   O(N·M) time and memory
//   - Banded: O(min(N,M)·(2d+1)) time and memory
//
// The banded engine is an approximation: when the optimal path leaves the
// band its cost is an upper bound on the true optimum, never a lower one.
package align
