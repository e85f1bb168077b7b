package align

import "math"

// Banded aligns the first alignLength symbols of seq1 (columns) and seq2
// (rows) inside a band of BandWidth cells around the main diagonal.
//
// Band layout:
//
//	Row i stores absolute columns max(0, i-d) .. min(cols-1, i+d).
//	For i ≤ d (CornerRegime) the band is anchored at column 0 and the
//	neighbors of a cell are the same as in the full table.
//	For i > d (SteadyRegime) the band slides right by one column per row:
//	the top neighbor of band column j is band column j+1 of the row above,
//	the diagonal neighbor is band column j. Those transitions are recorded
//	as ShiftedTop / ShiftedDiagonal.
//	Cells outside the band are +Inf and never win a comparison.
//
// The band is also cut on the right near the end of seq1, and rows whose
// band would start past the last column are not computed at all. The cost
// is read from the rightmost cell of the last computed row; it equals the
// Full cost whenever |rows-cols| ≤ d and an optimal path stays in band.
//
// Capacity guard: when |len(seq2)-len(seq1)| > MaxLengthDifference the
// inputs are refused without building anything; the result carries
// Cost=+Inf and NoAlignment in both strings. This is not an error.
//
// Complexity: O(rows·BandWidth) time and memory.
//
// Errors: ErrEmptySequence, ErrBadAlignLength.
func Banded(seq1, seq2 string, alignLength int) (Result, error) {
	if err := validate(seq1, seq2, alignLength); err != nil {
		return Result{}, err
	}
	if abs(len(seq2)-len(seq1)) > MaxLengthDifference {
		return Result{
			Cost:     math.Inf(1),
			Aligned1: NoAlignment,
			Aligned2: NoAlignment,
			Mode:     BandedMode,
		}, nil
	}
	s1, s2 := clip(seq1, alignLength), clip(seq2, alignLength)

	t := fillBanded(s1, s2)
	last := t.rows() - 1
	end := t.width(last) - 1

	res := traceback(t, s1, s2, last, end)
	res.Mode = BandedMode
	res.Rows, res.Cols = len(s2)+1, len(s1)+1
	res.Cells = t.cells()

	return res, nil
}

// fillBanded builds the banded cost and pointer tables for s1 x s2.
func fillBanded(s1, s2 string) *table {
	rows, cols := len(s2)+1, len(s1)+1
	// Past this row the band no longer overlaps any column.
	lastRow := min(rows-1, cols-1+BandHalfWidth)
	t := newTable(lastRow + 1)

	for i := 0; i <= lastRow; i++ {
		off := bandOffset(i)
		remaining := min(cols-1, i+BandHalfWidth) - off + 1
		costs, ptrs := t.setRow(i, off, remaining)
		regime := regimeFor(i)

		for j := 0; j < remaining; j++ {
			c := off + j
			switch {
			case i == 0 && c == 0:
				costs[j], ptrs[j] = 0, None
			case i == 0:
				costs[j], ptrs[j] = float64(c)*GapCost, Left
			case c == 0:
				// Only reachable in the corner, where column 0 is in band.
				costs[j], ptrs[j] = float64(i)*GapCost, Top
			default:
				left := math.Inf(1)
				if j > 0 {
					left = costs[j-1] + GapCost
				}
				up, dg, upDir, dgDir := regime.neighbors(j)
				top := t.at(i-1, up) + GapCost
				diag := t.at(i-1, dg) + Substitution(s1[c-1], s2[i-1])
				costs[j], ptrs[j] = choose(left, top, diag, upDir, dgDir)
			}
		}
	}

	return t
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
