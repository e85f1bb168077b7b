package align

// Full aligns the first alignLength symbols of seq1 (columns) and seq2
// (rows) with the classic Needleman–Wunsch dynamic program.
//
// Algorithm Outline:
//  1. rows = min(len(seq2), L)+1, cols = min(len(seq1), L)+1.
//  2. Row 0 and column 0 accumulate GapCost per step.
//  3. For every interior cell (i, j):
//     left = T[i][j-1] + GapCost
//     top  = T[i-1][j] + GapCost
//     diag = T[i-1][j-1] + Substitution(seq1[j-1], seq2[i-1])
//     T[i][j] = min(left, top, diag), ties broken left > top > diag.
//  4. Cost = T[rows-1][cols-1]; backtrace from that cell to (0,0).
//
// Complexity: O(rows·cols) time and memory.
//
// Errors: ErrEmptySequence, ErrBadAlignLength.
func Full(seq1, seq2 string, alignLength int) (Result, error) {
	if err := validate(seq1, seq2, alignLength); err != nil {
		return Result{}, err
	}
	s1, s2 := clip(seq1, alignLength), clip(seq2, alignLength)

	t := fillFull(s1, s2)
	last := t.rows() - 1
	end := t.width(last) - 1

	res := traceback(t, s1, s2, last, end)
	res.Mode = FullMode
	res.Rows, res.Cols = len(s2)+1, len(s1)+1
	res.Cells = t.cells()

	return res, nil
}

// fillFull builds the complete cost and pointer tables for s1 x s2.
func fillFull(s1, s2 string) *table {
	rows, cols := len(s2)+1, len(s1)+1
	t := newTable(rows)

	// Row 0: pure deletions from seq1.
	costs, ptrs := t.setRow(0, 0, cols)
	ptrs[0] = None
	for j := 1; j < cols; j++ {
		costs[j] = float64(j) * GapCost
		ptrs[j] = Left
	}

	for i := 1; i < rows; i++ {
		prev := t.costs[i-1]
		costs, ptrs = t.setRow(i, 0, cols)
		costs[0] = float64(i) * GapCost
		ptrs[0] = Top
		for j := 1; j < cols; j++ {
			left := costs[j-1] + GapCost
			top := prev[j] + GapCost
			diag := prev[j-1] + Substitution(s1[j-1], s2[i-1])
			costs[j], ptrs[j] = choose(left, top, diag, Top, Diagonal)
		}
	}

	return t
}
