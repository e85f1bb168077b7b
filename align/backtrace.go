package align

// traceback walks the pointer table from band column col of row back to
// the origin and returns the alignment with its statistics. Cost and
// dimensions describe the end cell; Mode and table sizes are set by the
// caller.
//
// The absolute seq1 position of every visited cell is offsets[row]+col, so
// the band-relative moves of Direction.step never have to be reinterpreted.
// Both strings are built end→origin and reversed in place.
func traceback(t *table, s1, s2 string, row, col int) Result {
	res := Result{Cost: t.costs[row][col]}

	n := row + t.absCol(row, col)
	a1 := make([]byte, 0, n)
	a2 := make([]byte, 0, n)

	i, j := row, col
	for {
		c := t.absCol(i, j)
		if i == 0 && c == 0 {
			break
		}

		d := t.ptrs[i][j]
		switch d {
		case Left:
			a1 = append(a1, s1[c-1])
			a2 = append(a2, GapSymbol)
			res.Gaps++
		case Top, ShiftedTop:
			a1 = append(a1, GapSymbol)
			a2 = append(a2, s2[i-1])
			res.Gaps++
		case Diagonal, ShiftedDiagonal:
			a1 = append(a1, s1[c-1])
			a2 = append(a2, s2[i-1])
			if s1[c-1] == s2[i-1] {
				res.Matches++
			} else {
				res.Mismatches++
			}
		}

		dRow, dCol := d.step()
		i, j = i+dRow, j+dCol
		if j < 0 || j >= t.width(i) {
			panic("align: backtrace left the stored band")
		}
	}

	reverse(a1)
	reverse(a2)
	res.Length = len(a1)
	res.Aligned1 = truncate(a1)
	res.Aligned2 = truncate(a2)

	return res
}

// reverse reverses b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

// truncate returns the first MaxReportLength symbols of b as a string.
func truncate(b []byte) string {
	if len(b) > MaxReportLength {
		b = b[:MaxReportLength]
	}
	return string(b)
}
