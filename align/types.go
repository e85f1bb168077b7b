package align

import "math"

// Cost model constants. They are fixed for the whole system.
const (
	// MatchCost rewards two identical symbols.
	MatchCost = -3.0

	// SubstitutionCost penalizes two different symbols.
	SubstitutionCost = 1.0

	// GapCost penalizes a symbol aligned against a gap.
	GapCost = 5.0
)

// Band and reporting constants.
const (
	// BandHalfWidth is d, the maximum indel run the banded engine can follow.
	BandHalfWidth = 3

	// BandWidth is k = 2d+1, the number of cells stored per banded row.
	BandWidth = 2*BandHalfWidth + 1

	// MaxLengthDifference is the largest |len(seq2)-len(seq1)| the banded
	// engine accepts before reporting NoAlignment.
	MaxLengthDifference = 1000

	// MaxReportLength caps the length of each reported aligned string.
	MaxReportLength = 100

	// GapSymbol marks an indel in an aligned string.
	GapSymbol = '-'

	// NoAlignment replaces both aligned strings when the banded capacity
	// guard refuses the inputs.
	NoAlignment = "no alignment possible"
)

// Mode selects the alignment engine.
//
//   - FullMode   - complete (rows x cols) table; exact optimum.
//   - BandedMode - 2d+1 wide band around the main diagonal; bounded work,
//     exact only while the optimal path stays inside the band.
type Mode int

const (
	// FullMode builds the complete table.
	FullMode Mode = iota

	// BandedMode builds only the band around the diagonal.
	BandedMode
)

// String returns "full" or "banded".
func (m Mode) String() string {
	switch m {
	case FullMode:
		return "full"
	case BandedMode:
		return "banded"
	}
	return "unknown"
}

// Direction records which neighbor produced the minimum of a cell.
//
// The shifted variants only appear in banded rows below the top-left
// corner, where the band moves one column to the right per row: the cell
// directly above sits one band column further right, and the diagonal
// predecessor sits in the same band column.
type Direction uint8

const (
	// None marks the origin cell (0,0).
	None Direction = iota
	// Left consumes a symbol of seq1 against a gap.
	Left
	// Top consumes a symbol of seq2 against a gap.
	Top
	// Diagonal consumes one symbol of each sequence.
	Diagonal
	// ShiftedTop is Top in a shifted banded row.
	ShiftedTop
	// ShiftedDiagonal is Diagonal in a shifted banded row.
	ShiftedDiagonal
)

// String returns a one-glyph arrow, handy when dumping pointer tables.
func (d Direction) String() string {
	switch d {
	case None:
		return "×"
	case Left:
		return "←"
	case Top:
		return "↑"
	case Diagonal:
		return "↖"
	case ShiftedTop:
		return "↗"
	case ShiftedDiagonal:
		return "⇡"
	}
	return "■"
}

// step returns the (row, band column) move that reverses d.
// It panics on None and unknown values: the backtrace must stop at the
// origin before ever reading them.
func (d Direction) step() (dRow, dCol int) {
	switch d {
	case Left:
		return 0, -1
	case Top:
		return -1, 0
	case ShiftedTop:
		return -1, 1
	case Diagonal:
		return -1, -1
	case ShiftedDiagonal:
		return -1, 0
	}
	panic("align: no backtrace step for direction " + d.String())
}

// Regime tells how a banded row maps onto the row above it.
//
//   - CornerRegime - rows 0..d; the band is anchored at column 0 and does
//     not move, so neighbors are found exactly as in the full table.
//   - SteadyRegime - rows > d; the band moves right by one column per row.
type Regime uint8

const (
	// CornerRegime covers rows 0..BandHalfWidth.
	CornerRegime Regime = iota
	// SteadyRegime covers rows below BandHalfWidth.
	SteadyRegime
)

// regimeFor returns the regime of banded row i.
func regimeFor(i int) Regime {
	if i <= BandHalfWidth {
		return CornerRegime
	}
	return SteadyRegime
}

// neighbors returns, for band column j of a row in regime r, the band
// columns of its top and diagonal predecessors in the previous row, and the
// directions recorded when either one wins.
func (r Regime) neighbors(j int) (top, diag int, topDir, diagDir Direction) {
	if r == SteadyRegime {
		return j + 1, j, ShiftedTop, ShiftedDiagonal
	}
	return j, j - 1, Top, Diagonal
}

// bandOffset returns the absolute column stored at band column 0 of row i.
func bandOffset(i int) int {
	return max(0, i-BandHalfWidth)
}

// Result is the outcome of one alignment.
type Result struct {
	// Cost is the total edit cost. +Inf when the banded guard refused the input.
	Cost float64

	// Aligned1 is seq1 with gap markers, truncated to MaxReportLength.
	Aligned1 string

	// Aligned2 is seq2 with gap markers, truncated to MaxReportLength.
	Aligned2 string

	// Mode is the engine that produced the result.
	Mode Mode

	// Rows and Cols are the dimensions of the conceptual table
	// (min(len, L)+1 for seq2 and seq1 respectively).
	Rows, Cols int

	// Matches, Mismatches and Gaps are counted over the whole alignment,
	// before truncation. Length is its untruncated length.
	Matches, Mismatches, Gaps, Length int

	// Cells is the number of table cells the engine computed.
	Cells int
}

// Possible reports whether an alignment was produced.
func (r Result) Possible() bool {
	return !math.IsInf(r.Cost, 1)
}

// Midline returns a marker line for the reported strings:
// '|' for a match, '.' for a substitution and ' ' for a gap.
func (r Result) Midline() string {
	if !r.Possible() {
		return ""
	}
	n := min(len(r.Aligned1), len(r.Aligned2))
	line := make([]byte, n)
	for i := 0; i < n; i++ {
		a, b := r.Aligned1[i], r.Aligned2[i]
		switch {
		case a == GapSymbol || b == GapSymbol:
			line[i] = ' '
		case a == b:
			line[i] = '|'
		default:
			line[i] = '.'
		}
	}
	return string(line)
}
