package align

// Test bridge: exposes private kernels to align_test without widening the API.

var (
	ExportedChoose     = choose
	ExportedRegimeFor  = regimeFor
	ExportedBandOffset = bandOffset
)

// ExportedNeighbors exposes Regime.neighbors.
func ExportedNeighbors(r Regime, j int) (top, diag int, topDir, diagDir Direction) {
	return r.neighbors(j)
}

// ExportedStep exposes Direction.step.
func ExportedStep(d Direction) (dRow, dCol int) {
	return d.step()
}

// BandedPointers fills a banded table and returns its pointer rows and
// row offsets, for checking which directions each regime records.
func BandedPointers(s1, s2 string) ([][]Direction, []int) {
	t := fillBanded(s1, s2)
	return t.ptrs, t.offsets
}

// FullCosts fills a full table and returns its cost rows.
func FullCosts(s1, s2 string) [][]float64 {
	return fillFull(s1, s2).costs
}
