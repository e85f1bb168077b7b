package align

// Substitution returns the cost of aligning symbol a against symbol b:
// MatchCost when they are identical, SubstitutionCost otherwise.
// Comparison is byte-exact, so callers normalize case beforehand.
func Substitution(a, b byte) float64 {
	if a == b {
		return MatchCost
	}
	return SubstitutionCost
}

// choose picks the cheapest of the three candidate transitions with the
// fixed priority left > top > diag, returning the cost and the direction
// recorded for it. topDir and diagDir depend on the regime of the row.
func choose(left, top, diag float64, topDir, diagDir Direction) (float64, Direction) {
	if left <= top && left <= diag {
		return left, Left
	}
	if top <= diag {
		return top, topDir
	}
	return diag, diagDir
}
