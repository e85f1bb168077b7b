package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "ACGT"

// randomSeq returns a deterministic random sequence over ACGT.
func randomSeq(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// mutate applies two substitutions and at most one indel to s, keeping the
// optimal path of s vs the result within one column of the diagonal.
func mutate(r *rand.Rand, s string) string {
	b := []byte(s)
	for k := 0; k < 2; k++ {
		p := r.Intn(len(b))
		b[p] = alphabet[(strings.IndexByte(alphabet, b[p])+1+r.Intn(3))%len(alphabet)]
	}
	switch p := r.Intn(len(b)); r.Intn(3) {
	case 0: // insertion
		b = append(b[:p], append([]byte{alphabet[r.Intn(len(alphabet))]}, b[p:]...)...)
	case 1: // deletion
		b = append(b[:p], b[p+1:]...)
	}
	return string(b)
}

// clipTo returns the first n symbols of s.
func clipTo(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// TestAlign_Dispatch checks that the banded flag selects the engine.
func TestAlign_Dispatch(t *testing.T) {
	res, err := align.Align("ACGT", "ACGT", false, 4)
	require.NoError(t, err)
	assert.Equal(t, align.FullMode, res.Mode)
	assert.Equal(t, -12.0, res.Cost)
	assert.Equal(t, "ACGT", res.Aligned1)
	assert.Equal(t, "ACGT", res.Aligned2)

	res, err = align.Align("ACGT", "ACGT", true, 4)
	require.NoError(t, err)
	assert.Equal(t, align.BandedMode, res.Mode)
	assert.Equal(t, -12.0, res.Cost)
}

// TestAlign_Errors checks both sentinels through the entry point.
func TestAlign_Errors(t *testing.T) {
	for _, banded := range []bool{false, true} {
		_, err := align.Align("", "A", banded, 10)
		assert.ErrorIs(t, err, align.ErrEmptySequence)
		_, err = align.Align("A", "A", banded, 0)
		assert.ErrorIs(t, err, align.ErrBadAlignLength)
	}
}

// TestAlign_SelfCost: aligning a sequence with itself costs one match per symbol.
func TestAlign_SelfCost(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		s := randomSeq(r, 1+r.Intn(120))
		for _, banded := range []bool{false, true} {
			res, err := align.Align(s, s, banded, len(s))
			require.NoError(t, err)
			assert.Equal(t, align.MatchCost*float64(len(s)), res.Cost, "banded=%v len=%d", banded, len(s))
			assert.Zero(t, res.Gaps)
		}
	}
}

// TestAlign_BandedMatchesFull: for near-identical pairs the optimal path
// never leaves the band, so both engines agree on cost and strings.
func TestAlign_BandedMatchesFull(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		a := randomSeq(r, 20+r.Intn(130))
		b := mutate(r, a)

		full, err := align.Align(a, b, false, 1000)
		require.NoError(t, err)
		banded, err := align.Align(a, b, true, 1000)
		require.NoError(t, err)

		assert.Equal(t, full.Cost, banded.Cost, "trial %d", trial)
		assert.Equal(t, full.Aligned1, banded.Aligned1, "trial %d", trial)
		assert.Equal(t, full.Aligned2, banded.Aligned2, "trial %d", trial)
		assert.Less(t, banded.Cells, full.Cells)
	}
}

// TestAlign_ReconstructsPrefixes: removing gaps gives back the aligned
// prefixes, and both strings have equal length before truncation.
func TestAlign_ReconstructsPrefixes(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 40; trial++ {
		a := randomSeq(r, 1+r.Intn(60))
		b := randomSeq(r, 1+r.Intn(60))
		limit := 1 + r.Intn(70)

		res, err := align.Align(a, b, false, limit)
		require.NoError(t, err)

		assert.Equal(t, len(res.Aligned1), len(res.Aligned2))
		assert.Equal(t, res.Length, res.Matches+res.Mismatches+res.Gaps)
		assert.LessOrEqual(t, len(res.Aligned1), align.MaxReportLength)

		stripped1 := strings.ReplaceAll(res.Aligned1, "-", "")
		stripped2 := strings.ReplaceAll(res.Aligned2, "-", "")
		if res.Length <= align.MaxReportLength {
			assert.Equal(t, clipTo(a, limit), stripped1, "trial %d", trial)
			assert.Equal(t, clipTo(b, limit), stripped2, "trial %d", trial)
		} else {
			assert.True(t, strings.HasPrefix(clipTo(a, limit), stripped1))
			assert.True(t, strings.HasPrefix(clipTo(b, limit), stripped2))
		}
	}
}

// TestAlign_BandedPrefixes: banded output is always a gapped prefix of
// the inputs, even when the band cuts the table short.
func TestAlign_BandedPrefixes(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 40; trial++ {
		a := randomSeq(r, 1+r.Intn(40))
		b := randomSeq(r, 1+r.Intn(40))

		res, err := align.Align(a, b, true, 1000)
		require.NoError(t, err)

		assert.Equal(t, len(res.Aligned1), len(res.Aligned2))
		assert.True(t, strings.HasPrefix(a, strings.ReplaceAll(res.Aligned1, "-", "")), "trial %d", trial)
		assert.True(t, strings.HasPrefix(b, strings.ReplaceAll(res.Aligned2, "-", "")), "trial %d", trial)
	}
}

// TestAlign_Idempotent: identical calls give identical results.
func TestAlign_Idempotent(t *testing.T) {
	a, b := "GATTACAGATTACA", "GATACAGATTTACA"
	for _, banded := range []bool{false, true} {
		first, err := align.Align(a, b, banded, 100)
		require.NoError(t, err)
		second, err := align.Align(a, b, banded, 100)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
