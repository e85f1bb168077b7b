package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// benchmarkAlign runs Align on two near-identical sequences of length n.
func benchmarkAlign(b *testing.B, n int, banded bool) {
	r := rand.New(rand.NewSource(1)) // deterministic seed for reproducibility
	s1 := randomSeq(r, n)
	s2 := mutate(r, s1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(s1, s2, banded, n); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullSmall benchmarks the full table on 100 symbols.
func BenchmarkAlign_FullSmall(b *testing.B) { benchmarkAlign(b, 100, false) }

// BenchmarkAlign_FullMedium benchmarks the full table on 1000 symbols.
func BenchmarkAlign_FullMedium(b *testing.B) { benchmarkAlign(b, 1000, false) }

// BenchmarkAlign_BandedSmall benchmarks the band on 100 symbols.
func BenchmarkAlign_BandedSmall(b *testing.B) { benchmarkAlign(b, 100, true) }

// BenchmarkAlign_BandedMedium benchmarks the band on 1000 symbols.
func BenchmarkAlign_BandedMedium(b *testing.B) { benchmarkAlign(b, 1000, true) }

// BenchmarkAlign_BandedLarge benchmarks the band on 10000 symbols, a size
// the full table would need 100M cells for.
func BenchmarkAlign_BandedLarge(b *testing.B) { benchmarkAlign(b, 10000, true) }
