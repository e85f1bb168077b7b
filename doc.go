// Package seqalign is a global sequence-alignment toolkit: a
// Needleman–Wunsch engine with a banded fast path, a FASTA/FASTQ loader,
// an HTTP service and a command-line front end.
//
// 🚀 What is seqalign?
//
//	Minimum-cost global alignment of two nucleotide sequences under a fixed
//	cost model:
//		• match         −3
//		• substitution  +1
//		• gap (indel)   +5
//
//	Two engines share one table layout and one backtracer:
//		• Full   - the complete (m+1)×(n+1) table, exact optimum
//		• Banded - only cells within 3 of the diagonal (7 per row), O(n) work
//
// ✨ Why seqalign?
//
//   - Deterministic: fixed tie-break order left > top > diagonal
//   - Explicit band geometry: every banded row stores its absolute offset
//   - Predictable limits: banded pairs whose lengths differ by more than
//     1000 are refused up front with "no alignment possible"
//
// Under the hood, everything is organized under these packages:
//
//	align/        - cost model, Full & Banded engines, backtrace, Result
//	fasta/        - first-record FASTA/FASTQ/plain loader (shenwei356/bio)
//	config/       - YAML configuration, validation and slog setup
//	server/       - gin HTTP API with Prometheus metrics
//	cmd/seqalign/ - cobra CLI: align, serve, version
//	examples/     - runnable scenarios
//
// Quick start:
//
//	res, err := align.Align("AACT", "AAT", false, 1000)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Println(res.Cost)     // -4
//	fmt.Println(res.Aligned1) // AACT
//	fmt.Println(res.Aligned2) // AA-T
package seqalign
