// Command seqalign aligns two nucleotide sequences from the command line or
// serves the alignment engine over HTTP.
//
// Usage:
//
//	seqalign align --seq1 ACGT --seq2 AAT
//	seqalign align --seq1-file a.fa --seq2-file b.fa --banded --json
//	seqalign serve --config seqalign.yaml --addr :8080
//	seqalign version
package main

import (
	"os"
)

func main() {
	// Cobra reports the error itself; only the exit status is left.
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
