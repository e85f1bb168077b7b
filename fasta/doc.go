// Package fasta loads the sequences handed to the aligner.
//
// A file is read as FASTA/FASTQ (first record only) when its first
// non-blank byte is '>' or '@', and as plain text otherwise, in which case
// every non-space byte is part of the sequence. Sequences are upper-cased so
// that the byte-exact cost model treats "acgt" and "ACGT" alike.
//
//	rec, err := fasta.ReadFile("ref.fa")
//	if err != nil {
//	  // ErrNoRecords, ErrEmptySequence or an I/O error
//	}
//	fmt.Println(rec.ID, len(rec.Seq))
package fasta
