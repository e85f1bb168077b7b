package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	cerrors "cloudeng.io/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

var (
	// ErrNoRecords indicates a file without any sequence record.
	ErrNoRecords = errors.New("fasta: no sequence records")

	// ErrEmptySequence indicates a record whose sequence is empty.
	ErrEmptySequence = errors.New("fasta: empty sequence")
)

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadFile returns the first record of path. "-" reads FASTA/FASTQ from
// standard input. Every error is prefixed with path exactly once.
func ReadFile(path string) (Record, error) {
	rec, err := readRecord(path)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// readRecord returns the first record of path with unwrapped errors.
func readRecord(path string) (Record, error) {
	if path != "-" {
		plain, err := isPlain(path)
		if err != nil {
			return Record{}, err
		}
		if plain {
			return readPlain(path)
		}
	}

	reader, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return Record{}, err
	}
	defer reader.Close()

	rec, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, ErrNoRecords
		}
		return Record{}, err
	}

	s := Normalize(string(rec.Seq.Seq))
	if s == "" {
		return Record{}, ErrEmptySequence
	}
	return Record{ID: string(rec.ID), Seq: s}, nil
}

// ReadPair reads both inputs and reports every failure at once.
func ReadPair(path1, path2 string) (Record, Record, error) {
	errs := &cerrors.M{}
	r1, err := ReadFile(path1)
	errs.Append(err)
	r2, err := ReadFile(path2)
	errs.Append(err)
	return r1, r2, errs.Err()
}

// Normalize upper-cases s and drops all whitespace.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// isPlain reports whether the first non-blank byte of path is neither a
// FASTA nor a FASTQ header marker. Empty files are reported as
// ErrNoRecords.
func isPlain(path string) (bool, error) {
	fh, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer fh.Close()

	r := bufio.NewReader(fh)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return false, ErrNoRecords
		}
		if err != nil {
			return false, err
		}
		if unicode.IsSpace(rune(b)) {
			continue
		}
		return b != '>' && b != '@', nil
	}
}

// readPlain reads a header-less sequence file; the record ID is the path.
func readPlain(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	s := Normalize(string(bytes.TrimSpace(data)))
	if s == "" {
		return Record{}, ErrEmptySequence
	}
	return Record{ID: path, Seq: s}, nil
}
