package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	cerrors "cloudeng.io/errors"
	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/fasta"
	"github.com/katalvlaran/seqalign/server"
	"github.com/spf13/cobra"
)

// errBothStdin rejects reading both sequences from one standard input.
var errBothStdin = errors.New("--seq1-file and --seq2-file cannot both read standard input (-)")

type alignOptions struct {
	seq1, seq2         string
	seq1File, seq2File string
	banded             bool
	alignLength        int
	asJSON             bool
}

func newAlignCmd(a *app) *cobra.Command {
	opts := &alignOptions{}

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align two sequences and print the cost and aligned strings",
		Example: `  seqalign align --seq1 AACT --seq2 AAT
  seqalign align --seq1-file a.fa --seq2-file b.fa --banded --align-length 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("banded") {
				opts.banded = a.cfg.Align.Banded
			}
			if !cmd.Flags().Changed("align-length") {
				opts.alignLength = a.cfg.Align.AlignLength
			}
			return runAlign(cmd.OutOrStdout(), a, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.seq1, "seq1", "", "first sequence as a literal")
	flags.StringVar(&opts.seq2, "seq2", "", "second sequence as a literal")
	flags.StringVar(&opts.seq1File, "seq1-file", "", "FASTA/FASTQ or plain file holding the first sequence (- for stdin)")
	flags.StringVar(&opts.seq2File, "seq2-file", "", "FASTA/FASTQ or plain file holding the second sequence")
	flags.BoolVar(&opts.banded, "banded", false, "restrict the table to a band of width 7 around the diagonal")
	flags.IntVar(&opts.alignLength, "align-length", 0, "align only the first N symbols of each sequence")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("seq1", "seq1-file")
	cmd.MarkFlagsMutuallyExclusive("seq2", "seq2-file")

	return cmd
}

func runAlign(w io.Writer, a *app, opts *alignOptions) error {
	seq1, seq2, err := opts.sequences()
	if err != nil {
		return err
	}

	res, err := align.Align(seq1, seq2, opts.banded, opts.alignLength)
	if err != nil {
		return err
	}
	a.logger.Debug("Alignment computed",
		"mode", res.Mode.String(),
		"rows", res.Rows,
		"cols", res.Cols,
		"cells", res.Cells)

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewAlignResponse(res))
	}
	return writeReport(w, res)
}

// sequences resolves both inputs, reporting every missing or unreadable
// input together.
func (o *alignOptions) sequences() (string, string, error) {
	if o.seq1File == "-" && o.seq2File == "-" {
		return "", "", errBothStdin
	}
	if o.seq1File != "" && o.seq2File != "" {
		r1, r2, err := fasta.ReadPair(o.seq1File, o.seq2File)
		return r1.Seq, r2.Seq, err
	}

	errs := &cerrors.M{}
	seq1, err := sequence("seq1", o.seq1, o.seq1File)
	errs.Append(err)
	seq2, err := sequence("seq2", o.seq2, o.seq2File)
	errs.Append(err)
	return seq1, seq2, errs.Err()
}

func sequence(name, literal, path string) (string, error) {
	switch {
	case path != "":
		rec, err := fasta.ReadFile(path)
		return rec.Seq, err
	case literal != "":
		return fasta.Normalize(literal), nil
	}
	return "", fmt.Errorf("missing --%s or --%s-file", name, name)
}

// writeReport prints a plain-text summary followed by the aligned strings
// and their midline.
func writeReport(w io.Writer, res align.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "mode:    %s\n", res.Mode)
	if !res.Possible() {
		fmt.Fprintf(&b, "cost:    %v\n", res.Cost)
		fmt.Fprintf(&b, "%s\n", align.NoAlignment)
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "cost:    %g\n", res.Cost)
	fmt.Fprintf(&b, "length:  %d (matches %d, mismatches %d, gaps %d)\n",
		res.Length, res.Matches, res.Mismatches, res.Gaps)
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", res.Aligned1, res.Midline(), res.Aligned2)
	_, err := io.WriteString(w, b.String())
	return err
}
