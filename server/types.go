package server

import "github.com/katalvlaran/seqalign/align"

// Version is reported by the health endpoint and the CLI.
const Version = "0.1.0"

// AlignRequest is the body of POST /v1/align.
//
// Banded and AlignLength are optional; when absent the configured defaults
// apply. Sequences are upper-cased and stripped of whitespace before
// alignment.
type AlignRequest struct {
	Seq1        string `json:"seq1" binding:"required"`
	Seq2        string `json:"seq2" binding:"required"`
	Banded      *bool  `json:"banded,omitempty"`
	AlignLength int    `json:"align_length,omitempty" binding:"omitempty,gt=0"`
}

// AlignResponse is the body of a successful POST /v1/align.
// Cost is null and Possible false when the banded guard refused the input.
type AlignResponse struct {
	Cost        *float64 `json:"cost"`
	Possible    bool     `json:"possible"`
	SeqAligned1 string   `json:"seq_aligned1"`
	SeqAligned2 string   `json:"seq_aligned2"`
	Mode        string   `json:"mode"`
	Matches     int      `json:"matches"`
	Mismatches  int      `json:"mismatches"`
	Gaps        int      `json:"gaps"`
	Length      int      `json:"length"`
	Rows        int      `json:"rows"`
	Cols        int      `json:"cols"`
	Cells       int      `json:"cells"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewAlignResponse converts an alignment result to its wire form. The CLI
// uses it for --json output.
func NewAlignResponse(res align.Result) AlignResponse {
	resp := AlignResponse{
		Possible:    res.Possible(),
		SeqAligned1: res.Aligned1,
		SeqAligned2: res.Aligned2,
		Mode:        res.Mode.String(),
		Matches:     res.Matches,
		Mismatches:  res.Mismatches,
		Gaps:        res.Gaps,
		Length:      res.Length,
		Rows:        res.Rows,
		Cols:        res.Cols,
		Cells:       res.Cells,
	}
	if resp.Possible {
		cost := res.Cost
		resp.Cost = &cost
	}
	return resp
}
