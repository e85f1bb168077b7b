package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/fasta"
	"golang.org/x/time/rate"
)

// Handlers contains the HTTP handlers of the service.
type Handlers struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *Metrics
	limiter *rate.Limiter
}

// NewHandlers creates handlers using cfg for limits and defaults.
func NewHandlers(cfg config.Config, logger *slog.Logger, metrics *Metrics) *Handlers {
	return &Handlers{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		limiter: newLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
	}
}

// HandleAlign handles POST /v1/align.
//
// Response:
//
//	200 OK: AlignResponse (also when the banded guard refuses the input)
//	400 Bad Request: INVALID_REQUEST, SEQUENCE_TOO_LONG, ALIGN_TOO_LARGE or INVALID_ARGUMENT
//	429 Too Many Requests: RATE_LIMITED (see RateLimit)
//	500 Internal Server Error: ALIGN_FAILED
func (h *Handlers) HandleAlign(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleAlign")

	var req AlignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	banded := h.cfg.Align.Banded
	if req.Banded != nil {
		banded = *req.Banded
	}
	mode := align.FullMode
	if banded {
		mode = align.BandedMode
	}
	limit := h.cfg.Align.AlignLength
	if req.AlignLength > 0 {
		limit = req.AlignLength
	}

	seq1, seq2 := fasta.Normalize(req.Seq1), fasta.Normalize(req.Seq2)
	if maxLen := h.cfg.Server.MaxSequenceLength; len(seq1) > maxLen || len(seq2) > maxLen {
		h.metrics.reject(mode)
		logger.Warn("Sequence too long", "len_seq1", len(seq1), "len_seq2", len(seq2), "max", maxLen)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("sequences must be at most %d symbols", maxLen),
			Code:  "SEQUENCE_TOO_LONG",
		})
		return
	}

	if !banded {
		if cells := fullCells(seq1, seq2, limit); cells > h.cfg.Server.MaxCells {
			h.metrics.reject(mode)
			logger.Warn("Alignment table too large", "cells", cells, "max", h.cfg.Server.MaxCells)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("full alignment needs %d cells, limit is %d; lower align_length or use banded mode",
					cells, h.cfg.Server.MaxCells),
				Code: "ALIGN_TOO_LARGE",
			})
			return
		}
	}

	start := time.Now()
	res, err := align.Align(seq1, seq2, banded, limit)
	if err != nil {
		h.metrics.reject(mode)
		statusCode := http.StatusInternalServerError
		errCode := "ALIGN_FAILED"
		if errors.Is(err, align.ErrEmptySequence) || errors.Is(err, align.ErrBadAlignLength) {
			statusCode = http.StatusBadRequest
			errCode = "INVALID_ARGUMENT"
		}
		logger.Warn("Alignment rejected", "error", err)
		c.JSON(statusCode, ErrorResponse{Error: err.Error(), Code: errCode})
		return
	}
	elapsed := time.Since(start)
	h.metrics.observe(res, elapsed)

	if res.Possible() {
		logger.Info("Alignment computed",
			"mode", res.Mode.String(),
			"cost", res.Cost,
			"rows", res.Rows,
			"cols", res.Cols,
			"cells", res.Cells,
			"duration_ms", elapsed.Milliseconds())
	} else {
		logger.Info("No alignment possible",
			"mode", res.Mode.String(),
			"len_seq1", len(seq1),
			"len_seq2", len(seq2))
	}

	c.JSON(http.StatusOK, NewAlignResponse(res))
}

// HandleHealth handles GET /v1/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: Version})
}

// fullCells returns the size of the full table for the clipped inputs.
func fullCells(seq1, seq2 string, limit int) int {
	return (min(len(seq2), limit) + 1) * (min(len(seq1), limit) + 1)
}

// getOrCreateRequestID returns the caller's X-Request-ID or a new UUID,
// and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
