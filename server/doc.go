// Package server exposes the aligner over HTTP.
//
// Endpoints:
//
//	POST /v1/align  - align two sequences (AlignRequest → AlignResponse)
//	GET  /v1/health - liveness and version
//	GET  /metrics   - Prometheus exposition
//
// Every request carries an X-Request-ID (echoed or generated) that is also
// attached to its log records. One request performs exactly one alignment.
// When server.rate_limit is set, alignments beyond the token bucket get 429.
package server
