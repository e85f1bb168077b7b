// Package config loads the YAML configuration shared by the seqalign CLI
// and HTTP service, and builds the structured logger both use.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is shared by all Config values; validator caches struct metadata.
var validate = validator.New()

// Config is the root of the YAML document.
//
// Example:
//
//	server:
//	  addr: ":8080"
//	  max_sequence_length: 100000
//	align:
//	  align_length: 1000
//	  banded: true
//	logging:
//	  level: debug
//	  format: json
type Config struct {
	Server  Server  `yaml:"server"`
	Align   Align   `yaml:"align"`
	Logging Logging `yaml:"logging"`
}

// Server configures the HTTP service.
type Server struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr" validate:"required"`

	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`

	// MaxSequenceLength rejects request sequences longer than this.
	MaxSequenceLength int `yaml:"max_sequence_length" validate:"gt=0"`

	// MaxCells caps the table size of a full-mode request,
	// (min(len2, L)+1) * (min(len1, L)+1). Banded work is bounded by the band.
	MaxCells int `yaml:"max_cells" validate:"gt=0"`

	// RateLimit caps alignment requests per second across all clients;
	// 0 disables the limiter. RateBurst is the bucket size.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	RateBurst int     `yaml:"rate_burst" validate:"gt=0"`
}

// Align holds the defaults applied when a caller leaves them unset.
type Align struct {
	AlignLength int  `yaml:"align_length" validate:"gt=0"`
	Banded      bool `yaml:"banded"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:              ":8080",
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			MaxSequenceLength: 100_000,
			MaxCells:          25_000_000,
			RateLimit:         0,
			RateBurst:         10,
		},
		Align: Align{
			AlignLength: 1000,
			Banded:      false,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds a slog logger writing to w in the configured format.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, cfg Logging) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
