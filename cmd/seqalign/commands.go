package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/server"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once the persistent
// flags have been resolved.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Global alignment of nucleotide sequences",
		Long: `seqalign computes minimum-cost global alignments of two sequences
(match -3, substitution +1, gap +5), either over the complete table
or inside a diagonal band of width 7.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(
		newAlignCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the configuration, applies the logging flags over it and
// builds the logger.
func (a *app) load(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = config.NewLogger(stderr, cfg.Logging)
	a.logger.Debug("Configuration loaded", "path", a.configPath)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seqalign version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("seqalign %s\n", server.Version)
		},
	}
}
