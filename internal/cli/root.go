// Package cli provides the command-line interface for Tincture.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/version"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// app is the state shared by every command of one root.
type app struct {
	lookup config.LookupFunc
	cfg    config.Config
	logger hclog.Logger
	diag   colour.Diagnostics
}

// NewRootCmd builds the tincture command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.LookupEnv)
}

func newRootCmd(lookup config.LookupFunc) *cobra.Command {
	a := &app{
		lookup: lookup,
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
		diag:   colour.NopDiagnostics{},
	}

	rootCmd := &cobra.Command{
		Use:   "tincture",
		Short: "A colour system generator and accessibility checker",
		Long: `Tincture generates harmonious brand colour systems and checks them for
accessibility.

A colour system has five roles: primary, secondary, accent, background and
text. Pin the roles you want to keep and tincture fills the rest from a
colour-wheel harmony, derives a background and readable text, and scores the
result for WCAG contrast and colour-vision deficiency.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newAnalyzeCmd(a),
		newHarmoniesCmd(a),
		newContrastCmd(a),
		newSchemesCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags(), a.lookup)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "tincture",
		Output: cmd.ErrOrStderr(),
		Level:  cfg.LogLevel,
	})
	a.diag = colour.NewLoggerDiagnostics(a.logger)
	a.logger.Debug("configuration loaded",
		"seed_mode", cfg.Seed.Mode, "scheme", cfg.Scheme, "theme", cfg.Theme, "format", cfg.Format)
	return nil
}

func (a *app) json() bool {
	return a.cfg.Format == config.FormatJSON
}

func (a *app) swatches(w io.Writer) swatches {
	return newSwatches(w, a.cfg.Colour)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.json() {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
