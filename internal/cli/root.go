// Package cli provides the command-line interface for tonal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/material/palette"
	"github.com/jmylchreest/tonal/internal/material/scheme"
	"github.com/jmylchreest/tonal/internal/output"
	"github.com/jmylchreest/tonal/internal/version"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	flags    config.Config
	verbose  bool
	quiet    bool
	noColour bool

	// resolved is flags layered over the environment, set before any
	// subcommand runs.
	resolved config.Config
	logger   hclog.Logger
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{flags: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "A Material colour scheme generator",
		Long: `Tonal derives a complete Material colour scheme from an image or a single
colour, corrects the surfaces that tend to come out too bright, and prints
the result as one record of role names and hex colours.

Examples:
  # Dark scheme from a wallpaper
  tonal image wallpaper.jpg

  # Light scheme from a colour, as YAML
  tonal --mode light --format yaml color '#4285f4'

  # Preview a vibrant scheme in the terminal
  tonal -p vibrant --format preview image wallpaper.png`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	mode := newEnumValue(&opts.flags.Mode, "mode", scheme.ParseMode, scheme.ValidModes())
	variant := newEnumValue(&opts.flags.Variant, "palette", palette.ParseVariant, palette.ValidVariants())
	format := newEnumValue(&opts.flags.Format, "format", output.ParseFormat, output.ValidFormats())

	pf := rootCmd.PersistentFlags()
	pf.VarP(mode, "mode", "m", mode.usage("scheme mode"))
	pf.VarP(variant, "palette", "p", variant.usage("palette variant"))
	pf.VarP(format, "format", "f", format.usage("output format"))
	pf.StringVar(&opts.flags.RulesPath, "rules", "", "YAML correction rules file (default: built-in rules)")
	pf.IntVar(&opts.flags.MaxColors, "max-colours", opts.flags.MaxColors, "maximum quantized colours when extracting from an image (1-256)")
	pf.IntVar(&opts.flags.SampleWidth, "sample-width", opts.flags.SampleWidth, "width images are resized to before quantization (1-1024)")
	pf.BoolVar(&opts.noColour, "no-colour", false, "disable colour swatches in preview output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", mode.complete)
	_ = rootCmd.RegisterFlagCompletionFunc("palette", variant.complete)
	_ = rootCmd.RegisterFlagCompletionFunc("format", format.complete)
	_ = rootCmd.MarkPersistentFlagFilename("rules", "yaml", "yml")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newImageCmd(opts),
		newColorCmd(opts),
		newRolesCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// resolve layers the changed flags over the environment configuration and
// builds the logger.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	o.logger = newLogger(cmd.ErrOrStderr(), o.verbose, o.quiet)

	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return fmt.Errorf("failed to load environment configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = o.flags.Mode
	}
	if flags.Changed("palette") {
		cfg.Variant = o.flags.Variant
	}
	if flags.Changed("format") {
		cfg.Format = o.flags.Format
	}
	if flags.Changed("rules") {
		cfg.RulesPath = o.flags.RulesPath
	}
	if flags.Changed("max-colours") {
		cfg.MaxColors = o.flags.MaxColors
	}
	if flags.Changed("sample-width") {
		cfg.SampleWidth = o.flags.SampleWidth
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.resolved = cfg
	o.logger.Debug("resolved configuration",
		"mode", cfg.Mode, "palette", cfg.Variant, "format", cfg.Format,
		"rules", cfg.RulesPath, "max_colours", cfg.MaxColors, "sample_width", cfg.SampleWidth)
	return nil
}

// newLogger returns the diagnostics logger: warnings by default, debug with
// --verbose and nothing with --quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		// Version output never depends on the environment configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			data, err := json.Marshal(version.GetInfo())
			if err != nil {
				return fmt.Errorf("failed to encode version: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
