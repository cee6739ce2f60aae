package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/correction"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/output"
	"github.com/jmylchreest/tonal/internal/pipeline"
	"github.com/jmylchreest/tonal/internal/source"
)

func newImageCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "image <path|url>",
		Short: "Generate a scheme from the dominant colour of an image",
		Long: `Generate a scheme from an image.

The image is resized to a small sample, quantized, and the most prominent
chromatic colour becomes the source colour of the scheme. HTTP(S) URLs
are fetched and decoded in memory.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			exts := image.SupportedImageExtensions()
			for i, ext := range exts {
				exts[i] = strings.TrimPrefix(ext, ".")
			}
			return exts, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheme(cmd, opts, source.ImageInput{Path: args[0]})
		},
	}
}

func newColorCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "color <hex>",
		Aliases: []string{"colour"},
		Short:   "Generate a scheme from a hex colour",
		Long: `Generate a scheme from a hex colour.

The colour may be given as rgb, rgba, rrggbb or rrggbbaa, with or without
a leading '#'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheme(cmd, opts, source.ColorInput{Hex: args[0]})
		},
	}
}

// runScheme runs the pipeline and writes its record in a single write, so
// a failure leaves stdout empty.
func runScheme(cmd *cobra.Command, opts *globalOptions, in source.Input) error {
	cfg := opts.resolved

	rules, err := correction.LoadRules(cfg.RulesPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := pipeline.Run(cmd.Context(), in, pipeline.Options{
		Mode:        cfg.Mode,
		Variant:     cfg.Variant,
		Format:      cfg.Format,
		Rules:       &rules,
		Colour:      cfg.Format == output.FormatPreview && !opts.noColour && isTerminal(out),
		MaxColors:   cfg.MaxColors,
		SampleWidth: cfg.SampleWidth,
		Logger:      opts.logger,
	})
	if err != nil {
		return err
	}

	if _, err := out.Write(result.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
