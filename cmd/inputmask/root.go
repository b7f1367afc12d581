package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	inputmask "github.com/goliatone/go-inputmask"
	"github.com/spf13/cobra"
)

type maskFlags struct {
	prefix      string
	suffix      string
	decimals    string
	locale      string
	stringValue bool
	allowEmpty  bool
	presetFiles []string
	preset      string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &maskFlags{}

	root := &cobra.Command{
		Use:   "inputmask",
		Short: "Format and normalize decorated numeric field values",
		Long: `inputmask runs the numeric field mask from the command line.

Examples:
  inputmask format --prefix "BTC " --decimals 5 1234.5
  inputmask normalize --suffix " €" --locale de "1.234,567 €"
  inputmask caret --prefix "BTC " "BTC 1,234.50000"
  inputmask presets masks.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.prefix, "prefix", "", "literal text before the number")
	pf.StringVar(&flags.suffix, "suffix", "", "literal text after the number")
	pf.StringVar(&flags.decimals, "decimals", "", "fixed number of decimal places (default 2)")
	pf.StringVar(&flags.locale, "locale", "", "locale for separators (default from LC_ALL/LC_NUMERIC/LANG)")
	pf.BoolVar(&flags.stringValue, "string-value", false, "store values as dot-decimal text")
	pf.BoolVar(&flags.allowEmpty, "allow-empty", false, "normalize a cleared field to an empty value")
	pf.StringSliceVar(&flags.presetFiles, "preset-file", nil, "preset file (.json, .yaml, .toml); repeatable")
	pf.StringVar(&flags.preset, "preset", "", "preset name to build the mask from")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newFormatCmd(flags),
		newNormalizeCmd(flags),
		newCaretCmd(flags),
		newPresetsCmd(flags),
	)
	return root
}

func (f *maskFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildMask applies the preset first, so explicit flags win over it.
func (f *maskFlags) buildMask(cmd *cobra.Command, extra ...inputmask.Option) (*inputmask.Mask, error) {
	logger := f.logger(cmd.ErrOrStderr())
	var opts []inputmask.Option

	if f.preset != "" {
		if len(f.presetFiles) == 0 {
			return nil, errors.New("--preset requires --preset-file")
		}
		store, err := inputmask.NewPresetLoader(f.presetFiles...).WithLogger(logger).Load()
		if err != nil {
			return nil, err
		}
		preset, ok := store.Get(f.preset)
		if !ok {
			return nil, fmt.Errorf("%w: %q", inputmask.ErrUnknownPreset, f.preset)
		}
		opts = append(opts, preset.Options()...)
		for locale, rules := range store.Separators() {
			opts = append(opts, inputmask.WithSeparatorRules(locale, rules))
		}
	}

	changed := cmd.Flags().Changed
	if changed("prefix") {
		opts = append(opts, inputmask.WithPrefix(f.prefix))
	}
	if changed("suffix") {
		opts = append(opts, inputmask.WithSuffix(f.suffix))
	}
	if changed("decimals") {
		opts = append(opts, inputmask.WithDecimalPlacesText(f.decimals))
	}
	if changed("string-value") {
		opts = append(opts, inputmask.WithStringValue(f.stringValue))
	}
	if changed("allow-empty") {
		opts = append(opts, inputmask.WithAllowEmpty(f.allowEmpty))
	}

	switch {
	case changed("locale"):
		opts = append(opts, inputmask.WithLocale(f.locale))
	case f.preset == "":
		opts = append(opts, inputmask.WithLocale(inputmask.EnvironmentLocale()))
	}

	opts = append(opts, inputmask.WithLogger(logger))
	opts = append(opts, extra...)
	return inputmask.New(opts...)
}
