package main

import (
	"fmt"
	"strconv"
	"strings"

	inputmask "github.com/goliatone/go-inputmask"
	"github.com/spf13/cobra"
)

func newFormatCmd(flags *maskFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format [value]",
		Short: "Render a stored value as the decorated field text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := flags.buildMask(cmd)
			if err != nil {
				return err
			}

			value := inputmask.Empty()
			if len(args) == 1 {
				if value, err = parseStored(args[0], mask.StringValue()); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), mask.Format(value))
			return nil
		},
	}
}

func newNormalizeCmd(flags *maskFlags) *cobra.Command {
	var previous string

	cmd := &cobra.Command{
		Use:   "normalize <candidate>",
		Short: "Recover the stored value from edited field text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rejected bool
			hook := inputmask.HookFuncs{
				After: func(ctx *inputmask.NormalizeContext) {
					rejected = ctx.Rejected
				},
			}

			mask, err := flags.buildMask(cmd, inputmask.WithHooks(hook))
			if err != nil {
				return err
			}

			prev := inputmask.Empty()
			if previous != "" {
				if prev, err = parseStored(previous, mask.StringValue()); err != nil {
					return err
				}
			}

			value := mask.Normalize(args[0], prev)
			if rejected {
				fmt.Fprintln(cmd.ErrOrStderr(), "edit rejected: prefix or suffix changed, keeping previous value")
			}
			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&previous, "previous", "", "previously stored value returned when the edit is rejected")
	return cmd
}

func newCaretCmd(flags *maskFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "caret <field text>",
		Short: "Print the caret offset enforced for the field text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := flags.buildMask(cmd)
			if err != nil {
				return err
			}
			sel := mask.Caret(inputmask.FieldState{Value: args[0]})
			fmt.Fprintln(cmd.OutOrStdout(), sel.Start)
			return nil
		},
	}
}

func newPresetsCmd(flags *maskFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [file...]",
		Short: "List the masks defined in preset files",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := append(append([]string(nil), flags.presetFiles...), args...)
			store, err := inputmask.NewPresetLoader(paths...).WithLogger(flags.logger(cmd.ErrOrStderr())).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range store.Names() {
				mask, err := store.Mask(name)
				if err != nil {
					return fmt.Errorf("preset %s: %w", name, err)
				}
				d := mask.Decorator()
				fmt.Fprintf(out, "%s\tprefix=%q suffix=%q decimals=%d locale=%s sample=%q\n",
					name, d.Prefix, d.Suffix, mask.DecimalPlaces(), mask.Locale(), mask.FormatFloat(1234567.891))
			}
			return nil
		},
	}
}

func parseStored(raw string, stringValue bool) (inputmask.Value, error) {
	raw = strings.TrimSpace(raw)
	if stringValue {
		return inputmask.Text(raw), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return inputmask.Value{}, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return inputmask.Number(f), nil
}
