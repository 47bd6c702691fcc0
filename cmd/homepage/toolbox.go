package main

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/homepage/pkg/config"
	"github.com/dmitrymomot/homepage/pkg/toolbox"
)

// toolboxConfig returns the toolbox section of the config file.
func toolboxConfig(opts *options) (config.ToolboxConfig, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return config.ToolboxConfig{}, err
	}
	return cfg.Toolbox, nil
}

// intFlag returns the flag value when it was set on the command line, otherwise def.
func intFlag(cmd *cobra.Command, name string, def int) int {
	if !cmd.Flags().Changed(name) {
		return def
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

// subcommand returns the index of the first positional argument, or -1.
func subcommand(args []string) int {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "--":
			return -1
		case a == "--config":
			i++
		case !strings.HasPrefix(a, "-"):
			return i
		}
	}
	return -1
}

var negativeNumeral = regexp.MustCompile(`^-[0-9A-Za-z]+$`)

// numeralArgs moves negative numerals given to shift behind a "--" separator,
// so that "shift -ff --from 16" is not read as shorthand flags.
func numeralArgs(args []string) []string {
	i := subcommand(args)
	if i < 0 || args[i] != "shift" {
		return args
	}

	out := slices.Clone(args[:i+1])
	var numerals []string
	for j := i + 1; j < len(args); j++ {
		a := args[j]
		switch {
		case a == "--":
			return append(append(out, args[j:]...), numerals...)
		case a == "--from" || a == "--to" || a == "--config":
			out = append(out, a)
			if j+1 < len(args) {
				j++
				out = append(out, args[j])
			}
		case a != "-h" && negativeNumeral.MatchString(a):
			numerals = append(numerals, a)
		default:
			out = append(out, a)
		}
	}
	if len(numerals) == 0 {
		return out
	}
	return append(append(out, "--"), numerals...)
}

// input joins args, or reads stdin when there are none or the only one is "-".
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

func newShiftCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift NUMERAL",
		Short: "Convert an integer between bases 2-36",
		Long: `Convert an integer between bases 2-36.
Unset --from and --to fall back to the toolbox section of the config file.`,
		Example: `  homepage shift 255            # ff
  homepage shift --from 16 --to 2 ff
  homepage shift -ff --from 16  # -255`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := toolboxConfig(opts)
			if err != nil {
				return err
			}
			from := intFlag(cmd, "from", defaults.FromRadix)
			to := intFlag(cmd, "to", defaults.ToRadix)

			out, err := toolbox.Shift(args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Int("from", toolbox.DefaultFromRadix, "source base")
	cmd.Flags().Int("to", toolbox.DefaultToRadix, "target base")
	return cmd
}

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode Base64",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode [TEXT|-]",
			Short: "Encode text as Base64",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := input(cmd, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), toolbox.EncodeBase64(text))
				return nil
			},
		},
		&cobra.Command{
			Use:   "decode [TEXT|-]",
			Short: "Decode Base64 text",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := input(cmd, args)
				if err != nil {
					return err
				}
				out, err := toolbox.DecodeBase64Strict(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		},
	)
	return cmd
}

func newCaesarCmd(opts *options) *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "caesar [TEXT|-]",
		Short: "Apply the Caesar cipher",
		Long: `Apply the Caesar cipher.
An unset --shift falls back to the toolbox section of the config file.
Put text that starts with "-" after "--".`,
		Example: `  homepage caesar abc            # def
  homepage caesar --decode def   # abc
  homepage caesar --shift 13 Hello
  homepage caesar -- -abc        # -def`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := toolboxConfig(opts)
			if err != nil {
				return err
			}
			cipher := toolbox.Caesar{Shift: intFlag(cmd, "shift", defaults.CaesarShift)}

			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			if decode {
				fmt.Fprintln(cmd.OutOrStdout(), cipher.Decode(text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), cipher.Encode(text))
			}
			return nil
		},
	}

	cmd.Flags().Int("shift", toolbox.DefaultCaesarShift, "alphabet shift")
	cmd.Flags().BoolVar(&decode, "decode", false, "decode instead of encode")
	return cmd
}
