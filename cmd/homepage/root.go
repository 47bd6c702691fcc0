package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// options holds the persistent flags.
type options struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "homepage",
		Short: "Personal homepage server with a text toolbox",
		Long: `homepage serves markdown content pages with a cookie-backed dark mode and
privacy notice, plus a toolbox for number base conversion, Base64 and the
Caesar cipher. The toolbox commands run the same transforms locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "homepage.yml", "config file path")

	cmd.AddCommand(
		newServeCmd(opts),
		newCheckCmd(opts),
		newConfigCmd(opts),
		newShiftCmd(opts),
		newBase64Cmd(),
		newCaesarCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// execute runs the command tree with args.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(numeralArgs(args))
	return cmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of homepage",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "homepage %s\n", Version)
		},
	}
}
