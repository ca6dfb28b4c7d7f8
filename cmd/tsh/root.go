package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootOptions options

var rootCmd = &cobra.Command{
	Use:   "tsh",
	Short: "tsh is an interactive command shell with tab completion",
	Long: `tsh reads commands one keystroke at a time, completes them with Tab,
recalls earlier lines with the arrow keys and runs them from a command tree.
Scripted commands can be added in ~/.tsh/config.yaml.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context(), rootOptions, os.Stdin, os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&rootOptions.configPath, "config", "", "Path to the config file (default ~/.tsh/config.yaml)")
	flags.StringVar(&rootOptions.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&rootOptions.noJournal, "no-journal", false, "Do not record commands in the journal")
	flags.StringVar(&rootOptions.prompt, "prompt", "", "Prompt printed before every line")
}
