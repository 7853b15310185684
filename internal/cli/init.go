package cli

import (
	"fmt"
	"os"

	"github.com/daykit-dev/daykit/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	initCmd.Flags().StringVar(&duneLang, "dune-lang", "", "dune language version (default from config, else 1.2)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a day in an existing directory",
	Long: `Write the day boilerplate into dir, or the current directory when omitted.
The day is named after the directory: running in day7/ creates day7.opam.
Generated files are overwritten, so running init again restores the templates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := initDir(args)
		if err != nil {
			return err
		}

		opts, err := dayOptions(cmd)
		if err != nil {
			return err
		}
		result, err := scaffold.Init(dir, opts)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), "Initialized", result)
		return nil
	},
}

func initDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
