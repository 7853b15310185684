package cli

import (
	"fmt"
	"io"

	"github.com/daykit-dev/daykit/internal/config"
	"github.com/daykit-dev/daykit/internal/scaffold"
	"github.com/spf13/cobra"
)

// Shared by create and init.
var duneLang string

func init() {
	createCmd.Flags().StringVar(&duneLang, "dune-lang", "", "dune language version (default from config, else 1.2)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Create a day directory and scaffold it",
	Long: `Create the directory at <path> (and any missing parents) and write the day
boilerplate into it. An existing directory is reused; generated files are overwritten.

Example:
  daykit create 2024/day7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dayOptions(cmd)
		if err != nil {
			return err
		}
		result, err := scaffold.Create(args[0], opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printResult(out, "Created", result)
		printNextSteps(out, result.OutputDir)
		return nil
	},
}

// ─── Helpers ───────────────────────────────────────────────────────

// dayOptions prefers an explicit --dune-lang over the configured value.
func dayOptions(cmd *cobra.Command) (scaffold.Options, error) {
	if cmd.Flags().Changed("dune-lang") {
		return scaffold.Options{DuneLang: duneLang}, nil
	}
	lang, err := config.DuneLang()
	if err != nil {
		return scaffold.Options{}, err
	}
	return scaffold.Options{DuneLang: lang}, nil
}

func printResult(w io.Writer, verb string, result *scaffold.Result) {
	if isQuiet() {
		return
	}
	fmt.Fprintf(w, "%s day %s at %s/\n", verb, result.Name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Overwritten) > 0 {
		fmt.Fprintln(w, "\nOverwrote existing files:")
		for _, f := range result.Overwritten {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
}

func printNextSteps(w io.Writer, dir string) {
	if isQuiet() {
		return
	}
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Save the puzzle input as %s/input\n", dir)
	fmt.Fprintln(w, "  2. Edit src/bin/part1.ml")
	fmt.Fprintln(w, "  3. Run 'dune exec ./src/bin/part1.exe'")
}
