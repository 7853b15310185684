package cli

import (
	"github.com/daykit-dev/daykit/internal/branding"
	"github.com/daykit-dev/daykit/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// quiet suppresses the list of generated files.
var quiet bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds one dune project per puzzle day: an empty opam file,
a dune-project, and a src/bin/part1.ml stub ready to read the day's input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not list generated files")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// isQuiet combines the --quiet flag with the quiet config key.
func isQuiet() bool {
	return quiet || config.Quiet()
}
