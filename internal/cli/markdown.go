package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/daykit-dev/daykit/internal/puzzle"
	"github.com/spf13/cobra"
)

var markdownOutput string

func init() {
	markdownCmd.Flags().StringVarP(&markdownOutput, "output", "o", "", "Write Markdown to this file instead of stdout")
	rootCmd.AddCommand(markdownCmd)
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Convert a saved puzzle page to Markdown",
	Long: `Convert the <article> sections of a saved puzzle page to Markdown.
Reads the HTML from file, or from stdin when no file is given.

Example:
  daykit markdown day7.html -o day7/README.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		if markdownOutput == "" {
			return puzzle.ToMarkdown(in, cmd.OutOrStdout())
		}
		return writeMarkdownFile(in, markdownOutput)
	},
}

// writeMarkdownFile converts fully before touching path, so a failed
// conversion leaves it alone and path may be the input file itself.
func writeMarkdownFile(in io.Reader, path string) error {
	var buf bytes.Buffer
	if err := puzzle.ToMarkdown(in, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
