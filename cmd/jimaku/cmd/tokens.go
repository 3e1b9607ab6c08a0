package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"jimaku/internal/token"
)

var tokensFile string

var tokensCmd = &cobra.Command{
	Use:   "tokens [text...]",
	Short: "Show the annotated token table for a text",
	Long: `Tokenize and annotate a text and print the result as a table:
per token the surface form, part-of-speech category, the action the filter
assigned, the phonetic rendering and the dictionary suggestions found.

Example:
  jimaku tokens 猫が走る
  jimaku tokens --file episode01.txt`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensFile, "file", "f", "", "read the text from a file")
}

func runTokens(cmd *cobra.Command, args []string) error {
	text, err := readText(args, tokensFile)
	if err != nil {
		return err
	}

	a, err := buildApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	toks, err := a.tk.Tokenize(text)
	if err != nil {
		return err
	}
	anns, err := a.an.AnnotateAll(cmd.Context(), toks)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Surface", "Category", "POS", "Action", "Phonetic", "Suggestions"})
	for _, ann := range anns {
		tw.AppendRow(table.Row{
			ann.Token.Position,
			ann.Token.Surface,
			ann.Token.Category,
			ann.Token.POS,
			ann.Action,
			ann.Phonetic,
			glossColumn(ann),
		})
	}
	fmt.Println(tw.Render())
	return nil
}

// glossColumn compacts a candidate list into one table cell.
func glossColumn(ann token.Annotated) string {
	if ann.Action != token.ActionSuggest {
		return ""
	}
	if len(ann.Candidates) == 0 {
		return "(none)"
	}
	n := len(ann.Candidates)
	shown := n
	if shown > 3 {
		shown = 3
	}
	parts := make([]string, 0, shown)
	for _, c := range ann.Candidates[:shown] {
		parts = append(parts, c.Text)
	}
	cell := strings.Join(parts, ", ")
	if n > shown {
		cell += fmt.Sprintf(" (+%d)", n-shown)
	}
	return cell
}
