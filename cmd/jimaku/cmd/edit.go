package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jimaku/internal/tui"
)

var editCmd = &cobra.Command{
	Use:     "edit [file]",
	Aliases: []string{"e"},
	Short:   "Open the interactive editor",
	Long: `Open the interactive editor, optionally on a plain-text file.

The file is tokenized and annotated up front; in the editor you move between
token spans and pick per token whether the original text, its phonetic
rendering, or one of the dictionary suggestions ends up in the output.
A file that does not exist yet starts as an empty buffer and is created on
save.

Controls:
  ←/→      move between tokens
  enter    pick a rendering for the focused token
  o / p    jump straight to original / phonetic
  e        re-edit the raw text
  y        copy the reconstructed text to the clipboard
  ctrl+s   save the reconstructed text back to the file
  q        quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := buildApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	var path, text string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		text = string(data)
	}

	p := tea.NewProgram(
		tui.New(a.tk, a.an, a.log, path, text),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
