package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jimaku/internal/anki"
)

var (
	exportFile string
	exportOut  string
	exportDeck string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export suggested vocabulary as an Anki deck",
	Long: `Annotate a text and export its suggest-classified vocabulary as an
Anki .apkg deck: dictionary form on the front, phonetic rendering and
glosses on the back, deduplicated across the text.

Example:
  jimaku export --file episode01.txt --output episode01.apkg`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "text file to collect vocabulary from")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "jimaku.apkg", "deck file to write")
	exportCmd.Flags().StringVarP(&exportDeck, "deck", "d", "jimaku vocabulary", "deck name")
	exportCmd.MarkFlagRequired("file")
}

func runExport(cmd *cobra.Command, args []string) error {
	text, err := readText(nil, exportFile)
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

	notes := anki.NotesFromTokens(anns)
	if len(notes) == 0 {
		return fmt.Errorf("no suggest-classified vocabulary found in %s", exportFile)
	}
	if err := anki.Export(exportOut, exportDeck, notes); err != nil {
		return err
	}
	fmt.Printf("Exported %d notes to %s\n", len(notes), exportOut)
	return nil
}
