package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jimaku/internal/translate"
)

var translateFile string

var translateCmd = &cobra.Command{
	Use:     "translate [text...]",
	Aliases: []string{"tr"},
	Short:   "Batch-translate text without the editor",
	Long: `Translate text non-interactively: every token the filter marks for
suggestion is replaced by its first dictionary candidate, glosses are
upper-cased and hyphenated into the surrounding word.

Example:
  jimaku translate 猫が走る
  jimaku translate --file episode01.txt`,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVarP(&translateFile, "file", "f", "", "read the text from a file")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	text, err := readText(args, translateFile)
	if err != nil {
		return err
	}

	a, err := buildApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := translate.New(a.tk, a.an).Translate(cmd.Context(), text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
