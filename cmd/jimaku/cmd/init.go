package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jimaku/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default configuration to the config directory.

The file documents the filter rules (part-of-speech category to action),
the tokenizer dictionary and mode, the phonetic script and the JMdict path.
Edit it to control which tokens get translation suggestions.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point dictionary.path at a JMdict XML file to enable suggestions")
	fmt.Println("  2. Adjust filter.rules to choose which categories get suggestions")
	fmt.Println("  3. Run 'jimaku edit <file>' to start editing")
	return nil
}
