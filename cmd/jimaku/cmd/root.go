// Package cmd contains all CLI commands for jimaku.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jimaku/internal/annotate"
	"jimaku/internal/config"
	"jimaku/internal/dict"
	"jimaku/internal/logging"
	"jimaku/internal/phonetic"
	"jimaku/internal/tokenize"
)

var cfgFile string

// rootCmd represents the base command. Without a subcommand it launches the
// editor, optionally on a file.
var rootCmd = &cobra.Command{
	Use:   "jimaku [file]",
	Short: "Selectively translate and phonetize Japanese subtitle text",
	Long: `jimaku is an interactive editor for Japanese subtitle text.

It tokenizes the text with a morphological analyzer and classifies every
token by part of speech: tokens can receive translation suggestions from
JMdict, a phonetic rendering only, or be left alone. In the editor you pick
per token which rendering ends up in the reconstructed text.

Running 'jimaku' without arguments opens the editor on an empty buffer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/jimaku/config.yaml)")
	rootCmd.PersistentFlags().String("dictionary", "", "JMdict XML file, optionally gzipped (overrides config)")

	cobra.CheckErr(viper.BindPFlag("dictionary.path", rootCmd.PersistentFlags().Lookup("dictionary")))
}

// initConfig resolves the config file path and ENV overrides.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_file", cfgFile)
	} else {
		path, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_file", path)
	}

	viper.SetEnvPrefix("JIMAKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file when it exists, falling back to defaults,
// and applies flag/ENV overrides.
func loadConfig() (*config.Config, error) {
	path := viper.GetString("config_file")
	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	if p := viper.GetString("dictionary.path"); p != "" {
		cfg.Dictionary.Path = p
	}
	return cfg, nil
}

// app bundles the collaborators a command works with.
type app struct {
	cfg *config.Config
	tk  *tokenize.Tokenizer
	an  *annotate.Annotator
	log *slog.Logger

	closeLog func() error
}

// buildApp wires tokenizer, phonetizer, dictionary and annotator from the
// configuration. Interactive commands set ownTerminal: without a configured
// log file their logs are discarded instead of corrupting the TUI screen.
func buildApp(ownTerminal bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logging.Discard()
	closeLog := func() error { return nil }
	if !ownTerminal || cfg.Log.File != "" {
		log, closeLog, err = logging.New(logging.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		})
		if err != nil {
			return nil, err
		}
	}

	tk, err := tokenize.New(tokenize.Options{
		Dict: tokenize.DictName(cfg.Tokenizer.Dict),
		Mode: tokenize.Mode(cfg.Tokenizer.Mode),
	})
	if err != nil {
		closeLog()
		return nil, err
	}

	script, err := phonetic.ParseScript(cfg.Phonetic.Script)
	if err != nil {
		closeLog()
		return nil, err
	}

	fcfg, err := cfg.Filter.Compile()
	if err != nil {
		closeLog()
		return nil, err
	}

	// A typed nil must not reach the annotator's interface field.
	var lookup annotate.Dictionary
	if cfg.Dictionary.Path != "" {
		d, err := dict.Load(cfg.Dictionary.Path)
		if err != nil {
			closeLog()
			return nil, err
		}
		log.Info("dictionary loaded", "path", cfg.Dictionary.Path, "entries", d.Size())
		lookup = d
	} else {
		log.Warn("no dictionary configured, translation suggestions disabled")
	}

	return &app{
		cfg:      cfg,
		tk:       tk,
		an:       annotate.New(fcfg, phonetic.New(tk, script), lookup, log),
		log:      log,
		closeLog: closeLog,
	}, nil
}

func (a *app) close() {
	if a != nil && a.closeLog != nil {
		a.closeLog()
	}
}

// readText resolves the text argument shared by the batch commands: an
// explicit file wins, otherwise the positional arguments are joined.
func readText(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no input text: pass text arguments or --file")
	}
	return text, nil
}
