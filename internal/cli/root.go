// Package cli implements the coder command, which scores job ads offline
// using the same word lists as the server.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/logger"
)

const (
	app       = "coder"
	envPrefix = "CODER"
)

// NewRootCmd builds the command tree. Every call gets its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var cfgFile string

	root := &cobra.Command{
		Use:           app,
		Short:         "coder finds gender-coded wording in job ads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.Init(logger.Options{
				Level:  v.GetString("log-level"),
				Format: "console",
				Writer: cmd.ErrOrStderr(),
			})
			return readConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file with extra lexicon words (default is config.yaml in current directory)")
	root.PersistentFlags().String("masculine-words", "", "file with one masculine-coded word per line (default is the built-in list)")
	root.PersistentFlags().String("feminine-words", "", "file with one feminine-coded word per line (default is the built-in list)")
	root.PersistentFlags().String("log-level", "warn", "log level")

	for _, name := range []string{"masculine-words", "feminine-words", "log-level"} {
		if err := v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}

	root.AddCommand(newScoreCmd(v), newLexiconCmd(v), newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// readConfig loads the optional YAML config. Only an explicitly named file
// has to exist.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logger.Named("cli").Debug().Str("file", v.ConfigFileUsed()).Msg("config loaded")
	return nil
}

// loadCoder builds the Coder from flags, env and config.
func loadCoder(v *viper.Viper) (*coder.Coder, error) {
	c, err := coder.Load(coder.Sources{
		MasculineFile:  v.GetString("masculine-words"),
		FeminineFile:   v.GetString("feminine-words"),
		ExtraMasculine: v.GetStringSlice("lexicons.extra_masculine"),
		ExtraFeminine:  v.GetStringSlice("lexicons.extra_feminine"),
	})
	if err != nil {
		return nil, fmt.Errorf("loading word lists: %w", err)
	}
	logger.Named("cli").Debug().
		Int("masculine_words", c.Masculine().Len()).
		Int("feminine_words", c.Feminine().Len()).
		Str("lexicon_version", c.Version()).
		Msg("word lists loaded")
	return c, nil
}
