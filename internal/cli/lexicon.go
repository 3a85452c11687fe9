package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLexiconCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "lexicon masculine|feminine",
		Short:     "Print a word list, one word per line",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"masculine", "feminine"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCoder(v)
			if err != nil {
				return err
			}

			lex := c.Masculine()
			if args[0] == "feminine" {
				lex = c.Feminine()
			}

			out := cmd.OutOrStdout()
			for _, w := range lex.Words() {
				if _, err := fmt.Fprintln(out, w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
