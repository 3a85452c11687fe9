package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/models"
)

func newScoreCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score a job ad read from a file, or from stdin when no file or - is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCoder(v)
			if err != nil {
				return err
			}

			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			r := c.Analyse(text)
			if v.GetBool("json") {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return writeText(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().BoolP("json", "j", false, "print the result as JSON")
	if err := v.BindPFlag("json", cmd.Flags().Lookup("json")); err != nil {
		panic(fmt.Sprintf("binding flag json: %v", err))
	}

	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading ad: %w", err)
	}
	return string(b), nil
}

func writeJSON(w io.Writer, r coder.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(models.NewAnalysisResponse(r, coder.Explanation(r.Coding)))
}

func writeText(w io.Writer, r coder.Result) error {
	_, err := fmt.Fprintf(w,
		"coding: %s\nmasculine words (%d): %s\nfeminine words (%d): %s\n\n%s\n",
		r.Coding,
		r.MasculineCount, r.MasculineCodedWords(),
		r.FeminineCount, r.FeminineCodedWords(),
		coder.Explanation(r.Coding),
	)
	return err
}
