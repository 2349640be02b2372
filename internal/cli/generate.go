package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ava12/cfg/cnf"
	"github.com/ava12/cfg/generator"
)

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Print strings derivable from grammar within length window",
		Args:  cobra.ExactArgs(1),
		RunE:  generateHandler,
	}

	addRangeFlags(cmd)
	cmd.Flags().Bool("cnf", false, "Convert grammar to CNF before generating")
	return cmd
}

func generateHandler(cmd *cobra.Command, args []string) error {
	minLen, maxLen, budget, err := rangeFlags(cmd)
	if err != nil {
		return err
	}
	useCNF, err := cmd.Flags().GetBool("cnf")
	if err != nil {
		return err
	}

	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	if useCNF {
		g = cnf.Convert(g)
	}

	s, err := (&generator.Generator{Budget: budget}).Generate(g, minLen, maxLen)
	if err != nil {
		return err
	}
	if s.Truncated {
		slog.Warn("sample is truncated", "file", args[0], "steps", s.Steps)
	}

	for _, str := range s.Strings {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), str); err != nil {
			return err
		}
	}
	return nil
}
