package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/cfg/cnf"
	"github.com/ava12/cfg/grammar"
)

const emptyGrammar = "(empty grammar)"

func NewConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert FILE",
		Short: "Print grammar converted to CNF",
		Args:  cobra.ExactArgs(1),
		RunE:  convertHandler,
	}
}

func convertHandler(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render(cnf.Convert(g)))
	return err
}

func render(g *grammar.Grammar) string {
	if g.IsEmpty() {
		return emptyGrammar
	}
	return g.String()
}
