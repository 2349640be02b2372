// Package cli implements cfgcnf commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/cfg/envconfig"
	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/langdef"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfgcnf",
		Short: "Context-free grammar to Chomsky Normal Form converter",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewConvertCmd(),
		NewGenerateCmd(),
		NewCompareCmd(),
		NewCheckCmd(),
		NewEnvCmd(),
	)
	return rootCmd
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("min", envconfig.MinLen, "Minimal string length")
	cmd.Flags().Int("max", envconfig.MaxLen, "Maximal string length")
	cmd.Flags().Int("budget", envconfig.StepBudget, "Maximal number of expanded forms per sample, 0 means default")
}

func rangeFlags(cmd *cobra.Command) (minLen, maxLen, budget int, err error) {
	if minLen, err = cmd.Flags().GetInt("min"); err != nil {
		return
	}
	if maxLen, err = cmd.Flags().GetInt("max"); err != nil {
		return
	}
	budget, err = cmd.Flags().GetInt("budget")
	return
}

func readFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func readGrammar(name string) (*grammar.Grammar, error) {
	text, err := readFile(name)
	if err != nil {
		return nil, err
	}

	g, err := langdef.ParseString(name, text)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
