package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/cfg/check"
	"github.com/ava12/cfg/envconfig"
	"github.com/ava12/cfg/equiv"
)

func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare two sample files, one string per line",
		Args:  cobra.ExactArgs(2),
		RunE:  compareHandler,
	}

	cmd.Flags().Int("limit", envconfig.DiffLimit, "Number of differing strings shown per file, 0 means all")
	return cmd
}

func compareHandler(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	a, err := readFile(args[0])
	if err != nil {
		return err
	}
	b, err := readFile(args[1])
	if err != nil {
		return err
	}

	return writeDiff(cmd.OutOrStdout(), check.Recompare(a, b), limit, args[0], args[1])
}

func writeDiff(w io.Writer, r *equiv.Report, limit int, nameA, nameB string) error {
	lines := []string{r.String()}
	onlyA, onlyB := r.Head(limit)
	if len(onlyA) > 0 {
		lines = append(lines, diffLine(nameA, len(r.OnlyInA), onlyA))
	}
	if len(onlyB) > 0 {
		lines = append(lines, diffLine(nameB, len(r.OnlyInB), onlyB))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func diffLine(name string, total int, shown []string) string {
	line := fmt.Sprintf("only in %s (%d): %s", name, total, strings.Join(shown, ", "))
	if len(shown) < total {
		line += ", ..."
	}
	return line
}
