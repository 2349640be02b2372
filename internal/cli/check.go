package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ava12/cfg/check"
	"github.com/ava12/cfg/envconfig"
	"github.com/ava12/cfg/generator"
	"github.com/ava12/cfg/grammar"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Convert grammar to CNF and compare samples of both grammars",
		Args:  cobra.ExactArgs(1),
		RunE:  checkHandler,
	}

	addRangeFlags(cmd)
	cmd.Flags().Int("limit", envconfig.DiffLimit, "Number of differing strings shown per grammar, 0 means all")
	cmd.Flags().StringP("output", "o", "", "Write report document to file")
	cmd.Flags().Bool("json", false, "Print result as JSON")
	return cmd
}

func checkHandler(cmd *cobra.Command, args []string) error {
	minLen, maxLen, budget, err := rangeFlags(cmd)
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	text, err := readFile(args[0])
	if err != nil {
		return err
	}

	r, err := check.Run(cmd.Context(), check.Request{
		Name:      args[0],
		Text:      text,
		MinLen:    minLen,
		MaxLen:    maxLen,
		Budget:    budget,
		DiffLimit: limit,
	})
	if err != nil {
		return err
	}

	if output != "" {
		if err := writeReport(output, r); err != nil {
			return err
		}
		slog.Info("report saved", "file", output)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), r)
	}
	return writeSummary(cmd.OutOrStdout(), r)
}

func writeReport(name string, r *check.Result) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := r.WriteReport(f); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

func writeSummary(w io.Writer, r *check.Result) error {
	row := func(name string, g *grammar.Grammar, s *generator.Sample) []string {
		return []string{
			name,
			g.Start(),
			strconv.Itoa(g.Len()),
			strconv.Itoa(g.ProductionCount()),
			strconv.Itoa(s.Len()),
			strconv.Itoa(s.Steps),
			strconv.FormatBool(s.Truncated),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"GRAMMAR", "START", "NONTERMINALS", "PRODUCTIONS", "STRINGS", "STEPS", "TRUNCATED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk([][]string{
		row("source", r.Source, r.SourceSample),
		row("CNF", r.CNF, r.CNFSample),
	})
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "range: %d - %d\n", r.Request.MinLen, r.Request.MaxLen)
	fmt.Fprintf(w, "status: %s\n", r.Status())
	for _, line := range r.Details() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "caveats:")
	for _, c := range r.Caveats() {
		if _, err := fmt.Fprintf(w, "- %s\n", c); err != nil {
			return err
		}
	}
	return nil
}

type sampleJSON struct {
	Strings   []string `json:"strings"`
	Steps     int      `json:"steps"`
	Truncated bool     `json:"truncated"`
}

type checkJSON struct {
	MinLen       int        `json:"min_len"`
	MaxLen       int        `json:"max_len"`
	CNF          string     `json:"cnf"`
	Equal        bool       `json:"equal"`
	OnlyInSource []string   `json:"only_in_source"`
	OnlyInCNF    []string   `json:"only_in_cnf"`
	SourceSample sampleJSON `json:"source_sample"`
	CNFSample    sampleJSON `json:"cnf_sample"`
	Caveats      []string   `json:"caveats"`
}

func newSampleJSON(s *generator.Sample) sampleJSON {
	return sampleJSON{nonNil(s.Strings), s.Steps, s.Truncated}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func writeJSON(w io.Writer, r *check.Result) error {
	data, err := json.MarshalIndent(checkJSON{
		MinLen:       r.Request.MinLen,
		MaxLen:       r.Request.MaxLen,
		CNF:          r.CNF.String(),
		Equal:        r.Report.Equal,
		OnlyInSource: nonNil(r.Report.OnlyInA),
		OnlyInCNF:    nonNil(r.Report.OnlyInB),
		SourceSample: newSampleJSON(r.SourceSample),
		CNFSample:    newSampleJSON(r.CNFSample),
		Caveats:      r.Caveats(),
	}, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
