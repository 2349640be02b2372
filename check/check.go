// Package check runs the whole pipeline: parses and validates a grammar, converts it to CNF,
// samples both grammars in the same length window, and compares the samples.
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ava12/cfg/cnf"
	"github.com/ava12/cfg/equiv"
	"github.com/ava12/cfg/generator"
	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/langdef"
)

// Request describes a single check.
type Request struct {
	// Name is the source name used in error messages, may be empty.
	Name string

	// Text is the grammar text.
	Text string

	// MinLen and MaxLen define the length window of samples.
	MinLen, MaxLen int

	// Budget limits the number of expanded forms per sample, non-positive means generator.DefaultBudget.
	Budget int

	// DiffLimit is the number of differing strings per side in the report, non-positive means equiv.DefaultLimit.
	DiffLimit int
}

// Result holds every intermediate value of a check.
type Result struct {
	Request      Request
	Source       *grammar.Grammar
	CNF          *grammar.Grammar
	SourceSample *generator.Sample
	CNFSample    *generator.Sample
	Report       *equiv.Report

	// Edited is set if Report was computed from edited sample texts.
	Edited bool
}

// Run performs the check. Returns *cfg.Error for invalid grammar text or length window,
// or context error if ctx is done before sampling is complete.
func Run(ctx context.Context, req Request) (*Result, error) {
	g, e := langdef.ParseString(req.Name, req.Text)
	if e != nil {
		return nil, e
	}
	if e = g.Validate(); e != nil {
		return nil, e
	}

	r := &Result{
		Request: req,
		Source:  g,
		CNF:     cnf.Convert(g),
	}
	if e = cnf.IsCNF(r.CNF); e != nil {
		return nil, fmt.Errorf("conversion failed: %w", e)
	}

	gen := &generator.Generator{Budget: req.Budget}
	eg, ctx := errgroup.WithContext(ctx)
	sample := func(g *grammar.Grammar, dest **generator.Sample) func() error {
		return func() error {
			if e := ctx.Err(); e != nil {
				return e
			}
			s, e := gen.Generate(g, req.MinLen, req.MaxLen)
			*dest = s
			return e
		}
	}
	eg.Go(sample(r.Source, &r.SourceSample))
	eg.Go(sample(r.CNF, &r.CNFSample))
	if e = eg.Wait(); e != nil {
		return nil, e
	}

	r.Report = equiv.Compare(r.SourceSample.Strings, r.CNFSample.Strings)
	slog.Debug("check complete", "name", req.Name, "equal", r.Report.Equal,
		"source", r.SourceSample.Len(), "cnf", r.CNFSample.Len())
	return r, nil
}

// Recompare compares two edited sample texts, see equiv.ParseSample.
func Recompare(a, b string) *equiv.Report {
	return equiv.Compare(equiv.ParseSample(a), equiv.ParseSample(b))
}

// Recompare replaces the report with the comparison of edited sample texts.
func (r *Result) Recompare(source, converted string) *equiv.Report {
	r.Report = Recompare(source, converted)
	r.Edited = true
	return r.Report
}

// Status returns the verdict line.
func (r *Result) Status() string {
	if r.Report.Equal {
		return "samples are EQUIVALENT"
	}
	return "samples DIFFER"
}

// Truncated reports whether any of the samples is truncated.
func (r *Result) Truncated() bool {
	return r.SourceSample.Truncated || r.CNFSample.Truncated
}

// Caveats returns notes limiting the meaning of the verdict. The list is never empty.
func (r *Result) Caveats() []string {
	result := []string{fmt.Sprintf(
		"equal samples do not prove equivalence of languages, only of their parts with lengths %d..%d",
		r.Request.MinLen, r.Request.MaxLen,
	)}
	for _, s := range []struct {
		name   string
		sample *generator.Sample
	}{{"source", r.SourceSample}, {"CNF", r.CNFSample}} {
		if s.sample.Truncated {
			result = append(result, fmt.Sprintf(
				"%s sample is truncated after %d steps, differences may be false", s.name, s.sample.Steps,
			))
		}
	}
	if r.CNF.IsEmpty() {
		result = append(result, "grammar derives no terminal strings, CNF is empty")
	}
	if r.Edited {
		result = append(result, "samples were edited before comparison")
	}
	return result
}

func (r *Result) diffLimit() int {
	if r.Request.DiffLimit > 0 {
		return r.Request.DiffLimit
	}
	return equiv.DefaultLimit
}

// Details returns difference description lines, at most DiffLimit strings per side are listed.
func (r *Result) Details() []string {
	if r.Report.Equal {
		return []string{"no differences found"}
	}

	onlyA, onlyB := r.Report.Head(r.diffLimit())
	var result []string
	if len(onlyA) > 0 {
		result = append(result, detail("only in source", r.Report.OnlyInA, onlyA))
	}
	if len(onlyB) > 0 {
		result = append(result, detail("only in CNF", r.Report.OnlyInB, onlyB))
	}
	return result
}

func detail(title string, all, shown []string) string {
	line := fmt.Sprintf("%s (%d): %s", title, len(all), strings.Join(shown, ", "))
	if len(shown) < len(all) {
		line += ", ..."
	}
	return line
}

// WriteReport writes the report document: source grammar, CNF, length window, verdict,
// difference details, and caveats.
func (r *Result) WriteReport(w io.Writer) error {
	var sb strings.Builder
	section := func(title string, lines ...string) {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("=== " + title + " ===\n")
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	rendered := r.CNF.String()
	if r.CNF.IsEmpty() {
		rendered = "(empty grammar)"
	}

	section("SOURCE GRAMMAR", strings.TrimSpace(r.Request.Text))
	section("CNF", rendered)
	section("CHECK RESULTS",
		fmt.Sprintf("Range: %d - %d", r.Request.MinLen, r.Request.MaxLen),
		"Status: "+r.Status(),
		fmt.Sprintf("Sample sizes: source %d, CNF %d", r.SourceSample.Len(), r.CNFSample.Len()),
	)
	section("DIFFERENCES", r.Details()...)
	caveats := r.Caveats()
	for i, c := range caveats {
		caveats[i] = "- " + c
	}
	section("CAVEATS", caveats...)

	_, e := io.WriteString(w, sb.String())
	return e
}
