package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/cfg"
	"github.com/ava12/cfg/generator"
	"github.com/ava12/cfg/langdef"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireCode(t *testing.T, code int, err error) {
	t.Helper()
	var ce *cfg.Error
	require.True(t, errors.As(err, &ce), "expecting *cfg.Error, got %v", err)
	assert.Equal(t, code, ce.Code)
}

func TestConvert(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		expect string
	}{
		{"right recursion", "S -> a S | a\n", "S -> T_a S | a\nS0 -> T_a S | a\nT_a -> a\n"},
		{"empty language", "S -> A\nA -> A a\n", "(empty grammar)\n"},
		{"epsilon only", "S -> eps\n", "S0 -> ε\n"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "convert", writeTemp(t, "g.txt", tt.text))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expect, out); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	_, err := execute(t, "convert", writeTemp(t, "g.txt", "S -> a\nA b\n"))
	requireCode(t, langdef.MissingArrowError, err)
	assert.Contains(t, err.Error(), "at line 2")

	_, err = execute(t, "convert", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "convert")
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	path := writeTemp(t, "g.txt", "S -> a S | a")

	out, err := execute(t, "generate", "--min", "1", "--max", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "a\naa\naaa\n", out)

	out, err = execute(t, "generate", "--min", "1", "--max", "3", "--cnf", path)
	require.NoError(t, err)
	assert.Equal(t, "a\naa\naaa\n", out)

	_, err = execute(t, "generate", "--min", "3", "--max", "1", path)
	requireCode(t, generator.InvertedRangeError, err)
}

func TestGenerateBudget(t *testing.T) {
	path := writeTemp(t, "g.txt", "S -> S | a")
	out, err := execute(t, "generate", "--min", "0", "--max", "2", "--budget", "10", path)
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)
}

func TestCompare(t *testing.T) {
	a := writeTemp(t, "a.txt", "a\naa\naaa\n")
	b := writeTemp(t, "b.txt", "a\n\naaa\n")

	out, err := execute(t, "compare", "--limit", "10", a, b)
	require.NoError(t, err)
	expect := "samples differ: 1 only in A, 0 only in B\nonly in " + a + " (1): aa\n"
	if diff := cmp.Diff(expect, out); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}

	out, err = execute(t, "compare", a, a)
	require.NoError(t, err)
	assert.Equal(t, "samples are equal\n", out)
}

func TestCheckJSON(t *testing.T) {
	path := writeTemp(t, "g.txt", "S -> a S | a")
	out, err := execute(t, "check", "--min", "1", "--max", "3", "--json", path)
	require.NoError(t, err)

	var result checkJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Equal)
	assert.Equal(t, 1, result.MinLen)
	assert.Equal(t, 3, result.MaxLen)
	assert.Equal(t, "S -> T_a S | a\nS0 -> T_a S | a\nT_a -> a", result.CNF)
	assert.Equal(t, []string{"a", "aa", "aaa"}, result.SourceSample.Strings)
	assert.Equal(t, []string{"a", "aa", "aaa"}, result.CNFSample.Strings)
	assert.Empty(t, result.OnlyInSource)
	assert.Len(t, result.Caveats, 1)
}

func TestCheckSummary(t *testing.T) {
	path := writeTemp(t, "g.txt", "S -> a S | a")
	report := filepath.Join(t.TempDir(), "report.txt")

	out, err := execute(t, "check", "--min", "1", "--max", "3", "-o", report, path)
	require.NoError(t, err)
	assert.Contains(t, out, "GRAMMAR")
	assert.Contains(t, out, "TRUNCATED")
	assert.Contains(t, out, "status: samples are EQUIVALENT\n")
	assert.Contains(t, out, "no differences found\n")
	assert.Contains(t, out, "caveats:\n- equal samples do not prove")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== SOURCE GRAMMAR ===\nS -> a S | a\n")
	assert.Contains(t, string(data), "Range: 1 - 3\n")
}

func TestCheckReportError(t *testing.T) {
	path := writeTemp(t, "g.txt", "S -> a")
	report := filepath.Join(t.TempDir(), "missing", "report.txt")
	_, err := execute(t, "check", "-o", report, path)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "creating report")
}

func TestEnv(t *testing.T) {
	out, err := execute(t, "env")
	require.NoError(t, err)
	for _, name := range []string{"CFG_DEBUG", "CFG_STEP_BUDGET", "CFG_DIFF_LIMIT", "CFG_MIN_LEN", "CFG_MAX_LEN"} {
		assert.Contains(t, out, name)
	}
}
