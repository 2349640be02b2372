/*
cfgcnf is a console utility converting context-free grammars to Chomsky Normal Form
and comparing samples of source and converted grammars.
Usage is

	cfgcnf convert <file>
	cfgcnf generate [--min N] [--max N] [--budget N] [--cnf] <file>
	cfgcnf compare [--limit N] <file A> <file B>
	cfgcnf check [--min N] [--max N] [--budget N] [--limit N] [-o <report>] [--json] <file>
	cfgcnf env

<file> defines grammar definition file parsable by langdef.Parse(),
sample files for compare contain one string per line.

Defaults are taken from CFG_* environment variables, see cfgcnf env.
*/
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/cfg/envconfig"
	"github.com/ava12/cfg/internal/cli"
	"github.com/ava12/cfg/internal/logutil"
)

func main() {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}
