package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ava12/cfg/internal/logutil"
)

var (
	// Set via CFG_DEBUG in the environment, "2" or "trace" enables TRACE records
	Debug bool
	// Trace level logging
	Trace bool
	// Set via CFG_STEP_BUDGET in the environment, 0 means generator default
	StepBudget int
	// Set via CFG_DIFF_LIMIT in the environment
	DiffLimit int
	// Set via CFG_MIN_LEN in the environment
	MinLen int
	// Set via CFG_MAX_LEN in the environment
	MaxLen int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"CFG_DEBUG":       {"CFG_DEBUG", Debug, "Show additional debug information (e.g. CFG_DEBUG=1, CFG_DEBUG=trace)"},
		"CFG_STEP_BUDGET": {"CFG_STEP_BUDGET", StepBudget, "Maximum number of generator expansions (default 50000)"},
		"CFG_DIFF_LIMIT":  {"CFG_DIFF_LIMIT", DiffLimit, "Number of differing strings shown per side (default 10)"},
		"CFG_MIN_LEN":     {"CFG_MIN_LEN", MinLen, "Default minimal string length (default 1)"},
		"CFG_MAX_LEN":     {"CFG_MAX_LEN", MaxLen, "Default maximal string length (default 5)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// LogLevel returns slog level matching CFG_DEBUG.
func LogLevel() slog.Level {
	switch {
	case Trace:
		return logutil.LevelTrace
	case Debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug, Trace = false, false
	if debug := clean("CFG_DEBUG"); debug != "" {
		switch strings.ToLower(debug) {
		case "2", "trace":
			Debug, Trace = true, true
		default:
			d, err := strconv.ParseBool(debug)
			Debug = err != nil || d
		}
	}

	StepBudget = intVar("CFG_STEP_BUDGET", 0, 0)
	DiffLimit = intVar("CFG_DIFF_LIMIT", 10, 0)
	MinLen = intVar("CFG_MIN_LEN", 1, 0)
	MaxLen = intVar("CFG_MAX_LEN", 5, 0)
}

func intVar(key string, defaultValue, lowest int) int {
	s := clean(key)
	if s == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < lowest {
		slog.Error("invalid setting, using default", "key", key, "value", s, "default", defaultValue)
		return defaultValue
	}
	return n
}
