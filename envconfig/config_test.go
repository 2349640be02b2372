package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/cfg/internal/logutil"
)

func TestDebug(t *testing.T) {
	t.Setenv("CFG_DEBUG", "")
	LoadConfig()
	require.False(t, Debug)
	require.Equal(t, slog.LevelInfo, LogLevel())

	t.Setenv("CFG_DEBUG", "false")
	LoadConfig()
	require.False(t, Debug)

	t.Setenv("CFG_DEBUG", "1")
	LoadConfig()
	require.True(t, Debug)
	require.False(t, Trace)
	require.Equal(t, slog.LevelDebug, LogLevel())

	t.Setenv("CFG_DEBUG", "yes please")
	LoadConfig()
	require.True(t, Debug)

	t.Setenv("CFG_DEBUG", "'trace'")
	LoadConfig()
	require.True(t, Trace)
	require.Equal(t, logutil.LevelTrace, LogLevel())
}

func TestIntVars(t *testing.T) {
	cases := map[string]struct {
		value  string
		expect int
	}{
		"empty":    {"", 10},
		"valid":    {"25", 25},
		"zero":     {"0", 0},
		"quoted":   {"\" 7 \"", 7},
		"negative": {"-3", 10},
		"garbage":  {"ten", 10},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CFG_DIFF_LIMIT", c.value)
			LoadConfig()
			assert.Equal(t, c.expect, DiffLimit)
		})
	}
}

func TestDefaults(t *testing.T) {
	for _, k := range []string{"CFG_DEBUG", "CFG_STEP_BUDGET", "CFG_DIFF_LIMIT", "CFG_MIN_LEN", "CFG_MAX_LEN"} {
		t.Setenv(k, "")
	}
	LoadConfig()

	assert.Equal(t, 0, StepBudget)
	assert.Equal(t, 10, DiffLimit)
	assert.Equal(t, 1, MinLen)
	assert.Equal(t, 5, MaxLen)

	vals := Values()
	assert.Len(t, vals, len(AsMap()))
	assert.Equal(t, "5", vals["CFG_MAX_LEN"])
}
