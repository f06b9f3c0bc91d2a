package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "", "json")

	assert.Equal(t, "info", Logger.GetLevel().String())
	assert.Equal(t, "info", zlog.Logger.GetLevel().String())

	Logger.Debug().Msg("debug-should-not-print")
	Logger.Info().Msg("hello")

	out := buf.String()
	assert.NotContains(t, out, "debug-should-not-print")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "expected json, got %q", out)
	assert.Contains(t, out, `"session":"`+SessionID+`"`)
}

func TestInitWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "not-a-level", "json")

	assert.Equal(t, "info", Logger.GetLevel().String())
}

func TestInitWithWriter_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", "console")

	Logger.Debug().Msg("console-line")

	out := buf.String()
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "expected console output, got %q", out)
	assert.Contains(t, out, "console-line")
}

func TestInitFile_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "userlist.log")

	closer, err := InitFile(path, "info", "json")
	require.NoError(t, err)
	Logger.Info().Msg("written-to-file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written-to-file")
}

func TestSessionIDStableAcrossInits(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", "json")
	first := SessionID

	InitWithWriter(&buf, "info", "console")

	assert.NotEmpty(t, first)
	assert.Equal(t, first, SessionID)
}
