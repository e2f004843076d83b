package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv(VerboseEnv, "")
	require.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))

	t.Setenv(VerboseEnv, "1")
	require.Equal(t, zerolog.DebugLevel, ParseLevel("error"))
}

func TestNewLoggerWithWriter(t *testing.T) {
	t.Setenv(VerboseEnv, "")
	var buf bytes.Buffer
	log := NewLoggerWithWriter("info", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("user", "u1").Msg("login ok")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "login ok")
	require.Contains(t, out, "user=u1")
}
