package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetLoglevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	require.NoError(t, SetLoglevel("debug"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.Error(t, SetLoglevel("loud"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetOutput(t *testing.T) {
	previous := zlog.Logger
	defer func() { zlog.Logger = previous }()

	var buffer bytes.Buffer
	SetOutput(&buffer)
	Logger().Info().Str("algo", "bloom_filter").Msg("hello")
	require.Contains(t, buffer.String(), "hello")
	require.Contains(t, buffer.String(), "bloom_filter")
}

func TestLoggerIsGlobal(t *testing.T) {
	require.Same(t, &zlog.Logger, Logger())
}

func TestDefaultOutputIsStdout(t *testing.T) {
	// colorable only wraps stdout on windows
	if _, ok := defaultOutput().(*os.File); ok {
		require.Equal(t, os.Stdout, defaultOutput())
	}
}
