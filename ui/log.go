package ui

import (
	"io"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const TimeFormat = "15:04:05.000"

func init() {
	SetOutput(defaultOutput())
}

func defaultOutput() io.Writer {
	return colorable.NewColorableStdout()
}

// SetOutput points the global logger at a console writer on w.
func SetOutput(w io.Writer) {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
	})
}

// SetLoglevel accepts trace, debug, info, warn, error, fatal, panic or disabled.
func SetLoglevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Logger returns the global logger. zerolog event methods need a pointer receiver.
func Logger() *zerolog.Logger {
	return &zlog.Logger
}
