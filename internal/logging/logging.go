package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout used in log lines.
const TimeFormat = "2006-01-02 15:04:05"

// New returns a logger that writes "<timestamp> - <LEVEL> - <message>"
// lines to w.
func New(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("- %s -", strings.ToUpper(fmt.Sprintf("%v", i)))
		},
	}
	return zerolog.New(cw).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// OpenFile opens the log file for writing, truncating any previous run's
// content. The caller owns the handle and must keep it open until the final
// success or error line has been emitted.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
}
