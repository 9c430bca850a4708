package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New builds the process logger. Callers put it into a context with log.WithContext.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "assetlist",
	}), nil
}
