//go:build !dev
// +build !dev

package logger

import (
	"io"
	"log/slog"
)

// Init installs the process-wide logger writing text records at level and above to w
func Init(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func HandleError(err error) {
	slog.Error(err.Error())
}

func HandleLog(msg string, args ...any) {
	slog.Info(msg, args...)
}

func HandleDebug(msg string, args ...any) {
	slog.Debug(msg, args...)
}
