//go:build dev
// +build dev

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var out io.Writer = os.Stdout

// Init validates level and keeps w; dev builds log every message regardless of level
func Init(level string, w io.Writer) error {
	if _, err := ParseLevel(level); err != nil {
		return err
	}
	out = w
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

func HandleError(err error) {
	fmt.Fprintf(out, "Dev Mode - Error: %v\n", err)
}

func HandleLog(msg string, args ...any) {
	fmt.Fprintf(out, "Dev Mode - %s %v\n", msg, args)
}

func HandleDebug(msg string, args ...any) {
	fmt.Fprintf(out, "Dev Mode - Debug: %s %v\n", msg, args)
}
