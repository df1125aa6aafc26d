package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger for the job portal API.
// Init must run before any request is served.
var Log *slog.Logger

func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("service", "go-jobportal-api")
}
