package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// The TUI owns the terminal, so all logging goes to a file.
var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Runs automatically on import: a logger in the current directory as a
// fallback until Initialize points it somewhere better.
func init() {
	f, err := os.OpenFile("debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Swallow log output rather than break the TUI.
		Logger = log.New(io.Discard)
		return
	}
	logFile = f
	Logger = newLogger(f)
}

func newLogger(f *os.File) *log.Logger {
	l := log.New(f)
	l.SetPrefix("nota")
	l.SetReportTimestamp(true)
	l.SetLevel(log.DebugLevel)
	return l
}

// Initialize reinitializes the logger to write to debug.log in the given
// directory.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Error("failed to open log file", "path", logPath, "err", err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f)
	Logger.Debug("logger initialized", "path", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
