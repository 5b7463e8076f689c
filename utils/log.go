package utils

import (
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/voxelsplace/islands/tilemap"
)

var (
	logger = log.New(os.Stderr, "[islandtool] ", log.LstdFlags)
	debug  atomic.Bool
)

// SetupLogging points the tool logger at w. At level "debug" traversal
// diagnostics are forwarded as well.
func SetupLogging(w io.Writer, level string) {
	logger.SetOutput(w)
	debug.Store(level == "debug")
	if level == "debug" {
		tilemap.SetLogger(logDebug)
	} else {
		tilemap.SetLogger(nil)
	}
}

func logInfo(format string, args ...any) {
	logger.Printf("[INFO] "+format, args...)
}

func logDebug(format string, args ...any) {
	if debug.Load() {
		logger.Printf("[DEBUG] "+format, args...)
	}
}
