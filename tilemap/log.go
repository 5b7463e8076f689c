package tilemap

import "sync"

var (
	logMu sync.RWMutex
	logf  func(format string, v ...any)
)

// SetLogger routes traversal diagnostics to f. Passing nil mutes them, which
// is also the default.
func SetLogger(f func(format string, v ...any)) {
	logMu.Lock()
	defer logMu.Unlock()
	logf = f
}

func tracef(format string, v ...any) {
	logMu.RLock()
	f := logf
	logMu.RUnlock()
	if f != nil {
		f(format, v...)
	}
}
