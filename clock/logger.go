package clock

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger = zap.NewNop()
)

// SetLogger routes timer diagnostics to l. The package logs nothing by
// default; passing nil restores that.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger = l
}

func logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}
