package engine

import "go.uber.org/zap"

// NewLogger returns a production zap logger, or a no-op logger if
// construction fails (stdout is gone, permissions, etc.). Callers are
// never expected to handle a nil logger.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
