package utils

import "log"

// DebugLogger gates the verbose gateway exchange log behind the debug
// setting, so raw requests and responses are only recorded when an admin
// turned logging on.
type DebugLogger struct {
    enabled bool
    tag     string
}

func NewDebugLogger(enabled bool, tag string) *DebugLogger {
    return &DebugLogger{enabled: enabled, tag: tag}
}

func (l *DebugLogger) Enabled() bool {
    return l != nil && l.enabled
}

func (l *DebugLogger) Printf(format string, args ...interface{}) {
    if !l.Enabled() {
        return
    }
    log.Printf("["+l.tag+"] "+format, args...)
}
