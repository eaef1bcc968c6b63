package logger

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a logger for the given textual level. Unknown levels fall
// back to debug. The logger is constructed once in main and injected into
// every component that needs it.
func New(level string) *Logger {
	return newZapLogger(level)
}
