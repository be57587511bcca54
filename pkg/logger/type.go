package logger

type Logger interface {
	// Debugf logs messages at DEBUG level.
	Debugf(format string, args ...interface{})
	// Infof logs messages at INFO level.
	Infof(format string, args ...interface{})
	// Warnf logs messages at WARN level.
	Warnf(format string, args ...interface{})
	// Errorf logs messages at ERROR level.
	Errorf(format string, args ...interface{})
	// Sync flushes any buffered log entries.
	Sync() error
}

var globalLogger Logger = Nop()

// SetDefault 替换全局 logger, 传 nil 恢复成 Nop
func SetDefault(lg Logger) {
	if lg == nil {
		lg = Nop()
	}
	globalLogger = lg
}

func Default() Logger {
	return globalLogger
}

// Debugf logs messages at DEBUG level.
func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

// Infof logs messages at INFO level.
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs messages at WARN level.
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

// Errorf logs messages at ERROR level.
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

// Sync sync
func Sync() error {
	return globalLogger.Sync()
}

type nop struct{}

func Nop() Logger {
	return nop{}
}

func (nop) Debugf(string, ...interface{}) {}
func (nop) Infof(string, ...interface{})  {}
func (nop) Warnf(string, ...interface{})  {}
func (nop) Errorf(string, ...interface{}) {}
func (nop) Sync() error                   { return nil }
