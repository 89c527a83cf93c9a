package mado

// Logger is the generic logging interface. It explicitly avoids including
// Fatal and Fatalf because of the relative brutal nature of os.Exit
// without a chance to clean up.
//
// In general tracing should be preferred to logging, however logging can
// always be valuable.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
}

// logger should never "fatal", warnings are either
// info or error, warning is not actionable enough
type NoopLogger struct{}

func (nl NoopLogger) Debug(...interface{})          {}
func (nl NoopLogger) Debugf(string, ...interface{}) {}
func (nl NoopLogger) Info(...interface{})           {}
func (nl NoopLogger) Infof(string, ...interface{})  {}
func (nl NoopLogger) Warn(...interface{})           {}
func (nl NoopLogger) Warnf(string, ...interface{})  {}
func (nl NoopLogger) Error(...interface{})          {}
func (nl NoopLogger) Errorf(string, ...interface{}) {}
