package props

// Diagnostic describes a recoverable data problem observed while deriving.
type Diagnostic struct {
	Op  string // derivation that observed the problem
	Key string // offending stored key, when applicable
	Err error
}

// DiagnosticLogger records diagnostics emitted by derivations.
type DiagnosticLogger interface {
	LogDiagnostic(Diagnostic)
}

// DiagnosticLoggerFunc adapts a function to DiagnosticLogger.
type DiagnosticLoggerFunc func(Diagnostic)

// LogDiagnostic implements DiagnosticLogger.
func (f DiagnosticLoggerFunc) LogDiagnostic(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

type noopDiagnosticLogger struct{}

func (noopDiagnosticLogger) LogDiagnostic(Diagnostic) {}
