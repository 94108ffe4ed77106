package props

// ExpressionSanitizerOption configures an expression-backed sanitize rule.
type ExpressionSanitizerOption func(*expressionSanitizer)

// SanitizerWithDefault exposes the leaf's default to the expression as
// defaultValue.
func SanitizerWithDefault(defaultValue any) ExpressionSanitizerOption {
	return func(s *expressionSanitizer) {
		s.defaultValue = defaultValue
	}
}

// SanitizerWithPath exposes the leaf's encoded pointer to the expression.
func SanitizerWithPath(path string) ExpressionSanitizerOption {
	return func(s *expressionSanitizer) {
		s.path = path
	}
}

// SanitizerWithLogger records a diagnostic whenever the expression rejects
// input by failing.
func SanitizerWithLogger(logger DiagnosticLogger) ExpressionSanitizerOption {
	return func(s *expressionSanitizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type expressionSanitizer struct {
	defaultValue any
	path         string
	logger       DiagnosticLogger
}

// ExpressionSanitizer compiles expression with evaluator and adapts it to a
// SanitizeFunc. The expression sees the raw input as raw and must return the
// coerced value, or null to reject it. Evaluation errors reject the input
// with one diagnostic; they never surface to the derivation that ran the
// sanitize pass, so a broken rule on one leaf cannot break its siblings.
func ExpressionSanitizer(evaluator Evaluator, expression string, opts ...ExpressionSanitizerOption) (SanitizeFunc, error) {
	if evaluator == nil {
		return nil, wrapEvaluatorError("sanitize", ErrNoEvaluator)
	}
	s := &expressionSanitizer{logger: noopDiagnosticLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	rule, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}
	return func(raw any) (any, bool) {
		value, err := rule.Evaluate(SanitizeContext{
			Raw:     raw,
			Default: s.defaultValue,
			Path:    s.path,
		})
		if err != nil {
			s.logger.LogDiagnostic(Diagnostic{Op: "sanitize", Key: s.path, Err: err})
			return nil, false
		}
		if value == nil {
			return nil, false
		}
		return value, true
	}, nil
}
