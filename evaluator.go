package props

// SanitizeContext carries the inputs available to a sanitize expression.
type SanitizeContext struct {
	Raw     any            // raw stored input for the leaf
	Default any            // the leaf's authored default, when known
	Path    string         // encoded pointer to the leaf, when known
	Args    map[string]any // caller-supplied extras
}

func (ctx SanitizeContext) withDefaultArgs() SanitizeContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

// Evaluator executes sanitize expressions against a context. Implementations
// exist for expr-lang (NewExprEvaluator), CEL (NewCELEvaluator), and goja
// (NewJSEvaluator, behind the js_eval build tag).
type Evaluator interface {
	Evaluate(ctx SanitizeContext, expression string) (any, error)
	Compile(expression string, opts ...CompileOption) (CompiledRule, error)
}

// CompileOption reserves room for per-compilation settings.
type CompileOption func(*compileConfig)

type compileConfig struct{}

// CompiledRule is a reusable, pre-compiled sanitize expression.
type CompiledRule interface {
	Evaluate(ctx SanitizeContext) (any, error)
	Expression() string
}
