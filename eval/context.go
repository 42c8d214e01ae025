// Package eval holds the per-render evaluation state shared by all
// expression nodes: the variable scope chain, the strict-variables policy
// and the error types resolution can produce.
package eval

import "log/slog"

// Context carries the state of a single render. It is not safe for
// concurrent use; concurrent renders of the same compiled template each get
// their own Context.
type Context struct {
	scope  *scope
	strict bool
	logger *slog.Logger
}

// scope is one frame of the variable chain. Lookups walk outward; writes
// always land in the innermost frame.
type scope struct {
	vars   map[string]any
	parent *scope
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithStrictVariables controls whether missing or null attribute access is a
// hard failure rather than a null result.
func WithStrictVariables(strict bool) Option {
	return func(c *Context) { c.strict = strict }
}

// WithLogger sets the logger used for debug-level resolution tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// NewContext builds a lenient context over the given root variables. The map
// is used directly, not copied.
func NewContext(vars map[string]any, opts ...Option) *Context {
	if vars == nil {
		vars = map[string]any{}
	}
	c := &Context{
		scope:  &scope{vars: vars},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StrictVariables reports whether missing/null attribute access fails hard.
func (c *Context) StrictVariables() bool {
	return c.strict
}

// Logger returns the logger attached to this render.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Get resolves a variable name against the scope chain, innermost first.
func (c *Context) Get(name string) (any, bool) {
	for s := c.scope; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set defines or replaces a variable in the innermost scope.
func (c *Context) Set(name string, value any) {
	c.scope.vars[name] = value
}

// PushScope opens a new local scope. Variables defined until the matching
// PopScope shadow outer definitions of the same name.
func (c *Context) PushScope() {
	c.scope = &scope{vars: map[string]any{}, parent: c.scope}
}

// PopScope discards the innermost scope. Popping the root scope is a
// programming error in the surrounding engine and panics.
func (c *Context) PopScope() {
	if c.scope.parent == nil {
		panic("eval: PopScope on root scope")
	}
	c.scope = c.scope.parent
}
