package expr

import (
	"fmt"
	"reflect"

	"github.com/jaspeen/pebble/eval"
)

// GetAttributeExpression resolves `target.name` and `target.name(args...)`
// against a runtime value. The node is built once at compile time and
// evaluated many times, possibly concurrently across renders; the only
// mutable state it owns is the member cache, which tolerates that.
type GetAttributeExpression struct {
	target Expression
	name   Expression
	// args is nil when no argument list was parsed. A non-nil empty slice
	// means `target.name()` was written: still a call, so container
	// indexing is skipped, but zero evaluated arguments keep field access
	// in play.
	args []Expression
	src  eval.Source

	members memberCache
}

// NewGetAttribute builds a plain attribute access without call arguments.
func NewGetAttribute(target, name Expression, src eval.Source) *GetAttributeExpression {
	return &GetAttributeExpression{target: target, name: name, src: src}
}

// NewGetAttributeCall builds an attribute access carrying an explicit
// call-argument list.
func NewGetAttributeCall(target, name Expression, args []Expression, src eval.Source) *GetAttributeExpression {
	if args == nil {
		args = []Expression{}
	}
	return &GetAttributeExpression{target: target, name: name, args: args, src: src}
}

// Target returns the target child expression.
func (e *GetAttributeExpression) Target() Expression { return e.target }

// NameExpression returns the attribute-name child expression.
func (e *GetAttributeExpression) NameExpression() Expression { return e.name }

// Args returns the call-argument child expressions, nil when the access was
// written without an argument list.
func (e *GetAttributeExpression) Args() []Expression { return e.args }

func (e *GetAttributeExpression) Accept(v Visitor) { v.Visit(e) }

func (e *GetAttributeExpression) Source() eval.Source { return e.src }

func (e *GetAttributeExpression) Evaluate(ctx *eval.Context) (any, error) {
	host, err := e.target.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	rawName, err := e.name.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	name := attributeName(rawName)
	args, err := e.evaluateArgs(ctx)
	if err != nil {
		return nil, err
	}

	if isNil(host) {
		if !ctx.StrictVariables() {
			return nil, nil
		}
		if root, ok := e.target.(*ContextVariableExpression); ok {
			return nil, &eval.RootAttributeNotFoundError{Attribute: root.Name(), Root: true, Source: e.src}
		}
		return nil, &eval.RootAttributeNotFoundError{Attribute: name, Source: e.src}
	}

	// A dynamic provider answers before anything else and bypasses the
	// member cache. It receives the raw name value, not its string form.
	if p, ok := host.(DynamicAttributeProvider); ok && p.CanProvideDynamicAttribute(rawName) {
		v, err := p.GetDynamicAttribute(rawName, args)
		if err != nil {
			return nil, &eval.InvocationError{TypeName: typeName(host), Member: name, Source: e.src, Err: err}
		}
		return v, nil
	}

	var resolved *resolvedAttribute
	if e.args == nil {
		// Containers only make sense to index when no argument list was
		// supplied.
		resolved = e.resolveMap(host, rawName)
		if resolved == nil {
			resolved, err = e.resolveArray(host, name, ctx.StrictVariables())
			if err != nil {
				return nil, err
			}
		}
		if resolved == nil {
			resolved, err = e.resolveSlice(host, name, ctx.StrictVariables())
			if err != nil {
				return nil, err
			}
		}
	}
	if resolved == nil {
		resolved = e.resolveMember(ctx, host, name, args)
	}
	if resolved != nil {
		return resolved.get()
	}

	if ctx.StrictVariables() {
		return nil, &eval.AttributeNotFoundError{Attribute: name, TypeName: typeName(host), Source: e.src}
	}
	return nil, nil
}

// resolveMember runs the convention-based accessor search, memoized per
// (host type, attribute name) in the node's inline cache.
func (e *GetAttributeExpression) resolveMember(ctx *eval.Context, host any, name string, args []any) *resolvedAttribute {
	typ := reflect.TypeOf(host)
	m, ok := e.members.load(typ, name)
	if !ok {
		m = findMember(typ, name, args)
		if m != nil {
			ctx.Logger().Debug("Resolved member by convention search.",
				"type", typ.String(), "attribute", name, "member", m.name)
			e.members.store(typ, name, m)
		}
	}
	if m == nil {
		return nil
	}
	return &resolvedAttribute{get: func() (any, error) { return m.invoke(host, args, e.src) }}
}

// evaluateArgs evaluates call arguments strictly left to right. It returns a
// nil slice when the node carries no argument list at all.
func (e *GetAttributeExpression) evaluateArgs(ctx *eval.Context) ([]any, error) {
	if e.args == nil {
		return nil, nil
	}
	out := make([]any, len(e.args))
	for i, a := range e.args {
		v, err := a.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// attributeName is the string form of an evaluated name expression, used for
// member and field matching.
func attributeName(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

// isNil reports whether a runtime value is null for resolution purposes: a
// nil interface, or a nil pointer/map/slice/func/chan inside one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
