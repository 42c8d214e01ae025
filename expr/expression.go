package expr

import "github.com/jaspeen/pebble/eval"

// Expression is a compiled expression-tree node. Nodes are immutable after
// construction and a single node may be evaluated concurrently by
// independent renders.
type Expression interface {
	// Evaluate computes the node's value against the given render context.
	Evaluate(ctx *eval.Context) (any, error)
	// Accept lets tree walkers (printers, optimizers) visit the node.
	Accept(v Visitor)
	// Source reports the template position the node was parsed from.
	Source() eval.Source
}

// Visitor is implemented by expression-tree traversal tools.
type Visitor interface {
	Visit(e Expression)
}

// Literal is a constant-valued expression.
type Literal struct {
	value any
	src   eval.Source
}

// NewLiteral builds a constant expression.
func NewLiteral(value any, src eval.Source) *Literal {
	return &Literal{value: value, src: src}
}

// Value returns the constant.
func (l *Literal) Value() any { return l.value }

func (l *Literal) Evaluate(*eval.Context) (any, error) { return l.value, nil }

func (l *Literal) Accept(v Visitor) { v.Visit(l) }

func (l *Literal) Source() eval.Source { return l.src }

// ContextVariableExpression resolves a top-level variable by name. A missing
// variable evaluates to nil at this level; strictness for bare roots is
// enforced by the enclosing attribute access, which needs to know the
// variable's name for its diagnostic.
type ContextVariableExpression struct {
	name string
	src  eval.Source
}

// NewContextVariable builds a top-level variable reference.
func NewContextVariable(name string, src eval.Source) *ContextVariableExpression {
	return &ContextVariableExpression{name: name, src: src}
}

// Name returns the referenced variable name.
func (e *ContextVariableExpression) Name() string { return e.name }

func (e *ContextVariableExpression) Evaluate(ctx *eval.Context) (any, error) {
	v, _ := ctx.Get(e.name)
	return v, nil
}

func (e *ContextVariableExpression) Accept(v Visitor) { v.Visit(e) }

func (e *ContextVariableExpression) Source() eval.Source { return e.src }
