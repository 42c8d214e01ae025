// Package hclpath compiles attribute paths such as `server.ports[0].name`
// into chains of attribute-access expression nodes. The grammar is HCL's
// absolute traversal syntax, which covers dotted attributes and bracketed
// string or number indices.
package hclpath

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/jaspeen/pebble/eval"
	"github.com/jaspeen/pebble/expr"
)

// Parse compiles a path into an expression chain rooted at a
// context-variable lookup. filename is carried onto every node for
// diagnostics.
func Parse(path, filename string) (expr.Expression, error) {
	trav, diags := hclsyntax.ParseTraversalAbs([]byte(path), filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing path %q: %w", path, diags)
	}

	var node expr.Expression
	for _, step := range trav {
		src := eval.Source{File: filename, Line: step.SourceRange().Start.Line}
		switch s := step.(type) {
		case hcl.TraverseRoot:
			node = expr.NewContextVariable(s.Name, src)
		case hcl.TraverseAttr:
			node = expr.NewGetAttribute(node, expr.NewLiteral(s.Name, src), src)
		case hcl.TraverseIndex:
			key, err := indexKey(s.Key)
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", path, err)
			}
			node = expr.NewGetAttribute(node, expr.NewLiteral(key, src), src)
		default:
			return nil, fmt.Errorf("path %q: unsupported traversal step %T", path, step)
		}
	}
	if node == nil {
		return nil, fmt.Errorf("parsing path %q: empty traversal", path)
	}
	return node, nil
}

// indexKey converts a traversal index key from its cty form into the native
// value the resolver expects: int64 for whole numbers, float64 otherwise,
// string for string keys.
func indexKey(v cty.Value) (any, error) {
	switch {
	case v.Type().Equals(cty.Number):
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case v.Type().Equals(cty.String):
		return v.AsString(), nil
	}
	return nil, fmt.Errorf("unsupported index key type %s", v.Type().FriendlyName())
}
