// Package expr implements the runtime attribute-resolution engine: given an
// arbitrary host value and an attribute name (optionally with call
// arguments), it resolves "get the thing named X on this value" against a
// value whose concrete shape is unknown until evaluation time.
//
// Resolution strategies run in a fixed order: a value implementing
// DynamicAttributeProvider answers first; container indexing (maps, then
// fixed-size arrays, then slices) runs next, but only when the access
// carries no call-argument list; finally a convention-based member search
// (get<Name>, is<Name>, has<Name>, a method named like the attribute, then
// an exported field) runs, memoized per (host type, attribute name) in an
// inline cache owned by the expression node.
package expr
