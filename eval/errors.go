package eval

import "fmt"

// Source identifies the template position an expression node was parsed
// from. It is carried on errors for diagnostics only.
type Source struct {
	File string
	Line int
}

func (s Source) String() string {
	if s.File == "" {
		return fmt.Sprintf("line %d", s.Line)
	}
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// RootAttributeNotFoundError reports a strict-mode attribute access on a
// null target. Root is true when the target was a bare top-level variable;
// otherwise the null came out of an earlier step of a chained lookup and
// Attribute names the attribute that was being accessed.
type RootAttributeNotFoundError struct {
	Attribute string
	Root      bool
	Source    Source
}

func (e *RootAttributeNotFoundError) Error() string {
	if e.Root {
		return fmt.Sprintf("%s: root attribute [%s] does not exist or can not be accessed and strict variables is set to true", e.Source, e.Attribute)
	}
	return fmt.Sprintf("%s: attempt to get attribute [%s] of null value and strict variables is set to true", e.Source, e.Attribute)
}

// AttributeNotFoundError reports a strict-mode access on a non-null target
// where no resolution strategy matched, or a sequence index out of range.
type AttributeNotFoundError struct {
	Attribute string
	TypeName  string
	// OutOfBounds marks the sequence-index case.
	OutOfBounds bool
	Source      Source
}

func (e *AttributeNotFoundError) Error() string {
	if e.OutOfBounds {
		return fmt.Sprintf("%s: index [%s] out of bounds for %s and strict variables is set to true", e.Source, e.Attribute, e.TypeName)
	}
	return fmt.Sprintf("%s: attribute [%s] of %s does not exist or can not be accessed and strict variables is set to true", e.Source, e.Attribute, e.TypeName)
}

// KeyCoercionError reports a numeric map key that could not be cast to the
// map's key shape.
type KeyCoercionError struct {
	Key     any
	KeyType string
	Source  Source
}

func (e *KeyCoercionError) Error() string {
	return fmt.Sprintf("%s: key type %s is not supported for numeric key %v", e.Source, e.KeyType, e.Key)
}

// InvocationError reports a resolved accessor that failed: it returned a
// non-nil error, panicked, or the invocation machinery itself errored. It is
// never reinterpreted as "attribute not found".
type InvocationError struct {
	TypeName string
	Member   string
	Source   Source
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: invoking [%s] on %s: %v", e.Source, e.Member, e.TypeName, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
