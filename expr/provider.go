package expr

// DynamicAttributeProvider lets a host value take over attribute resolution
// for itself. A providing value is consulted before any other strategy and
// bypasses the member cache entirely: providers are assumed cheap and their
// answers may depend on per-call state.
type DynamicAttributeProvider interface {
	// CanProvideDynamicAttribute reports whether the value can produce the
	// named attribute. The name is the raw evaluated name expression, not
	// its string form.
	CanProvideDynamicAttribute(name any) bool
	// GetDynamicAttribute produces the named attribute. args holds the
	// evaluated call arguments in order, empty when none were supplied.
	GetDynamicAttribute(name any, args []any) (any, error)
}
