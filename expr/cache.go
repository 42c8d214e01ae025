package expr

import (
	"reflect"
	"sync"
)

// memberCacheKey identifies one resolved member: the host's runtime type
// plus the attribute name as written in the template. reflect.Type values
// are canonical and comparable, so identical host types always collide on
// the same key.
type memberCacheKey struct {
	typ  reflect.Type
	name string
}

// memberCache memoizes convention-based member lookups for a single
// attribute-access node. Many renders may read and populate it concurrently;
// sync.Map gives lock-free reads and atomic insertion. Two racing writers
// may both compute an entry for the same key (last write wins), which is
// harmless because resolution is a pure function of (type, name). Entries
// are never evicted: the cache lives exactly as long as its node, and an
// attribute site sees a small, stable set of host types in practice.
//
// TODO: bound the cache if adversarial templates with highly polymorphic
// call sites ever become a concern.
type memberCache struct {
	entries sync.Map // memberCacheKey -> *member
}

func (c *memberCache) load(typ reflect.Type, name string) (*member, bool) {
	v, ok := c.entries.Load(memberCacheKey{typ: typ, name: name})
	if !ok {
		return nil, false
	}
	return v.(*member), true
}

func (c *memberCache) store(typ reflect.Type, name string, m *member) {
	c.entries.Store(memberCacheKey{typ: typ, name: name}, m)
}
