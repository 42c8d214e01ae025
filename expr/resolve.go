package expr

import (
	"reflect"
	"strconv"

	"github.com/jaspeen/pebble/eval"
)

// resolvedAttribute is the outcome of a successful resolution strategy: a
// deferred accessor for the attribute value. Absence is modelled as a nil
// pointer so the strategy precedence chain composes without sentinel values.
type resolvedAttribute struct {
	get func() (any, error)
}

func resolvedValue(v any) *resolvedAttribute {
	return &resolvedAttribute{get: func() (any, error) { return v, nil }}
}

// resolveMap handles association containers. A value of map kind always
// yields a resolution, possibly of nil: a missing key renders as null even
// under strict variables, exactly like a null map entry would.
func (e *GetAttributeExpression) resolveMap(host any, rawName any) *resolvedAttribute {
	hv := reflect.ValueOf(host)
	if hv.Kind() != reflect.Map {
		return nil
	}
	return &resolvedAttribute{get: func() (any, error) { return e.mapLookup(hv, rawName) }}
}

func (e *GetAttributeExpression) mapLookup(hv reflect.Value, rawName any) (any, error) {
	if hv.Len() == 0 || rawName == nil {
		return nil, nil
	}

	key := reflect.ValueOf(rawName)
	if isNumericKind(key.Kind()) {
		keyType := hv.Type().Key()
		if keyType.Kind() == reflect.Interface {
			// The map erases its key shape; sample an existing entry to
			// learn the dynamic one.
			it := hv.MapRange()
			it.Next()
			if sampled := it.Key().Elem(); sampled.IsValid() {
				keyType = sampled.Type()
			}
		}
		coerced, err := coerceKey(key, keyType, e.src)
		if err != nil {
			return nil, err
		}
		key = coerced
	}

	if !key.Type().AssignableTo(hv.Type().Key()) {
		// A key of an incompatible shape can never be present.
		return nil, nil
	}
	v := hv.MapIndex(key)
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// resolveArray indexes fixed-size sequences.
func (e *GetAttributeExpression) resolveArray(host any, name string, strict bool) (*resolvedAttribute, error) {
	hv := reflect.ValueOf(host)
	if hv.Kind() != reflect.Array {
		return nil, nil
	}
	return e.resolveIndex(hv, name, strict)
}

// resolveSlice indexes variable-size sequences.
func (e *GetAttributeExpression) resolveSlice(host any, name string, strict bool) (*resolvedAttribute, error) {
	hv := reflect.ValueOf(host)
	if hv.Kind() != reflect.Slice {
		return nil, nil
	}
	return e.resolveIndex(hv, name, strict)
}

// resolveIndex parses the attribute name as a base-10 index. A name that is
// not an integer declines silently so member resolution can still have a go
// at it. An out-of-range index (negative included) is null in lenient mode
// and a hard failure under strict variables.
func (e *GetAttributeExpression) resolveIndex(hv reflect.Value, name string, strict bool) (*resolvedAttribute, error) {
	index, err := strconv.Atoi(name)
	if err != nil {
		return nil, nil
	}
	if index < 0 || index >= hv.Len() {
		if strict {
			return nil, &eval.AttributeNotFoundError{
				Attribute:   name,
				TypeName:    hv.Type().String(),
				OutOfBounds: true,
				Source:      e.src,
			}
		}
		return resolvedValue(nil), nil
	}
	elem := hv.Index(index)
	return &resolvedAttribute{get: func() (any, error) { return elem.Interface(), nil }}, nil
}
