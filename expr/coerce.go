package expr

import (
	"reflect"

	"github.com/jaspeen/pebble/eval"
)

// isNumericKind reports whether a kind participates in relaxed numeric
// matching. Go has no boxed primitives; treating all numeric kinds as
// mutually compatible is the equivalent widening, with the actual conversion
// performed at invocation time.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// paramCompatible reports whether a declared parameter type can accept an
// argument of the given runtime type. A nil argument type (the argument
// value was nil) is compatible with any parameter; the zero value is
// supplied at invocation for kinds that cannot hold nil.
func paramCompatible(param, arg reflect.Type) bool {
	if arg == nil {
		return true
	}
	if arg.AssignableTo(param) {
		return true
	}
	return isNumericKind(param.Kind()) && isNumericKind(arg.Kind())
}

// coerceKey casts a numeric lookup key to a map's key shape. Only the
// numeric shapes template expressions produce are supported; any other
// target shape is a hard failure rather than a silent miss, so that a typo
// in the data model surfaces instead of rendering as null.
func coerceKey(key reflect.Value, target reflect.Type, src eval.Source) (reflect.Value, error) {
	switch target.Kind() {
	case reflect.Int64, reflect.Int, reflect.Int32, reflect.Int16, reflect.Uint8,
		reflect.Float64, reflect.Float32:
		return key.Convert(target), nil
	}
	return reflect.Value{}, &eval.KeyCoercionError{Key: key.Interface(), KeyType: target.String(), Source: src}
}
