package expr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jaspeen/pebble/eval"
)

// memberKind discriminates the two accessor flavours a cache entry can hold.
type memberKind int

const (
	methodMember memberKind = iota
	fieldMember
)

// member is an immutable descriptor of a resolved accessor on one concrete
// host type. It is created once by findMember and shared through the member
// cache across concurrent renders.
type member struct {
	kind memberKind
	// name is the declared Go name, kept for diagnostics.
	name string
	// methodIndex addresses the method in the host type's method set.
	methodIndex int
	// fieldIndex addresses the field in the (dereferenced) host struct.
	fieldIndex []int
}

// findMember searches a host type for an accessor satisfying the naming
// convention and the supplied argument shapes. Method candidates are tried
// in order: get<Name>, is<Name>, has<Name>, then a method named exactly like
// the attribute; all name matching is case-insensitive. Only when no
// arguments were supplied is an exported field considered, last. The first
// compatible candidate wins; no most-specific tie-break is attempted, so
// templates may rely on enumeration order.
func findMember(typ reflect.Type, name string, args []any) *member {
	if name == "" {
		return nil
	}

	argTypes := make([]reflect.Type, len(args))
	for i, a := range args {
		if a != nil {
			argTypes[i] = reflect.TypeOf(a)
		}
	}

	capitalized := strings.ToUpper(name[:1]) + name[1:]
	for _, candidate := range []string{"get" + capitalized, "is" + capitalized, "has" + capitalized, name} {
		if m := findMethod(typ, candidate, argTypes); m != nil {
			return m
		}
	}

	if len(args) == 0 {
		return findField(typ, name)
	}
	return nil
}

// findMethod scans the type's method set for a compatible candidate. This is
// more relaxed than an exact-signature lookup: names compare
// case-insensitively and parameters only need to be able to accept the
// argument shapes.
func findMethod(typ reflect.Type, name string, argTypes []reflect.Type) *member {
	for i := 0; i < typ.NumMethod(); i++ {
		mt := typ.Method(i)
		if !strings.EqualFold(mt.Name, name) {
			continue
		}
		ft := mt.Type
		if ft.IsVariadic() {
			continue
		}
		// NumIn counts the receiver.
		if ft.NumIn()-1 != len(argTypes) {
			continue
		}
		compatible := true
		for j, at := range argTypes {
			if !paramCompatible(ft.In(j+1), at) {
				compatible = false
				break
			}
		}
		if compatible {
			return &member{kind: methodMember, name: mt.Name, methodIndex: mt.Index}
		}
	}
	return nil
}

// findField resolves an exported field on the (possibly pointed-to) struct.
// The match is case-insensitive so that template-side `user.name` finds the
// Go field `Name`, consistent with method matching.
func findField(typ reflect.Type, name string) *member {
	st := typ
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil
	}
	f, ok := st.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) })
	if !ok || f.PkgPath != "" {
		return nil
	}
	return &member{kind: fieldMember, name: f.Name, fieldIndex: f.Index}
}

// invoke calls the resolved member against a host value. Failures are never
// reinterpreted as "attribute not found": a panicking accessor, an accessor
// returning a non-nil error, and reflection-level call errors all surface as
// *eval.InvocationError.
func (m *member) invoke(host any, args []any, src eval.Source) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &eval.InvocationError{
				TypeName: reflect.TypeOf(host).String(),
				Member:   m.name,
				Source:   src,
				Err:      fmt.Errorf("%v", r),
			}
		}
	}()

	hv := reflect.ValueOf(host)
	if m.kind == fieldMember {
		for hv.Kind() == reflect.Pointer {
			hv = hv.Elem()
		}
		return hv.FieldByIndex(m.fieldIndex).Interface(), nil
	}

	fn := hv.Method(m.methodIndex)
	ft := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := ft.In(i)
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			av = av.Convert(pt)
		}
		in[i] = av
	}
	return unpackResults(host, m.name, src, fn.Call(in))
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// unpackResults maps a reflective call result onto the single value the
// resolver returns. A trailing error return is the Go spelling of "the
// accessor throws" and propagates as an invocation failure.
func unpackResults(host any, name string, src eval.Source, out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errType) {
		if !last.IsNil() {
			return nil, &eval.InvocationError{
				TypeName: reflect.TypeOf(host).String(),
				Member:   name,
				Source:   src,
				Err:      last.Interface().(error),
			}
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return nil, nil
		}
	}
	return out[0].Interface(), nil
}
