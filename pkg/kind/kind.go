// Package kind provides type descriptors for "is instance of"
// checks. A Kind is supplied explicitly by the caller, either
// from a type parameter or by name through a Registry.
package kind

import (
	"errors"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Kind describes a Go type that values and errors can be
// matched against.
type Kind struct {
	t    reflect.Type
	name string
}

// Of returns the Kind for T. Interface types are allowed, so
// Of[error]() matches every error.
func Of[T any]() Kind {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return Kind{t: t, name: typeName(t)}
}

// Named returns a Kind for t that renders as name.
func Named(name string, t reflect.Type) Kind {
	if name == "" && t != nil {
		name = typeName(t)
	}
	return Kind{t: t, name: name}
}

// Name returns the display name of the kind.
func (k Kind) Name() string {
	return k.name
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if k.t == nil {
		return "<invalid kind>"
	}
	return k.name
}

// Type returns the underlying reflect.Type, or nil for the
// zero Kind.
func (k Kind) Type() reflect.Type {
	return k.t
}

// IsZero reports whether k describes no type.
func (k Kind) IsZero() bool {
	return k.t == nil
}

// Matches reports whether v is an instance of k. A nil value,
// typed or not, is never an instance of anything. Errors also
// match when any error in their wrap chain does.
func (k Kind) Matches(v any) bool {
	if k.t == nil || IsNil(v) {
		return false
	}

	if reflect.TypeOf(v).AssignableTo(k.t) {
		return true
	}

	err, ok := v.(error)
	if !ok {
		return false
	}
	if k.t.Kind() != reflect.Interface && !k.t.Implements(errorType) {
		return false
	}

	target := reflect.New(k.t)
	return errors.As(err, target.Interface())
}

// IsNil reports whether v is nil or a nil pointer, map, slice,
// func, channel or interface held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// typeName renders a type the way callers spell it: the bare
// name for named types, the literal form otherwise.
func typeName(t reflect.Type) string {
	switch {
	case t.Name() != "":
		return t.Name()
	case t.Kind() == reflect.Pointer && t.Elem().Name() != "":
		return "*" + t.Elem().Name()
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return "any"
	default:
		return t.String()
	}
}
