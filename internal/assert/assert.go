// Package assert holds argument preconditions shared by the public packages.
// I keep it to checks that return errors; nothing here panics.
package assert

import (
	"errors"
	"reflect"
)

// ErrNilArgument is the marker for a required argument that was nil.
var ErrNilArgument = errors.New("argument must not be nil")

// NilArgumentError names the argument that failed a NotNil check and unwraps to ErrNilArgument.
type NilArgumentError struct {
	Field string
}

func (e *NilArgumentError) Error() string { return e.Field + ": " + ErrNilArgument.Error() }
func (e *NilArgumentError) Unwrap() error { return ErrNilArgument }

// NotNil returns a *NilArgumentError when value is nil.
// Typed nils (nil slice, nil func, nil pointer stored in an interface) count as nil too.
func NotNil(field string, value any) error {
	if isNil(value) {
		return &NilArgumentError{Field: field}
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
