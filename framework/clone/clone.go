// Package clone supplies the copy semantics used for non-shared object-valued
// services: Deep for fully independent copies, Shallow for top-level copies
// that still share nested references.
package clone

import (
	"reflect"

	"github.com/mohae/deepcopy"
)

// Deep returns a fully independent copy of v.
func Deep(v any) any {
	return deepcopy.Copy(v)
}

// Shallow returns a top-level copy of v. Maps, slices, arrays and pointers
// get a new top-level container/pointee; nested references are shared with
// the original. Everything else is returned as-is (Go value semantics already
// copy plain structs and scalars on assertion).
func Shallow(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		return cp.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Cap())
		reflect.Copy(cp, rv)
		return cp.Interface()
	case reflect.Array:
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		return cp.Interface()
	case reflect.Ptr:
		if rv.IsNil() {
			return v
		}
		cp := reflect.New(rv.Type().Elem())
		cp.Elem().Set(rv.Elem())
		return cp.Interface()
	default:
		return v
	}
}

// IsObject reports whether v is an object-like value (map, slice, array,
// pointer or struct) — the kinds that get copy-on-resolve semantics when
// registered as a non-shared service.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr, reflect.Struct:
		return true
	default:
		return false
	}
}
