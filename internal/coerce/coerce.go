// Package coerce converts loosely typed context key values into the concrete
// types the predicate surface needs.
package coerce

import "reflect"

// Bool reduces value to a truthiness boolean: nil, false, zero numbers, empty
// strings, and empty containers are false; everything else is true.
func Bool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// String extracts a string from value, reporting whether it was one.
func String(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}
