package tabler

import (
	"math"
	"reflect"
)

// Attr is a single markup attribute.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list. Order is kept so rendering is
// byte-stable.
type Attrs []Attr

// Get returns the value of the first attribute named key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of key, or appends it when absent.
func (a Attrs) Set(key string, value any) Attrs {
	for i, attr := range a {
		if attr.Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// AttrsFunc derives the attributes shared by every cell of a column.
type AttrsFunc func(col Column) Attrs

// ColumnAttrs is the default attribute builder: width and class. Falsy
// values are returned as-is and dropped when the tag is built.
func ColumnAttrs(col Column) Attrs {
	return Attrs{
		{Key: "width", Value: col.Width},
		{Key: "class", Value: col.ClassName},
	}
}

// Truthy reports whether an attribute value should be emitted. nil, empty
// strings, false, numeric zero and NaN are falsy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() != 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}
