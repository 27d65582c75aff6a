package schema

import "sync"

// JSONValue returns the shallow JSON value validator: a union of string,
// number, boolean, null, object, and array, where nested object values
// and array elements are accepted as-is. This is the default for
// json-kind columns; it checks the top-level shape without walking the
// whole structure.
func JSONValue() Schema {
	return Union(String(), Number(), Bool(), Null(), Record(Any()), Array(Any()))
}

// JSONValueDeep returns the strict, fully recursive JSON value validator:
// nested objects and arrays are validated all the way down. Opt-in for
// callers who need complete structural validation of json columns.
func JSONValueDeep() Schema {
	l := &lazySchema{}
	l.build = func() Schema {
		return Union(String(), Number(), Bool(), Null(), Record(l), Array(l))
	}
	return l
}

// lazySchema defers construction so a schema can reference itself.
type lazySchema struct {
	build func() Schema
	once  sync.Once
	inner Schema
}

func (l *lazySchema) decode(value any, path string, lenient bool) (any, Issues) {
	l.once.Do(func() { l.inner = l.build() })
	return l.inner.decode(value, path, lenient)
}
