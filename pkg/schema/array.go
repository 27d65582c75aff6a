package schema

import "reflect"

// Array returns a validator for homogeneous arrays, decoding every
// element with elem. The decoded result is a []any.
func Array(elem Schema) Schema { return arraySchema{elem: elem} }

type arraySchema struct {
	elem Schema
}

func (a arraySchema) decode(value any, path string, lenient bool) (any, Issues) {
	items, ok := asSlice(value)
	if !ok {
		return nil, singleIssue(path, CodeInvalidType, "expected array, got %s", typeName(value))
	}

	out := make([]any, 0, len(items))
	var issues Issues
	for i, item := range items {
		decoded, elemIssues := a.elem.decode(item, indexPath(path, i), lenient)
		if len(elemIssues) > 0 {
			issues = append(issues, elemIssues...)
			continue
		}
		out = append(out, decoded)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// asSlice flattens any slice or array value into []any. Typed slices
// such as []string show up when schemas decode native Go values rather
// than unmarshaled JSON.
func asSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is a scalar blob, not an array of numbers.
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
