package schema

import "sort"

// Field pairs an object field name with its validator.
type Field struct {
	Name   string
	Schema Schema
}

// Object returns a validator for a structured record with a fixed field
// set. Fields decode in declaration order; keys not declared as fields
// are dropped from the decoded output. A missing field is an error unless
// its schema is Optional.
func Object(fields ...Field) Schema {
	o := objectSchema{fields: fields, byName: make(map[string]int, len(fields))}
	for i, f := range fields {
		o.byName[f.Name] = i
	}
	return o
}

type objectSchema struct {
	fields []Field
	byName map[string]int
}

func (o objectSchema) decode(value any, path string, lenient bool) (any, Issues) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, singleIssue(path, CodeInvalidType, "expected object, got %s", typeName(value))
	}

	out := make(map[string]any, len(o.fields))
	var issues Issues
	for _, f := range o.fields {
		fp := fieldPath(path, f.Name)
		v, present := m[f.Name]
		if !present {
			if isOptional(f.Schema) {
				continue
			}
			issues = append(issues, Issue{Path: fp, Code: CodeRequired, Message: "missing required field"})
			continue
		}
		decoded, fieldIssues := f.Schema.decode(v, fp, lenient)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		out[f.Name] = decoded
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// Record returns a validator for maps with arbitrary string keys whose
// values all decode with value. The decoded result is a map[string]any.
func Record(value Schema) Schema { return recordSchema{value: value} }

type recordSchema struct {
	value Schema
}

func (r recordSchema) decode(value any, path string, lenient bool) (any, Issues) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, singleIssue(path, CodeInvalidType, "expected object, got %s", typeName(value))
	}

	// Sort keys so issue order is stable across runs.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(m))
	var issues Issues
	for _, k := range keys {
		decoded, valIssues := r.value.decode(m[k], fieldPath(path, k), lenient)
		if len(valIssues) > 0 {
			issues = append(issues, valIssues...)
			continue
		}
		out[k] = decoded
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}
