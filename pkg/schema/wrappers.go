package schema

import "unicode/utf8"

// Optional marks a schema as omittable within an Object. A missing field
// whose schema is optional is skipped instead of reported as required.
// Outside an Object, Optional is transparent.
func Optional(s Schema) Schema { return optionalSchema{inner: s} }

type optionalSchema struct {
	inner Schema
}

func (o optionalSchema) decode(value any, path string, lenient bool) (any, Issues) {
	return o.inner.decode(value, path, lenient)
}

// isOptional reports whether s tolerates field absence.
func isOptional(s Schema) bool {
	_, ok := s.(optionalSchema)
	return ok
}

// Nullable returns a schema accepting explicit null in addition to the
// inner schema's values. Null decodes to nil.
func Nullable(s Schema) Schema { return nullableSchema{inner: s} }

type nullableSchema struct {
	inner Schema
}

func (n nullableSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if value == nil {
		return nil, nil
	}
	return n.inner.decode(value, path, lenient)
}

// MinLen bounds the minimum length, in runes, of a string-decoding schema.
func MinLen(s Schema, n int) Schema { return lengthSchema{inner: s, min: n, max: -1} }

// MaxLen bounds the maximum length, in runes, of a string-decoding schema.
func MaxLen(s Schema, n int) Schema { return lengthSchema{inner: s, min: -1, max: n} }

type lengthSchema struct {
	inner    Schema
	min, max int
}

func (l lengthSchema) decode(value any, path string, lenient bool) (any, Issues) {
	out, issues := l.inner.decode(value, path, lenient)
	if len(issues) > 0 {
		return nil, issues
	}
	s, ok := out.(string)
	if !ok {
		// Bound applies to string results only; other shapes pass through.
		return out, nil
	}
	n := utf8.RuneCountInString(s)
	if l.min >= 0 && n < l.min {
		return nil, singleIssue(path, CodeTooShort, "length %d is below minimum %d", n, l.min)
	}
	if l.max >= 0 && n > l.max {
		return nil, singleIssue(path, CodeTooLong, "length %d exceeds maximum %d", n, l.max)
	}
	return s, nil
}

// Min bounds the minimum of a number-decoding schema, inclusive.
func Min(s Schema, min float64) Schema {
	return rangeSchema{inner: s, min: &min}
}

// Max bounds the maximum of a number-decoding schema, inclusive.
func Max(s Schema, max float64) Schema {
	return rangeSchema{inner: s, max: &max}
}

type rangeSchema struct {
	inner    Schema
	min, max *float64
}

func (r rangeSchema) decode(value any, path string, lenient bool) (any, Issues) {
	out, issues := r.inner.decode(value, path, lenient)
	if len(issues) > 0 {
		return nil, issues
	}
	f, ok := out.(float64)
	if !ok {
		return out, nil
	}
	if r.min != nil && f < *r.min {
		return nil, singleIssue(path, CodeOutOfRange, "%v is below minimum %v", f, *r.min)
	}
	if r.max != nil && f > *r.max {
		return nil, singleIssue(path, CodeOutOfRange, "%v exceeds maximum %v", f, *r.max)
	}
	return f, nil
}
