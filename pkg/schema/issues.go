package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Code classifies a decode failure.
type Code string

const (
	CodeInvalidType    Code = "invalid_type"
	CodeRequired       Code = "required"
	CodeInvalidLiteral Code = "invalid_literal"
	CodeInvalidFormat  Code = "invalid_format"
	CodeInvalidUnion   Code = "invalid_union"
	CodeTooShort       Code = "too_short"
	CodeTooLong        Code = "too_long"
	CodeOutOfRange     Code = "out_of_range"
)

// Issue describes a single decode failure at a specific location.
// Path is empty for the root value, otherwise a dotted/indexed path
// such as "items[2].name".
type Issue struct {
	Path    string `json:"path"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %s", i.Code, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Path, i.Code, i.Message)
}

// Issues is the error type returned by Decode. The order is stable:
// object fields report in declaration order, array elements in index
// order.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, len(is))
	for n, i := range is {
		parts[n] = i.String()
	}
	return strings.Join(parts, "; ")
}

func singleIssue(path string, code Code, format string, args ...any) Issues {
	return Issues{{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}}
}

// fieldPath appends an object field to a path.
func fieldPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

// indexPath appends an array index to a path.
func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// typeName renders a decode input's type for error messages.
func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
