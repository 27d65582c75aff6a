package schema

// Literal returns a validator accepting exactly the given string values.
// The decoded result is the matched string.
func Literal(values ...string) Schema {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return literalSchema{values: values, set: set}
}

type literalSchema struct {
	values []string
	set    map[string]struct{}
}

func (l literalSchema) decode(value any, path string, lenient bool) (any, Issues) {
	s, ok := value.(string)
	if !ok && lenient {
		s, ok = coerceString(value)
	}
	if !ok {
		return nil, singleIssue(path, CodeInvalidType, "expected one of %q, got %s", l.values, typeName(value))
	}
	if _, ok := l.set[s]; !ok {
		return nil, singleIssue(path, CodeInvalidLiteral, "%q is not one of %q", s, l.values)
	}
	return s, nil
}
