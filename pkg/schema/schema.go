// Package schema provides small, composable runtime validators.
//
// A Schema decodes an untyped value (typically the result of a JSON
// unmarshal into any) into a validated, normalized Go value. Validators
// are built from primitive constructors (String, Number, Bool, BigInt,
// Date, UUID, Decimal) and combinators (Literal, Array, Record, Object,
// Union, Optional, Nullable, MinLen/MaxLen, Min/Max).
//
// Decoding never panics. Failures are reported as Issues, a stable-ordered
// list of path/code/message entries, so callers can enumerate exactly
// which fields failed and why.
//
// Two decode modes exist: Decode applies strict type checking, while
// DecodeLenient first coerces common scalar mismatches (numeric strings,
// stringified booleans, date strings) before validating.
package schema

// Schema validates and decodes a single value.
//
// Implementations are immutable and safe for concurrent use. The decode
// method is unexported on purpose: the set of validator shapes is closed,
// and external packages compose schemas through the constructors instead
// of implementing new ones.
type Schema interface {
	decode(value any, path string, lenient bool) (any, Issues)
}

// Decode validates value against s and returns the decoded result.
// On failure the returned error is an Issues value.
func Decode(s Schema, value any) (any, error) {
	out, issues := s.decode(value, "", false)
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// DecodeLenient is Decode with scalar pre-coercion: numeric strings,
// stringified booleans, and date/time strings are converted to the
// expected type before validation where the conversion is unambiguous.
func DecodeLenient(s Schema, value any) (any, error) {
	out, issues := s.decode(value, "", true)
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}
