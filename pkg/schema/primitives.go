package schema

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// String returns a validator accepting string values.
func String() Schema { return stringSchema{} }

type stringSchema struct{}

func (stringSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	if lenient {
		if s, ok := coerceString(value); ok {
			return s, nil
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected string, got %s", typeName(value))
}

// Number returns a validator accepting numeric values, decoded as float64.
func Number() Schema { return numberSchema{} }

type numberSchema struct{}

func (numberSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if f, ok := coerceFloat(value); ok {
		return f, nil
	}
	if lenient {
		if s, ok := value.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, nil
			}
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected number, got %s", typeName(value))
}

// Bool returns a validator accepting boolean values.
func Bool() Schema { return boolSchema{} }

type boolSchema struct{}

func (boolSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	if lenient {
		if s, ok := value.(string); ok {
			if b, err := strconv.ParseBool(s); err == nil {
				return b, nil
			}
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected boolean, got %s", typeName(value))
}

// BigInt returns a validator accepting native big integers, decoded as
// *big.Int. Plain Go integers are accepted and widened.
func BigInt() Schema { return bigIntSchema{} }

type bigIntSchema struct{}

func (bigIntSchema) decode(value any, path string, lenient bool) (any, Issues) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	}
	if lenient {
		if s, ok := value.(string); ok {
			if i, ok := new(big.Int).SetString(s, 10); ok {
				return i, nil
			}
		}
		if f, ok := value.(float64); ok {
			if i, ok := bigIntFromFloat(f); ok {
				return i, nil
			}
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected bigint, got %s", typeName(value))
}

// BigIntNumber returns a validator for big-integer columns whose wire
// encoding is a plain number (backends that surface bigint within the
// float64-safe range). Decodes to *big.Int.
func BigIntNumber() Schema { return bigIntNumberSchema{} }

type bigIntNumberSchema struct{}

func (bigIntNumberSchema) decode(value any, path string, lenient bool) (any, Issues) {
	switch v := value.(type) {
	case float64:
		i, ok := bigIntFromFloat(v)
		if !ok {
			return nil, singleIssue(path, CodeInvalidType, "expected integer number, got %v", v)
		}
		return i, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	}
	if lenient {
		if s, ok := value.(string); ok {
			if i, ok := new(big.Int).SetString(s, 10); ok {
				return i, nil
			}
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected integer number, got %s", typeName(value))
}

// bigIntFromFloat converts an integral float64 to a *big.Int. A plain
// int64 cast saturates past the int64 range, so magnitudes beyond it go
// through big.Float, which holds integral float64 values exactly.
func bigIntFromFloat(v float64) (*big.Int, bool) {
	if math.IsInf(v, 0) || v != math.Trunc(v) {
		return nil, false
	}
	i, _ := new(big.Float).SetFloat64(v).Int(nil)
	return i, true
}

// Date returns a validator accepting time.Time values.
func Date() Schema { return dateSchema{} }

type dateSchema struct{}

func (dateSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if t, ok := value.(time.Time); ok {
		return t, nil
	}
	if lenient {
		if s, ok := value.(string); ok {
			if t, ok := parseDateString(s); ok {
				return t, nil
			}
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected date, got %s", typeName(value))
}

// DateString returns a validator for date/timestamp columns whose wire
// encoding is a string. Accepts RFC 3339 timestamps, "2006-01-02" dates,
// and "2006-01-02 15:04:05" timestamps; decodes to time.Time.
func DateString() Schema { return dateStringSchema{} }

type dateStringSchema struct{}

func (dateStringSchema) decode(value any, path string, lenient bool) (any, Issues) {
	if s, ok := value.(string); ok {
		if t, ok := parseDateString(s); ok {
			return t, nil
		}
		return nil, singleIssue(path, CodeInvalidFormat, "unparseable date string %q", s)
	}
	if lenient {
		if t, ok := value.(time.Time); ok {
			return t, nil
		}
	}
	return nil, singleIssue(path, CodeInvalidType, "expected date string, got %s", typeName(value))
}

// UUID returns a validator for string-encoded UUIDs, decoded as uuid.UUID.
func UUID() Schema { return uuidSchema{} }

type uuidSchema struct{}

func (uuidSchema) decode(value any, path string, lenient bool) (any, Issues) {
	switch v := value.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, singleIssue(path, CodeInvalidFormat, "invalid uuid %q", v)
		}
		return id, nil
	case uuid.UUID:
		return v, nil
	}
	return nil, singleIssue(path, CodeInvalidType, "expected uuid string, got %s", typeName(value))
}

// Decimal returns a validator for arbitrary-precision decimal columns.
// Accepts decimal strings and numbers; decodes to decimal.Decimal.
func Decimal() Schema { return decimalSchema{} }

type decimalSchema struct{}

func (decimalSchema) decode(value any, path string, lenient bool) (any, Issues) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, singleIssue(path, CodeInvalidFormat, "invalid decimal %q", v)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	return nil, singleIssue(path, CodeInvalidType, "expected decimal, got %s", typeName(value))
}

// Any returns a validator accepting every value, including null.
func Any() Schema { return anySchema{} }

type anySchema struct{}

func (anySchema) decode(value any, _ string, _ bool) (any, Issues) {
	return value, nil
}

// Null returns a validator accepting only null.
func Null() Schema { return nullSchema{} }

type nullSchema struct{}

func (nullSchema) decode(value any, path string, _ bool) (any, Issues) {
	if value == nil {
		return nil, nil
	}
	return nil, singleIssue(path, CodeInvalidType, "expected null, got %s", typeName(value))
}

// coerceFloat widens any Go numeric into a float64.
func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// coerceString renders scalar values as strings for lenient decoding.
func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10), true
		}
		return fmt.Sprintf("%g", v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
