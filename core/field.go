package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType tells which member of a Field carries its value.
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field is a structured key=value pair attached to an Entry.
type Field struct {
	Key   string
	Type  FieldType
	Int64 int64
	Str   string
	Any   interface{}
}

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Int64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	var i int64
	if val {
		i = 1
	}
	return Field{Key: key, Type: BoolType, Int64: i}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Int64: int64(val)}
}

// Error creates an error field keyed "error". A nil error yields an empty value.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Type: ErrorType}
	}
	return Field{Key: "error", Type: ErrorType, Str: err.Error()}
}

// Any creates a field holding an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: AnyType, Any: val}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case DurationType:
		return time.Duration(f.Int64).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
