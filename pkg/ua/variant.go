package ua

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// VariantType represents the payload type of a Variant.
type VariantType uint8

const (
	VariantString VariantType = iota
	VariantInt
	VariantFloat
	VariantBool
	VariantBytes
	VariantDateTime
	// VariantOpaqueXML holds the raw XML text of a value element the
	// core does not decode itself; the external value codec owns it.
	VariantOpaqueXML
)

// Variant is an opaque, typed value payload carried by Variable and
// VariableType nodes. The address space stores and hands it through
// without interpreting it; decoding beyond the basic scalar helpers is
// the concern of the external value codec.
type Variant struct {
	Type VariantType
	Data []byte
}

// Helper constructors for the basic scalar payloads
func StringVariant(s string) Variant {
	return Variant{Type: VariantString, Data: []byte(s)}
}

func IntVariant(i int64) Variant {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(i))
	return Variant{Type: VariantInt, Data: data}
}

func FloatVariant(f float64) Variant {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, math.Float64bits(f))
	return Variant{Type: VariantFloat, Data: data}
}

func BoolVariant(b bool) Variant {
	data := []byte{0}
	if b {
		data[0] = 1
	}
	return Variant{Type: VariantBool, Data: data}
}

func BytesVariant(b []byte) Variant {
	return Variant{Type: VariantBytes, Data: b}
}

func DateTimeVariant(t time.Time) Variant {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(t.Unix()))
	return Variant{Type: VariantDateTime, Data: data}
}

func OpaqueXMLVariant(raw string) Variant {
	return Variant{Type: VariantOpaqueXML, Data: []byte(raw)}
}

// IsEmpty reports whether the variant carries no payload.
func (v Variant) IsEmpty() bool {
	return len(v.Data) == 0
}

// Decode methods
func (v Variant) AsString() (string, error) {
	if v.Type != VariantString && v.Type != VariantOpaqueXML {
		return "", fmt.Errorf("variant is not a string")
	}
	return string(v.Data), nil
}

func (v Variant) AsInt() (int64, error) {
	if v.Type != VariantInt {
		return 0, fmt.Errorf("variant is not an int")
	}
	return int64(binary.LittleEndian.Uint64(v.Data)), nil
}

func (v Variant) AsFloat() (float64, error) {
	if v.Type != VariantFloat {
		return 0, fmt.Errorf("variant is not a float")
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(v.Data)), nil
}

func (v Variant) AsBool() (bool, error) {
	if v.Type != VariantBool {
		return false, fmt.Errorf("variant is not a bool")
	}
	return v.Data[0] == 1, nil
}

func (v Variant) AsDateTime() (time.Time, error) {
	if v.Type != VariantDateTime {
		return time.Time{}, fmt.Errorf("variant is not a datetime")
	}
	return time.Unix(int64(binary.LittleEndian.Uint64(v.Data)), 0), nil
}
