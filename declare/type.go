package declare

import (
	"encoding/binary"
	"strings"

	"github.com/officefmt/escher"
	"golang.org/x/text/encoding/unicode"
)

// Type indicates the kind of escher.Property produced by a Property
// declaration.
type Type byte

// String returns a string representation of the type. If the type is not
// valid, then the returned value will be "Invalid".
func (t Type) String() string {
	s, ok := typeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}

const (
	_ Type = iota
	Simple
	Bool
	RGB
	ShapePath
	Complex
	Text
	Array
	Blip
)

// TypeFromString returns a Type from its string representation. Type(0) is
// returned if the string does not represent an existing Type.
func TypeFromString(s string) Type {
	s = strings.ToLower(s)
	for typ, str := range typeStrings {
		if s == strings.ToLower(str) {
			return typ
		}
	}
	return 0
}

var typeStrings = map[Type]string{
	Simple:    "Simple",
	Bool:      "Bool",
	RGB:       "RGB",
	ShapePath: "ShapePath",
	Complex:   "Complex",
	Text:      "Text",
	Array:     "Array",
	Blip:      "Blip",
}

func normInt32(v interface{}) int32 {
	switch v := v.(type) {
	case int:
		return int32(v)
	case uint:
		return int32(v)
	case uint8:
		return int32(v)
	case uint16:
		return int32(v)
	case uint32:
		return int32(v)
	case uint64:
		return int32(v)
	case int8:
		return int32(v)
	case int16:
		return int32(v)
	case int32:
		return v
	case int64:
		return int32(v)
	case float32:
		return int32(v)
	case float64:
		return int32(v)
	}
	return 0
}

func normUint32(v interface{}) uint32 {
	return uint32(normInt32(v))
}

func normInt16(v interface{}) int16 {
	return int16(normInt32(v))
}

func normUint16(v interface{}) uint16 {
	return uint16(normInt32(v))
}

func normBytes(v interface{}) []byte {
	switch v := v.(type) {
	case []byte:
		b := make([]byte, len(v))
		copy(b, v)
		return b
	case string:
		return []byte(v)
	}
	return nil
}

// encodeText encodes s as null-terminated UTF-16LE, the encoding of string
// properties.
func encodeText(s string) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte{0, 0}
	}
	return append(b, 0, 0)
}

// encodeArray builds an array payload from an element size and a list of
// elements. Each element is a []byte, or a number that is written as a
// little-endian integer of the element size.
func encodeArray(size int16, elements []interface{}) []byte {
	n := escher.ElementSize(size)
	data := make([]byte, escher.ArrayHeaderSize+len(elements)*n)
	binary.LittleEndian.PutUint16(data[0:], uint16(len(elements)))
	binary.LittleEndian.PutUint16(data[2:], uint16(len(elements)))
	binary.LittleEndian.PutUint16(data[4:], uint16(size))
	for i, e := range elements {
		b := data[escher.ArrayHeaderSize+i*n:][:n]
		switch e := e.(type) {
		case []byte:
			copy(b, e)
		default:
			var num [4]byte
			binary.LittleEndian.PutUint32(num[:], normUint32(e))
			copy(b, num[:])
		}
	}
	return data
}

// value returns the escher.Property of the type, from the given property
// number and values. Blip values that name a picture are resolved through
// pics.
func (t Type) value(number uint16, pics map[string]int, v []interface{}) escher.Property {
	if len(v) == 1 {
		if p, ok := v[0].(escher.Property); ok {
			return p
		}
	}

	var first interface{}
	if len(v) > 0 {
		first = v[0]
	}

	switch t {
	case Simple:
		return &escher.SimpleProperty{ID: escher.MakePropertyID(number, false, false), Value: normInt32(first)}
	case Bool:
		return &escher.BoolProperty{ID: escher.MakePropertyID(number, false, false), Value: normInt32(first)}
	case RGB:
		id := escher.MakePropertyID(number, false, false)
		if len(v) == 3 {
			r, g, b := normInt32(v[0])&0xFF, normInt32(v[1])&0xFF, normInt32(v[2])&0xFF
			return &escher.RGBProperty{ID: id, Value: r | g<<8 | b<<16}
		}
		return &escher.RGBProperty{ID: id, Value: normInt32(first)}
	case ShapePath:
		return &escher.ShapePathProperty{ID: escher.MakePropertyID(number, false, false), Value: normInt32(first)}
	case Complex:
		return &escher.ComplexProperty{ID: escher.MakePropertyID(number, false, true), Data: normBytes(first)}
	case Text:
		s, _ := first.(string)
		return &escher.ComplexProperty{ID: escher.MakePropertyID(number, false, true), Data: encodeText(s)}
	case Array:
		id := escher.MakePropertyID(number, false, true)
		switch first := first.(type) {
		case nil:
			return escher.NewArrayProperty(id, nil)
		case []byte:
			return escher.NewArrayProperty(id, normBytes(first))
		}
		return escher.NewArrayProperty(id, encodeArray(normInt16(first), v[1:]))
	case Blip:
		id := escher.MakePropertyID(number, true, false)
		switch first := first.(type) {
		case string:
			return &escher.SimpleProperty{ID: id, Value: int32(pics[first])}
		case Ref:
			return &escher.SimpleProperty{ID: id, Value: int32(pics[string(first)])}
		}
		return &escher.SimpleProperty{ID: id, Value: normInt32(first)}
	}
	return nil
}
