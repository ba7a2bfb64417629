package ddf

import (
	"encoding/binary"

	"github.com/anaminus/parse"
	"github.com/officefmt/escher"
)

// PropertyHeaderSize is the size of the fixed part of a property.
const PropertyHeaderSize = 6

// DecodeProperties decodes count properties from data, starting at offset.
//
// The fixed 6-byte part of every property comes first, followed by the
// payloads of the complex properties, in the same order. The type of each
// property is chosen from the property metadata table.
func DecodeProperties(data []byte, offset, count int) (props []escher.Property, err error) {
	if count < 0 || offset < 0 {
		return nil, DataError{Offset: int64(offset), Cause: ErrBodySize}
	}
	if offset+count*PropertyHeaderSize > len(data) {
		return nil, DataError{Offset: int64(offset), Cause: ErrTruncated}
	}

	props = make([]escher.Property, count)
	pos := offset
	for i := range props {
		id := escher.PropertyID(binary.LittleEndian.Uint16(data[pos:]))
		value := int32(binary.LittleEndian.Uint32(data[pos+2:]))
		if hasPayload(id) && int64(value) > int64(len(data)) {
			return nil, PropertyError{Index: i, ID: id, Cause: DataError{Offset: int64(pos), Cause: ErrTruncated}}
		}
		props[i] = escher.NewProperty(id, value)
		pos += PropertyHeaderSize
	}

	for i, p := range props {
		n, err := decodePayload(data, pos, p)
		if err != nil {
			return nil, PropertyError{Index: i, ID: p.PropID(), Cause: DataError{Offset: int64(pos), Cause: err}}
		}
		pos += n
	}
	return props, nil
}

// hasPayload returns whether a property with the given ID is followed by a
// payload.
func hasPayload(id escher.PropertyID) bool {
	if !id.IsComplex() {
		return false
	}
	switch escher.PropertyTypeOf(id.Number()) {
	case escher.TypeBool, escher.TypeRGB, escher.TypeShapePath:
		return false
	}
	return true
}

// decodePayload fills the payload of a complex property from data at pos.
// Returns the number of bytes consumed.
func decodePayload(data []byte, pos int, p escher.Property) (n int, err error) {
	switch p := p.(type) {
	case *escher.ComplexProperty:
		if pos+len(p.Data) > len(data) {
			return 0, ErrTruncated
		}
		copy(p.Data, data[pos:])
		return len(p.Data), nil

	case *escher.ArrayProperty:
		if p.EmptyComplexPart {
			p.Data = []byte{}
			return 0, nil
		}
		if pos+escher.ArrayHeaderSize > len(data) {
			return 0, ErrTruncated
		}
		numElements := int(binary.LittleEndian.Uint16(data[pos:]))
		sizeCode := int16(binary.LittleEndian.Uint16(data[pos+4:]))
		if escher.ElementSize(sizeCode)*numElements == len(p.Data) {
			// The declared size excludes the array header.
			p.Data = make([]byte, len(p.Data)+escher.ArrayHeaderSize)
			p.SizeIncludesHeader = false
		}
		if pos+len(p.Data) > len(data) {
			return 0, ErrTruncated
		}
		copy(p.Data, data[pos:])
		return len(p.Data), nil
	}
	return 0, nil
}

// propertyValue returns the value stored in the fixed part of a property.
func propertyValue(p escher.Property) uint32 {
	switch p := p.(type) {
	case *escher.SimpleProperty:
		return uint32(p.Value)
	case *escher.BoolProperty:
		return uint32(p.Value)
	case *escher.RGBProperty:
		return uint32(p.Value)
	case *escher.ShapePathProperty:
		return uint32(p.Value)
	case *escher.ComplexProperty:
		return uint32(len(p.Data))
	case *escher.ArrayProperty:
		n := len(p.Data)
		if !p.SizeIncludesHeader {
			n -= escher.ArrayHeaderSize
		}
		return uint32(n)
	}
	return 0
}

// propertyPayload returns the payload of a complex property, or nil.
func propertyPayload(p escher.Property) []byte {
	switch p := p.(type) {
	case *escher.ComplexProperty:
		return p.Data
	case *escher.ArrayProperty:
		return p.Data
	}
	return nil
}

// PropertySize returns the number of bytes p occupies when written.
func PropertySize(p escher.Property) int {
	return PropertyHeaderSize + len(propertyPayload(p))
}

// encodeProperties writes the fixed parts of props, followed by their
// payloads.
func encodeProperties(fw *parse.BinaryWriter, props []escher.Property) (failed bool) {
	for _, p := range props {
		if fw.Number(uint16(p.PropID())) {
			return true
		}
		if fw.Number(propertyValue(p)) {
			return true
		}
	}
	for _, p := range props {
		if b := propertyPayload(p); len(b) > 0 {
			if fw.Bytes(b) {
				return true
			}
		}
	}
	return false
}
