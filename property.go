package escher

import (
	"encoding/binary"
)

// PropertyID identifies a shape property. The lower 14 bits are the property
// number, bit 14 indicates that the value refers to a picture, and bit 15
// indicates that the value is stored as a complex payload.
type PropertyID uint16

const (
	propertyNumberMask  = 0x3FFF
	propertyBlipIDFlag  = 0x4000
	propertyComplexFlag = 0x8000
)

// MakePropertyID combines a property number and flags into a PropertyID.
func MakePropertyID(number uint16, blipID, complex bool) PropertyID {
	id := PropertyID(number & propertyNumberMask)
	if blipID {
		id |= propertyBlipIDFlag
	}
	if complex {
		id |= propertyComplexFlag
	}
	return id
}

// Number returns the property number.
func (id PropertyID) Number() uint16 {
	return uint16(id) & propertyNumberMask
}

// IsBlipID returns whether the value of the property refers to a picture.
func (id PropertyID) IsBlipID() bool {
	return id&propertyBlipIDFlag != 0
}

// IsComplex returns whether the value of the property is stored as a complex
// payload.
func (id PropertyID) IsComplex() bool {
	return id&propertyComplexFlag != 0
}

// Name returns the name of the property number, or "unknown".
func (id PropertyID) Name() string {
	return PropertyMetaOf(id.Number()).Name
}

////////////////////////////////////////////////////////////////

// Property is a single shape property. The set of property types is closed;
// every implementation is a pointer to one of the types defined in this
// package.
type Property interface {
	// PropID returns the identity of the property.
	PropID() PropertyID
}

// SimpleProperty is a property with a 32-bit value.
type SimpleProperty struct {
	ID    PropertyID
	Value int32
}

func (p *SimpleProperty) PropID() PropertyID { return p.ID }

// BoolProperty is a property containing a set of boolean flags.
type BoolProperty struct {
	ID    PropertyID
	Value int32
}

func (p *BoolProperty) PropID() PropertyID { return p.ID }

// IsTrue returns whether the value is non-zero.
func (p *BoolProperty) IsTrue() bool { return p.Value != 0 }

// RGBProperty is a property containing a color.
type RGBProperty struct {
	ID    PropertyID
	Value int32
}

func (p *RGBProperty) PropID() PropertyID { return p.ID }

// Red returns the red component of the color.
func (p *RGBProperty) Red() byte { return byte(p.Value) }

// Green returns the green component of the color.
func (p *RGBProperty) Green() byte { return byte(p.Value >> 8) }

// Blue returns the blue component of the color.
func (p *RGBProperty) Blue() byte { return byte(p.Value >> 16) }

// Values of a ShapePathProperty.
const (
	ShapePathLines        int32 = 0
	ShapePathLinesClosed  int32 = 1
	ShapePathCurves       int32 = 2
	ShapePathCurvesClosed int32 = 3
	ShapePathComplex      int32 = 4
)

// ShapePathProperty is a property indicating the kind of path of a shape.
type ShapePathProperty struct {
	ID    PropertyID
	Value int32
}

func (p *ShapePathProperty) PropID() PropertyID { return p.ID }

// ComplexProperty is a property with a variable-length payload.
type ComplexProperty struct {
	ID   PropertyID
	Data []byte
}

func (p *ComplexProperty) PropID() PropertyID { return p.ID }

////////////////////////////////////////////////////////////////

// ArrayHeaderSize is the size of the header that begins the payload of an
// array property.
const ArrayHeaderSize = 6

// ArrayProperty is a complex property whose payload is a table of
// fixed-size elements. The payload begins with a 6-byte header holding the
// number of elements, the number of elements reserved in memory, and the
// encoded size of each element.
type ArrayProperty struct {
	ID PropertyID

	// Data is the payload, including the array header.
	Data []byte

	// SizeIncludesHeader is whether the payload length stored in the
	// property header counts the array header. Some writers exclude it.
	SizeIncludesHeader bool

	// EmptyComplexPart is whether the property was declared with an empty
	// payload.
	EmptyComplexPart bool
}

// NewArrayProperty returns an array property with the given payload. If data
// is empty, the property gets a zeroed array header and is marked as having
// an empty payload.
func NewArrayProperty(id PropertyID, data []byte) *ArrayProperty {
	p := &ArrayProperty{ID: id, Data: data, SizeIncludesHeader: true}
	if len(data) == 0 {
		p.Data = make([]byte, ArrayHeaderSize)
		p.EmptyComplexPart = true
	}
	return p
}

func (p *ArrayProperty) PropID() PropertyID { return p.ID }

// ElementSize decodes the size of an element from its encoded form. A
// negative code c encodes a size of (-c)>>2 bytes; otherwise the code is the
// size itself.
func ElementSize(code int16) int {
	if code < 0 {
		return int(int16(-int32(code) >> 2))
	}
	return int(code)
}

func (p *ArrayProperty) headerUint16(i int) uint16 {
	if p.EmptyComplexPart || len(p.Data) < i+2 {
		return 0
	}
	return binary.LittleEndian.Uint16(p.Data[i:])
}

// ensureHeader grows Data to hold at least the array header.
func (p *ArrayProperty) ensureHeader() {
	if len(p.Data) < ArrayHeaderSize {
		b := make([]byte, ArrayHeaderSize)
		copy(b, p.Data)
		p.Data = b
	}
	p.EmptyComplexPart = false
}

// resize sets the length of Data to n, keeping the first keep bytes.
func (p *ArrayProperty) resize(n, keep int) {
	if n == len(p.Data) {
		return
	}
	b := make([]byte, n)
	if keep > len(p.Data) {
		keep = len(p.Data)
	}
	copy(b[:keep], p.Data)
	p.Data = b
}

// NumElements returns the number of elements in the array.
func (p *ArrayProperty) NumElements() int {
	return int(p.headerUint16(0))
}

// SetNumElements sets the number of elements in the array, growing or
// shrinking the payload to fit. Existing content is kept where it fits.
func (p *ArrayProperty) SetNumElements(n int) {
	p.ensureHeader()
	size := n*ElementSize(p.SizeOfElements()) + ArrayHeaderSize
	p.resize(size, size)
	binary.LittleEndian.PutUint16(p.Data[0:], uint16(n))
}

// NumElementsInMemory returns the number of elements reserved in memory.
func (p *ArrayProperty) NumElementsInMemory() int {
	return int(p.headerUint16(2))
}

// SetNumElementsInMemory sets the number of elements reserved in memory.
func (p *ArrayProperty) SetNumElementsInMemory(n int) {
	p.ensureHeader()
	binary.LittleEndian.PutUint16(p.Data[2:], uint16(n))
}

// SizeOfElements returns the encoded size of each element. Use ElementSize
// to decode it.
func (p *ArrayProperty) SizeOfElements() int16 {
	return int16(p.headerUint16(4))
}

// SetSizeOfElements sets the encoded size of each element. If the payload
// no longer fits the elements, it is reallocated, keeping only the array
// header.
func (p *ArrayProperty) SetSizeOfElements(code int16) {
	p.ensureHeader()
	binary.LittleEndian.PutUint16(p.Data[4:], uint16(code))
	size := p.NumElements()*ElementSize(code) + ArrayHeaderSize
	p.resize(size, ArrayHeaderSize)
}

// Element returns a copy of the element at index i, or nil if the element
// is outside of the payload.
func (p *ArrayProperty) Element(i int) []byte {
	size := ElementSize(p.SizeOfElements())
	start := ArrayHeaderSize + i*size
	if i < 0 || size <= 0 || start+size > len(p.Data) {
		return nil
	}
	e := make([]byte, size)
	copy(e, p.Data[start:start+size])
	return e
}

// SetElement copies element into the element at index i. Returns false if
// the element is outside of the payload, in which case nothing is copied.
func (p *ArrayProperty) SetElement(i int, element []byte) bool {
	size := ElementSize(p.SizeOfElements())
	start := ArrayHeaderSize + i*size
	if i < 0 || size <= 0 || start+size > len(p.Data) {
		return false
	}
	copy(p.Data[start:start+size], element)
	return true
}

// Elements returns a copy of each element in the array.
func (p *ArrayProperty) Elements() [][]byte {
	n := p.NumElements()
	elements := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		e := p.Element(i)
		if e == nil {
			break
		}
		elements = append(elements, e)
	}
	return elements
}

////////////////////////////////////////////////////////////////

// PropertyType indicates how the value of a property is interpreted.
type PropertyType byte

const (
	TypeUnknown   PropertyType = 0
	TypeBool      PropertyType = 1
	TypeRGB       PropertyType = 2
	TypeShapePath PropertyType = 3
	TypeSimple    PropertyType = 4
	TypeArray     PropertyType = 5
)

func (t PropertyType) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypeBool:
		return "Bool"
	case TypeRGB:
		return "RGB"
	case TypeShapePath:
		return "ShapePath"
	case TypeSimple:
		return "Simple"
	case TypeArray:
		return "Array"
	}
	return "Invalid"
}

// PropertyMeta describes a property number.
type PropertyMeta struct {
	// Name is a readable name of the property.
	Name string

	// Type indicates how the value is interpreted.
	Type PropertyType
}

// PropertyMetaOf returns the metadata of a property number. Unknown numbers
// return a PropertyMeta with the name "unknown" and TypeUnknown.
func PropertyMetaOf(number uint16) PropertyMeta {
	if meta, ok := propertyTable[number]; ok {
		return meta
	}
	return PropertyMeta{Name: "unknown", Type: TypeUnknown}
}

// PropertyTypeOf returns the type of a property number.
func PropertyTypeOf(number uint16) PropertyType {
	return propertyTable[number].Type
}

// NewProperty returns a property of the type appropriate for id according
// to the metadata table, holding value. Complex ids produce a ComplexProperty
// or ArrayProperty with a zeroed payload of value bytes.
func NewProperty(id PropertyID, value int32) Property {
	size := int(value)
	if size < 0 {
		size = 0
	}
	switch PropertyTypeOf(id.Number()) {
	case TypeBool:
		return &BoolProperty{ID: id, Value: value}
	case TypeRGB:
		return &RGBProperty{ID: id, Value: value}
	case TypeShapePath:
		return &ShapePathProperty{ID: id, Value: value}
	case TypeArray:
		if id.IsComplex() {
			return NewArrayProperty(id, make([]byte, size))
		}
	default:
		if id.IsComplex() {
			return &ComplexProperty{ID: id, Data: make([]byte, size)}
		}
	}
	return &SimpleProperty{ID: id, Value: value}
}
