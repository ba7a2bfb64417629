// The escher package models the Escher drawing-record format, the binary
// format used by legacy office documents to store shapes, groups, shape
// properties and embedded pictures.
//
// An Escher stream is a sequence of records. Every record begins with an
// 8-byte header containing an options field, a record ID, and the length of
// the record body. Container records hold nothing but other records, forming
// a tree. Every record type implements the Record interface. Records that can
// hold children also implement the Parent interface.
//
// Shape properties are held by Opt records as a list of values that implement
// the Property interface. The meaning of each property number is described by
// a static metadata table, which can be queried with PropertyMetaOf.
//
// Trees can be decoded from and encoded to bytes with the "ddf" sub-package.
// Trees can also be created manually, most easily through the "declare"
// sub-package.
package escher

import (
	"fmt"
)

////////////////////////////////////////////////////////////////

// HeaderSize is the size of a record header in bytes.
const HeaderSize = 8

// Header is the raw header that begins every record.
type Header struct {
	// Options packs the instance (upper 12 bits) and version (lower 4 bits)
	// of the record.
	Options uint16

	// RecordID identifies the type of the record.
	RecordID uint16

	// Length is the length of the record body, excluding the header. For a
	// container, this is the combined length of all descendant records.
	Length uint32
}

// Instance returns the instance portion of the options.
func (h Header) Instance() uint16 {
	return h.Options >> 4
}

// Version returns the version portion of the options.
func (h Header) Version() uint16 {
	return h.Options & 0x000F
}

// IsContainer returns whether the header describes a container record.
func (h Header) IsContainer() bool {
	return IsContainer(h.Options, h.RecordID)
}

func (h Header) String() string {
	return fmt.Sprintf("[0x%04X,0x%04X,%d]", h.Options, h.RecordID, h.Length)
}

////////////////////////////////////////////////////////////////

// Record is a single Escher record. The set of record types is closed; every
// implementation is a pointer to one of the types defined in this package.
type Record interface {
	// Head returns the fields common to all records.
	Head() *Base

	// Name returns a readable name for the type of the record.
	Name() string
}

// Parent is implemented by records that can contain child records.
type Parent interface {
	Record

	// ChildRecords returns the children of the record.
	ChildRecords() []Record

	// SetChildRecords replaces the children of the record.
	SetChildRecords(children []Record)
}

// Base holds the options and record ID common to all records.
type Base struct {
	// Options packs the instance (upper 12 bits) and version (lower 4 bits)
	// of the record.
	Options uint16

	// ID identifies the type of the record.
	ID uint16
}

// Head returns b.
func (b *Base) Head() *Base {
	return b
}

// Instance returns the instance portion of the options.
func (b *Base) Instance() uint16 {
	return b.Options >> 4
}

// SetInstance sets the instance portion of the options. Only the lower 12
// bits of v are used.
func (b *Base) SetInstance(v uint16) {
	b.Options = b.Options&0x000F | v<<4
}

// Version returns the version portion of the options.
func (b *Base) Version() uint16 {
	return b.Options & 0x000F
}

// SetVersion sets the version portion of the options. Only the lower 4 bits
// of v are used.
func (b *Base) SetVersion(v uint16) {
	b.Options = b.Options&0xFFF0 | v&0x000F
}

// IsContainer returns whether the options mark the record as a container.
// Note that this checks only the version nibble; use the IsContainer function
// to apply the full detection rule.
func (b *Base) IsContainer() bool {
	return b.Options&0x000F == 0x000F
}

////////////////////////////////////////////////////////////////

// Rect is a rectangle given by two corners.
type Rect struct {
	X1, Y1, X2, Y2 int32
}

// Size is a width and height.
type Size struct {
	Width, Height int32
}
