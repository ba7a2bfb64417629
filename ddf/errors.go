package ddf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/officefmt/escher"
)

var (
	// Indicates that the input ended before a header or body was complete.
	ErrTruncated = errors.New("unexpected end of data")
	// Indicates that an exactly-sized body had bytes left over after its
	// fields.
	ErrTrailingBytes = errors.New("unexpected bytes after record fields")
	// Indicates that the length of a body does not fit the layout of the
	// record.
	ErrBodySize = errors.New("invalid body size")
	// Indicates that containers were nested deeper than the decoder allows.
	ErrTooDeep = errors.New("containers nested too deeply")
	// Indicates that a BSE record embeds a record that is not a picture.
	ErrNotBlip = errors.New("embedded record is not a picture")
	// Indicates that a container declared more bytes than the input holds.
	ErrTruncatedContainer = errors.New("container is truncated")
	// Indicates a 4-byte client anchor, whose layout is not known. The body
	// is kept as-is.
	ErrOpaqueAnchor = errors.New("client anchor has opaque 4-byte body")
	// Indicates that a record cannot be written.
	ErrUnsupportedRecord = errors.New("unsupported record type")
)

// DataError wraps an error that occurred while encoding or decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// RecordError indicates an error that occurred within a record.
type RecordError struct {
	// RecordID is the ID of the record.
	RecordID uint16
	// Offset is the byte offset of the record header.
	Offset int64

	Cause error
}

func (err RecordError) Error() string {
	return fmt.Sprintf("%s record (0x%04X) at %d: %s", escher.RecordName(err.RecordID), err.RecordID, err.Offset, err.Cause)
}

func (err RecordError) Unwrap() error {
	return err.Cause
}

// PropertyError indicates an error that occurred within a property.
type PropertyError struct {
	// Index is the position of the property within its list.
	Index int
	// ID is the ID of the property.
	ID escher.PropertyID

	Cause error
}

func (err PropertyError) Error() string {
	return fmt.Sprintf("#%d property %s (0x%04X): %s", err.Index, err.ID.Name(), uint16(err.ID), err.Cause)
}

func (err PropertyError) Unwrap() error {
	return err.Cause
}

// sizeError returns an error indicating a body of the wrong size.
func sizeError(want, got int) error {
	if got > want {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrTrailingBytes, want, got)
	}
	return fmt.Errorf("%w: expected %d bytes, got %d", ErrBodySize, want, got)
}
