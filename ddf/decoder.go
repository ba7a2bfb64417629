package ddf

import (
	"encoding/binary"
	"fmt"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/errors"
)

// DefaultMaxDepth is the container nesting depth allowed by a Decoder whose
// MaxDepth is zero.
const DefaultMaxDepth = 256

// Decoder decodes records from a byte buffer.
type Decoder struct {
	// Factory creates records from headers. If nil, DefaultFactory is used.
	Factory Factory

	// MaxDepth is the maximum nesting depth of containers. If zero,
	// DefaultMaxDepth is used.
	MaxDepth int
}

func (d Decoder) factory() Factory {
	if d.Factory == nil {
		return DefaultFactory{}
	}
	return d.Factory
}

func (d Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

// readHeader reads the header at offset. The header must fit in data.
func readHeader(data []byte, offset int) escher.Header {
	return escher.Header{
		Options:  binary.LittleEndian.Uint16(data[offset:]),
		RecordID: binary.LittleEndian.Uint16(data[offset+2:]),
		Length:   binary.LittleEndian.Uint32(data[offset+4:]),
	}
}

// frame is a container whose children are being decoded.
type frame struct {
	rec      escher.Parent
	header   escher.Header
	offset   int
	end      int
	pos      int
	children []escher.Record
}

// DecodeRecord decodes the record at offset within data, along with all of
// its descendants. n is the number of bytes consumed.
//
// Conditions that do not prevent a tree from being produced, such as a
// container that runs past the end of data, are returned as warnings in warn.
// Such a tree is complete up to the point where data ended.
func (d Decoder) DecodeRecord(data []byte, offset int) (rec escher.Record, n int, warn, err error) {
	var warns errors.Errors
	rec, top, n, err := d.begin(data, offset, &warns)
	if err != nil {
		return nil, 0, warns.Return(), err
	}
	if top == nil {
		return rec, n, warns.Return(), nil
	}

	maxDepth := d.maxDepth()
	stack := []*frame{top}
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		if top.pos < top.end && top.pos+escher.HeaderSize <= len(data) {
			child, f, cn, err := d.begin(data, top.pos, &warns)
			if err != nil {
				return nil, 0, warns.Return(), err
			}
			top.children = append(top.children, child)
			if f == nil {
				top.pos += cn
				continue
			}
			if len(stack) >= maxDepth {
				return nil, 0, warns.Return(), RecordError{
					RecordID: f.header.RecordID,
					Offset:   int64(f.offset),
					Cause:    fmt.Errorf("%w: limit is %d", ErrTooDeep, maxDepth),
				}
			}
			stack = append(stack, f)
			continue
		}

		// Finish container.
		if missing := top.end - top.pos; missing > 0 {
			if c, ok := top.rec.(*escher.Container); ok {
				c.TruncatedBytes = missing
			}
			warns = append(warns, RecordError{
				RecordID: top.header.RecordID,
				Offset:   int64(top.offset),
				Cause:    fmt.Errorf("%w: %d of %d bytes missing", ErrTruncatedContainer, missing, top.header.Length),
			})
		}
		top.rec.SetChildRecords(top.children)
		n = top.pos - top.offset
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1].pos += n
		}
	}
	return rec, n, warns.Return(), nil
}

// Decode decodes consecutive records from data until the end of data is
// reached.
func (d Decoder) Decode(data []byte) (recs []escher.Record, warn, err error) {
	for offset := 0; offset < len(data); {
		rec, n, w, err := d.DecodeRecord(data, offset)
		warn = errors.Union(warn, w)
		if err != nil {
			return recs, warn, err
		}
		recs = append(recs, rec)
		offset += n
	}
	return recs, warn, nil
}

// begin creates the record at offset. If the record holds children, a frame
// is returned to decode them. Otherwise, the record is decoded completely
// and the number of bytes consumed is returned.
func (d Decoder) begin(data []byte, offset int, warns *errors.Errors) (rec escher.Record, f *frame, n int, err error) {
	if offset < 0 || offset+escher.HeaderSize > len(data) {
		return nil, nil, 0, DataError{Offset: int64(offset), Cause: ErrTruncated}
	}
	h := readHeader(data, offset)
	rec, err = d.factory().Create(data, offset)
	if err != nil {
		return nil, nil, 0, RecordError{RecordID: h.RecordID, Offset: int64(offset), Cause: err}
	}
	*rec.Head() = escher.Base{Options: h.Options, ID: h.RecordID}

	switch r := rec.(type) {
	case *escher.Container:
		return r, newFrame(r, h, offset, len(data), false), 0, nil
	case *escher.Unknown:
		if r.IsContainer() {
			return r, newFrame(r, h, offset, len(data), true), 0, nil
		}
	}

	n, err = d.fill(rec, h, data, offset, warns)
	if err != nil {
		return nil, nil, 0, RecordError{RecordID: h.RecordID, Offset: int64(offset), Cause: err}
	}
	return rec, nil, n, nil
}

func newFrame(rec escher.Parent, h escher.Header, offset, size int, clamp bool) *frame {
	f := &frame{
		rec:    rec,
		header: h,
		offset: offset,
		end:    offset + escher.HeaderSize + int(h.Length),
		pos:    offset + escher.HeaderSize,
	}
	if clamp && f.end > size {
		f.end = size
	}
	return f
}
