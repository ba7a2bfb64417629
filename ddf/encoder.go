package ddf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/anaminus/parse"
	"github.com/officefmt/escher"
	"github.com/officefmt/escher/errors"
)

// Listener is notified as each record is written.
type Listener interface {
	// BeforeRecord is called before rec is written at offset.
	BeforeRecord(offset int, id uint16, rec escher.Record)

	// AfterRecord is called after rec has been written. offset is the
	// position following the record, and size is the number of bytes
	// written.
	AfterRecord(offset int, id uint16, size int, rec escher.Record)
}

// NullListener is a Listener that does nothing.
type NullListener struct{}

func (NullListener) BeforeRecord(int, uint16, escher.Record)     {}
func (NullListener) AfterRecord(int, uint16, int, escher.Record) {}

// Encoder encodes records into bytes.
type Encoder struct {
	// Listener is notified of each record written. If nil, no notifications
	// are made.
	Listener Listener
}

func (e Encoder) listener() Listener {
	if e.Listener == nil {
		return NullListener{}
	}
	return e.Listener
}

// Encode writes rec and its descendants to w. Offsets reported to the
// listener are relative to the start of rec.
func (e Encoder) Encode(w io.Writer, rec escher.Record) (n int, err error) {
	if w == nil {
		return 0, errors.New("nil writer")
	}
	if rec == nil {
		return 0, errors.New("nil record")
	}
	return e.encode(w, 0, rec)
}

// EncodeTo writes rec and its descendants into data at offset. Offsets
// reported to the listener are relative to the start of data. Returns the
// number of bytes written.
func (e Encoder) EncodeTo(data []byte, offset int, rec escher.Record) (n int, err error) {
	if rec == nil {
		return 0, errors.New("nil record")
	}
	if offset < 0 || offset > len(data) {
		return 0, DataError{Offset: int64(offset), Cause: io.ErrShortBuffer}
	}
	if size := RecordSize(rec); offset+size > len(data) {
		return 0, DataError{Offset: int64(offset), Cause: fmt.Errorf("%w: need %d bytes, have %d", io.ErrShortBuffer, size, len(data)-offset)}
	}
	w := sliceWriter{data: data[offset:offset]}
	return e.encode(&w, offset, rec)
}

// Serialize returns the encoded bytes of rec and its descendants.
func Serialize(rec escher.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(RecordSize(rec))
	if _, err := (Encoder{}).Encode(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeTo writes the encoded bytes of rec into data at offset, notifying
// listener of each record. Returns the number of bytes written.
func SerializeTo(data []byte, offset int, rec escher.Record, listener Listener) (int, error) {
	return Encoder{Listener: listener}.EncodeTo(data, offset, rec)
}

// sliceWriter appends to a slice without growing past its capacity.
type sliceWriter struct {
	data []byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	if len(w.data)+len(p) > cap(w.data) {
		return 0, io.ErrShortBuffer
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

func (e Encoder) encode(w io.Writer, offset int, rec escher.Record) (n int, err error) {
	fw := parse.NewBinaryWriter(w)
	size, failed := e.encodeRecord(fw, offset, rec, e.listener())
	if failed {
		_, err = fw.End()
		return 0, err
	}
	return size, nil
}

func writeHeader(fw *parse.BinaryWriter, options, id uint16, length int) (failed bool) {
	if fw.Number(options) {
		return true
	}
	if fw.Number(id) {
		return true
	}
	return fw.Number(uint32(length))
}

func writeFields(fw *parse.BinaryWriter, fields ...interface{}) (failed bool) {
	for _, field := range fields {
		if fw.Number(field) {
			return true
		}
	}
	return false
}

// encodeRecord writes rec at offset, returning the number of bytes written.
func (e Encoder) encodeRecord(fw *parse.BinaryWriter, offset int, rec escher.Record, l Listener) (size int, failed bool) {
	base := rec.Head()
	if opt, ok := rec.(*escher.Opt); ok {
		opt.Finalize()
	}
	size = RecordSize(rec)
	length := size - escher.HeaderSize
	l.BeforeRecord(offset, base.ID, rec)

	switch r := rec.(type) {
	case *escher.Container:
		if writeHeader(fw, r.Options, r.ID, length+r.TruncatedBytes) {
			return 0, true
		}
		pos := offset + escher.HeaderSize
		for _, child := range r.Children {
			n, failed := e.encodeRecord(fw, pos, child, l)
			if failed {
				return 0, true
			}
			pos += n
		}

	case *escher.Unknown:
		if writeHeader(fw, r.Options, r.ID, length) {
			return 0, true
		}
		if fw.Bytes(r.Data) {
			return 0, true
		}
		pos := offset + escher.HeaderSize + len(r.Data)
		for _, child := range r.Children {
			n, failed := e.encodeRecord(fw, pos, child, l)
			if failed {
				return 0, true
			}
			pos += n
		}

	case *escher.BSE:
		if writeHeader(fw, r.Options, r.ID, length) {
			return 0, true
		}
		if writeFields(fw, r.BlipTypeWin32, r.BlipTypeMacOS) {
			return 0, true
		}
		if fw.Bytes(r.UID[:]) {
			return 0, true
		}
		if writeFields(fw, r.Tag, r.Size, r.Ref, r.Offset, r.Usage, r.NameLength, r.Unused2, r.Unused3) {
			return 0, true
		}
		if r.Blip != nil {
			// The embedded picture is not reported to the listener.
			if _, failed := e.encodeRecord(fw, offset+escher.HeaderSize+bseFixedSize, r.Blip, NullListener{}); failed {
				return 0, true
			}
		}
		if fw.Bytes(r.Remaining) {
			return 0, true
		}

	default:
		if writeHeader(fw, base.Options, base.ID, length) {
			return 0, true
		}
		if encodeBody(fw, rec) {
			return 0, true
		}
	}

	l.AfterRecord(offset+size, base.ID, size, rec)
	return size, false
}

// encodeBody writes the body of a record without children.
func encodeBody(fw *parse.BinaryWriter, rec escher.Record) (failed bool) {
	switch r := rec.(type) {
	case *escher.Dgg:
		if writeFields(fw, r.ShapeIDMax, r.NumIDClusters(), r.NumShapesSaved, r.DrawingsSaved) {
			return true
		}
		for _, c := range r.FileIDClusters {
			if writeFields(fw, c.DrawingGroupID, c.NumShapeIDsUsed) {
				return true
			}
		}
		return false
	case *escher.Dg:
		return writeFields(fw, r.NumShapes, r.LastShapeID)
	case *escher.Sp:
		return writeFields(fw, r.ShapeID, r.Flags)
	case *escher.Spgr:
		return writeFields(fw, r.X1, r.Y1, r.X2, r.Y2)
	case *escher.SplitMenuColors:
		return writeFields(fw, r.Color1, r.Color2, r.Color3, r.Color4)
	case *escher.ChildAnchor:
		return writeFields(fw, r.DX1, r.DY1, r.DX2, r.DY2)
	case *escher.ClientAnchor:
		switch r.Form {
		case escher.AnchorShort:
			if writeFields(fw, r.Flag, r.Col1, r.DX1, r.Row1) {
				return true
			}
		case escher.AnchorFull:
			if writeFields(fw, r.Flag, r.Col1, r.DX1, r.Row1, r.DY1, r.Col2, r.DX2, r.Row2, r.DY2) {
				return true
			}
		}
		return fw.Bytes(r.Remaining)
	case *escher.ClientData:
		return fw.Bytes(r.Remaining)
	case *escher.Textbox:
		return fw.Bytes(r.Data)
	case *escher.Opt:
		return encodeProperties(fw, r.Properties)
	case *escher.Blip:
		return fw.Bytes(r.Picture)
	case *escher.BitmapBlip:
		if fw.Bytes(r.UID[:]) {
			return true
		}
		if fw.Number(r.Marker) {
			return true
		}
		return fw.Bytes(r.Picture)
	case *escher.MetafileBlip:
		if fw.Bytes(r.UID[:]) {
			return true
		}
		if r.HasSecondaryUID() {
			var uid [uidSize]byte
			copy(uid[:], r.SecondaryUID)
			if fw.Bytes(uid[:]) {
				return true
			}
		}
		if writeFields(fw,
			r.UncompressedSize,
			r.Bounds.X1, r.Bounds.Y1, r.Bounds.X2, r.Bounds.Y2,
			r.SizeEMU.Width, r.SizeEMU.Height,
			uint32(len(r.Raw)),
			r.Compression, r.Filter,
		) {
			return true
		}
		if fw.Bytes(r.Raw) {
			return true
		}
		return fw.Bytes(r.Remaining)
	}
	fw.Add(0, fmt.Errorf("%w: %T", ErrUnsupportedRecord, rec))
	return true
}
