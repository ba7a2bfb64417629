package ddf

import (
	"bytes"
	"fmt"

	"github.com/anaminus/parse"
	"github.com/officefmt/escher"
	"github.com/officefmt/escher/errors"
)

// Sizes of fixed record bodies.
const (
	dggFixedSize          = 16
	fileIDClusterSize     = 8
	bseFixedSize          = 36
	dgSize                = 8
	spSize                = 8
	spgrSize              = 16
	splitMenuColorsSize   = 16
	childAnchorSize       = 16
	clientAnchorShortSize = 8
	clientAnchorFullSize  = 18
	clientAnchorOpaque    = 4
	bitmapBlipFixedSize   = 17
	metafileFixedSize     = 50
	uidSize               = 16
)

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// fill decodes the body of a record that does not hold children. Returns the
// number of bytes consumed, including the header.
func (d Decoder) fill(rec escher.Record, h escher.Header, data []byte, offset int, warns *errors.Errors) (n int, err error) {
	start := offset + escher.HeaderSize
	end := start + int(h.Length)

	switch r := rec.(type) {
	case *escher.Unknown:
		if end > len(data) {
			end = len(data)
		}
		r.Data = clone(data[start:end])
		return end - offset, nil

	case *escher.Opt:
		r.Properties, err = DecodeProperties(data, start, int(h.Instance()))
		if err != nil {
			return 0, err
		}
		return escher.HeaderSize + int(h.Length), nil
	}

	if end > len(data) {
		return 0, fmt.Errorf("%w: body of %d bytes exceeds input by %d bytes", ErrTruncated, h.Length, end-len(data))
	}
	body := data[start:end]

	switch r := rec.(type) {
	case *escher.Dgg:
		err = fillDgg(r, body)
	case *escher.BSE:
		err = d.fillBSE(r, data, start, body, warns)
	case *escher.Dg:
		err = fillFixed(body, dgSize, &r.NumShapes, &r.LastShapeID)
	case *escher.Sp:
		err = fillFixed(body, spSize, &r.ShapeID, &r.Flags)
	case *escher.Spgr:
		err = fillFixed(body, spgrSize, &r.X1, &r.Y1, &r.X2, &r.Y2)
	case *escher.SplitMenuColors:
		err = fillFixed(body, splitMenuColorsSize, &r.Color1, &r.Color2, &r.Color3, &r.Color4)
	case *escher.ChildAnchor:
		err = fillFixed(body, childAnchorSize, &r.DX1, &r.DY1, &r.DX2, &r.DY2)
	case *escher.ClientAnchor:
		err = fillClientAnchor(r, body)
		if err == nil && r.Form == escher.AnchorOpaque {
			*warns = append(*warns, RecordError{RecordID: h.RecordID, Offset: int64(offset), Cause: ErrOpaqueAnchor})
		}
	case *escher.ClientData:
		r.Remaining = clone(body)
	case *escher.Textbox:
		r.Data = clone(body)
	case *escher.Blip:
		r.Picture = clone(body)
	case *escher.BitmapBlip:
		err = fillBitmapBlip(r, body)
	case *escher.MetafileBlip:
		err = fillMetafileBlip(r, body)
		if err == nil {
			if w := r.Inflate(); w != nil {
				*warns = append(*warns, RecordError{RecordID: h.RecordID, Offset: int64(offset), Cause: w})
			}
		}
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedRecord, rec)
	}
	if err != nil {
		return 0, err
	}
	return escher.HeaderSize + len(body), nil
}

// fillFixed reads each of fields from a body that must be exactly size bytes.
func fillFixed(body []byte, size int, fields ...interface{}) error {
	if len(body) != size {
		return sizeError(size, len(body))
	}
	fr := parse.NewBinaryReader(bytes.NewReader(body))
	for _, field := range fields {
		if fr.Number(field) {
			return fr.Err()
		}
	}
	return nil
}

func fillDgg(r *escher.Dgg, body []byte) error {
	if len(body) < dggFixedSize {
		return sizeError(dggFixedSize, len(body))
	}
	if extra := (len(body) - dggFixedSize) % fileIDClusterSize; extra != 0 {
		return fmt.Errorf("%w: %d bytes after file ID clusters", ErrTrailingBytes, extra)
	}

	fr := parse.NewBinaryReader(bytes.NewReader(body))
	if fr.Number(&r.ShapeIDMax) {
		return fr.Err()
	}
	// The stored cluster count is derived from the list on write.
	var numIDClusters uint32
	if fr.Number(&numIDClusters) {
		return fr.Err()
	}
	if fr.Number(&r.NumShapesSaved) {
		return fr.Err()
	}
	if fr.Number(&r.DrawingsSaved) {
		return fr.Err()
	}
	r.FileIDClusters = make([]escher.FileIDCluster, (len(body)-dggFixedSize)/fileIDClusterSize)
	for i := range r.FileIDClusters {
		c := &r.FileIDClusters[i]
		if fr.Number(&c.DrawingGroupID) {
			return fr.Err()
		}
		if fr.Number(&c.NumShapeIDsUsed) {
			return fr.Err()
		}
	}
	return nil
}

// fillBSE decodes the body of a BSE record. The body begins at start within
// data.
func (d Decoder) fillBSE(r *escher.BSE, data []byte, start int, body []byte, warns *errors.Errors) error {
	if len(body) < bseFixedSize {
		return sizeError(bseFixedSize, len(body))
	}

	fr := parse.NewBinaryReader(bytes.NewReader(body[:bseFixedSize]))
	if fr.Number(&r.BlipTypeWin32) {
		return fr.Err()
	}
	if fr.Number(&r.BlipTypeMacOS) {
		return fr.Err()
	}
	if fr.Bytes(r.UID[:]) {
		return fr.Err()
	}
	for _, field := range []interface{}{
		&r.Tag, &r.Size, &r.Ref, &r.Offset,
		&r.Usage, &r.NameLength, &r.Unused2, &r.Unused3,
	} {
		if fr.Number(field) {
			return fr.Err()
		}
	}

	r.Blip = nil
	rest := body[bseFixedSize:]
	if len(rest) > 0 {
		if len(rest) < escher.HeaderSize {
			return fmt.Errorf("%w: %d bytes cannot hold an embedded picture", ErrBodySize, len(rest))
		}
		blipOffset := start + bseFixedSize
		h := readHeader(data, blipOffset)
		if escher.HeaderSize+int(h.Length) > len(rest) {
			return fmt.Errorf("%w: embedded picture exceeds record", ErrBodySize)
		}
		rec, err := d.factory().Create(data, blipOffset)
		if err != nil {
			return err
		}
		blip, ok := rec.(escher.BlipRecord)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotBlip, escher.RecordName(h.RecordID))
		}
		*blip.Head() = escher.Base{Options: h.Options, ID: h.RecordID}
		n, err := d.fill(blip, h, data, blipOffset, warns)
		if err != nil {
			return RecordError{RecordID: h.RecordID, Offset: int64(blipOffset), Cause: err}
		}
		r.Blip = blip
		rest = rest[n:]
	}
	r.Remaining = nil
	if len(rest) > 0 {
		r.Remaining = clone(rest)
	}
	return nil
}

func fillClientAnchor(r *escher.ClientAnchor, body []byte) error {
	if len(body) == clientAnchorOpaque {
		r.Form = escher.AnchorOpaque
		r.Remaining = clone(body)
		return nil
	}
	if len(body) < clientAnchorShortSize {
		return sizeError(clientAnchorShortSize, len(body))
	}

	fr := parse.NewBinaryReader(bytes.NewReader(body))
	fields := []interface{}{&r.Flag, &r.Col1, &r.DX1, &r.Row1}
	size := clientAnchorShortSize
	r.Form = escher.AnchorShort
	if len(body) >= clientAnchorFullSize {
		fields = append(fields, &r.DY1, &r.Col2, &r.DX2, &r.Row2, &r.DY2)
		size = clientAnchorFullSize
		r.Form = escher.AnchorFull
	}
	for _, field := range fields {
		if fr.Number(field) {
			return fr.Err()
		}
	}
	r.Remaining = nil
	if len(body) > size {
		r.Remaining = clone(body[size:])
	}
	return nil
}

func fillBitmapBlip(r *escher.BitmapBlip, body []byte) error {
	if len(body) < bitmapBlipFixedSize {
		return sizeError(bitmapBlipFixedSize, len(body))
	}
	copy(r.UID[:], body)
	r.Marker = body[uidSize]
	r.Picture = clone(body[bitmapBlipFixedSize:])
	return nil
}

func fillMetafileBlip(r *escher.MetafileBlip, body []byte) error {
	fixed := metafileFixedSize
	if r.HasSecondaryUID() {
		fixed += uidSize
	}
	if len(body) < fixed {
		return sizeError(fixed, len(body))
	}

	fr := parse.NewBinaryReader(bytes.NewReader(body))
	if fr.Bytes(r.UID[:]) {
		return fr.Err()
	}
	r.SecondaryUID = nil
	if r.HasSecondaryUID() {
		r.SecondaryUID = make([]byte, uidSize)
		if fr.Bytes(r.SecondaryUID) {
			return fr.Err()
		}
	}
	for _, field := range []interface{}{
		&r.UncompressedSize,
		&r.Bounds.X1, &r.Bounds.Y1, &r.Bounds.X2, &r.Bounds.Y2,
		&r.SizeEMU.Width, &r.SizeEMU.Height,
		&r.CompressedSize,
		&r.Compression, &r.Filter,
	} {
		if fr.Number(field) {
			return fr.Err()
		}
	}

	rest := body[fixed:]
	if int64(r.CompressedSize) > int64(len(rest)) {
		return fmt.Errorf("%w: picture of %d bytes exceeds record by %d bytes", ErrBodySize, r.CompressedSize, int64(r.CompressedSize)-int64(len(rest)))
	}
	r.Raw = clone(rest[:r.CompressedSize])
	r.Remaining = nil
	if rest := rest[r.CompressedSize:]; len(rest) > 0 {
		r.Remaining = clone(rest)
	}
	return nil
}
