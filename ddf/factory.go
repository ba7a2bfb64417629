package ddf

import (
	"encoding/binary"

	"github.com/officefmt/escher"
)

// Factory creates empty records from the header of a record in a stream.
type Factory interface {
	// Create returns an empty record of the type indicated by the header at
	// offset. Only the options and record ID are read. The body of the
	// record is filled in by the decoder.
	Create(data []byte, offset int) (escher.Record, error)
}

// DefaultFactory creates the record types of the escher package. Unknown
// record IDs produce an escher.Unknown.
type DefaultFactory struct{}

func (DefaultFactory) Create(data []byte, offset int) (escher.Record, error) {
	if offset < 0 || offset+4 > len(data) {
		return nil, DataError{Offset: int64(offset), Cause: ErrTruncated}
	}
	options := binary.LittleEndian.Uint16(data[offset:])
	id := binary.LittleEndian.Uint16(data[offset+2:])
	rec := newRecord(options, id)
	*rec.Head() = escher.Base{Options: options, ID: id}
	return rec, nil
}

type recordGenerator func() escher.Record

func recordGenerators(id uint16) recordGenerator {
	switch id {
	case escher.DggID:
		return func() escher.Record { return new(escher.Dgg) }
	case escher.BSEID:
		return func() escher.Record { return new(escher.BSE) }
	case escher.DgID:
		return func() escher.Record { return new(escher.Dg) }
	case escher.SpgrID:
		return func() escher.Record { return new(escher.Spgr) }
	case escher.SpID:
		return func() escher.Record { return new(escher.Sp) }
	case escher.OptID, escher.TertiaryOptID:
		return func() escher.Record { return new(escher.Opt) }
	case escher.TextboxID:
		return func() escher.Record { return new(escher.Textbox) }
	case escher.ChildAnchorID:
		return func() escher.Record { return new(escher.ChildAnchor) }
	case escher.ClientAnchorID:
		return func() escher.Record { return new(escher.ClientAnchor) }
	case escher.ClientDataID:
		return func() escher.Record { return new(escher.ClientData) }
	case escher.SplitMenuColorsID:
		return func() escher.Record { return new(escher.SplitMenuColors) }
	default:
		return nil
	}
}

func newRecord(options, id uint16) escher.Record {
	if escher.IsContainer(options, id) {
		return new(escher.Container)
	}
	if escher.IsBlipID(id) {
		switch id {
		case escher.BlipJPEGID, escher.BlipPNGID, escher.BlipDIBID:
			return new(escher.BitmapBlip)
		case escher.BlipEMFID, escher.BlipWMFID, escher.BlipPICTID:
			return new(escher.MetafileBlip)
		}
		return new(escher.Blip)
	}
	if gen := recordGenerators(id); gen != nil {
		return gen()
	}
	return new(escher.Unknown)
}
