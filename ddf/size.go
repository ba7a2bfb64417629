package ddf

import (
	"github.com/officefmt/escher"
)

// RecordSize returns the number of bytes rec and its descendants occupy when
// encoded, including headers. The size of a container is the header plus the
// sizes of its children. The missing bytes of a truncated container are not
// counted.
func RecordSize(rec escher.Record) int {
	switch r := rec.(type) {
	case *escher.Container:
		size := escher.HeaderSize
		for _, child := range r.Children {
			size += RecordSize(child)
		}
		return size
	case *escher.Unknown:
		size := escher.HeaderSize + len(r.Data)
		for _, child := range r.Children {
			size += RecordSize(child)
		}
		return size
	}
	return escher.HeaderSize + bodySize(rec)
}

func bodySize(rec escher.Record) int {
	switch r := rec.(type) {
	case *escher.Dgg:
		return dggFixedSize + fileIDClusterSize*len(r.FileIDClusters)
	case *escher.BSE:
		size := bseFixedSize + len(r.Remaining)
		if r.Blip != nil {
			size += RecordSize(r.Blip)
		}
		return size
	case *escher.Dg:
		return dgSize
	case *escher.Sp:
		return spSize
	case *escher.Spgr:
		return spgrSize
	case *escher.SplitMenuColors:
		return splitMenuColorsSize
	case *escher.ChildAnchor:
		return childAnchorSize
	case *escher.ClientAnchor:
		switch r.Form {
		case escher.AnchorShort:
			return clientAnchorShortSize + len(r.Remaining)
		case escher.AnchorFull:
			return clientAnchorFullSize + len(r.Remaining)
		}
		return len(r.Remaining)
	case *escher.ClientData:
		return len(r.Remaining)
	case *escher.Textbox:
		return len(r.Data)
	case *escher.Opt:
		size := 0
		for _, p := range r.Properties {
			size += PropertySize(p)
		}
		return size
	case *escher.Blip:
		return len(r.Picture)
	case *escher.BitmapBlip:
		return bitmapBlipFixedSize + len(r.Picture)
	case *escher.MetafileBlip:
		size := metafileFixedSize + len(r.Raw) + len(r.Remaining)
		if r.HasSecondaryUID() {
			size += uidSize
		}
		return size
	}
	return 0
}
