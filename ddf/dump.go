package ddf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/errors"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Dump decodes the records in data and writes a readable representation of
// them to w.
func (d Decoder) Dump(w io.Writer, data []byte) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	recs, warn, err := d.Decode(data)
	if err != nil {
		return warn, err
	}
	return warn, Dump(w, recs)
}

// Dump writes a readable representation of recs to w.
func Dump(w io.Writer, recs []escher.Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Records: (count:%d) {", len(recs))
	offset := 0
	for i, rec := range recs {
		dumpRecord(bw, 1, i, offset, rec)
		offset += RecordSize(rec)
	}
	bw.WriteString("\n}\n")
	return bw.Flush()
}

func dumpRecord(w *bufio.Writer, indent, i, offset int, rec escher.Record) {
	base := rec.Head()
	dumpNewline(w, indent)
	if i >= 0 {
		fmt.Fprintf(w, "#%d: ", i)
	}
	size := RecordSize(rec)
	fmt.Fprintf(w, "%s (0x%04X) [offset:%d size:%d instance:0x%03X version:0x%X] {",
		rec.Name(), base.ID, offset, size, base.Instance(), base.Version())

	field := func(name string) {
		dumpNewline(w, indent+1)
		w.WriteString(name)
		w.WriteString(": ")
	}

	switch r := rec.(type) {
	case *escher.Container:
		if r.TruncatedBytes > 0 {
			field("TruncatedBytes")
			fmt.Fprintf(w, "%d", r.TruncatedBytes)
		}
		dumpChildren(w, indent+1, offset+escher.HeaderSize, r.Children)
	case *escher.Unknown:
		field("Data")
		dumpBytes(w, indent+1, r.Data)
		if len(r.Children) > 0 {
			dumpChildren(w, indent+1, offset+escher.HeaderSize+len(r.Data), r.Children)
		}
	case *escher.Dgg:
		field("ShapeIDMax")
		fmt.Fprintf(w, "%d", r.ShapeIDMax)
		field("NumIDClusters")
		fmt.Fprintf(w, "%d", r.NumIDClusters())
		field("NumShapesSaved")
		fmt.Fprintf(w, "%d", r.NumShapesSaved)
		field("DrawingsSaved")
		fmt.Fprintf(w, "%d", r.DrawingsSaved)
		field("FileIDClusters")
		fmt.Fprintf(w, "(count:%d) {", len(r.FileIDClusters))
		for j, c := range r.FileIDClusters {
			dumpNewline(w, indent+2)
			fmt.Fprintf(w, "%d: DrawingGroupID:%d NumShapeIDsUsed:%d", j, c.DrawingGroupID, c.NumShapeIDsUsed)
		}
		dumpNewline(w, indent+1)
		w.WriteByte('}')
	case *escher.BSE:
		field("BlipTypeWin32")
		fmt.Fprintf(w, "%d (%s)", r.BlipTypeWin32, escher.BlipTypeName(r.BlipTypeWin32))
		field("BlipTypeMacOS")
		fmt.Fprintf(w, "%d (%s)", r.BlipTypeMacOS, escher.BlipTypeName(r.BlipTypeMacOS))
		field("UID")
		fmt.Fprintf(w, "%X", r.UID)
		field("Tag")
		fmt.Fprintf(w, "%d", r.Tag)
		field("Size")
		fmt.Fprintf(w, "%d", r.Size)
		field("Ref")
		fmt.Fprintf(w, "%d", r.Ref)
		field("Offset")
		fmt.Fprintf(w, "%d", r.Offset)
		field("Usage")
		fmt.Fprintf(w, "%d", r.Usage)
		field("NameLength")
		fmt.Fprintf(w, "%d", r.NameLength)
		if r.Blip != nil {
			field("Blip")
			dumpRecord(w, indent+2, -1, offset+escher.HeaderSize+bseFixedSize, r.Blip)
		}
		if len(r.Remaining) > 0 {
			field("Remaining")
			dumpBytes(w, indent+1, r.Remaining)
		}
	case *escher.Dg:
		field("NumShapes")
		fmt.Fprintf(w, "%d", r.NumShapes)
		field("LastShapeID")
		fmt.Fprintf(w, "%d", r.LastShapeID)
	case *escher.Spgr:
		field("Rect")
		fmt.Fprintf(w, "(%d, %d) - (%d, %d)", r.X1, r.Y1, r.X2, r.Y2)
	case *escher.Sp:
		field("ShapeType")
		fmt.Fprintf(w, "%d", r.ShapeType())
		field("ShapeID")
		fmt.Fprintf(w, "%d", r.ShapeID)
		field("Flags")
		fmt.Fprintf(w, "0x%08X", r.Flags)
		if names := r.FlagNames(); len(names) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(names, "|"))
		}
	case *escher.ChildAnchor:
		field("Rect")
		fmt.Fprintf(w, "(%d, %d) - (%d, %d)", r.DX1, r.DY1, r.DX2, r.DY2)
	case *escher.ClientAnchor:
		field("Form")
		w.WriteString(r.Form.String())
		if r.Form != escher.AnchorOpaque {
			field("Flag")
			fmt.Fprintf(w, "%d", r.Flag)
			field("Col1")
			fmt.Fprintf(w, "%d", r.Col1)
			field("DX1")
			fmt.Fprintf(w, "%d", r.DX1)
			field("Row1")
			fmt.Fprintf(w, "%d", r.Row1)
		}
		if r.Form == escher.AnchorFull {
			field("DY1")
			fmt.Fprintf(w, "%d", r.DY1)
			field("Col2")
			fmt.Fprintf(w, "%d", r.Col2)
			field("DX2")
			fmt.Fprintf(w, "%d", r.DX2)
			field("Row2")
			fmt.Fprintf(w, "%d", r.Row2)
			field("DY2")
			fmt.Fprintf(w, "%d", r.DY2)
		}
		if len(r.Remaining) > 0 {
			field("Remaining")
			dumpBytes(w, indent+1, r.Remaining)
		}
	case *escher.ClientData:
		field("Remaining")
		dumpBytes(w, indent+1, r.Remaining)
	case *escher.Textbox:
		field("Data")
		dumpBytes(w, indent+1, r.Data)
	case *escher.SplitMenuColors:
		field("Colors")
		fmt.Fprintf(w, "0x%08X 0x%08X 0x%08X 0x%08X", r.Color1, r.Color2, r.Color3, r.Color4)
	case *escher.Opt:
		field("Properties")
		fmt.Fprintf(w, "(count:%d) {", len(r.Properties))
		for j, p := range r.Properties {
			dumpProperty(w, indent+2, j, p)
		}
		dumpNewline(w, indent+1)
		w.WriteByte('}')
	case *escher.Blip:
		field("Picture")
		dumpBytes(w, indent+1, r.Picture)
	case *escher.BitmapBlip:
		field("UID")
		fmt.Fprintf(w, "%X", r.UID)
		field("Marker")
		fmt.Fprintf(w, "0x%02X", r.Marker)
		field("Picture")
		dumpBytes(w, indent+1, r.Picture)
	case *escher.MetafileBlip:
		field("UID")
		fmt.Fprintf(w, "%X", r.UID)
		if r.SecondaryUID != nil {
			field("SecondaryUID")
			fmt.Fprintf(w, "%X", r.SecondaryUID)
		}
		field("UncompressedSize")
		fmt.Fprintf(w, "%d", r.UncompressedSize)
		field("Bounds")
		fmt.Fprintf(w, "(%d, %d) - (%d, %d)", r.Bounds.X1, r.Bounds.Y1, r.Bounds.X2, r.Bounds.Y2)
		field("SizeEMU")
		fmt.Fprintf(w, "%d x %d", r.SizeEMU.Width, r.SizeEMU.Height)
		field("CompressedSize")
		fmt.Fprintf(w, "%d", r.CompressedSize)
		field("Compression")
		if r.IsCompressed() {
			w.WriteString("deflate")
		} else {
			fmt.Fprintf(w, "0x%02X", r.Compression)
		}
		field("Filter")
		fmt.Fprintf(w, "0x%02X", r.Filter)
		field("Picture")
		dumpBytes(w, indent+1, r.PictureData())
		if len(r.Remaining) > 0 {
			field("Remaining")
			dumpBytes(w, indent+1, r.Remaining)
		}
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpChildren(w *bufio.Writer, indent, offset int, children []escher.Record) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Children: (count:%d) {", len(children))
	for i, child := range children {
		dumpRecord(w, indent+1, i, offset, child)
		offset += RecordSize(child)
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpProperty(w *bufio.Writer, indent, i int, p escher.Property) {
	id := p.PropID()
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: %s (%d)", i, id.Name(), id.Number())
	if id.IsBlipID() {
		w.WriteString(" (blip)")
	}
	w.WriteString(": ")
	switch p := p.(type) {
	case *escher.BoolProperty:
		fmt.Fprintf(w, "Bool 0x%08X", uint32(p.Value))
	case *escher.RGBProperty:
		fmt.Fprintf(w, "RGB 0x%08X (R:%d G:%d B:%d)", uint32(p.Value), p.Red(), p.Green(), p.Blue())
	case *escher.ShapePathProperty:
		fmt.Fprintf(w, "ShapePath %d", p.Value)
	case *escher.SimpleProperty:
		fmt.Fprintf(w, "%d (0x%08X)", p.Value, uint32(p.Value))
	case *escher.ComplexProperty:
		w.WriteString("Complex ")
		if s, ok := decodeUTF16(p.Data); ok {
			dumpString(w, indent, s)
		} else {
			dumpBytes(w, indent, p.Data)
		}
	case *escher.ArrayProperty:
		fmt.Fprintf(w, "Array (elements:%d inMemory:%d elementSize:%d) {",
			p.NumElements(), p.NumElementsInMemory(), escher.ElementSize(p.SizeOfElements()))
		for j, e := range p.Elements() {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "%d: % X", j, e)
		}
		dumpNewline(w, indent)
		w.WriteByte('}')
	}
}

// decodeUTF16 decodes b as a null-terminated UTF-16LE string. Returns false
// if b does not look like such a string.
func decodeUTF16(b []byte) (string, bool) {
	if len(b) < 2 || len(b)%2 != 0 || b[len(b)-2] != 0 || b[len(b)-1] != 0 {
		return "", false
	}
	dec := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(b[:len(b)-2])
	if err != nil {
		return "", false
	}
	str := string(s)
	for _, r := range str {
		if !unicode.IsGraphic(r) {
			return "", false
		}
	}
	return str, true
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	w.WriteString(strings.Repeat("\t", indent))
}

func dumpString(w *bufio.Writer, indent int, s string) {
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

// dumpBytes writes b as rows of hexadecimal bytes followed by their printable
// characters.
func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	const width = 16
	fmt.Fprintf(w, "(len:%d)", len(b))
	for row := 0; row < len(b); row += width {
		end := row + width
		if end > len(b) {
			end = len(b)
		}
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := row; i < row+width; i++ {
			switch {
			case i < end:
				fmt.Fprintf(w, "%02x", b[i])
			case len(b) < width:
				continue
			default:
				w.WriteString("  ")
			}
			if (i+1)%8 == 0 && i+1 < row+width {
				w.WriteString("  ")
			} else {
				w.WriteByte(' ')
			}
		}
		w.WriteByte('|')
		for _, c := range b[row:end] {
			if 32 <= c && c <= 126 {
				w.WriteByte(c)
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
