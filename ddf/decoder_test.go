package ddf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/officefmt/escher"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad test data: %s", err)
	}
	return b
}

// roundTrip decodes data, checks that all of it was consumed without
// warnings, and checks that the record encodes back to data.
func roundTrip(t *testing.T, data []byte) escher.Record {
	t.Helper()
	rec, n, warn, err := Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if n != len(data) {
		t.Errorf("expected %d bytes consumed, got %d", len(data), n)
	}
	if size := RecordSize(rec); size != len(data) {
		t.Errorf("expected record size %d, got %d", len(data), size)
	}
	out, err := Serialize(rec)
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch:\nwant % X\ngot  % X", data, out)
	}
	return rec
}

func TestChildAnchor(t *testing.T) {
	data := hexBytes(t, "01 00 0F F0 10 00 00 00 01 00 00 00 02 00 00 00 03 00 00 00 04 00 00 00")
	rec := roundTrip(t, data)
	r, ok := rec.(*escher.ChildAnchor)
	if !ok {
		t.Fatalf("expected *ChildAnchor, got %T", rec)
	}
	if r.DX1 != 1 || r.DY1 != 2 || r.DX2 != 3 || r.DY2 != 4 {
		t.Errorf("unexpected fields %d %d %d %d", r.DX1, r.DY1, r.DX2, r.DY2)
	}
	if r.Options != 0x0001 {
		t.Errorf("expected options 0x0001, got 0x%04X", r.Options)
	}
}

func TestUnknownRecord(t *testing.T) {
	data := hexBytes(t, "00 00 EE FF 04 00 00 00 AA BB CC DD")
	rec := roundTrip(t, data)
	r, ok := rec.(*escher.Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", rec)
	}
	if !bytes.Equal(r.Data, []byte{0xAA, 0xBB, 0xCC, 0xDD}) {
		t.Errorf("unexpected data % X", r.Data)
	}
	if r.Name() != "Unknown 0xffee" {
		t.Errorf("unexpected name %q", r.Name())
	}
}

func TestUnknownClamped(t *testing.T) {
	data := hexBytes(t, "00 00 EE FF 10 00 00 00 AA BB")
	rec, n, _, err := Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if n != len(data) {
		t.Errorf("expected %d bytes consumed, got %d", len(data), n)
	}
	if r := rec.(*escher.Unknown); len(r.Data) != 2 {
		t.Errorf("expected 2 bytes of data, got %d", len(r.Data))
	}
}

type unknownFactory struct{}

func (unknownFactory) Create(data []byte, offset int) (escher.Record, error) {
	return new(escher.Unknown), nil
}

func TestUnknownContainer(t *testing.T) {
	data := hexBytes(t, "0F 00 03 F0 0C 00 00 00 00 00 EE FF 04 00 00 00 01 02 03 04")
	rec, n, warn, err := Decoder{Factory: unknownFactory{}}.DecodeRecord(data, 0)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if n != len(data) {
		t.Errorf("expected %d bytes consumed, got %d", len(data), n)
	}
	r := rec.(*escher.Unknown)
	if len(r.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(r.Children))
	}
	if c := r.Children[0].(*escher.Unknown); !bytes.Equal(c.Data, []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected child data % X", c.Data)
	}
	out, err := Serialize(rec)
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch:\nwant % X\ngot  % X", data, out)
	}
}

const drawing = "" +
	"0F 00 02 F0 3C 00 00 00" + // DgContainer
	"10 00 08 F0 08 00 00 00 02 00 00 00 01 04 00 00" + // Dg
	"0F 00 04 F0 24 00 00 00" + // SpContainer
	"A2 0C 0A F0 08 00 00 00 01 04 00 00 00 0A 00 00" + // Sp
	"23 00 0B F0 0C 00 00 00 7F 00 04 01 04 01 BF 00 08 00 08 00" // Opt

func TestContainerTree(t *testing.T) {
	rec := roundTrip(t, hexBytes(t, drawing))
	dg, ok := rec.(*escher.Container)
	if !ok {
		t.Fatalf("expected *Container, got %T", rec)
	}
	if dg.Name() != "DgContainer" {
		t.Errorf("unexpected name %q", dg.Name())
	}
	if len(dg.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(dg.Children))
	}
	if r := dg.Children[0].(*escher.Dg); r.DrawingGroupID() != 1 || r.NumShapes != 2 || r.LastShapeID != 0x401 {
		t.Errorf("unexpected Dg %+v", r)
	}
	sp := dg.Children[1].(*escher.Container)
	if s := sp.Children[0].(*escher.Sp); s.ShapeType() != 202 || s.ShapeID != 0x401 || !s.Has(escher.SpFlagHaveAnchor|escher.SpFlagHaveSpt) {
		t.Errorf("unexpected Sp %+v", s)
	}
	opt := sp.Children[1].(*escher.Opt)
	if len(opt.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(opt.Properties))
	}
	if p, ok := opt.Properties[0].(*escher.BoolProperty); !ok || p.Value != 0x01040104 {
		t.Errorf("unexpected property %#v", opt.Properties[0])
	}

	for _, c := range []*escher.Container{dg, sp} {
		sum := escher.HeaderSize
		for _, child := range c.Children {
			sum += RecordSize(child)
		}
		if size := RecordSize(c); size != sum {
			t.Errorf("%s: size %d does not match sum of children %d", c.Name(), size, sum)
		}
	}
}

func TestContainerSizeAfterMutation(t *testing.T) {
	c := escher.NewContainer(escher.SpContainerID)
	if size := RecordSize(c); size != 8 {
		t.Errorf("expected size 8, got %d", size)
	}
	c.AddChild(escher.NewSp(1, 1024, escher.SpFlagHaveSpt))
	c.AddChild(escher.NewChildAnchor(1, 2, 3, 4))
	if size := RecordSize(c); size != 8+16+24 {
		t.Errorf("expected size 48, got %d", size)
	}
	c.AddChildBefore(escher.NewClientData(), escher.ChildAnchorID)
	if size := RecordSize(c); size != 8+16+8+24 {
		t.Errorf("expected size 56, got %d", size)
	}
	data, err := Serialize(c)
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}
	if len(data) != 56 {
		t.Errorf("expected 56 bytes, got %d", len(data))
	}
	roundTrip(t, data)
}

func TestTruncatedContainer(t *testing.T) {
	data := hexBytes(t, "0F 00 04 F0 20 00 00 00 A2 0C 0A F0 08 00 00 00 01 04 00 00 00 0A 00 00")
	rec, n, warn, err := Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !errors.Is(warn, ErrTruncatedContainer) {
		t.Errorf("expected truncation warning, got %v", warn)
	}
	var rerr RecordError
	if !errors.As(warn, &rerr) || rerr.RecordID != escher.SpContainerID || rerr.Offset != 0 {
		t.Errorf("unexpected warning %v", warn)
	}
	if n != len(data) {
		t.Errorf("expected %d bytes consumed, got %d", len(data), n)
	}
	c := rec.(*escher.Container)
	if len(c.Children) != 1 || c.TruncatedBytes != 16 {
		t.Errorf("expected 1 child and 16 truncated bytes, got %d and %d", len(c.Children), c.TruncatedBytes)
	}
	if size := RecordSize(c); size != 24 {
		t.Errorf("expected size 24, got %d", size)
	}
	out, err := Serialize(c)
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch:\nwant % X\ngot  % X", data, out)
	}
}

func TestPartialChildHeader(t *testing.T) {
	data := hexBytes(t, "0F 00 04 F0 10 00 00 00 A2 0C 0A F0")
	rec, _, warn, err := Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !errors.Is(warn, ErrTruncatedContainer) {
		t.Errorf("expected truncation warning, got %v", warn)
	}
	if c := rec.(*escher.Container); len(c.Children) != 0 || c.TruncatedBytes != 16 {
		t.Errorf("unexpected container %+v", c)
	}
}

func TestStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint16
		want error
	}{
		{"Sp trailing", "02 00 0A F0 0A 00 00 00 01 00 00 00 02 00 00 00 00 00", escher.SpID, ErrTrailingBytes},
		{"Dg short", "10 00 08 F0 04 00 00 00 01 00 00 00", escher.DgID, ErrBodySize},
		{"Spgr short", "01 00 09 F0 0C 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00", escher.SpgrID, ErrBodySize},
		{"SplitMenuColors trailing", "40 00 1E F1 14 00 00 00 0D 00 00 08 0C 00 00 08 17 00 00 08 F7 00 00 10 00 00 00 00", escher.SplitMenuColorsID, ErrTrailingBytes},
		{"ChildAnchor small", "00 00 0F F0 08 00 00 00 01 00 02 00 03 00 04 00", escher.ChildAnchorID, ErrBodySize},
		{"Dgg leftover", "00 00 06 F0 14 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 FF FF FF FF", escher.DggID, ErrTrailingBytes},
		{"ClientAnchor small", "00 00 10 F0 06 00 00 00 01 00 02 00 03 00", escher.ClientAnchorID, ErrBodySize},
		{"leaf truncated", "10 00 08 F0 08 00 00 00 01 00 00 00", escher.DgID, ErrTruncated},
		{"BSE not blip", "02 00 07 F0 34 00 00 00" + strings.Repeat("00 ", 36) + "02 00 0A F0 08 00 00 00 01 00 00 00 02 00 00 00", escher.BSEID, ErrNotBlip},
	}
	for _, tt := range tests {
		_, _, _, err := Decoder{}.DecodeRecord(hexBytes(t, tt.data), 0)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
			continue
		}
		var rerr RecordError
		if !errors.As(err, &rerr) {
			t.Errorf("%s: expected RecordError, got %T", tt.name, err)
		} else if rerr.RecordID != tt.id {
			t.Errorf("%s: expected record ID 0x%04X, got 0x%04X", tt.name, tt.id, rerr.RecordID)
		}
	}
}

func TestStructuralErrorInContainer(t *testing.T) {
	data := hexBytes(t, "0F 00 04 F0 0C 00 00 00 02 00 0A F0 04 00 00 00 01 00 00 00")
	_, _, _, err := Decoder{}.DecodeRecord(data, 0)
	var rerr RecordError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if rerr.RecordID != escher.SpID || rerr.Offset != 8 {
		t.Errorf("expected Sp at 8, got 0x%04X at %d", rerr.RecordID, rerr.Offset)
	}
}

func TestMaxDepth(t *testing.T) {
	data := hexBytes(t, "0F 00 03 F0 10 00 00 00 0F 00 03 F0 08 00 00 00 0F 00 03 F0 00 00 00 00")
	if _, _, _, err := (Decoder{MaxDepth: 2}).DecodeRecord(data, 0); !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	roundTrip(t, data)
}

func TestTextboxNotContainer(t *testing.T) {
	data := hexBytes(t, "0F 00 0D F0 02 00 00 00 41 42")
	rec := roundTrip(t, data)
	r, ok := rec.(*escher.Textbox)
	if !ok {
		t.Fatalf("expected *Textbox, got %T", rec)
	}
	if string(r.Data) != "AB" {
		t.Errorf("unexpected data %q", r.Data)
	}
}

func TestDgg(t *testing.T) {
	data := hexBytes(t, "00 00 06 F0 20 00 00 00"+
		"02 08 00 00 03 00 00 00 02 00 00 00 01 00 00 00"+
		"01 00 00 00 02 00 00 00 02 00 00 00 05 00 00 00")
	rec := roundTrip(t, data)
	r := rec.(*escher.Dgg)
	if r.ShapeIDMax != 0x802 || r.NumShapesSaved != 2 || r.DrawingsSaved != 1 {
		t.Errorf("unexpected fields %+v", r)
	}
	if len(r.FileIDClusters) != 2 || r.NumIDClusters() != 3 || r.MaxDrawingGroupID() != 2 {
		t.Errorf("unexpected clusters %+v", r.FileIDClusters)
	}
}

func TestSpgr(t *testing.T) {
	data := hexBytes(t, "01 00 09 F0 10 00 00 00 01 00 00 00 02 00 00 00 03 00 00 00 04 00 00 00")
	r := roundTrip(t, data).(*escher.Spgr)
	if r.Rect != (escher.Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}) {
		t.Errorf("unexpected rect %+v", r.Rect)
	}
}

func TestSplitMenuColors(t *testing.T) {
	data := hexBytes(t, "40 00 1E F1 10 00 00 00 0D 00 00 08 0C 00 00 08 17 00 00 08 F7 00 00 10")
	r := roundTrip(t, data).(*escher.SplitMenuColors)
	if r.Instance() != 4 {
		t.Errorf("expected instance 4, got %d", r.Instance())
	}
	if r.Color1 != 0x0800000D || r.Color2 != 0x0800000C || r.Color3 != 0x08000017 || r.Color4 != 0x100000F7 {
		t.Errorf("unexpected colors %+v", r)
	}
}

func TestTertiaryOpt(t *testing.T) {
	data := hexBytes(t, "33 00 22 F1 15 00 00 00"+
		"BF 01 08 00 08 00 41 C1 03 00 00 00 81 01 11 22 33 00"+
		"01 02 03")
	r := roundTrip(t, data).(*escher.Opt)
	if !r.Tertiary() {
		t.Error("expected tertiary property list")
	}
	if len(r.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(r.Properties))
	}
	if p, ok := r.Properties[1].(*escher.ComplexProperty); !ok || !bytes.Equal(p.Data, []byte{1, 2, 3}) {
		t.Errorf("unexpected complex property %#v", r.Properties[1])
	}
}

func TestGenericBlip(t *testing.T) {
	data := hexBytes(t, "00 00 20 F0 03 00 00 00 AA BB CC")
	r := roundTrip(t, data).(*escher.Blip)
	if !bytes.Equal(r.PictureData(), []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("unexpected picture % X", r.PictureData())
	}
}

func TestClientAnchorForms(t *testing.T) {
	tests := []struct {
		data      string
		form      escher.AnchorForm
		remaining int
		warn      bool
	}{
		{"00 00 10 F0 12 00 00 00 02 00 01 00 00 00 02 00 00 00 03 00 00 00 04 00 00 00", escher.AnchorFull, 0, false},
		{"00 00 10 F0 14 00 00 00 02 00 01 00 00 00 02 00 00 00 03 00 00 00 04 00 00 00 FF FF", escher.AnchorFull, 2, false},
		{"00 00 10 F0 08 00 00 00 02 00 01 00 00 00 02 00", escher.AnchorShort, 0, false},
		{"00 00 10 F0 0A 00 00 00 02 00 01 00 00 00 02 00 AA BB", escher.AnchorShort, 2, false},
		{"00 00 10 F0 04 00 00 00 01 02 03 04", escher.AnchorOpaque, 4, true},
	}
	for _, tt := range tests {
		data := hexBytes(t, tt.data)
		rec, _, warn, err := Decoder{}.DecodeRecord(data, 0)
		if err != nil {
			t.Errorf("%s: decode: %s", tt.form, err)
			continue
		}
		if got := errors.Is(warn, ErrOpaqueAnchor); got != tt.warn {
			t.Errorf("%s: expected opaque warning %t, got %v", tt.form, tt.warn, warn)
		}
		r := rec.(*escher.ClientAnchor)
		if r.Form != tt.form {
			t.Errorf("expected form %s, got %s", tt.form, r.Form)
		}
		if len(r.Remaining) != tt.remaining {
			t.Errorf("%s: expected %d remaining bytes, got %d", tt.form, tt.remaining, len(r.Remaining))
		}
		if tt.form != escher.AnchorOpaque && (r.Col1 != 1 || r.Row1 != 2) {
			t.Errorf("%s: unexpected cell %d,%d", tt.form, r.Col1, r.Row1)
		}
		if tt.form == escher.AnchorFull && (r.Col2 != 3 || r.Row2 != 4) {
			t.Errorf("%s: unexpected cell %d,%d", tt.form, r.Col2, r.Row2)
		}
		out, err := Serialize(r)
		if err != nil {
			t.Errorf("%s: serialize: %s", tt.form, err)
		} else if !bytes.Equal(out, data) {
			t.Errorf("%s: round trip mismatch:\nwant % X\ngot  % X", tt.form, data, out)
		}
	}
}

func TestDecodeSequence(t *testing.T) {
	data := hexBytes(t, drawing+"00 00 EE FF 00 00 00 00")
	recs, warn, err := Decoder{}.Decode(data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if _, ok := recs[1].(*escher.Unknown); !ok {
		t.Errorf("expected *Unknown, got %T", recs[1])
	}
}

func TestFactory(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"0F 00 00 F0", "*escher.Container"},
		{"00 00 01 F0", "*escher.Container"},
		{"0F 00 0D F0", "*escher.Textbox"},
		{"0F 00 EE FF", "*escher.Container"},
		{"00 00 EE FF", "*escher.Unknown"},
		{"00 00 1A F0", "*escher.MetafileBlip"},
		{"00 00 1D F0", "*escher.BitmapBlip"},
		{"00 00 1E F0", "*escher.BitmapBlip"},
		{"00 00 1C F0", "*escher.MetafileBlip"},
		{"00 00 18 F0", "*escher.Blip"},
		{"00 00 17 F1", "*escher.Blip"},
		{"03 00 0B F0", "*escher.Opt"},
		{"03 00 22 F1", "*escher.Opt"},
		{"00 00 11 F0", "*escher.ClientData"},
	}
	for _, tt := range tests {
		rec, err := DefaultFactory{}.Create(hexBytes(t, tt.header), 0)
		if err != nil {
			t.Errorf("%s: %s", tt.header, err)
			continue
		}
		if got := fmt.Sprintf("%T", rec); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.header, tt.want, got)
		}
	}
	if _, err := (DefaultFactory{}).Create([]byte{0, 0, 1}, 0); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
