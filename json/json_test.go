package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
	. "github.com/officefmt/escher/declare"
)

func TestRoundTrip(t *testing.T) {
	recs := Stream{
		Container(escher.DggContainerID,
			Record(escher.DggID, 1026, 2, 1, 1, 2),
			Container(escher.BStoreContainerID,
				Picture(escher.BlipTypeWMF, []byte("metafile"), Ref("pic")),
			),
		),
		Container(escher.DgContainerID,
			Record(escher.DgID, Instance(1)),
			Container(escher.SpContainerID,
				Record(escher.SpID, 75, 1025, escher.SpFlagHaveAnchor),
				Opt(
					Property(escher.PropBlipBliptodisplay, Blip, "pic"),
					Property(escher.PropFillFillcolor, RGB, 0x102030),
					Property(escher.PropGroupShapeShapename, Text, "Picture 1"),
					Property(escher.PropGeometryVertices, Array, int16(4), 1, 2, 3),
				),
				Record(escher.ClientAnchorID, 0, 1, 0, 2, 0, 3, 0, 4, 0),
				Record(escher.ClientDataID, []byte{1, 2, 3}),
				Record(0xF0AA, []byte("unknown")),
			),
		),
	}.Declare()

	b, err := Encode(recs)
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	decoded, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if len(decoded) != len(recs) {
		t.Fatalf("expected %d records, got %d", len(recs), len(decoded))
	}

	for i := range recs {
		want, err := ddf.Serialize(recs[i])
		if err != nil {
			t.Fatalf("serialize original %d: %s", i, err)
		}
		got, err := ddf.Serialize(decoded[i])
		if err != nil {
			t.Fatalf("serialize decoded %d: %s", i, err)
		}
		if !bytes.Equal(want, got) {
			t.Errorf("record %d: bytes differ\nwant % X\ngot  % X", i, want, got)
		}
	}
}

func TestTruncatedContainer(t *testing.T) {
	c := escher.NewContainer(escher.SpContainerID)
	c.TruncatedBytes = 12
	c.AddChild(escher.NewSp(1, 1024, 0))

	b, err := Encode([]escher.Record{c})
	if err != nil {
		t.Fatalf("encode: %s", err)
	}
	recs, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	got, ok := recs[0].(*escher.Container)
	if !ok {
		t.Fatalf("expected container, got %T", recs[0])
	}
	if got.TruncatedBytes != 12 {
		t.Errorf("expected 12 truncated bytes, got %d", got.TruncatedBytes)
	}
	if sp, ok := got.Children[0].(*escher.Sp); !ok || sp.ShapeID != 1024 {
		t.Errorf("unexpected child %#v", got.Children[0])
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{
		`{}`,
		`{"escher_version":1,"records":[]}`,
		`{"escher_version":0}`,
		`[`,
	} {
		if _, err := Decode([]byte(s)); err == nil {
			t.Errorf("%s: expected error", s)
		}
	}

	recs, err := Decode([]byte(`{"escher_version":0,"records":[{"id":61450},{"id":61450,"options":2,"body":"!"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected invalid records to be skipped, got %d", len(recs))
	}
}

func TestArrayPropertyFlags(t *testing.T) {
	p := &escher.ArrayProperty{ID: 0x8145, Data: make([]byte, 6), SizeIncludesHeader: false}
	got, ok := PropertyFromJSONInterface(roundTripInterface(t, PropertyToJSONInterface(p)))
	if !ok {
		t.Fatal("expected property")
	}
	a := got.(*escher.ArrayProperty)
	if a.SizeIncludesHeader || a.EmptyComplexPart || a.ID != p.ID {
		t.Errorf("unexpected property %#v", a)
	}
}

func roundTripInterface(t *testing.T, v interface{}) interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %s", err)
	}
	return out
}
