package escher

import (
	"bytes"
	"fmt"
	"testing"
)

func TestPropertyID(t *testing.T) {
	id := MakePropertyID(0x141, true, true)
	if id != 0xC141 {
		t.Errorf("expected 0xC141, got 0x%04X", uint16(id))
	}
	if id.Number() != 0x141 || !id.IsBlipID() || !id.IsComplex() {
		t.Errorf("unexpected parts of 0x%04X", uint16(id))
	}
	if name := MakePropertyID(PropFillFillcolor, false, false).Name(); name != "fill.fillcolor" {
		t.Errorf("unexpected name %q", name)
	}
	if name := PropertyID(0x3FFF).Name(); name != "unknown" {
		t.Errorf("unexpected name %q", name)
	}
}

func TestNewProperty(t *testing.T) {
	tests := []struct {
		id   PropertyID
		want string
	}{
		{MakePropertyID(PropProtectionLockagainstgrouping, false, false), "*escher.BoolProperty"},
		{MakePropertyID(PropProtectionLockagainstgrouping, false, true), "*escher.BoolProperty"},
		{MakePropertyID(PropFillFillcolor, false, false), "*escher.RGBProperty"},
		{MakePropertyID(PropGeometryShapepath, false, false), "*escher.ShapePathProperty"},
		{MakePropertyID(PropTransformRotation, false, false), "*escher.SimpleProperty"},
		{MakePropertyID(PropGroupShapeShapename, false, true), "*escher.ComplexProperty"},
		{MakePropertyID(PropGeometryVertices, false, true), "*escher.ArrayProperty"},
		{MakePropertyID(PropGeometryVertices, false, false), "*escher.SimpleProperty"},
	}
	for _, tt := range tests {
		p := NewProperty(tt.id, 4)
		if got := fmt.Sprintf("%T", p); got != tt.want {
			t.Errorf("0x%04X: expected %s, got %s", uint16(tt.id), tt.want, got)
		}
	}
	if p := NewProperty(MakePropertyID(PropGroupShapeShapename, false, true), -1).(*ComplexProperty); len(p.Data) != 0 {
		t.Errorf("expected empty payload, got %d bytes", len(p.Data))
	}
}

func TestArrayProperty(t *testing.T) {
	p := NewArrayProperty(MakePropertyID(PropGeometryVertices, false, true), nil)
	if !p.EmptyComplexPart || len(p.Data) != ArrayHeaderSize {
		t.Fatalf("unexpected empty array %+v", p)
	}
	p.SetSizeOfElements(-16)
	if p.EmptyComplexPart {
		t.Error("expected array to no longer be empty")
	}
	p.SetNumElements(2)
	p.SetNumElementsInMemory(2)
	if len(p.Data) != ArrayHeaderSize+8 {
		t.Fatalf("expected %d bytes, got %d", ArrayHeaderSize+8, len(p.Data))
	}
	if !p.SetElement(1, []byte{1, 2, 3, 4}) {
		t.Error("expected element to be set")
	}
	if p.SetElement(2, []byte{1, 2, 3, 4}) {
		t.Error("expected element outside of array to be rejected")
	}
	if e := p.Element(1); !bytes.Equal(e, []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected element % X", e)
	}
	if e := p.Element(2); e != nil {
		t.Errorf("expected nil element, got % X", e)
	}

	// Growing keeps existing elements.
	p.SetNumElements(3)
	if e := p.Element(1); !bytes.Equal(e, []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected element after grow % X", e)
	}
	if n := len(p.Elements()); n != 3 {
		t.Errorf("expected 3 elements, got %d", n)
	}

	// Changing the element size discards elements.
	p.SetSizeOfElements(2)
	if len(p.Data) != ArrayHeaderSize+6 {
		t.Errorf("expected %d bytes, got %d", ArrayHeaderSize+6, len(p.Data))
	}
	if e := p.Element(0); !bytes.Equal(e, []byte{0, 0}) {
		t.Errorf("unexpected element % X", e)
	}
	if p.NumElements() != 3 || p.NumElementsInMemory() != 2 || p.SizeOfElements() != 2 {
		t.Errorf("unexpected header % X", p.Data[:ArrayHeaderSize])
	}
}

func TestPropertyTable(t *testing.T) {
	for number, meta := range propertyTable {
		if meta.Name == "" {
			t.Errorf("property %d has no name", number)
		}
	}
	for _, n := range []uint16{PropGeometryVertices, PropGeometrySegmentinfo} {
		if PropertyTypeOf(n) != TypeArray {
			t.Errorf("expected property %d to be an array", n)
		}
	}
	if meta := PropertyMetaOf(0x3FFE); meta.Name != "unknown" || meta.Type != TypeUnknown {
		t.Errorf("unexpected metadata %+v", meta)
	}
}
