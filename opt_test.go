package escher

import (
	"testing"
)

func numbers(props []Property) []uint16 {
	n := make([]uint16, len(props))
	for i, p := range props {
		n[i] = p.PropID().Number()
	}
	return n
}

func TestOptSortStable(t *testing.T) {
	a := &SimpleProperty{ID: 5, Value: 1}
	b := &SimpleProperty{ID: 2, Value: 2}
	c := &SimpleProperty{ID: 5 | propertyBlipIDFlag, Value: 3}
	d := &SimpleProperty{ID: 1, Value: 4}
	opt := NewOpt()
	opt.Properties = []Property{a, b, c, d}
	opt.Sort()
	want := []Property{d, b, a, c}
	for i, p := range opt.Properties {
		if p != want[i] {
			t.Errorf("#%d: expected %+v, got %+v", i, want[i], p)
		}
	}
}

func TestOptSet(t *testing.T) {
	opt := NewOpt()
	opt.Add(&SimpleProperty{ID: 9, Value: 1})
	opt.Add(&SimpleProperty{ID: 3, Value: 2})
	opt.Add(&SimpleProperty{ID: 3 | propertyBlipIDFlag, Value: 3})

	opt.Set(&SimpleProperty{ID: 3, Value: 4})
	if got := numbers(opt.Properties); len(got) != 3 || got[0] != 3 || got[1] != 3 || got[2] != 9 {
		t.Fatalf("unexpected properties %v", got)
	}
	// The property with a different full ID is kept, and precedes the
	// replacement.
	if v := opt.Properties[0].(*SimpleProperty).Value; v != 3 {
		t.Errorf("expected value 3, got %d", v)
	}
	if v := opt.Properties[1].(*SimpleProperty).Value; v != 4 {
		t.Errorf("expected value 4, got %d", v)
	}

	opt.Set(&SimpleProperty{ID: 1, Value: 5})
	if got := numbers(opt.Properties); got[0] != 1 {
		t.Errorf("expected new property first, got %v", got)
	}
}

func TestOptLookupRemove(t *testing.T) {
	opt := NewOpt()
	opt.Add(&SimpleProperty{ID: 4, Value: 1})
	opt.Add(&RGBProperty{ID: MakePropertyID(PropFillFillcolor, false, false), Value: 2})
	if p, ok := opt.Lookup(PropFillFillcolor).(*RGBProperty); !ok || p.Value != 2 {
		t.Errorf("unexpected lookup result %#v", opt.Lookup(PropFillFillcolor))
	}
	if opt.Lookup(100) != nil {
		t.Error("expected nil for missing property")
	}
	if !opt.Remove(4) {
		t.Error("expected property to be removed")
	}
	if opt.Remove(4) {
		t.Error("expected no property to be removed")
	}
	if len(opt.Properties) != 1 {
		t.Errorf("expected 1 property, got %d", len(opt.Properties))
	}
}

func TestOptFinalOptions(t *testing.T) {
	opt := NewOpt()
	opt.SetInstance(7)
	for i := 0; i < 3; i++ {
		opt.Add(&SimpleProperty{ID: PropertyID(i)})
	}
	if got := opt.FinalOptions(); got != 0x0033 {
		t.Errorf("expected 0x0033, got 0x%04X", got)
	}
	if opt.Instance() != 7 {
		t.Error("FinalOptions modified options")
	}
	opt.Finalize()
	if opt.Instance() != 3 || opt.Version() != 3 {
		t.Errorf("unexpected options 0x%04X", opt.Options)
	}

	tertiary := NewTertiaryOpt()
	tertiary.Options = 0x0123
	tertiary.Add(&SimpleProperty{ID: 1})
	tertiary.Finalize()
	if tertiary.Options != 0x0123 {
		t.Errorf("expected tertiary options unchanged, got 0x%04X", tertiary.Options)
	}
	if tertiary.Name() != "TertiaryOpt" || opt.Name() != "Opt" {
		t.Errorf("unexpected names %q %q", tertiary.Name(), opt.Name())
	}
}
