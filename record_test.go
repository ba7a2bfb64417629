package escher

import (
	"testing"
)

func TestIsContainer(t *testing.T) {
	tests := []struct {
		options uint16
		id      uint16
		want    bool
	}{
		{0x0000, DggContainerID, true},
		{0x0000, SolverContainerID, true},
		{0x000F, SpContainerID, true},
		{0x000F, TextboxID, false},
		{0x000F, 0xF123, true},
		{0x0002, SpID, false},
		{0x001F, 0xFFEE, true},
		{0x0010, 0xFFEE, false},
	}
	for _, tt := range tests {
		if got := IsContainer(tt.options, tt.id); got != tt.want {
			t.Errorf("0x%04X 0x%04X: expected %t, got %t", tt.options, tt.id, tt.want, got)
		}
		h := Header{Options: tt.options, RecordID: tt.id}
		if got := h.IsContainer(); got != tt.want {
			t.Errorf("header 0x%04X 0x%04X: expected %t, got %t", tt.options, tt.id, tt.want, got)
		}
	}
}

func TestBaseOptions(t *testing.T) {
	var b Base
	b.SetVersion(0x2)
	b.SetInstance(0xCA)
	if b.Options != 0x0CA2 {
		t.Errorf("expected 0x0CA2, got 0x%04X", b.Options)
	}
	b.SetVersion(0x1F)
	if b.Version() != 0xF || b.Instance() != 0xCA || !b.IsContainer() {
		t.Errorf("unexpected options 0x%04X", b.Options)
	}
	h := Header{Options: 0x0CA2, RecordID: SpID, Length: 8}
	if h.Instance() != 0xCA || h.Version() != 2 || h.String() != "[0x0CA2,0xF00A,8]" {
		t.Errorf("unexpected header %s", h)
	}
}

func TestRecordName(t *testing.T) {
	tests := map[uint16]string{
		DggContainerID: "DggContainer",
		TextboxID:      "ClientTextbox",
		TextboxNameID:  "Textbox",
		TertiaryOptID:  "TertiaryOpt",
		BlipEMFID:      "BlipEMF",
		0xFFEE:         "Unknown 0xffee",
	}
	for id, want := range tests {
		if got := RecordName(id); got != want {
			t.Errorf("0x%04X: expected %q, got %q", id, want, got)
		}
	}
}

func TestWalk(t *testing.T) {
	dg := NewContainer(DgContainerID)
	dg.AddChild(NewDg(1))
	spgr := NewContainer(SpgrContainerID)
	dg.AddChild(spgr)
	for i := uint32(0); i < 2; i++ {
		sp := NewContainer(SpContainerID)
		sp.AddChild(NewSp(1, 1024+i, SpFlagChild))
		sp.AddChild(NewChildAnchor(0, 0, 10, 10))
		spgr.AddChild(sp)
	}

	var names []string
	var depths []int
	Walk(dg, func(rec Record, depth int) bool {
		names = append(names, rec.Name())
		depths = append(depths, depth)
		return rec.Head().ID != SpContainerID || len(names) < 5
	})
	want := []string{"DgContainer", "Dg", "SpgrContainer", "SpContainer", "Sp", "ChildAnchor", "SpContainer"}
	wantDepths := []int{0, 1, 1, 2, 3, 3, 2}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] || depths[i] != wantDepths[i] {
			t.Errorf("#%d: expected %s at %d, got %s at %d", i, want[i], wantDepths[i], names[i], depths[i])
		}
	}

	if n := len(dg.RecordsByID(SpID)); n != 2 {
		t.Errorf("expected 2 Sp records, got %d", n)
	}
	if n := len(dg.Containers()); n != 1 {
		t.Errorf("expected 1 container, got %d", n)
	}
	if dg.ChildByID(DgID) == nil || dg.ChildByID(SpID) != nil {
		t.Error("unexpected ChildByID result")
	}
	sp := spgr.Children[0]
	if !spgr.RemoveChild(sp) || spgr.RemoveChild(sp) {
		t.Error("unexpected RemoveChild result")
	}
	if len(spgr.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(spgr.Children))
	}
}

func TestDggClusters(t *testing.T) {
	dgg := NewDgg()
	if dgg.NumIDClusters() != 0 {
		t.Errorf("expected 0 clusters, got %d", dgg.NumIDClusters())
	}
	dgg.AddCluster(3, 1, false)
	dgg.AddCluster(1, 2, false)
	dgg.AddCluster(2, 3, true)
	if dgg.NumIDClusters() != 4 || dgg.MaxDrawingGroupID() != 3 {
		t.Errorf("unexpected clusters %+v", dgg.FileIDClusters)
	}
	for i, c := range dgg.FileIDClusters {
		if c.DrawingGroupID != uint32(i+1) {
			t.Errorf("#%d: unexpected cluster %+v", i, c)
		}
	}
}

func TestSpFlagNames(t *testing.T) {
	sp := NewSp(202, 1025, SpFlagHaveAnchor|SpFlagHaveSpt)
	names := sp.FlagNames()
	if len(names) != 2 || names[0] != "HAVEANCHOR" || names[1] != "HASSHAPETYPE" {
		t.Errorf("unexpected names %v", names)
	}
	if sp.ShapeType() != 202 || sp.Options != 0x0CA2 {
		t.Errorf("unexpected options 0x%04X", sp.Options)
	}
}
