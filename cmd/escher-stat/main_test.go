package main

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
	. "github.com/officefmt/escher/declare"
)

func drawing() []escher.Record {
	return Stream{
		Container(escher.DggContainerID,
			Container(escher.BStoreContainerID,
				Picture(escher.BlipTypePNG, []byte("png")),
			),
		),
		Container(escher.DgContainerID,
			Record(escher.DgID),
			Container(escher.SpContainerID,
				Record(escher.SpID, 1, 1024, 0),
				Opt(
					Property(escher.PropFillFillcolor, RGB, 0xFF),
					Property(escher.PropGroupShapeShapename, Text, "Shape"),
				),
			),
		),
	}.Declare()
}

func TestFill(t *testing.T) {
	var s Stats
	s.Fill(drawing())

	if s.RecordCount != 9 {
		t.Errorf("expected 9 records, got %d", s.RecordCount)
	}
	if s.MaxDepth != 2 {
		t.Errorf("expected depth 2, got %d", s.MaxDepth)
	}
	if s.PropertyCount != 2 {
		t.Errorf("expected 2 properties, got %d", s.PropertyCount)
	}
	if n := s.RecordNameCount["SpContainer"]; n != 1 {
		t.Errorf("expected 1 SpContainer, got %d", n)
	}
	if n := s.PictureTypeCount["PNG"]; n != 1 {
		t.Errorf("expected 1 PNG picture, got %d", n)
	}
	if n := s.PropertyNameCount["fill.fillcolor"]; n != 1 {
		t.Errorf("expected 1 fill color, got %d", n)
	}
	if len(s.LargestProperties) != 1 {
		t.Errorf("expected 1 large property, got %d", len(s.LargestProperties))
	}
}

func TestStatWork(t *testing.T) {
	dir := t.TempDir()
	var data []byte
	for _, rec := range drawing() {
		b, err := ddf.Serialize(rec)
		if err != nil {
			t.Fatalf("serialize: %s", err)
		}
		data = append(data, b...)
	}
	path := filepath.Join(dir, "drawing.bin")
	if err := os.WriteFile(path, data, 0o666); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0o666); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	stats := []*Stats{{File: path}, {File: empty}, {File: filepath.Join(dir, "missing.bin")}}
	for _, s := range stats {
		wg.Add(1)
		(&statWork{stats: s, wg: &wg}).DoWork(0)
	}
	wg.Wait()

	if stats[0].Size != len(data) || stats[0].RecordCount != 9 || stats[0].Error != "" {
		t.Errorf("unexpected stats %+v", stats[0])
	}
	if stats[1].Size != 0 || stats[1].RecordCount != 0 || stats[1].Error != "" {
		t.Errorf("unexpected stats for empty file %+v", stats[1])
	}
	if stats[2].Error == "" {
		t.Error("expected error for missing file")
	}
}
