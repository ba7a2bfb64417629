package ddf

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	data := hexBytes(t, drawing+
		"13 00 0B F0 0E 00 00 00 80 83 08 00 00 00 41 00 72 00 63 00 00 00")
	var buf strings.Builder
	warn, err := Decoder{}.Dump(&buf, data)
	if err != nil {
		t.Fatalf("dump: %s", err)
	}
	if warn != nil {
		t.Errorf("unexpected warning: %s", warn)
	}
	out := buf.String()
	for _, want := range []string{
		"Records: (count:2) {",
		"#0: DgContainer (0xF002) [offset:0 size:68",
		"Sp (0xF00A) [offset:32 size:16 instance:0x0CA",
		"(HAVEANCHOR|HASSHAPETYPE)",
		"protection.lockagainstgrouping (127): Bool 0x01040104",
		"groupshape.shapename (896): Complex (len:3) \"Arc\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		data string
		s    string
		ok   bool
	}{
		{"41 00 42 00 00 00", "AB", true},
		{"41 00 42 00", "", false},
		{"41 00 42", "", false},
		{"01 00 00 00", "", false},
		{"00 00", "", true},
	}
	for _, tt := range tests {
		s, ok := decodeUTF16(hexBytes(t, tt.data))
		if s != tt.s || ok != tt.ok {
			t.Errorf("%s: expected %q %t, got %q %t", tt.data, tt.s, tt.ok, s, ok)
		}
	}
}
