package escher

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestBlipUID(t *testing.T) {
	uid := BlipUID([]byte("abc"))
	if got := hex.EncodeToString(uid[:]); got != "a448017aaf21d8525fc10ae87aa6729d" {
		t.Errorf("unexpected digest %s", got)
	}
}

func TestMetafilePictureData(t *testing.T) {
	b := NewMetafileBlip(BlipTypeWMF)
	if b.IsCompressed() || b.Options != SignatureWMF || b.ID != BlipWMFID {
		t.Errorf("unexpected new blip %+v", b)
	}
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 100)
	if err := b.SetPictureData(data); err != nil {
		t.Fatalf("set picture: %s", err)
	}
	if !b.IsCompressed() || int(b.UncompressedSize) != len(data) || int(b.CompressedSize) != len(b.Raw) {
		t.Errorf("unexpected fields %d %d %d", b.Compression, b.UncompressedSize, b.CompressedSize)
	}
	if !bytes.Equal(b.PictureData(), data) {
		t.Error("unexpected picture data")
	}

	c := &MetafileBlip{Raw: b.Raw, Compression: CompressionDeflate}
	if !bytes.Equal(c.PictureData(), b.Raw) {
		t.Error("expected raw bytes before inflate")
	}
	if err := c.Inflate(); err != nil {
		t.Fatalf("inflate: %s", err)
	}
	if !bytes.Equal(c.PictureData(), data) {
		t.Error("unexpected inflated picture")
	}

	c = &MetafileBlip{Raw: []byte{1, 2, 3}, Compression: CompressionDeflate}
	if err := c.Inflate(); err == nil {
		t.Error("expected inflate error")
	}
	if !bytes.Equal(c.PictureData(), []byte{1, 2, 3}) {
		t.Error("expected raw bytes after failed inflate")
	}
}

func TestInflateLimit(t *testing.T) {
	data := make([]byte, 4096)
	b := NewMetafileBlip(BlipTypeEMF)
	if err := b.SetPictureData(data); err != nil {
		t.Fatalf("set picture: %s", err)
	}

	tests := []struct {
		size uint32
		max  int64
		fail bool
	}{
		{4096, 64 << 20, false},
		{0, 64 << 20, false},
		{100, 64 << 20, true},
		{0, 1024, true},
		{8192, 1024, true},
	}
	defer func(max int64) { MaxPictureSize = max }(MaxPictureSize)
	for _, tt := range tests {
		MaxPictureSize = tt.max
		c := &MetafileBlip{Raw: b.Raw, Compression: CompressionDeflate, UncompressedSize: tt.size}
		err := c.Inflate()
		if got := errors.Is(err, ErrPictureTooLarge); got != tt.fail {
			t.Errorf("size %d, max %d: expected failure %t, got %v", tt.size, tt.max, tt.fail, err)
		}
		want := data
		if tt.fail {
			want = b.Raw
		}
		if !bytes.Equal(c.PictureData(), want) {
			t.Errorf("size %d, max %d: unexpected picture data", tt.size, tt.max)
		}
	}
}

func TestSecondaryUID(t *testing.T) {
	b := NewMetafileBlip(BlipTypeEMF)
	if b.HasSecondaryUID() {
		t.Error("unexpected secondary UID")
	}
	b.Options = SignatureEMF ^ 0x10
	if !b.HasSecondaryUID() {
		t.Error("expected secondary UID")
	}
}

func TestNewPicture(t *testing.T) {
	bse, err := NewPicture(BlipTypeJPEG, []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("new picture: %s", err)
	}
	if bse.Instance() != BlipTypeJPEG || bse.Version() != 2 {
		t.Errorf("unexpected options 0x%04X", bse.Options)
	}
	if bse.Size != 8+17+2 {
		t.Errorf("unexpected size %d", bse.Size)
	}
	if b, ok := bse.Blip.(*BitmapBlip); !ok || b.ID != BlipJPEGID || b.UID != bse.UID {
		t.Errorf("unexpected picture %#v", bse.Blip)
	}
	if _, err := NewPicture(BlipTypeUnknown, nil); err == nil {
		t.Error("expected error for unknown picture type")
	}
}

func TestBlipTypeName(t *testing.T) {
	tests := map[byte]string{
		BlipTypeError: "ERROR",
		BlipTypeEMF:   "EMF",
		BlipTypeDIB:   "DIB",
		20:            "CLIENT",
		200:           "UNKNOWN",
	}
	for typ, want := range tests {
		if got := BlipTypeName(typ); got != want {
			t.Errorf("%d: expected %s, got %s", typ, want, got)
		}
	}
	if got := RecordName(BlipPNGID); got != "BlipPNG" {
		t.Errorf("unexpected record name %q", got)
	}
	if got := RecordName(BlipStartID + 40); got != "Blip" {
		t.Errorf("unexpected record name %q", got)
	}
}
