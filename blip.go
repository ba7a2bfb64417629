package escher

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/officefmt/escher/errors"
)

// MaxPictureSize is the largest picture that Inflate will produce.
var MaxPictureSize int64 = 64 << 20

// ErrPictureTooLarge is returned by Inflate when a compressed picture expands
// past its declared uncompressed size, or past MaxPictureSize.
var ErrPictureTooLarge = errors.New("picture exceeds uncompressed size")

// Types of picture, as stored in a BSE record. The record ID of a picture
// record is BlipStartID plus its type.
const (
	BlipTypeError   = 0x00
	BlipTypeUnknown = 0x01
	BlipTypeEMF     = 0x02
	BlipTypeWMF     = 0x03
	BlipTypePICT    = 0x04
	BlipTypeJPEG    = 0x05
	BlipTypePNG     = 0x06
	BlipTypeDIB     = 0x07
)

// BlipTypeName returns a readable name of a picture type.
func BlipTypeName(t byte) string {
	switch t {
	case BlipTypeError:
		return "ERROR"
	case BlipTypeUnknown:
		return "UNKNOWN"
	case BlipTypeEMF:
		return "EMF"
	case BlipTypeWMF:
		return "WMF"
	case BlipTypePICT:
		return "PICT"
	case BlipTypeJPEG:
		return "JPEG"
	case BlipTypePNG:
		return "PNG"
	case BlipTypeDIB:
		return "DIB"
	}
	if t < 32 {
		return "CLIENT"
	}
	return "UNKNOWN"
}

// Signatures of picture records. A picture record carries a second UID when
// its options differ from its signature by 0x10.
const (
	SignatureEMF  uint16 = 0x3D40
	SignatureWMF  uint16 = 0x2160
	SignaturePICT uint16 = 0x5420
	SignatureJPEG uint16 = 0x46A0
	SignaturePNG  uint16 = 0x6E00
	SignatureDIB  uint16 = 0x7A80
)

// Signature returns the signature for a picture record ID, or 0 if the ID
// has no known signature.
func Signature(id uint16) uint16 {
	switch id {
	case BlipEMFID:
		return SignatureEMF
	case BlipWMFID:
		return SignatureWMF
	case BlipPICTID:
		return SignaturePICT
	case BlipJPEGID:
		return SignatureJPEG
	case BlipPNGID:
		return SignaturePNG
	case BlipDIBID:
		return SignatureDIB
	}
	return 0
}

// Values of MetafileBlip.Compression.
const (
	CompressionDeflate byte = 0x00
	CompressionNone    byte = 0xFE
)

// BlipRecord is implemented by picture records.
type BlipRecord interface {
	Record

	// PictureData returns the picture, uncompressed.
	PictureData() []byte

	// SetPictureData replaces the picture.
	SetPictureData(data []byte) error
}

////////////////////////////////////////////////////////////////

// Blip is a picture record of a type without a specific layout. The body is
// the picture data.
type Blip struct {
	Base
	Picture []byte
}

func (r *Blip) Name() string { return RecordName(r.ID) }

func (r *Blip) PictureData() []byte { return r.Picture }

func (r *Blip) SetPictureData(data []byte) error {
	r.Picture = data
	return nil
}

////////////////////////////////////////////////////////////////

// BitmapBlip is a JPEG, PNG or DIB picture record.
type BitmapBlip struct {
	Base

	// UID is the digest of the picture data.
	UID [16]byte

	// Marker is usually 0xFF.
	Marker byte

	// Picture is the picture data.
	Picture []byte
}

// NewBitmapBlip returns an empty bitmap picture record of the given picture
// type.
func NewBitmapBlip(blipType byte) *BitmapBlip {
	id := BlipStartID + uint16(blipType)
	return &BitmapBlip{
		Base:   Base{Options: Signature(id), ID: id},
		Marker: 0xFF,
	}
}

func (r *BitmapBlip) Name() string { return RecordName(r.ID) }

func (r *BitmapBlip) PictureData() []byte { return r.Picture }

func (r *BitmapBlip) SetPictureData(data []byte) error {
	r.Picture = data
	return nil
}

////////////////////////////////////////////////////////////////

// MetafileBlip is an EMF, WMF or PICT picture record. The picture is usually
// stored compressed with DEFLATE.
type MetafileBlip struct {
	Base

	// UID is the digest of the picture data.
	UID [16]byte

	// SecondaryUID is present only when the options differ from the
	// signature of the record by 0x10.
	SecondaryUID []byte

	// UncompressedSize is the size of the uncompressed picture.
	UncompressedSize uint32

	// Bounds is the clipping region of the metafile.
	Bounds Rect

	// SizeEMU is the size of the metafile in EMUs.
	SizeEMU Size

	// CompressedSize is the size of Raw.
	CompressedSize uint32

	// Compression is CompressionDeflate or CompressionNone.
	Compression byte

	// Filter is always 0xFE.
	Filter byte

	// Raw is the picture as stored.
	Raw []byte

	// Remaining holds bytes that follow the picture.
	Remaining []byte

	picture []byte
}

// NewMetafileBlip returns an empty metafile picture record of the given
// picture type.
func NewMetafileBlip(blipType byte) *MetafileBlip {
	id := BlipStartID + uint16(blipType)
	return &MetafileBlip{
		Base:        Base{Options: Signature(id), ID: id},
		Compression: CompressionNone,
		Filter:      0xFE,
	}
}

func (r *MetafileBlip) Name() string { return RecordName(r.ID) }

// HasSecondaryUID returns whether the options indicate a second UID.
func (r *MetafileBlip) HasSecondaryUID() bool {
	return r.Options^Signature(r.ID) == 0x10
}

// IsCompressed returns whether Raw is compressed.
func (r *MetafileBlip) IsCompressed() bool {
	return r.Compression == CompressionDeflate
}

// PictureData returns the uncompressed picture. Before Inflate or
// SetPictureData are called, this returns Raw.
func (r *MetafileBlip) PictureData() []byte {
	if r.picture == nil {
		return r.Raw
	}
	return r.picture
}

// Inflate derives the picture from Raw. If the picture is not compressed,
// Raw is used as-is. If decompression fails, Raw is used as the picture and
// the error is returned.
//
// The output is limited to UncompressedSize bytes, or MaxPictureSize if
// UncompressedSize is zero or larger.
func (r *MetafileBlip) Inflate() error {
	if !r.IsCompressed() {
		r.picture = r.Raw
		return nil
	}
	limit := MaxPictureSize
	if r.UncompressedSize > 0 && int64(r.UncompressedSize) < limit {
		limit = int64(r.UncompressedSize)
	}
	data, err := inflate(r.Raw, limit)
	if err != nil {
		r.picture = r.Raw
		return fmt.Errorf("inflate picture: %w", err)
	}
	r.picture = data
	return nil
}

// SetPictureData replaces the picture, compressing it with DEFLATE. Raw,
// UncompressedSize, CompressedSize and Compression are updated to match.
func (r *MetafileBlip) SetPictureData(data []byte) error {
	raw, err := deflate(data)
	if err != nil {
		return fmt.Errorf("deflate picture: %w", err)
	}
	r.picture = data
	r.UncompressedSize = uint32(len(data))
	r.Raw = raw
	r.CompressedSize = uint32(len(raw))
	r.Compression = CompressionDeflate
	return nil
}

func inflate(data []byte, limit int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	b, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, ErrPictureTooLarge
	}
	return b, nil
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
