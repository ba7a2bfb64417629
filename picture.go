package escher

import (
	"fmt"

	"golang.org/x/crypto/md4"
)

// BlipUID returns the digest used to identify a picture. The same digest is
// stored in the picture record and in the BSE record that refers to it.
func BlipUID(data []byte) (uid [16]byte) {
	h := md4.New()
	h.Write(data)
	copy(uid[:], h.Sum(nil))
	return uid
}

// NewPicture returns a BSE record embedding a picture record of the given
// type, holding data. The UID, size and reference count of the BSE record are
// filled in. Metafile pictures are compressed.
func NewPicture(blipType byte, data []byte) (*BSE, error) {
	uid := BlipUID(data)
	var blip BlipRecord
	var size int
	switch blipType {
	case BlipTypeEMF, BlipTypeWMF, BlipTypePICT:
		b := NewMetafileBlip(blipType)
		b.UID = uid
		if err := b.SetPictureData(data); err != nil {
			return nil, err
		}
		size = HeaderSize + 50 + len(b.Raw)
		blip = b
	case BlipTypeJPEG, BlipTypePNG, BlipTypeDIB:
		b := NewBitmapBlip(blipType)
		b.UID = uid
		b.Picture = data
		size = HeaderSize + 17 + len(data)
		blip = b
	default:
		return nil, fmt.Errorf("unsupported picture type %s (%d)", BlipTypeName(blipType), blipType)
	}

	bse := NewBSE()
	bse.SetInstance(uint16(blipType))
	bse.BlipTypeWin32 = blipType
	bse.BlipTypeMacOS = blipType
	bse.UID = uid
	bse.Size = uint32(size)
	bse.Ref = 1
	bse.Blip = blip
	return bse, nil
}
