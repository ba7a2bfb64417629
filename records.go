package escher

import (
	"sort"
)

////////////////////////////////////////////////////////////////

// FileIDCluster describes a range of shape IDs claimed by a drawing.
type FileIDCluster struct {
	DrawingGroupID  uint32
	NumShapeIDsUsed uint32
}

// Dgg is the drawing group record. It holds document-wide bookkeeping of
// shape IDs.
type Dgg struct {
	Base

	// ShapeIDMax is the current maximum shape ID.
	ShapeIDMax uint32

	// NumShapesSaved is the number of shapes saved.
	NumShapesSaved uint32

	// DrawingsSaved is the number of drawings saved.
	DrawingsSaved uint32

	// FileIDClusters lists the shape ID clusters. The number of clusters
	// stored in the record is derived from the length of this list.
	FileIDClusters []FileIDCluster
}

// NewDgg returns an empty Dgg record.
func NewDgg() *Dgg {
	return &Dgg{Base: Base{ID: DggID}}
}

func (r *Dgg) Name() string { return "Dgg" }

// NumIDClusters returns the cluster count as it is stored in the record,
// which is one more than the number of clusters. Returns 0 if there are no
// clusters.
func (r *Dgg) NumIDClusters() uint32 {
	if r.FileIDClusters == nil {
		return 0
	}
	return uint32(len(r.FileIDClusters) + 1)
}

// MaxDrawingGroupID returns the largest drawing group ID among the clusters.
func (r *Dgg) MaxDrawingGroupID() uint32 {
	var max uint32
	for _, c := range r.FileIDClusters {
		if c.DrawingGroupID > max {
			max = c.DrawingGroupID
		}
	}
	return max
}

// AddCluster appends a cluster. If sorted is true, the clusters are then
// ordered by drawing group ID, preserving the order of equal IDs.
func (r *Dgg) AddCluster(dgID, numShapeIDsUsed uint32, sorted bool) {
	r.FileIDClusters = append(r.FileIDClusters, FileIDCluster{
		DrawingGroupID:  dgID,
		NumShapeIDsUsed: numShapeIDsUsed,
	})
	if sorted {
		sort.SliceStable(r.FileIDClusters, func(i, j int) bool {
			return r.FileIDClusters[i].DrawingGroupID < r.FileIDClusters[j].DrawingGroupID
		})
	}
}

////////////////////////////////////////////////////////////////

// Dg is the drawing record, holding the shape bookkeeping of one drawing.
type Dg struct {
	Base

	// NumShapes is the number of shapes in the drawing.
	NumShapes uint32

	// LastShapeID is the last shape ID given to a shape in the drawing.
	LastShapeID uint32
}

// NewDg returns a Dg record for the given drawing.
func NewDg(drawingGroupID uint16) *Dg {
	r := &Dg{Base: Base{ID: DgID}}
	r.SetInstance(drawingGroupID)
	return r
}

func (r *Dg) Name() string { return "Dg" }

// DrawingGroupID returns the ID of the drawing, which is stored in the
// instance of the options.
func (r *Dg) DrawingGroupID() uint16 {
	return r.Instance()
}

// IncrementShapeCount increases NumShapes by one.
func (r *Dg) IncrementShapeCount() {
	r.NumShapes++
}

////////////////////////////////////////////////////////////////

// Spgr is the shape group record, holding the coordinate system of a group.
type Spgr struct {
	Base
	Rect
}

// NewSpgr returns an Spgr record with the given bounds.
func NewSpgr(x1, y1, x2, y2 int32) *Spgr {
	return &Spgr{
		Base: Base{Options: 0x0001, ID: SpgrID},
		Rect: Rect{X1: x1, Y1: y1, X2: x2, Y2: y2},
	}
}

func (r *Spgr) Name() string { return "Spgr" }

////////////////////////////////////////////////////////////////

// Flags of an Sp record.
const (
	SpFlagGroup      uint32 = 0x0001
	SpFlagChild      uint32 = 0x0002
	SpFlagPatriarch  uint32 = 0x0004
	SpFlagDeleted    uint32 = 0x0008
	SpFlagOLEShape   uint32 = 0x0010
	SpFlagHaveMaster uint32 = 0x0020
	SpFlagFlipHoriz  uint32 = 0x0040
	SpFlagFlipVert   uint32 = 0x0080
	SpFlagConnector  uint32 = 0x0100
	SpFlagHaveAnchor uint32 = 0x0200
	SpFlagBackground uint32 = 0x0400
	SpFlagHaveSpt    uint32 = 0x0800
)

var spFlagNames = []struct {
	flag uint32
	name string
}{
	{SpFlagGroup, "GROUP"},
	{SpFlagChild, "CHILD"},
	{SpFlagPatriarch, "PATRIARCH"},
	{SpFlagDeleted, "DELETED"},
	{SpFlagOLEShape, "OLESHAPE"},
	{SpFlagHaveMaster, "HAVEMASTER"},
	{SpFlagFlipHoriz, "FLIPHORIZ"},
	{SpFlagFlipVert, "FLIPVERT"},
	{SpFlagConnector, "CONNECTOR"},
	{SpFlagHaveAnchor, "HAVEANCHOR"},
	{SpFlagBackground, "BACKGROUND"},
	{SpFlagHaveSpt, "HASSHAPETYPE"},
}

// Sp is the shape record.
type Sp struct {
	Base

	// ShapeID is the unique ID of the shape.
	ShapeID uint32

	// Flags is a combination of SpFlag values.
	Flags uint32
}

// NewSp returns an Sp record for a shape of the given type.
func NewSp(shapeType uint16, shapeID, flags uint32) *Sp {
	r := &Sp{Base: Base{Options: 0x0002, ID: SpID}, ShapeID: shapeID, Flags: flags}
	r.SetInstance(shapeType)
	return r
}

func (r *Sp) Name() string { return "Sp" }

// ShapeType returns the type of the shape, which is stored in the instance
// of the options.
func (r *Sp) ShapeType() uint16 {
	return r.Instance()
}

// Has returns whether all of the given flags are set.
func (r *Sp) Has(flags uint32) bool {
	return r.Flags&flags == flags
}

// FlagNames returns the names of the set flags, in ascending order of flag
// value.
func (r *Sp) FlagNames() []string {
	var names []string
	for _, f := range spFlagNames {
		if r.Flags&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

////////////////////////////////////////////////////////////////

// ChildAnchor anchors a shape within the coordinate system of its group.
type ChildAnchor struct {
	Base
	DX1, DY1, DX2, DY2 int32
}

// NewChildAnchor returns a ChildAnchor with the given coordinates.
func NewChildAnchor(dx1, dy1, dx2, dy2 int32) *ChildAnchor {
	return &ChildAnchor{
		Base: Base{ID: ChildAnchorID},
		DX1:  dx1, DY1: dy1, DX2: dx2, DY2: dy2,
	}
}

func (r *ChildAnchor) Name() string { return "ChildAnchor" }

////////////////////////////////////////////////////////////////

// AnchorForm indicates which layout a ClientAnchor body uses.
type AnchorForm uint8

const (
	// AnchorFull is the 18-byte layout with all nine fields.
	AnchorFull AnchorForm = iota
	// AnchorShort is the 8-byte layout with only Flag, Col1, DX1 and Row1.
	AnchorShort
	// AnchorOpaque is a 4-byte body whose layout is not known. The fields
	// are left at zero and the body is kept in Remaining.
	AnchorOpaque
)

func (f AnchorForm) String() string {
	switch f {
	case AnchorFull:
		return "Full"
	case AnchorShort:
		return "Short"
	case AnchorOpaque:
		return "Opaque"
	}
	return "Invalid"
}

// ClientAnchor anchors a shape to a location defined by the host
// application, typically a cell range.
type ClientAnchor struct {
	Base

	Flag int16
	Col1 int16
	DX1  int16
	Row1 int16
	DY1  int16
	Col2 int16
	DX2  int16
	Row2 int16
	DY2  int16

	// Form is the layout of the body.
	Form AnchorForm

	// Remaining holds bytes that follow the fields.
	Remaining []byte
}

// NewClientAnchor returns a full ClientAnchor spanning the given cells.
func NewClientAnchor(col1, row1, col2, row2 int16) *ClientAnchor {
	return &ClientAnchor{
		Base: Base{ID: ClientAnchorID},
		Col1: col1, Row1: row1, Col2: col2, Row2: row2,
		Form: AnchorFull,
	}
}

func (r *ClientAnchor) Name() string { return "ClientAnchor" }

////////////////////////////////////////////////////////////////

// ClientData holds data of the host application associated with a shape.
type ClientData struct {
	Base
	Remaining []byte
}

// NewClientData returns an empty ClientData record.
func NewClientData() *ClientData {
	return &ClientData{Base: Base{ID: ClientDataID}}
}

func (r *ClientData) Name() string { return "ClientData" }

////////////////////////////////////////////////////////////////

// Textbox holds the text of a shape in a format defined by the host
// application.
type Textbox struct {
	Base
	Data []byte
}

// NewTextbox returns a Textbox record containing data.
func NewTextbox(data []byte) *Textbox {
	return &Textbox{Base: Base{ID: TextboxID}, Data: data}
}

func (r *Textbox) Name() string { return "ClientTextbox" }

////////////////////////////////////////////////////////////////

// SplitMenuColors holds the colors of the most recently used fill, line,
// shadow and 3D colors.
type SplitMenuColors struct {
	Base
	Color1 uint32
	Color2 uint32
	Color3 uint32
	Color4 uint32
}

// NewSplitMenuColors returns a SplitMenuColors record with the given colors.
func NewSplitMenuColors(c1, c2, c3, c4 uint32) *SplitMenuColors {
	r := &SplitMenuColors{
		Base:   Base{ID: SplitMenuColorsID},
		Color1: c1, Color2: c2, Color3: c3, Color4: c4,
	}
	r.SetInstance(4)
	return r
}

func (r *SplitMenuColors) Name() string { return "SplitMenuColors" }

////////////////////////////////////////////////////////////////

// BSE is a blip store entry, describing a picture that may be shared by
// several shapes.
type BSE struct {
	Base

	// BlipTypeWin32 is the picture type required on Windows.
	BlipTypeWin32 byte
	// BlipTypeMacOS is the picture type required on Mac OS.
	BlipTypeMacOS byte
	// UID is the digest of the picture data.
	UID [16]byte
	// Tag is unused.
	Tag uint16
	// Size is the size of the picture record in the delay stream.
	Size uint32
	// Ref is the reference count of the picture.
	Ref uint32
	// Offset is the offset of the picture in the delay stream.
	Offset uint32
	// Usage indicates how the picture is used.
	Usage byte
	// NameLength is the length of the picture name.
	NameLength byte
	Unused2    byte
	Unused3    byte

	// Blip is the embedded picture record. It is nil when the picture lives
	// in the delay stream.
	Blip BlipRecord

	// Remaining holds bytes that follow the embedded picture.
	Remaining []byte
}

// NewBSE returns an empty BSE record.
func NewBSE() *BSE {
	return &BSE{Base: Base{Options: 0x0002, ID: BSEID}}
}

func (r *BSE) Name() string { return "BSE" }

////////////////////////////////////////////////////////////////

// Unknown is a record whose ID is not recognized. Its body is kept as-is. If
// the options mark it as a container, its body is decoded as child records
// instead.
type Unknown struct {
	Base
	Data     []byte
	Children []Record
}

func (r *Unknown) Name() string { return RecordName(r.ID) }

func (r *Unknown) ChildRecords() []Record { return r.Children }

func (r *Unknown) SetChildRecords(children []Record) { r.Children = children }
