// The declare package is used to generate escher record trees in a
// declarative style.
//
// Most items have a Declare method, which returns a new escher structure
// corresponding to the declared item.
//
// The easiest way to use this package is to import it directly into the
// current package:
//
//     import . "github.com/officefmt/escher/declare"
//
// This allows the package's identifiers to be used directly without a
// qualifier.
package declare

import (
	"encoding/binary"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
)

// element is implemented by declarations that can appear within a Stream or
// a Container declaration.
type element interface {
	element()
}

// Stream declares a sequence of top-level records.
type Stream []element

// state carries what is collected while building, and resolved afterwards.
type state struct {
	pics  map[string]int
	npics int
	opts  map[*escher.Opt][]property
	dgs   []*dgState
}

type dgState struct {
	dg     *escher.Dg
	parent *escher.Container
}

func newState() *state {
	return &state{
		pics: map[string]int{},
		opts: map[*escher.Opt][]property{},
	}
}

// build recursively generates the record of a declaration.
func (s *state) build(e element) escher.Record {
	switch e := e.(type) {
	case container:
		c := escher.NewContainer(e.id)
		if e.instance != nil {
			c.SetInstance(uint16(*e.instance))
		}
		for _, child := range e.children {
			r := s.build(child)
			if r == nil {
				continue
			}
			if dg, ok := r.(*escher.Dg); ok && e.id == escher.DgContainerID && dg.NumShapes == 0 && dg.LastShapeID == 0 {
				s.dgs = append(s.dgs, &dgState{dg: dg, parent: c})
			}
			c.AddChild(r)
		}
		return c
	case record:
		r := e.declare()
		if r == nil {
			return nil
		}
		if e.instance != nil {
			r.Head().SetInstance(uint16(*e.instance))
		}
		return r
	case opt:
		o := escher.NewOpt()
		if e.tertiary {
			o = escher.NewTertiaryOpt()
		}
		o.Properties = make([]escher.Property, 0, len(e.properties))
		s.opts[o] = e.properties
		return o
	case picture:
		s.npics++
		if e.reference != "" {
			s.pics[e.reference] = s.npics
		}
		bse, err := escher.NewPicture(e.blipType, e.data)
		if err != nil {
			return nil
		}
		return bse
	}
	return nil
}

// resolve sets property values, now that every picture has an index, and
// fills in the shape bookkeeping of drawings.
func (s *state) resolve() {
	for o, properties := range s.opts {
		for _, prop := range properties {
			if p := prop.typ.value(prop.number, s.pics, prop.value); p != nil {
				o.Add(p)
			}
		}
		if o.Tertiary() {
			o.SetInstance(uint16(len(o.Properties)))
		}
		o.Finalize()
	}
	for _, d := range s.dgs {
		escher.Walk(d.parent, func(rec escher.Record, depth int) bool {
			if sp, ok := rec.(*escher.Sp); ok {
				d.dg.NumShapes++
				if sp.ShapeID > d.dg.LastShapeID {
					d.dg.LastShapeID = sp.ShapeID
				}
			}
			return true
		})
	}
}

// Declare evaluates the Stream declaration, generating records, setting up
// the record tree, and resolving picture references.
//
// A Dg record declared without values within a DgContainer has its shape
// count and last shape ID derived from the Sp records of the container.
func (ds Stream) Declare() []escher.Record {
	s := newState()
	recs := make([]escher.Record, 0, len(ds))
	for _, e := range ds {
		if r := s.build(e); r != nil {
			recs = append(recs, r)
		}
	}
	s.resolve()
	return recs
}

// Instance sets the instance portion of the options of the Container or
// Record declaration it appears in.
type Instance uint16

func (Instance) element() {}

// Ref declares a string that can be used to refer to the Picture under which
// it was declared. A Blip property whose value is the string resolves to the
// 1-based index of the picture among all pictures in the declaration.
type Ref string

func (Ref) element() {}

////////////////////////////////////////////////////////////////

// container represents the declaration of an escher.Container.
type container struct {
	id       uint16
	instance *Instance
	children []element
}

func (container) element() {}

// Container declares an escher.Container. It defines a container with a
// record ID, and a series of elements. An element can be an Instance, which
// sets the instance of the container. Any other element becomes a child of
// the container.
func Container(id uint16, elements ...element) container {
	c := container{id: id}
	for _, e := range elements {
		switch e := e.(type) {
		case Instance:
			c.instance = &e
		case Ref:
		default:
			c.children = append(c.children, e)
		}
	}
	return c
}

// Declare evaluates the Container declaration, generating the container and
// its descendants.
func (dc container) Declare() *escher.Container {
	s := newState()
	c := s.build(dc).(*escher.Container)
	s.resolve()
	return c
}

////////////////////////////////////////////////////////////////

type record struct {
	id       uint16
	instance *Instance
	value    []interface{}
}

func (record) element() {}

// Record declares a leaf record with the given record ID. The values are
// asserted to the fields of the record type that corresponds to the ID. Any
// value that is an Instance sets the instance of the record and is otherwise
// ignored.
//
// The value may be a single escher.Record, in which case the record itself
// is used.
//
// Numbers may be of any type except for complex numbers. Otherwise, for a
// given record ID, values must be the following:
//
//     DggID:
//         3 numbers, corresponding to the ShapeIDMax, NumShapesSaved and
//         DrawingsSaved fields, followed by any number of pairs of numbers,
//         each corresponding to a file ID cluster.
//
//     DgID:
//         2 numbers, corresponding to the NumShapes and LastShapeID fields.
//
//     SpgrID, ChildAnchorID:
//         4 numbers, corresponding to the corners of the rectangle.
//
//     SpID:
//         3 numbers, corresponding to the shape type, ShapeID and Flags.
//
//     ClientAnchorID:
//         1) 4 numbers, corresponding to Col1, Row1, Col2 and Row2.
//         2) 9 numbers, corresponding to every field in stream order.
//
//     SplitMenuColorsID:
//         4 numbers, corresponding to the four colors.
//
//     BSEID, OptID, TertiaryOptID, and picture record IDs:
//         A single string or []byte, which is decoded as the body of the
//         record. For OptID and TertiaryOptID, an Instance gives the number
//         of properties in the body. No record is produced if the body is
//         invalid. Picture and Opt are usually more convenient.
//
//     Any other ID:
//         A single string or []byte, which becomes the body of the record.
func Record(id uint16, value ...interface{}) record {
	r := record{id: id}
	for _, v := range value {
		if i, ok := v.(Instance); ok {
			r.instance = &i
			continue
		}
		r.value = append(r.value, v)
	}
	return r
}

func (dr record) num(i int) interface{} {
	if i < len(dr.value) {
		return dr.value[i]
	}
	return 0
}

func (dr record) declare() escher.Record {
	if len(dr.value) == 1 {
		if r, ok := dr.value[0].(escher.Record); ok {
			return r
		}
	}
	v := dr.num
	switch dr.id {
	case escher.DggID:
		r := escher.NewDgg()
		r.ShapeIDMax = normUint32(v(0))
		r.NumShapesSaved = normUint32(v(1))
		r.DrawingsSaved = normUint32(v(2))
		for i := 3; i+1 < len(dr.value); i += 2 {
			r.AddCluster(normUint32(v(i)), normUint32(v(i+1)), false)
		}
		return r
	case escher.DgID:
		r := escher.NewDg(0)
		r.NumShapes = normUint32(v(0))
		r.LastShapeID = normUint32(v(1))
		return r
	case escher.SpgrID:
		return escher.NewSpgr(normInt32(v(0)), normInt32(v(1)), normInt32(v(2)), normInt32(v(3)))
	case escher.ChildAnchorID:
		return escher.NewChildAnchor(normInt32(v(0)), normInt32(v(1)), normInt32(v(2)), normInt32(v(3)))
	case escher.SpID:
		return escher.NewSp(normUint16(v(0)), normUint32(v(1)), normUint32(v(2)))
	case escher.ClientAnchorID:
		if len(dr.value) >= 9 {
			return &escher.ClientAnchor{
				Base: escher.Base{ID: escher.ClientAnchorID},
				Flag: normInt16(v(0)),
				Col1: normInt16(v(1)), DX1: normInt16(v(2)),
				Row1: normInt16(v(3)), DY1: normInt16(v(4)),
				Col2: normInt16(v(5)), DX2: normInt16(v(6)),
				Row2: normInt16(v(7)), DY2: normInt16(v(8)),
				Form: escher.AnchorFull,
			}
		}
		return escher.NewClientAnchor(normInt16(v(0)), normInt16(v(1)), normInt16(v(2)), normInt16(v(3)))
	case escher.SplitMenuColorsID:
		return escher.NewSplitMenuColors(normUint32(v(0)), normUint32(v(1)), normUint32(v(2)), normUint32(v(3)))
	}

	var body []byte
	if len(dr.value) > 0 {
		body = normBytes(dr.value[0])
	}
	switch dr.id {
	case escher.ClientDataID:
		r := escher.NewClientData()
		r.Remaining = body
		return r
	case escher.TextboxID:
		return escher.NewTextbox(body)
	case escher.BSEID:
		return dr.decode(0x0002, body)
	case escher.OptID, escher.TertiaryOptID:
		return dr.decode(0x0003, body)
	}
	if escher.IsBlipID(dr.id) {
		return dr.decode(escher.Signature(dr.id), body)
	}
	return &escher.Unknown{Base: escher.Base{ID: dr.id}, Data: body}
}

// decode produces the record from a raw body, with options derived from
// options and the declared instance.
func (dr record) decode(options uint16, body []byte) escher.Record {
	if dr.instance != nil {
		options = options&0x000F | uint16(*dr.instance)<<4
	}
	data := make([]byte, escher.HeaderSize+len(body))
	binary.LittleEndian.PutUint16(data[0:], options)
	binary.LittleEndian.PutUint16(data[2:], dr.id)
	binary.LittleEndian.PutUint32(data[4:], uint32(len(body)))
	copy(data[escher.HeaderSize:], body)
	rec, _, _, err := ddf.Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		return nil
	}
	return rec
}

// Declare evaluates the Record declaration. Returns nil if the body of the
// record could not be decoded.
func (dr record) Declare() escher.Record {
	r := dr.declare()
	if r == nil {
		return nil
	}
	if dr.instance != nil {
		r.Head().SetInstance(uint16(*dr.instance))
	}
	return r
}

////////////////////////////////////////////////////////////////

type opt struct {
	tertiary   bool
	properties []property
}

func (opt) element() {}

// Opt declares a standard escher.Opt record containing the given Property
// declarations, in order. The options of the record are finalized to match
// the properties.
func Opt(properties ...property) opt {
	return opt{properties: properties}
}

// TertiaryOpt declares a tertiary escher.Opt record containing the given
// Property declarations. The instance of the record is set to the number of
// properties.
func TertiaryOpt(properties ...property) opt {
	return opt{tertiary: true, properties: properties}
}

// Declare evaluates the Opt declaration. Blip properties that refer to a
// picture by name resolve to 0.
func (do opt) Declare() *escher.Opt {
	s := newState()
	o := s.build(do).(*escher.Opt)
	s.resolve()
	return o
}

type property struct {
	number uint16
	typ    Type
	value  []interface{}
}

// Property declares a property of an Opt record. It defines the property
// number, a type corresponding to an escher.Property, and the value of the
// property.
//
// The value may be a single escher.Property, in which case the property
// itself is used. Otherwise, for a given type, values must be the following:
//
//     Simple, Bool, ShapePath:
//         A single number. Extra values are ignored.
//
//     RGB:
//         1) A single number, containing the packed color.
//         2) 3 numbers, corresponding to the red, green and blue components.
//
//     Complex:
//         A single string or []byte, which becomes the payload.
//
//     Text:
//         A single string, which is encoded as null-terminated UTF-16.
//
//     Array:
//         1) No values, declaring an empty array.
//         2) A single []byte, which is the payload including the array
//            header.
//         3) A number, which is the encoded element size, followed by the
//            elements. Each element is a []byte or a number.
//
//     Blip:
//         A single number, or a string naming a Picture declaration through
//         its Ref. The property refers to a picture by its 1-based index.
func Property(number uint16, typ Type, value ...interface{}) property {
	return property{number: number, typ: typ, value: value}
}

// Declare evaluates the Property declaration. Since the property does not
// belong to any declaration, Blip properties that refer to a picture by name
// resolve to 0.
func (prop property) Declare() escher.Property {
	return prop.typ.value(prop.number, nil, prop.value)
}

////////////////////////////////////////////////////////////////

type picture struct {
	blipType  byte
	data      []byte
	reference string
}

func (picture) element() {}

// Picture declares an escher.BSE record embedding a picture of the given
// type, as produced by escher.NewPicture. An element may be a Ref, which
// names the picture. Declarations of unsupported picture types produce no
// record, but are still counted when numbering pictures.
func Picture(blipType byte, data []byte, elements ...element) picture {
	p := picture{blipType: blipType, data: data}
	for _, e := range elements {
		if r, ok := e.(Ref); ok {
			p.reference = string(r)
		}
	}
	return p
}

// Declare evaluates the Picture declaration. Returns nil if the picture type
// is not supported.
func (dp picture) Declare() *escher.BSE {
	bse, err := escher.NewPicture(dp.blipType, dp.data)
	if err != nil {
		return nil
	}
	return bse
}
