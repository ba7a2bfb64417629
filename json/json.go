// The json package is used to encode and decode escher record trees to the
// JSON format.
//
// Containers and property lists are represented structurally. The body of
// every other record is stored as base64, alongside a "fields" object that
// describes the decoded fields for reading. Only the body is used when
// decoding.
package json

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
	"github.com/officefmt/escher/errors"
)

// Encode converts a sequence of records to JSON.
func Encode(recs []escher.Record) (b []byte, err error) {
	return json.Marshal(StreamToJSONInterface(recs))
}

// EncodeIndent is like Encode, but the output is indented.
func EncodeIndent(recs []escher.Record, prefix, indent string) (b []byte, err error) {
	return json.MarshalIndent(StreamToJSONInterface(recs), prefix, indent)
}

// Decode converts JSON produced by Encode to a sequence of records.
func Decode(b []byte) (recs []escher.Record, err error) {
	var v interface{}
	err = json.Unmarshal(b, &v)
	if err != nil {
		return nil, err
	}
	recs, ok := StreamFromJSONInterface(v)
	if !ok {
		return nil, errors.New("invalid JSON record stream")
	}
	return recs, nil
}

// The current version of the schema.
const jsonVersion = 0

func indexJSON(v, i, p interface{}) bool {
	var value interface{}
	switch object := v.(type) {
	case map[string]interface{}:
		index, ok := i.(string)
		if !ok {
			return false
		}
		value, ok = object[index]
		if !ok {
			return false
		}
	case []interface{}:
		index, ok := i.(int)
		if !ok {
			return false
		}
		if index >= len(object) || index < 0 {
			return false
		}
		value = object[index]
	default:
		return false
	}
	switch p := p.(type) {
	case *bool:
		value, ok := value.(bool)
		if !ok {
			return false
		}
		*p = value
	case *float64:
		value, ok := value.(float64)
		if !ok {
			return false
		}
		*p = value
	case *string:
		value, ok := value.(string)
		if !ok {
			return false
		}
		*p = value
	case *[]interface{}:
		value, ok := value.([]interface{})
		if !ok {
			return false
		}
		*p = value
	case *map[string]interface{}:
		value, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		*p = value
	case *interface{}:
		*p = value
	}
	return true
}

func indexBytes(v interface{}, i string) ([]byte, bool) {
	var s string
	if !indexJSON(v, i, &s) {
		return nil, false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

// StreamToJSONInterface converts a sequence of records to a generic interface
// that can be read by json.Marshal.
func StreamToJSONInterface(recs []escher.Record) interface{} {
	istream := make(map[string]interface{}, 2)
	istream["escher_version"] = float64(jsonVersion)
	irecs := make([]interface{}, len(recs))
	for i, rec := range recs {
		irecs[i] = RecordToJSONInterface(rec)
	}
	istream["records"] = irecs
	return istream
}

// StreamFromJSONInterface converts a generic interface produced by
// json.Unmarshal to a sequence of records.
func StreamFromJSONInterface(istream interface{}) (recs []escher.Record, ok bool) {
	var version float64
	if !indexJSON(istream, "escher_version", &version) {
		return nil, false
	}

	switch int(version) {
	case 0:
		var irecs []interface{}
		if !indexJSON(istream, "records", &irecs) {
			return nil, false
		}
		recs = make([]escher.Record, 0, len(irecs))
		for _, irec := range irecs {
			rec, ok := RecordFromJSONInterface(irec)
			if !ok {
				continue
			}
			recs = append(recs, rec)
		}
		return recs, true
	}
	return nil, false
}

////////////////////////////////////////////////////////////////

// RecordToJSONInterface converts a record and its descendants to a generic
// interface that can be read by json.Marshal. If the body of a record cannot
// be serialized, the "body" field is omitted.
func RecordToJSONInterface(rec escher.Record) interface{} {
	h := rec.Head()
	irec := make(map[string]interface{}, 6)
	irec["name"] = rec.Name()
	irec["id"] = float64(h.ID)
	irec["options"] = float64(h.Options)

	switch rec := rec.(type) {
	case *escher.Container:
		if rec.TruncatedBytes > 0 {
			irec["truncated_bytes"] = float64(rec.TruncatedBytes)
		}
		irec["children"] = childrenToJSONInterface(rec.Children)
		return irec
	case *escher.Unknown:
		if rec.Data != nil {
			irec["body"] = base64.StdEncoding.EncodeToString(rec.Data)
		}
		if rec.Children != nil {
			irec["children"] = childrenToJSONInterface(rec.Children)
		}
		return irec
	case *escher.Opt:
		props := make([]interface{}, len(rec.Properties))
		for i, p := range rec.Properties {
			props[i] = PropertyToJSONInterface(p)
		}
		irec["properties"] = props
		return irec
	}

	if b, err := ddf.Serialize(rec); err == nil {
		irec["body"] = base64.StdEncoding.EncodeToString(b[escher.HeaderSize:])
	}
	if fields := fieldsToJSONInterface(rec); fields != nil {
		irec["fields"] = fields
	}
	return irec
}

func childrenToJSONInterface(children []escher.Record) []interface{} {
	ichildren := make([]interface{}, len(children))
	for i, child := range children {
		ichildren[i] = RecordToJSONInterface(child)
	}
	return ichildren
}

// fieldsToJSONInterface describes the fields of a leaf record.
func fieldsToJSONInterface(rec escher.Record) map[string]interface{} {
	switch rec := rec.(type) {
	case *escher.Dgg:
		clusters := make([]interface{}, len(rec.FileIDClusters))
		for i, c := range rec.FileIDClusters {
			clusters[i] = []interface{}{float64(c.DrawingGroupID), float64(c.NumShapeIDsUsed)}
		}
		return map[string]interface{}{
			"shape_id_max":     float64(rec.ShapeIDMax),
			"num_shapes_saved": float64(rec.NumShapesSaved),
			"drawings_saved":   float64(rec.DrawingsSaved),
			"clusters":         clusters,
		}
	case *escher.Dg:
		return map[string]interface{}{
			"drawing_group_id": float64(rec.DrawingGroupID()),
			"num_shapes":       float64(rec.NumShapes),
			"last_shape_id":    float64(rec.LastShapeID),
		}
	case *escher.Spgr:
		return rectToJSONInterface(rec.Rect)
	case *escher.ChildAnchor:
		return rectToJSONInterface(escher.Rect{X1: rec.DX1, Y1: rec.DY1, X2: rec.DX2, Y2: rec.DY2})
	case *escher.Sp:
		flags := make([]interface{}, 0, 4)
		for _, name := range rec.FlagNames() {
			flags = append(flags, name)
		}
		return map[string]interface{}{
			"shape_type": float64(rec.ShapeType()),
			"shape_id":   float64(rec.ShapeID),
			"flags":      flags,
		}
	case *escher.ClientAnchor:
		fields := map[string]interface{}{"form": rec.Form.String()}
		if rec.Form != escher.AnchorOpaque {
			fields["col1"] = float64(rec.Col1)
			fields["row1"] = float64(rec.Row1)
		}
		if rec.Form == escher.AnchorFull {
			fields["col2"] = float64(rec.Col2)
			fields["row2"] = float64(rec.Row2)
		}
		return fields
	case *escher.BSE:
		fields := map[string]interface{}{
			"blip_type_win32": escher.BlipTypeName(rec.BlipTypeWin32),
			"blip_type_macos": escher.BlipTypeName(rec.BlipTypeMacOS),
			"uid":             hex.EncodeToString(rec.UID[:]),
			"size":            float64(rec.Size),
			"ref":             float64(rec.Ref),
		}
		if rec.Blip != nil {
			fields["blip"] = RecordToJSONInterface(rec.Blip)
		}
		return fields
	case *escher.BitmapBlip:
		return map[string]interface{}{
			"uid":          hex.EncodeToString(rec.UID[:]),
			"picture_size": float64(len(rec.Picture)),
		}
	case *escher.MetafileBlip:
		return map[string]interface{}{
			"uid":               hex.EncodeToString(rec.UID[:]),
			"uncompressed_size": float64(rec.UncompressedSize),
			"compressed":        rec.IsCompressed(),
			"bounds":            rectToJSONInterface(rec.Bounds),
		}
	}
	return nil
}

func rectToJSONInterface(r escher.Rect) map[string]interface{} {
	return map[string]interface{}{
		"x1": float64(r.X1),
		"y1": float64(r.Y1),
		"x2": float64(r.X2),
		"y2": float64(r.Y2),
	}
}

// RecordFromJSONInterface converts a generic interface produced by
// json.Unmarshal into a record and its descendants.
//
// The body of a leaf record is decoded with the default factory of the ddf
// package.
func RecordFromJSONInterface(irec interface{}) (rec escher.Record, ok bool) {
	var id, options float64
	if !indexJSON(irec, "id", &id) || !indexJSON(irec, "options", &options) {
		return nil, false
	}
	base := escher.Base{Options: uint16(options), ID: uint16(id)}

	var children []interface{}
	hasChildren := indexJSON(irec, "children", &children)
	if escher.IsContainer(base.Options, base.ID) {
		c := &escher.Container{Base: base}
		var truncated float64
		if indexJSON(irec, "truncated_bytes", &truncated) {
			c.TruncatedBytes = int(truncated)
		}
		c.Children = childrenFromJSONInterface(children)
		return c, true
	}

	var props []interface{}
	if indexJSON(irec, "properties", &props) {
		o := &escher.Opt{Base: base, Properties: make([]escher.Property, 0, len(props))}
		for _, iprop := range props {
			p, ok := PropertyFromJSONInterface(iprop)
			if !ok {
				continue
			}
			o.Properties = append(o.Properties, p)
		}
		return o, true
	}

	body, hasBody := indexBytes(irec, "body")
	if hasChildren {
		u := &escher.Unknown{Base: base, Children: childrenFromJSONInterface(children)}
		if hasBody {
			u.Data = body
		}
		return u, true
	}
	if !hasBody {
		return nil, false
	}

	data := make([]byte, escher.HeaderSize+len(body))
	binary.LittleEndian.PutUint16(data[0:], base.Options)
	binary.LittleEndian.PutUint16(data[2:], base.ID)
	binary.LittleEndian.PutUint32(data[4:], uint32(len(body)))
	copy(data[escher.HeaderSize:], body)
	rec, _, _, err := ddf.Decoder{}.DecodeRecord(data, 0)
	if err != nil {
		return nil, false
	}
	return rec, true
}

func childrenFromJSONInterface(ichildren []interface{}) []escher.Record {
	children := make([]escher.Record, 0, len(ichildren))
	for _, ichild := range ichildren {
		child, ok := RecordFromJSONInterface(ichild)
		if !ok {
			continue
		}
		children = append(children, child)
	}
	return children
}

////////////////////////////////////////////////////////////////

// Kinds of property, as written to the "kind" field.
const (
	kindSimple    = "Simple"
	kindBool      = "Bool"
	kindRGB       = "RGB"
	kindShapePath = "ShapePath"
	kindComplex   = "Complex"
	kindArray     = "Array"
)

// PropertyToJSONInterface converts a property to a generic interface that
// can be read by json.Marshal.
func PropertyToJSONInterface(p escher.Property) interface{} {
	id := p.PropID()
	iprop := make(map[string]interface{}, 5)
	iprop["id"] = float64(id)
	iprop["name"] = id.Name()
	switch p := p.(type) {
	case *escher.SimpleProperty:
		iprop["kind"] = kindSimple
		iprop["value"] = float64(p.Value)
	case *escher.BoolProperty:
		iprop["kind"] = kindBool
		iprop["value"] = float64(p.Value)
	case *escher.RGBProperty:
		iprop["kind"] = kindRGB
		iprop["value"] = float64(p.Value)
	case *escher.ShapePathProperty:
		iprop["kind"] = kindShapePath
		iprop["value"] = float64(p.Value)
	case *escher.ComplexProperty:
		iprop["kind"] = kindComplex
		iprop["data"] = base64.StdEncoding.EncodeToString(p.Data)
	case *escher.ArrayProperty:
		iprop["kind"] = kindArray
		iprop["data"] = base64.StdEncoding.EncodeToString(p.Data)
		iprop["size_includes_header"] = p.SizeIncludesHeader
		iprop["empty_complex_part"] = p.EmptyComplexPart
	}
	return iprop
}

// PropertyFromJSONInterface converts a generic interface produced by
// json.Unmarshal into a property.
func PropertyFromJSONInterface(iprop interface{}) (p escher.Property, ok bool) {
	var fid float64
	var kind string
	if !indexJSON(iprop, "id", &fid) || !indexJSON(iprop, "kind", &kind) {
		return nil, false
	}
	id := escher.PropertyID(fid)

	var value float64
	switch kind {
	case kindSimple, kindBool, kindRGB, kindShapePath:
		if !indexJSON(iprop, "value", &value) {
			return nil, false
		}
	}
	switch kind {
	case kindSimple:
		return &escher.SimpleProperty{ID: id, Value: int32(value)}, true
	case kindBool:
		return &escher.BoolProperty{ID: id, Value: int32(value)}, true
	case kindRGB:
		return &escher.RGBProperty{ID: id, Value: int32(value)}, true
	case kindShapePath:
		return &escher.ShapePathProperty{ID: id, Value: int32(value)}, true
	case kindComplex:
		data, ok := indexBytes(iprop, "data")
		if !ok {
			return nil, false
		}
		return &escher.ComplexProperty{ID: id, Data: data}, true
	case kindArray:
		data, ok := indexBytes(iprop, "data")
		if !ok {
			return nil, false
		}
		a := &escher.ArrayProperty{ID: id, Data: data, SizeIncludesHeader: true}
		indexJSON(iprop, "size_includes_header", &a.SizeIncludesHeader)
		indexJSON(iprop, "empty_complex_part", &a.EmptyComplexPart)
		return a, true
	}
	return nil, false
}
