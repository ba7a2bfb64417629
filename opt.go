package escher

import (
	"sort"
)

// optVersion is the version written for a standard Opt record.
const optVersion = 0x3

// Opt is a property list record. It appears in two kinds: the standard shape
// property list (OptID), and the tertiary property list (TertiaryOptID).
//
// The property count of a standard Opt record is kept in the instance of its
// options, and the version is always 3. Finalize brings the options in line
// with the property list; the encoder calls it before writing. The options of
// a tertiary Opt record are left as they are.
type Opt struct {
	Base
	Properties []Property
}

// NewOpt returns an empty standard Opt record.
func NewOpt() *Opt {
	return &Opt{Base: Base{Options: optVersion, ID: OptID}}
}

// NewTertiaryOpt returns an empty tertiary Opt record. The caller is
// responsible for keeping the instance equal to the number of properties,
// since Finalize leaves it alone.
func NewTertiaryOpt() *Opt {
	return &Opt{Base: Base{Options: optVersion, ID: TertiaryOptID}}
}

func (r *Opt) Name() string {
	if r.Tertiary() {
		return "TertiaryOpt"
	}
	return "Opt"
}

// Tertiary returns whether r is a tertiary property list.
func (r *Opt) Tertiary() bool {
	return r.ID == TertiaryOptID
}

// FinalOptions returns the options that r will be written with, without
// modifying r.
func (r *Opt) FinalOptions() uint16 {
	if r.Tertiary() {
		return r.Options
	}
	return uint16(len(r.Properties))<<4 | optVersion
}

// Finalize sets the options of a standard Opt record to match the property
// list. It has no effect on a tertiary Opt record.
func (r *Opt) Finalize() {
	r.Options = r.FinalOptions()
}

// Lookup returns the first property with the given property number, or nil.
func (r *Opt) Lookup(number uint16) Property {
	for _, p := range r.Properties {
		if p.PropID().Number() == number {
			return p
		}
	}
	return nil
}

// Add appends a property without sorting.
func (r *Opt) Add(p Property) {
	r.Properties = append(r.Properties, p)
}

// Remove removes every property with the given property number. Returns
// whether any property was removed.
func (r *Opt) Remove(number uint16) bool {
	props := r.Properties[:0]
	for _, p := range r.Properties {
		if p.PropID().Number() != number {
			props = append(props, p)
		}
	}
	removed := len(props) != len(r.Properties)
	for i := len(props); i < len(r.Properties); i++ {
		r.Properties[i] = nil
	}
	r.Properties = props
	return removed
}

// Set replaces every property that has the same ID as p, then sorts the
// list.
func (r *Opt) Set(p Property) {
	id := p.PropID()
	props := r.Properties[:0]
	for _, q := range r.Properties {
		if q.PropID() != id {
			props = append(props, q)
		}
	}
	for i := len(props); i < len(r.Properties); i++ {
		r.Properties[i] = nil
	}
	r.Properties = append(props, p)
	r.Sort()
}

// Sort orders the properties by property number. Properties with the same
// number keep their relative order.
func (r *Opt) Sort() {
	sort.SliceStable(r.Properties, func(i, j int) bool {
		return r.Properties[i].PropID().Number() < r.Properties[j].PropID().Number()
	})
}
