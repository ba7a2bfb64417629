package escher

import (
	"strconv"
)

// Container is a record that holds nothing but child records.
type Container struct {
	Base

	// Children contains the child records, in stream order.
	Children []Record

	// TruncatedBytes is the number of declared body bytes that were missing
	// from the input when the container was decoded. It is added to the
	// length written in the header, so that a truncated stream is written
	// back as it was read.
	TruncatedBytes int
}

// NewContainer returns an empty container with the given record ID.
func NewContainer(id uint16) *Container {
	return &Container{Base: Base{Options: 0x000F, ID: id}}
}

func (r *Container) Name() string {
	switch r.ID {
	case DggContainerID:
		return "DggContainer"
	case BStoreContainerID:
		return "BStoreContainer"
	case DgContainerID:
		return "DgContainer"
	case SpgrContainerID:
		return "SpgrContainer"
	case SpContainerID:
		return "SpContainer"
	case SolverContainerID:
		return "SolverContainer"
	}
	return "Container 0x" + strconv.FormatUint(uint64(r.ID), 16)
}

func (r *Container) ChildRecords() []Record { return r.Children }

func (r *Container) SetChildRecords(children []Record) { r.Children = children }

// AddChild appends a record to the children of the container.
func (r *Container) AddChild(child Record) {
	r.Children = append(r.Children, child)
}

// AddChildBefore inserts a record before the first child with the given
// record ID. Returns false if no such child exists, in which case the
// children are unchanged.
func (r *Container) AddChildBefore(child Record, beforeID uint16) bool {
	for i, c := range r.Children {
		if c.Head().ID == beforeID {
			r.Children = append(r.Children, nil)
			copy(r.Children[i+1:], r.Children[i:])
			r.Children[i] = child
			return true
		}
	}
	return false
}

// RemoveChild removes the given record from the children of the container.
// Returns whether the record was found.
func (r *Container) RemoveChild(child Record) bool {
	for i, c := range r.Children {
		if c == child {
			r.Children[i] = nil
			r.Children = append(r.Children[:i], r.Children[i+1:]...)
			return true
		}
	}
	return false
}

// ChildByID returns the first direct child with the given record ID, or nil.
func (r *Container) ChildByID(id uint16) Record {
	for _, c := range r.Children {
		if c.Head().ID == id {
			return c
		}
	}
	return nil
}

// Containers returns the direct children that are containers.
func (r *Container) Containers() []*Container {
	var list []*Container
	for _, c := range r.Children {
		if c, ok := c.(*Container); ok {
			list = append(list, c)
		}
	}
	return list
}

// RecordsByID returns every descendant with the given record ID, in
// pre-order.
func (r *Container) RecordsByID(id uint16) []Record {
	var list []Record
	for _, c := range r.Children {
		Walk(c, func(rec Record, depth int) bool {
			if rec.Head().ID == id {
				list = append(list, rec)
			}
			return true
		})
	}
	return list
}

// Walk traverses rec and its descendants in pre-order, calling fn for each
// record along with its depth, where rec is at depth 0. If fn returns false,
// the descendants of that record are skipped. Walk uses an explicit stack, so
// the depth of the tree is not limited by the call stack.
func Walk(rec Record, fn func(rec Record, depth int) bool) {
	type item struct {
		rec   Record
		depth int
	}
	stack := []item{{rec, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.rec == nil || !fn(it.rec, it.depth) {
			continue
		}
		p, ok := it.rec.(Parent)
		if !ok {
			continue
		}
		children := p.ChildRecords()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{children[i], it.depth + 1})
		}
	}
}
