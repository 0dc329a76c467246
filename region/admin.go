// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"slices"

	"github.com/jinzhu/copier"

	"rectui.dev/core/base/errors"
)

// admin.go has the parent and children management of regions.

// Parent returns the parent region, or nil for a root or detached
// region. The parent reference is non-owning.
func (b *Base) Parent() Region {
	return b.parent
}

// Children returns the children in paint order. The slice must not
// be modified; use [Base.AddChild] and friends.
func (b *Base) Children() []Region {
	return b.children
}

// NumChildren returns the number of children.
func (b *Base) NumChildren() int {
	return len(b.children)
}

// Child returns the child at the given index. An out of range index
// is a programmer error and panics.
func (b *Base) Child(i int) Region {
	if i < 0 || i >= len(b.children) {
		errors.Misuse("Child", "index %d out of range for %v with %d children", i, b, len(b.children))
	}
	return b.children[i]
}

// IndexOf returns the index of the given child, or -1.
func (b *Base) IndexOf(child Region) int {
	return slices.Index(b.children, child)
}

// AddChild adds the given region as the last child. The child is
// initialized if needed. Adding a region that already has a parent,
// a destroyed region, a [Root], or the region itself or one of its
// ancestors are programmer errors and panic.
func (b *Base) AddChild(child Region) {
	b.InsertChild(child, len(b.children))
}

// InsertChild inserts the given region at the given index in the
// children; see [Base.AddChild] for the rules.
func (b *Base) InsertChild(child Region, at int) {
	if child == nil {
		errors.Misuse("AddChild", "nil child added to %v", b)
	}
	Init(child)
	cb := child.AsRegion()
	switch {
	case cb.destroyed:
		errors.Misuse("AddChild", "%v is destroyed", cb)
	case cb.parent != nil:
		errors.Misuse("AddChild", "%v already has parent %v; regions can not be re-parented", cb, cb.parent.AsRegion())
	case b.IsSelfOrAncestor(child):
		errors.Misuse("AddChild", "adding %v to %v would create a cycle", cb, b)
	}
	if _, ok := child.(*Root); ok {
		errors.Misuse("AddChild", "%v is a Root and can not have a parent", cb)
	}
	if at < 0 || at > len(b.children) {
		errors.Misuse("InsertChild", "index %d out of range for %v with %d children", at, b, len(b.children))
	}
	b.children = slices.Insert(b.children, at, child)
	cb.parent = b.This
	cb.needsLayout = true
	b.NeedsLayout()
}

// IsSelfOrAncestor returns whether the given region is this region
// or one of its ancestors.
func (b *Base) IsSelfOrAncestor(r Region) bool {
	found := false
	b.WalkUp(func(k Region) bool {
		if k == r {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// DeleteChild removes the given child and destroys it and its subtree.
// It returns false if the region is not a child.
func (b *Base) DeleteChild(child Region) bool {
	idx := b.IndexOf(child)
	if idx < 0 {
		return false
	}
	if rt := b.Root(); rt != nil {
		rt.forget(child)
	}
	b.children = slices.Delete(b.children, idx, idx+1)
	child.AsRegion().parent = nil
	child.Destroy()
	b.NeedsLayout()
	return true
}

// DeleteChildren removes and destroys all children.
func (b *Base) DeleteChildren() {
	for len(b.children) > 0 {
		b.DeleteChild(b.children[len(b.children)-1])
	}
}

// Delete removes the region from its parent and destroys it.
func (b *Base) Delete() {
	if b.parent != nil {
		b.parent.AsRegion().DeleteChild(b.This)
		return
	}
	b.This.Destroy()
}

// Destroy recursively destroys the region and all of its children.
// Destroyed regions can not be added to a tree again.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	kids := b.children
	b.children = nil
	for _, k := range kids {
		k.AsRegion().parent = nil
		k.Destroy()
	}
	b.Listeners = nil
	b.parent = nil
	b.destroyed = true
}

// CopyStyleFrom copies the style of the given template region, which
// is how templates are applied to regions created by factories. Zero
// fields of the template are skipped at any depth, so a template that
// only sets the padding top keeps the rest of the style of b.
func (b *Base) CopyStyleFrom(from Region) {
	fb := from.AsRegion()
	errors.Log(copier.CopyWithOption(&b.Style, &fb.Style, copier.Option{DeepCopy: true, IgnoreEmpty: true}))
	b.Invalidate()
}

// WalkUp calls the given function on the region and then on each of
// its ancestors until it returns [Break].
func (b *Base) WalkUp(fun func(r Region) bool) {
	for r := b.This; r != nil; r = r.AsRegion().parent {
		if !fun(r) {
			return
		}
	}
}

// WalkDown calls the given function on the region and all of its
// descendants in depth-first paint order. If the function returns
// [Break] for a region, its children are skipped.
func (b *Base) WalkDown(fun func(r Region) bool) {
	if !fun(b.This) {
		return
	}
	for _, k := range b.children {
		k.AsRegion().WalkDown(fun)
	}
}

// Top returns the top-most ancestor of the region, which is the
// region itself if it has no parent.
func (b *Base) Top() Region {
	top := b.This
	b.WalkUp(func(r Region) bool {
		top = r
		return Continue
	})
	return top
}

// Root returns the [Root] of the tree the region is in, or nil if the
// top-most ancestor is not a Root.
func (b *Base) Root() *Root {
	rt, _ := b.Top().(*Root)
	return rt
}

// ParentByType returns the nearest ancestor of type T, or the zero value.
func ParentByType[T Region](r Region) T {
	var res T
	p := r.AsRegion().parent
	if p == nil {
		return res
	}
	p.AsRegion().WalkUp(func(k Region) bool {
		if t, ok := k.(T); ok {
			res = t
			return Break
		}
		return Continue
	})
	return res
}
