package internal

import (
	"fmt"
	"strings"
)

const (
	// Number of spaces per level of depth.
	indentWidth = 4

	lineTerminator = "\r\n"
)

// Item is a single outline entry. An Item owns its children; the parent reference is a
// back-pointer only.
type Item struct {
	parent       *Item
	siblingIndex int // Always equals the index of this item in parent.children.
	title        Title
	open         bool
	children     []*Item
}

func NewItem(title string) (*Item, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	return &Item{title: t}, nil
}

// AddChild appends a new child with the given title and returns it.
func (it *Item) AddChild(title string) (*Item, error) {
	child, err := NewItem(title)
	if err != nil {
		return nil, err
	}
	child.parent = it
	child.siblingIndex = len(it.children)
	it.children = append(it.children, child)
	return child, nil
}

// Expanded reports whether the children of the item are shown. An item without children is
// never expanded, whatever its open flag says.
func (it *Item) Expanded() bool {
	return it.open && len(it.children) > 0
}

func (it *Item) Depth() int {
	depth := 0
	for p := it.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Render appends the visible part of the subtree to buf, one line per item, in pre-order.
// The title of selected is highlighted.
func (it *Item) Render(buf *RenderBuffer, indent int, selected *Item) {
	it.render(buf, indent, selected, &lineWindow{limit: -1})
}

// RenderWindow is Render limited to the visible lines [skip, skip+limit).
func (it *Item) RenderWindow(buf *RenderBuffer, indent int, selected *Item, skip, limit int) {
	if limit <= 0 {
		return
	}
	it.render(buf, indent, selected, &lineWindow{skip: skip, limit: limit})
}

// A negative limit means no limit.
type lineWindow struct {
	skip, limit int
}

func (it *Item) render(buf *RenderBuffer, indent int, selected *Item, w *lineWindow) {
	if w.limit == 0 {
		return
	}
	if w.skip > 0 {
		w.skip--
	} else {
		buf.AppendString(strings.Repeat(" ", indent*indentWidth))
		if it == selected {
			selectedHighlight.wrap(buf, it.title.Bytes())
		} else {
			buf.Append(it.title.Bytes())
		}
		buf.AppendString(lineTerminator)
		if w.limit > 0 {
			w.limit--
		}
	}
	if !it.open {
		return
	}
	for _, child := range it.children {
		child.render(buf, indent+1, selected, w)
	}
}

// Free releases the subtree in post-order and returns the number of released items. The
// item must not be used afterwards.
func (it *Item) Free() int {
	n := 0
	for _, child := range it.children {
		n += child.Free()
	}
	it.children = nil
	it.parent = nil
	return n + 1
}

// CloseSubtree closes the item and every descendant.
func (it *Item) CloseSubtree() {
	for _, child := range it.children {
		child.CloseSubtree()
	}
	it.open = false
}

// ExpandLayers opens the item if it has children and recurses layers levels deeper.
// didOpen reports whether any item was opened. reachedMaxDepth is true when the item has
// no children, or when layers > 0 and every child reached its max depth.
func (it *Item) ExpandLayers(layers int) (didOpen, reachedMaxDepth bool) {
	if !it.open && len(it.children) > 0 {
		it.open = true
		didOpen = true
	}
	if len(it.children) == 0 {
		return didOpen, true
	}
	if layers <= 0 {
		return didOpen, false
	}
	reachedMaxDepth = true
	for _, child := range it.children {
		opened, maxDepth := child.ExpandLayers(layers - 1)
		didOpen = didOpen || opened
		reachedMaxDepth = reachedMaxDepth && maxDepth
	}
	return didOpen, reachedMaxDepth
}

// ExpandIncrementally reveals one more level below the item. Already open items stay open.
// Reports whether anything was opened.
// TODO(etd): each press costs O(depth * size); keep a per-item closed-depth cache if outlines
// ever grow large.
func (it *Item) ExpandIncrementally() bool {
	for layers := 0; ; layers++ {
		didOpen, reachedMaxDepth := it.ExpandLayers(layers)
		if didOpen {
			return true
		}
		if reachedMaxDepth {
			return false
		}
	}
}

// lastVisibleDescendant returns the item rendered on the last row of the subtree.
func (it *Item) lastVisibleDescendant() *Item {
	last := it
	for last.Expanded() {
		last = last.children[len(last.children)-1]
	}
	return last
}

// VisibleRow returns the 1-based row target is rendered on when it is the root of the
// rendering. ok is false if target is not visible.
func (it *Item) VisibleRow(target *Item) (row int, ok bool) {
	var walk func(*Item) bool
	walk = func(n *Item) bool {
		row++
		if n == target {
			return true
		}
		if !n.open {
			return false
		}
		for _, child := range n.children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	if walk(it) {
		return row, true
	}
	return 0, false
}

// VisibleCount is the number of lines Render emits for the item.
func (it *Item) VisibleCount() int {
	n := 1
	if it.open {
		for _, child := range it.children {
			n += child.VisibleCount()
		}
	}
	return n
}

// Walk calls fn for every item of the subtree in pre-order, hidden ones included.
func (it *Item) Walk(fn func(item *Item, depth int)) {
	it.walk(fn, 0)
}

func (it *Item) walk(fn func(*Item, int), depth int) {
	fn(it, depth)
	for _, child := range it.children {
		child.walk(fn, depth+1)
	}
}

// CheckSiblingIndexes verifies the parent and sibling index of every item in the subtree.
func (it *Item) CheckSiblingIndexes() error {
	var err error
	it.Walk(func(item *Item, _ int) {
		for i, child := range item.children {
			if err != nil {
				return
			}
			if child.parent != item {
				err = fmt.Errorf("item %q: child %d has wrong parent", item.title.String(), i)
			} else if child.siblingIndex != i {
				err = fmt.Errorf("item %q: child %d has sibling index %d", item.title.String(), i, child.siblingIndex)
			}
		}
	})
	return err
}
