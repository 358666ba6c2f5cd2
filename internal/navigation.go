package internal

// moveDown selects the item rendered on the row below the current one. Reports whether the
// selection changed.
func (e *editorImpl) moveDown() bool {
	if e.currentItem.Expanded() {
		e.currentItem = e.currentItem.children[0]
		return true
	}
	// Climb until some item has a next sibling. That sibling is the next visible item.
	for it := e.currentItem; it.parent != nil; it = it.parent {
		siblings := it.parent.children
		if it.siblingIndex+1 < len(siblings) {
			e.currentItem = siblings[it.siblingIndex+1]
			return true
		}
	}
	// Last visible item.
	return false
}

// moveUp selects the item rendered on the row above the current one. Reports whether the
// selection changed.
func (e *editorImpl) moveUp() bool {
	curr := e.currentItem
	if curr.parent == nil {
		// The root is always the first row.
		return false
	}
	if curr.siblingIndex == 0 {
		e.currentItem = curr.parent
		return true
	}
	prev := curr.parent.children[curr.siblingIndex-1]
	e.currentItem = prev.lastVisibleDescendant()
	return true
}

func (e *editorImpl) moveLeft() {
	e.cursorCol = clamp(e.cursorCol-1, 1, e.cols)
}

func (e *editorImpl) moveRight() {
	e.cursorCol = clamp(e.cursorCol+1, 1, e.cols)
}

// closeCurrent collapses the selected item. If it is already closed, the parent is collapsed
// and selected instead.
func (e *editorImpl) closeCurrent() {
	if e.currentItem.open {
		e.currentItem.CloseSubtree()
		return
	}
	if parent := e.currentItem.parent; parent != nil {
		parent.CloseSubtree()
		e.currentItem = parent
	}
}

// openCurrent opens just the selected item. Its descendants keep their own open flags.
func (e *editorImpl) openCurrent() bool {
	if e.currentItem.open || len(e.currentItem.children) == 0 {
		return false
	}
	e.currentItem.open = true
	return true
}

// expandCurrent reveals one more level below the selected item.
func (e *editorImpl) expandCurrent() bool {
	return e.currentItem.ExpandIncrementally()
}
