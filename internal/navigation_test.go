package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestEditor(t *testing.T, rows, cols int, lines ...string) *editorImpl {
	t.Helper()
	root := mustOutline(t, lines...)
	openAll(root)
	e := newEditor(root, nil)
	e.Resize(rows, cols)
	return e
}

func selectTitle(t *testing.T, e *editorImpl, title string) {
	t.Helper()
	var found *Item
	e.root.Walk(func(item *Item, _ int) {
		if item.title.String() == title {
			found = item
		}
	})
	require.NotNil(t, found, "no item %q", title)
	e.currentItem = found
	e.syncCursor()
}

func currentTitle(e *editorImpl) string {
	return e.currentItem.title.String()
}

func TestMoveDown_VisitsVisibleItemsInOrder(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\t\tdeep", "\tb", "\t\tb1", "\tc")

	var visited []string
	for e.moveDown() {
		e.syncCursor()
		visited = append(visited, currentTitle(e))
	}
	assert.Equal(t, []string{"a", "a1", "deep", "b", "b1", "c"}, visited)
	assert.Equal(t, 7, e.cursorRow)
}

func TestMoveDown_ClimbsToAncestorSibling(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\t\tdeep", "\tb")
	selectTitle(t, e, "deep")

	assert.True(t, e.moveDown())
	assert.Equal(t, "b", currentTitle(e))
}

func TestMoveDown_SkipsClosedChildren(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\tb")
	e.root.children[0].open = false
	selectTitle(t, e, "a")

	assert.True(t, e.moveDown())
	assert.Equal(t, "b", currentTitle(e))
}

func TestMoveDown_LastVisibleItemIsNoop(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\tb", "\t\tb1")
	e.root.children[1].open = false
	selectTitle(t, e, "b")
	row := e.cursorRow

	require.NoError(t, e.Handle('e'))
	assert.Equal(t, "b", currentTitle(e))
	assert.Equal(t, row, e.cursorRow)
}

func TestMoveDown_ClosedRootIsNoop(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta")
	e.root.open = false

	assert.False(t, e.moveDown())
	assert.Same(t, e.root, e.currentItem)
}

func TestMoveUp_RootIsNoop(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta")

	require.NoError(t, e.Handle('u'))
	assert.Same(t, e.root, e.currentItem)
	assert.Equal(t, 1, e.cursorRow)
	assert.Equal(t, 1, e.cursorCol)
}

func TestMoveUp_LandsOnDeepestVisibleDescendant(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\ta2", "\t\t\tdeep", "\tb")
	selectTitle(t, e, "b")

	require.NoError(t, e.Handle('u'))
	assert.Equal(t, "deep", currentTitle(e))
	assert.Equal(t, 5, e.cursorRow)

	require.NoError(t, e.Handle('u'))
	assert.Equal(t, "a2", currentTitle(e))
	require.NoError(t, e.Handle('u'))
	assert.Equal(t, "a1", currentTitle(e))
	require.NoError(t, e.Handle('u'))
	assert.Equal(t, "a", currentTitle(e))
	require.NoError(t, e.Handle('u'))
	assert.Equal(t, "root", currentTitle(e))
}

func TestMoveUp_StopsAtClosedSibling(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\tb")
	e.root.children[0].open = false
	selectTitle(t, e, "b")

	assert.True(t, e.moveUp())
	assert.Equal(t, "a", currentTitle(e))
}

func TestMoveUpDown_AreInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, _ := drawTree(t)
		root.open = true
		e := newEditor(root, nil)
		e.Resize(100, 80)

		var path []*Item
		for e.moveDown() {
			path = append(path, e.currentItem)
		}
		assert.Equal(t, root.VisibleCount()-1, len(path))
		for i := len(path) - 2; i >= 0; i-- {
			require.True(t, e.moveUp())
			assert.Same(t, path[i], e.currentItem)
		}
		require.Equal(t, len(path) > 0, e.moveUp())
		assert.Same(t, root, e.currentItem)
	})
}

func TestMoveLeftRight_Clamped(t *testing.T) {
	e := newTestEditor(t, 24, 3, "root")

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Handle('t'))
	}
	assert.Equal(t, 3, e.cursorCol)

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Handle('h'))
	}
	assert.Equal(t, 1, e.cursorCol)
}

func TestCloseCurrent_OpenItem(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\t\tdeep", "\tb")
	selectTitle(t, e, "a")

	e.closeCurrent()
	assert.Equal(t, "a", currentTitle(e))
	assert.False(t, e.root.children[0].open)
	assert.False(t, e.root.children[0].children[0].open, "descendants are closed too")
	assert.True(t, e.root.open)
}

func TestCloseCurrent_ClosedItemCollapsesParent(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\ta2", "\tb")
	selectTitle(t, e, "a2")
	assert.Equal(t, 4, e.cursorRow)
	e.root.children[0].children[1].open = false

	require.NoError(t, e.Handle(ESC_KEY))
	require.NoError(t, e.Handle('['))
	require.NoError(t, e.Handle('Z'))

	assert.Equal(t, "a", currentTitle(e))
	assert.False(t, e.root.children[0].open)
	assert.Equal(t, 2, e.cursorRow, "cursor follows the selection")
}

func TestCloseCurrent_ClosedRootIsNoop(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta")
	e.root.open = false

	e.closeCurrent()
	assert.Same(t, e.root, e.currentItem)
}

func TestOpenCurrent(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\t\ta1", "\t\t\tdeep")
	e.root.children[0].open = false
	selectTitle(t, e, "a")

	require.NoError(t, e.Handle('o'))
	assert.True(t, e.root.children[0].open)
	assert.True(t, e.root.children[0].children[0].open, "descendants keep their flags")
	assert.False(t, e.openCurrent(), "already open")

	selectTitle(t, e, "deep")
	assert.False(t, e.openCurrent(), "nothing to open")
}

func TestScrolling(t *testing.T) {
	e := newTestEditor(t, 3, 80, "root", "\ta", "\tb", "\tc", "\td", "\te")

	for i := 0; i < 4; i++ {
		require.NoError(t, e.Handle('e'))
	}
	assert.Equal(t, "d", currentTitle(e))
	assert.Equal(t, 3, e.cursorRow)
	assert.Equal(t, 2, e.windowOffsetRows)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.Handle('u'))
	}
	assert.Equal(t, "a", currentTitle(e))
	assert.Equal(t, 1, e.cursorRow)
	assert.Equal(t, 1, e.windowOffsetRows)
}

func TestScrolling_ShrinkingTreePullsWindowBack(t *testing.T) {
	e := newTestEditor(t, 3, 80, "root", "\ta", "\t\ta1", "\t\ta2", "\t\ta3", "\tb")
	selectTitle(t, e, "a3")
	assert.Equal(t, 2, e.windowOffsetRows)

	// Collapses "a" and selects it.
	e.root.children[0].children[2].open = false
	e.closeCurrent()
	e.syncCursor()

	assert.Equal(t, "a", currentTitle(e))
	assert.Equal(t, 0, e.windowOffsetRows)
	assert.Equal(t, 2, e.cursorRow)
}

func TestResize_ClampsCursor(t *testing.T) {
	e := newTestEditor(t, 24, 80, "root", "\ta", "\tb", "\tc")
	selectTitle(t, e, "c")
	for i := 0; i < 50; i++ {
		e.moveRight()
	}

	e.Resize(2, 10)
	assert.Equal(t, 2, e.cursorRow)
	assert.Equal(t, 10, e.cursorCol)

	e.Resize(0, 0)
	assert.Equal(t, 1, e.cursorRow)
	assert.Equal(t, 1, e.cursorCol)
}

func TestNavigation_CursorStaysInBounds(t *testing.T) {
	keys := []byte{'e', 'u', 'h', 't', 'o', 'i', 'x', TAB_KEY, ESC_KEY, '[', 'Z', DELETE_KEY}
	rapid.Check(t, func(t *rapid.T) {
		root, _ := drawTree(t)
		e := newEditor(root, nil)
		rows := rapid.IntRange(1, 6).Draw(t, "rows")
		cols := rapid.IntRange(1, 12).Draw(t, "cols")
		e.Resize(rows, cols)

		input := rapid.SliceOfN(rapid.SampledFrom(keys), 0, 60).Draw(t, "input")
		for i, b := range input {
			require.NoError(t, e.Handle(b))
			if i%7 == 0 {
				e.EndOfInput()
			}

			assert.GreaterOrEqual(t, e.cursorRow, 1)
			assert.LessOrEqual(t, e.cursorRow, rows)
			assert.GreaterOrEqual(t, e.cursorCol, 1)
			assert.LessOrEqual(t, e.cursorCol, cols)
			require.NoError(t, root.CheckSiblingIndexes())

			row, ok := root.VisibleRow(e.currentItem)
			require.True(t, ok, "selection must stay visible")
			assert.Equal(t, row, e.windowOffsetRows+e.cursorRow)
		}
	})
}
