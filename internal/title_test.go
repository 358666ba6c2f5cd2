package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle_AppendRejectsOverflow(t *testing.T) {
	title, err := NewTitle(strings.Repeat("x", TitleCapacity-1))
	require.NoError(t, err)

	require.NoError(t, title.Append('y'))
	assert.ErrorIs(t, title.Append('z'), ErrTitleOverflow)
	assert.Equal(t, TitleCapacity, title.Len())
	assert.True(t, strings.HasSuffix(title.String(), "xy"))

	assert.ErrorIs(t, title.AppendString("z"), ErrTitleOverflow)
}

func TestNewTitle_TooLong(t *testing.T) {
	_, err := NewTitle(strings.Repeat("x", TitleCapacity+1))
	assert.ErrorIs(t, err, ErrTitleOverflow)
}

func TestTitle_Backspace(t *testing.T) {
	title, err := NewTitle("aé日")
	require.NoError(t, err)

	assert.True(t, title.Backspace())
	assert.Equal(t, "aé", title.String())
	assert.True(t, title.Backspace())
	assert.Equal(t, "a", title.String())
	assert.True(t, title.Backspace())
	assert.False(t, title.Backspace())
	assert.Equal(t, 0, title.Len())
}

func TestTitle_BackspaceIncompleteRune(t *testing.T) {
	var title Title
	require.NoError(t, title.AppendString("a"))
	// First byte of a two byte sequence.
	require.NoError(t, title.Append(0xc3))

	assert.True(t, title.Backspace())
	assert.Equal(t, "a", title.String())
}

func TestTitle_Width(t *testing.T) {
	title, err := NewTitle("日本a")
	require.NoError(t, err)
	assert.Equal(t, 5, title.Width())
}
