package outline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<p><a href="#a">A</a></p><li><a href="#a1">A1</a></li><li><a href="#b">B</a></li>`

func TestToggle_ExpandedTwiceReturnsToExpanded(t *testing.T) {
	s := NewSession("/en/docs/api/foo", sample)
	require.Equal(t, Expanded, s.Anchors[0].State)

	once, changed := Toggle(s, 0)
	require.True(t, changed)
	assert.Equal(t, Collapsed, once.Anchors[0].State)
	assert.Empty(t, once.Anchors[0].VisibleChildren(), "collapsed hides children")
	assert.Equal(t, 2, once.Anchors[0].Children.Len(), "collapsed keeps children")

	twice, changed := Toggle(once, 0)
	require.True(t, changed)
	assert.Equal(t, Expanded, twice.Anchors[0].State)
	assert.Len(t, twice.Anchors[0].VisibleChildren(), 2)
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	s := NewSession("/x", sample)
	_, _ = Toggle(s, 0)
	assert.Equal(t, Expanded, s.Anchors[0].State)
}

func TestToggle_NotCollapsibleIsNoop(t *testing.T) {
	s := NewSession("/x", `<li><a href="#a">A</a></li>`)
	next, changed := Toggle(s, 0)
	assert.False(t, changed)
	assert.Equal(t, NotCollapsible, next.Anchors[0].State)
}

func TestToggle_OutOfRangeIsNoop(t *testing.T) {
	s := NewSession("/x", sample)
	for _, idx := range []int{-1, 1, 99} {
		next, changed := Toggle(s, idx)
		assert.False(t, changed)
		assert.Equal(t, s, next)
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s := NewSession("/x", sample)
	require.NotEmpty(t, s.ID)
	store.Put(s)

	toggled, changed, err := store.Toggle(s.ID, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Collapsed, toggled.Anchors[0].State)

	got, ok := store.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, Collapsed, got.Anchors[0].State)

	_, _, err = store.Toggle("missing", 0)
	require.ErrorIs(t, err, ErrSessionNotFound)

	now = now.Add(2 * time.Minute)
	store.Put(NewSession("/y", sample))
	_, ok = store.Get(s.ID)
	assert.False(t, ok, "idle session evicted")
	assert.Equal(t, 1, store.Len())

	store.Delete("missing")
	assert.Equal(t, 1, store.Len())
}

func TestCollapseState_Text(t *testing.T) {
	for _, st := range []CollapseState{NotCollapsible, Expanded, Collapsed} {
		b, err := st.MarshalText()
		require.NoError(t, err)
		var back CollapseState
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, st, back)
	}
	var bad CollapseState
	assert.Error(t, bad.UnmarshalText([]byte("folded")))
	assert.Equal(t, "CollapseState(9)", CollapseState(9).String())
}
