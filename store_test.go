package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "reflections.json"), NewLogger())
}

func seedStore(t *testing.T, s *Store, reflections []Reflection) {
	t.Helper()
	require.NoError(t, s.Save(reflections))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	got := s.Load()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0644))

	got := s.Load()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	seedStore(t, s, []Reflection{
		{Name: "Ada", Date: "Mon Jan 01 2024", Reflection: "first"},
		{Name: "Grace", Date: "Tue Jan 02 2024", Reflection: "second"},
	})

	assert.Equal(t, s.Load(), s.Load())
}

func TestAppendPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	entries := []Reflection{
		{Name: "Ada", Date: "Mon Jan 01 2024", Reflection: "first"},
		{Name: "Grace", Date: "Tue Jan 02 2024", Reflection: "second"},
		{Name: "Anonymous", Date: "Wed Jan 03 2024", Reflection: "third"},
	}

	for _, e := range entries {
		require.NoError(t, s.Append(e))
	}

	assert.Equal(t, entries, s.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	seedStore(t, s, []Reflection{
		{Name: "Ada", Date: "Mon Jan 01 2024", Reflection: "first"},
	})

	before := s.Load()
	require.NoError(t, s.Save(before))
	assert.Equal(t, before, s.Load())
}

func TestDeleteAtRemovesOnlyThatElement(t *testing.T) {
	s := newTestStore(t)
	entries := []Reflection{
		{Name: "a", Date: "d0", Reflection: "zero"},
		{Name: "b", Date: "d1", Reflection: "one"},
		{Name: "c", Date: "d2", Reflection: "two"},
	}
	seedStore(t, s, entries)

	removed, err := s.DeleteAt(1)
	require.NoError(t, err)
	assert.Equal(t, entries[1], removed)
	assert.Equal(t, []Reflection{entries[0], entries[2]}, s.Load())
}

func TestDeleteAtOutOfRange(t *testing.T) {
	s := newTestStore(t)
	seedStore(t, s, []Reflection{
		{Name: "a", Date: "d0", Reflection: "zero"},
	})
	before, err := os.ReadFile(s.path)
	require.NoError(t, err)

	for _, position := range []int{-1, 1, 99} {
		_, err := s.DeleteAt(position)
		assert.ErrorIs(t, err, ErrOutOfRange, "position %d", position)
	}

	after, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed deletes must not touch the file")
}

func TestDeleteAtEmptyStore(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DeleteAt(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, s.Load())
}
