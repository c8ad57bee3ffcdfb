package types

import (
	"testing"
	"time"

	"github.com/friskycodeur/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_ZeroValueIsEmpty(t *testing.T) {
	var s Selection

	assert.True(t, s.IsEmpty())
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Nil(t, s.Ref())
}

func TestSelection_MostRecentWins(t *testing.T) {
	var s Selection
	a := domain.DetailItem{Title: "A", Details: []string{"a"}}
	b := domain.DetailItem{Title: "B", Details: []string{"b"}}
	c := domain.DetailItem{Title: "C", Details: []string{"c"}}

	s.Set(a)
	s.Set(b)
	s.Set(c)

	got, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "C", got.Title)
}

func TestSelection_ClearIsIdempotent(t *testing.T) {
	var s Selection
	s.Set(domain.DetailItem{Title: "A", Details: []string{"a"}})

	assert.True(t, s.Clear())
	assert.False(t, s.Clear(), "clearing an empty slot changes nothing")
	assert.True(t, s.IsEmpty())
}

func TestSelection_DoesNotAliasCaller(t *testing.T) {
	var s Selection
	item := domain.DetailItem{Title: "A", Details: []string{"a", "b"}}
	s.Set(item)

	item.Details[0] = "changed"
	got, _ := s.Active()
	assert.Equal(t, []string{"a", "b"}, got.Details)

	got.Details[1] = "changed"
	again, _ := s.Active()
	assert.Equal(t, []string{"a", "b"}, again.Details)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "BROWSE", ModeBrowse.String())
	assert.Equal(t, "DETAIL", ModeDetail.String())
	assert.Equal(t, "UNKNOWN", Mode(42).String())
}

func TestPruneToasts(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := []Toast{
		{Message: "old", Expires: now.Add(-time.Second)},
		{Message: "fresh", Expires: now.Add(time.Second)},
		{Message: "sticky"},
		{Message: "edge", Expires: now},
	}

	kept := PruneToasts(toasts, now)

	require.Len(t, kept, 2)
	assert.Equal(t, "fresh", kept[0].Message)
	assert.Equal(t, "sticky", kept[1].Message)
}
