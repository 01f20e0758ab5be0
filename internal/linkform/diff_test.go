package linkform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linktower/linktower/internal/domain/models"
)

func link(url, label, description string) models.Link {
	return models.Link{URL: url, Label: label, Description: description}
}

func TestDiff_IdenticalSetsAreANoop(t *testing.T) {
	old := []models.Link{
		link("https://a.example/1", "Work:", "A"),
		link("https://a.example/2", "", "B"),
	}
	added, removed := Diff(old, old)

	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestDiff_AddAndRemove(t *testing.T) {
	old := []models.Link{
		link("https://a.example/1", "", "A"),
		link("https://a.example/2", "", "B"),
	}
	updated := []models.Link{
		link("https://a.example/2", "", "B"),
		link("https://a.example/3", "", "C"),
	}

	added, removed := Diff(old, updated)

	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, "https://a.example/3", added[0].URL)
	assert.Equal(t, "https://a.example/1", removed[0].URL)
}

func TestDiff_ChangedDescriptionIsRemovePlusAdd(t *testing.T) {
	old := []models.Link{link("https://a.example/1", "Work:", "old text")}
	updated := []models.Link{link("https://a.example/1", "Work:", "new text")}

	added, removed := Diff(old, updated)

	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, "new text", added[0].Description)
	assert.Equal(t, "old text", removed[0].Description)
}

func TestDiff_ChangedLabelIsRemovePlusAdd(t *testing.T) {
	old := []models.Link{link("https://a.example/1", "Work:", "A")}
	updated := []models.Link{link("https://a.example/1", "Play:", "A")}

	added, removed := Diff(old, updated)

	assert.Len(t, added, 1)
	assert.Len(t, removed, 1)
}

func TestDiff_IgnoresIDsAndDomainName(t *testing.T) {
	old := []models.Link{
		{ID: 7, RoomID: 3, URL: "https://a.example/1", DomainName: "a.example", Label: "", Description: "A"},
	}
	updated := []models.Link{
		{URL: "https://a.example/1", Label: "", Description: "A"},
	}

	added, removed := Diff(old, updated)

	assert.Empty(t, added)
	assert.Empty(t, removed)
}

// Applying the diff to the old set must reproduce the new set exactly.
func TestDiff_ApplyingDiffRestoresNewSet(t *testing.T) {
	old := []models.Link{
		link("https://a.example/1", "", "A"),
		link("https://a.example/2", "Work:", "B"),
		link("https://a.example/3", "Work:", "C"),
	}
	updated := []models.Link{
		link("https://a.example/2", "Work:", "B renamed"),
		link("https://a.example/3", "Play:", "C"),
		link("https://a.example/4", "", "D"),
	}

	added, removed := Diff(old, updated)

	result := make(map[triple]struct{})
	for _, l := range old {
		result[tripleOf(l)] = struct{}{}
	}
	for _, l := range removed {
		delete(result, tripleOf(l))
	}
	for _, l := range added {
		result[tripleOf(l)] = struct{}{}
	}

	expected := make(map[triple]struct{})
	for _, l := range updated {
		expected[tripleOf(l)] = struct{}{}
	}
	assert.Equal(t, expected, result)
}

func TestDiff_EmptyNewRemovesEverything(t *testing.T) {
	old := []models.Link{
		link("https://a.example/1", "", "A"),
		link("https://a.example/2", "", "B"),
	}

	added, removed := Diff(old, nil)

	assert.Empty(t, added)
	assert.Len(t, removed, 2)
}
