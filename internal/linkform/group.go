package linkform

import (
	"sort"
	"strings"

	"github.com/linktower/linktower/internal/domain/models"
)

// LabelGroup is one display group of a room's links. The empty label holds
// the unlabeled links and sorts before every named group.
type LabelGroup struct {
	Label string
	Links []models.Link
}

// GroupByLabel groups links by their label, keeping insertion order inside
// each group, and returns the groups sorted ascending by label.
func GroupByLabel(links []models.Link) []LabelGroup {
	byLabel := make(map[string][]models.Link)
	for _, link := range links {
		byLabel[link.Label] = append(byLabel[link.Label], link)
	}

	groups := make([]LabelGroup, 0, len(byLabel))
	for label, grouped := range byLabel {
		groups = append(groups, LabelGroup{Label: label, Links: grouped})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Label < groups[j].Label
	})

	return groups
}

// Render writes grouped links back into form text, the inverse of Parse as
// used to prefill the edit form: label line, one `[description](url)` line
// per link, blank line between groups.
func Render(groups []LabelGroup) string {
	var b strings.Builder

	for _, group := range groups {
		if group.Label != "" {
			b.WriteString(group.Label)
			b.WriteString("\n")
		}
		for _, link := range group.Links {
			b.WriteString("[")
			b.WriteString(link.Description)
			b.WriteString("](")
			b.WriteString(link.URL)
			b.WriteString(")\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
