package linkform

import "github.com/linktower/linktower/internal/domain/models"

// triple is the identity of a link for diffing purposes. Store-assigned ids
// and the derived domain name take no part in the comparison.
type triple struct {
	url         string
	label       string
	description string
}

func tripleOf(link models.Link) triple {
	return triple{url: link.URL, label: link.Label, description: link.Description}
}

// Diff compares a room's stored links against a newly submitted set and
// returns the links to insert and the links to delete. Both inputs are
// treated as sets of (url, label, description); a link whose label or
// description changed while the url stayed the same shows up in both slices.
// There is no in-place update.
func Diff(oldLinks, newLinks []models.Link) (added, removed []models.Link) {
	oldSet := make(map[triple]struct{}, len(oldLinks))
	for _, link := range oldLinks {
		oldSet[tripleOf(link)] = struct{}{}
	}

	newSet := make(map[triple]struct{}, len(newLinks))
	for _, link := range newLinks {
		newSet[tripleOf(link)] = struct{}{}
	}

	seen := make(map[triple]struct{})
	for _, link := range newLinks {
		key := tripleOf(link)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := oldSet[key]; !ok {
			added = append(added, link)
		}
	}

	seen = make(map[triple]struct{})
	for _, link := range oldLinks {
		key := tripleOf(link)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := newSet[key]; !ok {
			removed = append(removed, link)
		}
	}

	return added, removed
}
