// Package linkform implements the link-list form syntax: a markdown-like
// list of `[description](url)` lines, optionally grouped under label lines
// ending with a colon.
package linkform

import (
	"net/url"
	"strings"

	"github.com/linktower/linktower/internal/domain/models"
)

// Parse turns raw form text into the links it describes plus the errors for
// every line that could not be accepted. It is a single pass over the input:
// errors never abort parsing, and both slices preserve original line order.
//
// A line ending with ':' becomes the current label (kept verbatim, colon
// included) for every following link until the next label line. Blank lines
// are skipped. Anything else must look like `[description](url)` with a url
// that has a scheme, a host and a path. A url may appear at most once per
// submission.
func Parse(text string) ([]models.Link, []string) {
	var links []models.Link
	var badInput []string

	currentLabel := ""
	existingURLs := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasSuffix(line, ":"):
			currentLabel = line

		case strings.TrimSpace(line) == "":
			// skip

		case strings.HasPrefix(line, "[") && strings.Contains(line, "](") && strings.HasSuffix(line, ")"):
			sep := strings.Index(line, "](")
			description := line[1:sep]
			rawURL := line[sep+2 : len(line)-1]

			if !isValidLinkURL(rawURL) {
				badInput = append(badInput, line+" Could not parse link. Try copying the link from your browser's search bar")
			} else if _, seen := existingURLs[rawURL]; seen {
				badInput = append(badInput, line+" Duplicate urls are not accepted. Delete this line and resubmit the form")
			} else {
				links = append(links, models.Link{
					Description: description,
					URL:         rawURL,
					Label:       currentLabel,
				})
				existingURLs[rawURL] = struct{}{}
			}

		default:
			badInput = append(badInput, line+" This line is not recognized as a link or label")
		}
	}

	return links, badInput
}

// isValidLinkURL requires scheme, host and path to all be present, so bare
// "http://example.com" without a trailing slash is rejected.
func isValidLinkURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != "" && u.Path != ""
}

// DomainName extracts the host portion of a link url. It is recomputed on
// every insert and never stored independently of the url.
func DomainName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return u.Host
}
