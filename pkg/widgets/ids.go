package widgets

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// controlID derives an element id from a prefix and a label:
// "Publish Date" with prefix "datetime" becomes "datetime-publish-date".
// An empty label yields the bare prefix.
func controlID(prefix, label string) string {
	if label == "" {
		return prefix
	}
	return prefix + "-" + whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
}

func helpID(id string) string {
	return id + "-help"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
