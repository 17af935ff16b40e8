package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/watchlit/internal/constants"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// TruncateTitle shortens title to at most maxLen runes. With ellipsis set the
// last runes are replaced by "..." so the result still fits in maxLen.
func TruncateTitle(title string, maxLen int, ellipsis bool) string {
	if maxLen <= 0 || utf8.RuneCountInString(title) <= maxLen {
		return title
	}

	runes := []rune(title)
	suffix := []rune(constants.EllipsisSuffix)
	if !ellipsis || maxLen <= len(suffix) {
		return string(runes[:maxLen])
	}
	return strings.TrimRight(string(runes[:maxLen-len(suffix)]), " ") + constants.EllipsisSuffix
}

// IsValidColor reports whether c is a #rgb or #rrggbb hex color.
func IsValidColor(c string) bool {
	return hexColorPattern.MatchString(c)
}

// SplitList splits a comma separated value, trimming whitespace and dropping
// empty entries.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
