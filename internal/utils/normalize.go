package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)
var multiDash = regexp.MustCompile(`\-+`)

// Slugify turns a display name into a lowercase ASCII file name part,
// e.g. "Overzicht voor 01-07-2020" becomes "overzicht-voor-01-07-2020".
func Slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	t := norm.NFKD.String(name)
	b := make([]rune, 0, len(t))
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b = append(b, unicode.ToLower(r))
			continue
		}
		if unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == '(' || r == ')' {
			b = append(b, '-')
		}
	}
	out := nonSlug.ReplaceAllString(string(b), "-")
	out = multiDash.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// AttachmentName makes a file name safe for a Content-Disposition header.
func AttachmentName(name, ext string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == '\\' || r == '/' {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "export"
	}
	return name + ext
}
