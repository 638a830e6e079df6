package helper

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// StringInSlice check el in slice
func StringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}

// IsValidSlug check slug format, lowercase alphanumeric segments joined by single hyphens
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// ParseSlugList split comma separated slug list, dropping empty segments
func ParseSlugList(param string) (slugs []string) {
	for _, s := range strings.Split(param, ",") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// SecondLevelDomain extract second level domain from an origin url, for ics product id
func SecondLevelDomain(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return "calendar"
	}
	parts := strings.Split(u.Hostname(), ".")
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[len(parts)-2]
}
