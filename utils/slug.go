package utils

import "strings"

// ParkNameFromSlug derives the display name of a park from its slug.
// Park names are not stored anywhere; every consumer must go through
// this function so "jibowu-park" always renders as "Jibowu Park".
func ParkNameFromSlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Slugify is the inverse transformation, used by the demo fixtures.
func Slugify(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")
	return base
}
