package records

import "strings"

// invalidFilenameChars are replaced before a display name is used on disk.
const invalidFilenameChars = `<>:"/\|?*`

// sanitizeFilename makes a display name safe for the filesystem:
// characters unsafe on any supported platform become underscores, runs of
// internal whitespace collapse to one space, and trailing dots and spaces
// are trimmed. An empty result falls back to a generic name.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalidFilenameChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")
	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
