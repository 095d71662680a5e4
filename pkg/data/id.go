package data

import "strings"

// NormalizeID canonicalises a referenced name into the ID form every
// lookup in the store uses: lowercase, with every non-alphanumeric
// character (whitespace included) stripped. "Thunder Bolt", "thunderbolt" and
// "THUNDER-BOLT!!" all normalise to "thunderbolt".
func NormalizeID(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
