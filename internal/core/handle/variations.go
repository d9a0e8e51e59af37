package handle

import "strings"

// separator joins the words of a compound name in the underscore variant.
const separator = "_"

// Variations derives the candidate usernames for a brand name. Compound
// names (containing spaces or hyphens) yield a joined variant and an
// underscore variant; simple names yield a single sanitized variant. The
// platform's username alphabet is ASCII letters, digits, dot and underscore.
func Variations(name string) []string {
	clean := strings.TrimSpace(name)

	var variants []string
	if strings.ContainsAny(clean, " -") {
		variants = append(variants,
			strings.ToLower(stripRunes(clean, isAlphanumeric)),
			strings.ToLower(replaceRunes(clean, isAlphanumeric, separator)),
		)
	} else {
		variants = append(variants, strings.ToLower(stripRunes(clean, isUsernameRune)))
	}

	return dedupe(variants)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isUsernameRune(r rune) bool {
	return isAlphanumeric(r) || r == '.' || r == '_'
}

func stripRunes(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// replaceRunes substitutes every disallowed rune with repl, one for one.
func replaceRunes(s string, keep func(rune) bool, repl string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		} else {
			b.WriteString(repl)
		}
	}
	return b.String()
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
