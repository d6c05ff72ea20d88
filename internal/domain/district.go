package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// District is a normalized identifier used as the topic partitioning key.
type District string

// Display renders the identifier for humans: underscores become spaces and
// each word is title-cased ("bengaluru_urban" -> "Bengaluru Urban"). Used as
// the fallback location label when the sender supplied none.
func (d District) Display() string {
	words := strings.Split(string(d), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Slugify normalizes a free-text place name into a district identifier:
// Unicode-decompose, strip combining marks and any remaining non-ASCII,
// lowercase, collapse non-alphanumeric runs to single underscores, trim.
// Returns "" when nothing survives; idempotent on its own output.
func Slugify(s string) District {
	// The transform chain keeps internal buffers, so build it per call
	// rather than sharing one across goroutines.
	deaccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingSep = true
		}
	}
	return District(b.String())
}
