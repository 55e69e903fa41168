package widgets

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold macht Text vergleichbar ohne Groß-/Kleinschreibung und ohne Akzente:
// "Bánh Mì Đà Nẵng" -> "banh mi da nang".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	// đ/Đ zerfällt nicht unter NFD
	out = strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
	return strings.ToLower(out)
}
