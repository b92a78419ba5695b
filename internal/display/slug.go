package display

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugSpace пробельные символы в понимании браузера: ASCII, \v,
// разделители Zs, переводы строк U+2028/U+2029 и BOM
const slugSpace = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9` + slugSpace + `-]`)
	slugEdges        = regexp.MustCompile(`^[` + slugSpace + `]+|[` + slugSpace + `]+$`)
	slugWhitespace   = regexp.MustCompile(`[` + slugSpace + `]+`)
)

// Slugify превращает текст в slug: "Pastillas de Freno ABC-123" -> "pastillas-de-freno-abc-123".
// Повторное применение результат не меняет.
func Slugify(text string) string {
	// transform.Chain хранит состояние, поэтому собирается на каждый вызов
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	s := strings.ToLower(text)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugEdges.ReplaceAllString(s, "")
	return slugWhitespace.ReplaceAllString(s, "-")
}
