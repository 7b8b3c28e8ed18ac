package kdlschema

import (
	"strings"
	"unicode"
)

// Kebab converts a variant identifier into its kebab-case document tag.
//
// The boundary rules are a compatibility contract: document authors match the
// literal tags produced here, so the algorithm must not change.
//
//  1. Runes that are neither letters nor digits separate words and never
//     appear in the output ("Read_Only" -> "read-only").
//  2. A word boundary occurs at every lower-or-digit to upper transition
//     ("FooBar" -> "foo-bar", "Sha1Sum" -> "sha1-sum").
//  3. Inside an uppercase run followed by a lower rune, the boundary falls
//     before the run's final upper rune ("HTTPServer" -> "http-server").
//  4. Words are lowercased and joined with "-".
func Kebab(s string) string {
	runes := []rune(s)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return strings.Join(words, "-")
}
