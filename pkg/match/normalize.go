// Package match ranks catalog media items against a title hint, such as a
// disc volume label or a directory name.
package match

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX preceded by a space.
// Standalone "I" and "X" and a leading numeral are left alone ("I Robot",
// "American History X", "VII Days").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// NormalizeRomanNumerals converts Roman numerals (II-IX) to Arabic numbers.
func NormalizeRomanNumerals(s string) string {
	return romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.TrimSpace(match)
		if arabic, ok := romanToArabic[strings.ToUpper(roman)]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle normalizes a title for matching.
// Removes articles, punctuation and accents, collapses whitespace and
// converts Roman numerals.
func CleanTitle(title string) string {
	s := strings.ToLower(title)

	// before accent removal
	s = NormalizeRomanNumerals(s)

	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// "Léon: The Professional" -> strip the article of each part
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// discMarkerRegex matches trailing disc markers in volume labels:
// "DISC_1", "DISC1", "D1", "BONUS_DISC".
var discMarkerRegex = regexp.MustCompile(`(?i)[ _.-]+(disc[ _]?\d+|d\d|bonus[ _]?disc|bonus)$`)

var trailingYearRegex = regexp.MustCompile(`[ _.-]+((?:19|20)\d{2})$`)

// TitleFromVolumeLabel extracts a title hint and an optional year from a
// disc volume label or directory name, e.g. "THE_MATRIX_1999_D1" yields
// ("THE MATRIX", 1999).
func TitleFromVolumeLabel(label string) (string, int) {
	s := strings.TrimSpace(label)
	s = discMarkerRegex.ReplaceAllString(s, "")

	var year int
	if m := trailingYearRegex.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		s = s[:len(s)-len(m[0])]
	}

	s = strings.NewReplacer("_", " ", ".", " ").Replace(s)
	return strings.Join(strings.Fields(s), " "), year
}
