package domain

import "strings"

// simplifiedToTraditional maps simplified characters to their
// traditional counterparts for search variant expansion.
var simplifiedToTraditional = map[rune]rune{
	'烟': '煙',
	'电': '電',
	'发': '發',
	'乐': '樂',
	'号': '號',
}

// Normalize canonicalizes text for matching: lower-case fold, then
// full-width ASCII (U+FF01..U+FF5E) folded to half-width by code-point
// arithmetic. No locale-aware collation.
func Normalize(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 0xFF01 && r <= 0xFF5E {
			r -= 0xFEE0
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExpandVariants returns the equivalent spellings of text: the text
// itself plus, for each character with a known traditional counterpart,
// a copy with that character substituted. Unmapped characters pass
// through unchanged. Used for search matching only.
func ExpandVariants(text string) []string {
	variants := []string{text}
	for _, r := range text {
		t, ok := simplifiedToTraditional[r]
		if !ok {
			continue
		}
		v := strings.Replace(text, string(r), string(t), 1)
		variants = append(variants, v)
	}
	return variants
}

// SearchCatalog returns the products matching keyword, in catalog order.
// A product matches when any single character of the normalized keyword
// (or of one of its variant spellings) occurs in the normalized product
// name. A blank keyword matches nothing; callers treat it as a no-op
// and keep their prior results.
func SearchCatalog(keyword string, catalog []Product) []Product {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}

	chars := keywordChars(keyword)

	var matches []Product
	for _, p := range catalog {
		if matchesAny(Normalize(p.Name), chars) {
			matches = append(matches, p)
		}
	}
	return matches
}

func keywordChars(keyword string) []string {
	seen := make(map[rune]struct{})
	var chars []string
	for _, v := range ExpandVariants(Normalize(keyword)) {
		for _, r := range v {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			chars = append(chars, string(r))
		}
	}
	return chars
}

func matchesAny(name string, chars []string) bool {
	for _, c := range chars {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}
