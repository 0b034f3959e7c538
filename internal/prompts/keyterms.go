package prompts

import "regexp"

// keyTermPatterns pick out proper nouns, tech acronyms, and well-known
// technology names from conversation text.
var keyTermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`),
	regexp.MustCompile(`(?i)\b(?:API|SDK|AI|ML|UI|UX|SaaS|MVP|POC)\b`),
	regexp.MustCompile(`(?i)\b\w+(?:\.js|\.py|\.com|\.org)\b`),
	regexp.MustCompile(`(?i)\b(?:React|Vue|Angular|Python|JavaScript|Node|Docker|AWS|Azure)\b`),
}

// KeyTerms extracts up to three notable terms from a conversation snippet,
// in order of first appearance across the pattern passes.
func KeyTerms(snippet string) []string {
	var terms []string
	seen := make(map[string]bool)

	for _, pattern := range keyTermPatterns {
		for _, match := range pattern.FindAllString(snippet, -1) {
			if !seen[match] {
				seen[match] = true
				terms = append(terms, match)
			}
		}
	}

	if len(terms) > 3 {
		terms = terms[:3]
	}
	return terms
}
