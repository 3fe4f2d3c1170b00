package validate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/modelspec/model"
)

// abbrevRe matches runs of two or more consecutive uppercase letters.
// A run only counts as an abbreviation token when both sides are
// non-letters; uppercase runs inside mixed-case words (HTMLDocument)
// are not tokens.
var abbrevRe = regexp.MustCompile(`[A-Z]{2,}`)

// checkAbbreviations scans raw document text for probable unexplained
// abbreviations: all-uppercase tokens outside the configured allow-list.
// One Info per distinct token per file.
func checkAbbreviations(path string, content []byte, allowed []string) []model.Diagnostic {
	allowSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowSet[strings.ToUpper(a)] = true
	}

	text := string(content)
	seen := make(map[string]bool)
	for _, loc := range abbrevRe.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isASCIILetter(text[start-1]) {
			continue
		}
		if end < len(text) && isASCIILetter(text[end]) {
			continue
		}
		token := text[start:end]
		if allowSet[token] || seen[token] {
			continue
		}
		seen[token] = true
	}

	if len(seen) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	diags := make([]model.Diagnostic, 0, len(tokens))
	for _, token := range tokens {
		diags = append(diags, model.Infof(path,
			"possible unexplained abbreviation %q; consider spelling it out or adding it to the acronym allow-list", token))
	}
	return diags
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
