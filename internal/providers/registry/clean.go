package registry

import (
	"regexp"
	"strings"
	"unicode"
)

// Corporate suffixes and noise terms stripped from names before the
// registry search, matched on word boundaries, case-insensitively.
var noiseTerms = []string{
	"jobs", "digital", "en", "fonctions centrales", "france", "recrutement",
	"| b corp™", "sas", "s.a.s.", "gmbh", "limited", "nv", "epic", "groupe",
	"h/f", "(siège)", "| groupe edg", "corporate & institutional banking",
}

var noisePatterns = compileNoise()

func compileNoise() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(noiseTerms))
	for _, t := range noiseTerms {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(t)+`\b`))
	}
	return out
}

// Separators that end the useful part of a name.
var separators = []string{"-", "|", "(", ","}

// CleanName normalizes a company name for the registry search:
// lower-case, strip noise terms, truncate at the first separator,
// title-case. A result shorter than 3 characters falls back to the
// original name untouched. "EY" maps to "EY " so the registry does not
// prefix-match every company starting with those letters.
func CleanName(name string) string {
	if strings.TrimSpace(name) == "EY" {
		return "EY "
	}

	clean := strings.ToLower(name)
	for _, re := range noisePatterns {
		clean = re.ReplaceAllString(clean, "")
	}

	for _, sep := range separators {
		if i := strings.Index(clean, sep); i >= 0 {
			clean = clean[:i]
		}
	}

	clean = titleCase(strings.TrimSpace(clean))
	if len([]rune(clean)) < 3 {
		return name
	}
	return clean
}

// titleCase upper-cases the first letter of every word, like Python's
// str.title, which the registry's own search normalization expects.
func titleCase(s string) string {
	prevLetter := false
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			if prevLetter {
				prevLetter = true
				return unicode.ToLower(r)
			}
			prevLetter = true
			return unicode.ToUpper(r)
		}
		prevLetter = false
		return r
	}, s)
}
