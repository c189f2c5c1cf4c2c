package classifier

import (
	"sort"
	"strings"
)

// stopwords are high-frequency words excluded from keyword extraction,
// plus a few web/UI noise words that dominate scraped pages.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "cannot": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "either": {}, "else": {}, "even": {}, "ever": {}, "every": {},
	"few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "however": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"just": {},
	"less": {}, "like": {},
	"made": {}, "make": {}, "many": {}, "may": {}, "me": {}, "might": {},
	"more": {}, "most": {}, "much": {}, "must": {}, "my": {},
	"no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},
	"per": {},
	"same": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"very": {}, "via": {},
	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"why": {}, "will": {}, "with": {}, "within": {}, "without": {},
	"would": {},
	"yet": {}, "you": {}, "your": {}, "yours": {},

	// Navigation chrome that survives extraction on noisy pages.
	"click": {}, "button": {}, "link": {}, "menu": {}, "page": {},
	"pages": {}, "site": {}, "website": {}, "home": {}, "search": {},
	"loading": {}, "load": {},
}

// IsStopword reports whether word is filtered out of keyword extraction.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

type wordCount struct {
	word  string
	count int
}

// TopWords returns the n most frequent non-stopword terms in text,
// most frequent first. Punctuation is stripped from word edges; ties
// break alphabetically so results are deterministic.
func TopWords(text string, n int) []string {
	frequencies := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		frequencies[word]++
	}

	counts := make([]wordCount, 0, len(frequencies))
	for w, c := range frequencies {
		counts = append(counts, wordCount{w, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if n > len(counts) {
		n = len(counts)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = counts[i].word
	}
	return top
}
