package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// stopwords excluded from hashtag suggestions
var stopwords = map[string]bool{
	"a": true, "about": true, "after": true, "all": true, "also": true,
	"an": true, "and": true, "any": true, "are": true, "as": true,
	"at": true, "be": true, "because": true, "been": true, "but": true,
	"by": true, "can": true, "could": true, "did": true, "do": true,
	"does": true, "for": true, "from": true, "get": true, "got": true,
	"had": true, "has": true, "have": true, "her": true, "here": true,
	"him": true, "his": true, "how": true, "into": true, "its": true,
	"just": true, "like": true, "more": true, "most": true, "not": true,
	"now": true, "of": true, "on": true, "one": true, "only": true,
	"or": true, "our": true, "out": true, "over": true, "she": true,
	"so": true, "some": true, "than": true, "that": true, "the": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "to": true, "up": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "which": true,
	"who": true, "will": true, "with": true, "would": true, "you": true,
	"your": true,
}

const maxSuggestions = 5

// SuggestHashtags extracts candidate hashtags from post content. Words
// are scored by frequency, with extra weight for capitalized words (a
// rough proxy for names) and for longer words; stopwords and words
// shorter than three characters are dropped. Returns at most five
// normalized suggestions, best first.
func SuggestHashtags(content string) []string {
	scores := make(map[string]int)

	for _, word := range wordPattern.FindAllString(content, -1) {
		tag := strings.ToLower(word)
		if len(tag) < 3 || stopwords[tag] {
			continue
		}

		weight := 1
		if unicode.IsUpper(rune(word[0])) {
			weight += 2
		}
		if len(tag) > 6 {
			weight++
		}
		scores[tag] += weight
	}

	tags := make([]string, 0, len(scores))
	for tag := range scores {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if scores[tags[i]] != scores[tags[j]] {
			return scores[tags[i]] > scores[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > maxSuggestions {
		tags = tags[:maxSuggestions]
	}
	return tags
}
