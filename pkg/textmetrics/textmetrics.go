// Package textmetrics computes simple prose statistics for command bodies:
// word and sentence counts plus the Flesch reading ease score. The syllable
// counter is heuristic, which is fine for comparative scoring across a
// repository of documents.
package textmetrics

import (
	"strings"
	"unicode"
)

// Stats holds the computed metrics for one piece of prose.
type Stats struct {
	Words            int     `json:"words" yaml:"words"`
	Sentences        int     `json:"sentences" yaml:"sentences"`
	Syllables        int     `json:"syllables" yaml:"syllables"`
	WordsPerSentence float64 `json:"words_per_sentence" yaml:"words_per_sentence"`
	ReadingEase      float64 `json:"reading_ease" yaml:"reading_ease"`
}

// Analyze computes all metrics for the given text in one pass.
func Analyze(text string) Stats {
	words := Words(text)
	sentences := Sentences(text)
	syllables := 0
	for _, word := range strings.Fields(text) {
		syllables += Syllables(word)
	}

	s := Stats{
		Words:     words,
		Sentences: sentences,
		Syllables: syllables,
	}
	if sentences > 0 {
		s.WordsPerSentence = float64(words) / float64(sentences)
	}
	if words > 0 && sentences > 0 {
		s.ReadingEase = 206.835 -
			1.015*(float64(words)/float64(sentences)) -
			84.6*(float64(syllables)/float64(words))
	}
	return s
}

// Words counts whitespace-separated tokens.
func Words(text string) int {
	return len(strings.Fields(text))
}

// Sentences counts terminal punctuation runs. Consecutive terminators
// ("..." or "?!") count as one sentence boundary.
func Sentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if count == 0 && Words(text) > 0 {
		return 1
	}
	return count
}

// Syllables estimates the syllable count of one word by counting vowel
// groups, dropping a trailing silent 'e', and flooring at one.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
