package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	assert.Equal(t, 0, Words(""))
	assert.Equal(t, 0, Words("   \n\t"))
	assert.Equal(t, 4, Words("run the command now"))
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "single", text: "Run the command.", want: 1},
		{name: "multiple", text: "Run it. Check the output. Done!", want: 3},
		{name: "ellipsis counts once", text: "Wait... then run it.", want: 2},
		{name: "no terminator still one sentence", text: "a heading with no period", want: 1},
		{name: "question and exclamation", text: "Really?! Yes.", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentences(tt.text))
		})
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{word: "run", want: 1},
		{word: "command", want: 2},
		{word: "validate", want: 3},
		{word: "example", want: 3},
		{word: "the", want: 1},
		{word: "a", want: 1},
		{word: "rhythm", want: 1},
		{word: "", want: 0},
		{word: "123", want: 0},
		{word: "'quoted'", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word))
		})
	}
}

func TestAnalyze(t *testing.T) {
	stats := Analyze("Run the command. Check the output carefully.")

	assert.Equal(t, 7, stats.Words)
	assert.Equal(t, 2, stats.Sentences)
	assert.InDelta(t, 3.5, stats.WordsPerSentence, 0.001)
	assert.Greater(t, stats.ReadingEase, 0.0)
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze("")

	assert.Zero(t, stats.Words)
	assert.Zero(t, stats.Sentences)
	assert.Zero(t, stats.ReadingEase)
	assert.Zero(t, stats.WordsPerSentence)
}
