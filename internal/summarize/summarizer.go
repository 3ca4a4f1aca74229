package summarize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
)

// Summarizer produces a short extractive summary: sentences are ranked
// by normalized word frequency and the top ones are emitted in original
// document order. Insufficient output falls back to a truncated prefix
// of the content.
type Summarizer struct {
	SentenceCount int
	MinSummaryLen int
	TruncateAt    int
}

// Defaults matching the pipeline contract.
const (
	DefaultSentenceCount = 3
	DefaultMinSummaryLen = 50
	DefaultTruncateAt    = 500
)

// NewSummarizer builds a summarizer with the given sentence target.
// Non-positive arguments fall back to the defaults.
func NewSummarizer(sentenceCount int) *Summarizer {
	if sentenceCount <= 0 {
		sentenceCount = DefaultSentenceCount
	}
	return &Summarizer{
		SentenceCount: sentenceCount,
		MinSummaryLen: DefaultMinSummaryLen,
		TruncateAt:    DefaultTruncateAt,
	}
}

// Summarize reduces content to at most SentenceCount sentences. The
// placeholder content passes through unchanged. Any internal failure or
// too-short output degrades to truncation, never to an error.
func (s *Summarizer) Summarize(content string) string {
	content = strings.TrimSpace(content)
	if content == "" || content == domain.PlaceholderContent {
		return content
	}

	summary := s.rankSentences(content)
	if len(summary) < s.MinSummaryLen {
		return s.truncate(content)
	}
	return summary
}

// rankSentences never propagates a panic; a failure inside ranking
// yields "" and the caller falls back to truncation.
func (s *Summarizer) rankSentences(content string) (summary string) {
	defer func() {
		if recover() != nil {
			summary = ""
		}
	}()

	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= s.SentenceCount {
		return strings.Join(sentences, " ")
	}

	freq := wordFrequencies(content)

	type ranked struct {
		idx   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sentence := range sentences {
		scores[i] = ranked{idx: i, score: sentenceScore(sentence, freq)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	top := scores[:s.SentenceCount]
	sort.Slice(top, func(i, j int) bool { return top[i].idx < top[j].idx })

	parts := make([]string, 0, len(top))
	for _, r := range top {
		parts = append(parts, sentences[r.idx])
	}
	return strings.Join(parts, " ")
}

func (s *Summarizer) truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= s.TruncateAt {
		return content
	}
	return string(runes[:s.TruncateAt]) + "..."
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+["')\]]*|[^.!?]+$`)

func splitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

func wordFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, w := range tokenize(text) {
		if stopWords[w] {
			continue
		}
		freq[w]++
	}

	var max float64
	for _, f := range freq {
		if f > max {
			max = f
		}
	}
	if max > 0 {
		for w := range freq {
			freq[w] /= max
		}
	}
	return freq
}

func sentenceScore(sentence string, freq map[string]float64) float64 {
	tokens := tokenize(sentence)
	if len(tokens) == 0 {
		return 0
	}
	var total float64
	for _, w := range tokens {
		total += freq[w]
	}
	return total / float64(len(tokens))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"of": true, "to": true, "in": true, "on": true, "at": true, "for": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"it": true, "its": true, "this": true, "that": true, "these": true,
	"those": true, "he": true, "she": true, "they": true, "we": true,
	"you": true, "i": true, "his": true, "her": true, "their": true,
	"has": true, "have": true, "had": true, "will": true, "would": true,
	"can": true, "could": true, "not": true, "no": true, "than": true,
	"then": true, "there": true, "here": true, "also": true, "into": true,
	"over": true, "after": true, "before": true, "about": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "only": true,
	"which": true, "who": true, "when": true, "where": true, "while": true,
	"said": true, "say": true, "says": true,
}
