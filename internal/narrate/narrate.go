// Package narrate shapes an extracted article into a single text string
// ready for speech synthesis: spoken header, TTS-friendly normalization,
// and sentence-boundary truncation under a character budget.
package narrate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hearfeed/articlecast/internal/extract"
)

// DefaultMaxLen bounds the spoken body length in characters.
const DefaultMaxLen = 5000

// ShortenedNotice is appended whenever the body had to be truncated.
const ShortenedNotice = "\n\nThis article has been shortened for audio. The full version is available at the original link."

// rewrites run in order; later patterns assume earlier ones already
// collapsed whitespace.
var rewrites = []struct {
	re   *regexp.Regexp
	with string
}{
	// Spoken text has no use for raw URLs.
	{regexp.MustCompile(`https?://\S+`), ""},
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile("[“”]"), `"`},
	{regexp.MustCompile("[‘’]"), "'"},
	// Adjacent spaces are absorbed so a second pass leaves text unchanged.
	{regexp.MustCompile(`\s*[–—]\s*`), " - "},
	{regexp.MustCompile(`\n\s*\n`), "\n\n"},
}

// Prepare renders an article as one narration string: a spoken header, the
// cleaned body, and a shortened-for-audio notice when the cleaned body
// exceeds maxLen characters. maxLen <= 0 selects DefaultMaxLen.
func Prepare(a *extract.Article, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Article: %s\n\n", a.Title)
	if a.Author != "" {
		fmt.Fprintf(&b, "By %s\n\n", a.Author)
	}
	if a.PublishedDate != "" {
		fmt.Fprintf(&b, "Published %s\n\n", a.PublishedDate)
	}
	body := CleanForSpeech(a.Body)
	if len(body) > maxLen {
		b.WriteString(TruncateAtSentence(body, maxLen))
		b.WriteString(ShortenedNotice)
	} else {
		b.WriteString(body)
	}
	return b.String()
}

// CleanForSpeech rewrites text so a synthesizer reads it naturally: URL
// tokens dropped, whitespace runs collapsed, smart quotes and dashes
// normalized. The transform is idempotent.
func CleanForSpeech(text string) string {
	for _, r := range rewrites {
		text = r.re.ReplaceAllString(text, r.with)
	}
	return strings.TrimSpace(text)
}

// TruncateAtSentence cuts text to at most maxLen bytes, ending at the last
// complete sentence in the window. Sentence endings are searched in
// priority order: period, exclamation mark, question mark. When no sentence
// ends inside the window the cut falls back to the last word boundary, and
// only for a single unbroken token to a hard cut.
func TruncateAtSentence(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	window := prefixBytes(text, maxLen)
	for _, end := range []string{". ", "! ", "? "} {
		if pos := strings.LastIndex(window, end); pos >= 0 {
			return window[:pos] + end[:1]
		}
	}
	if pos := strings.LastIndex(window, " "); pos >= 0 {
		return window[:pos] + "..."
	}
	return window + "..."
}

// prefixBytes returns the longest prefix of s not exceeding max bytes that
// ends on a rune boundary.
func prefixBytes(s string, max int) string {
	if max >= len(s) {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// EstimateDuration returns the approximate narration length in minutes at a
// conservative 175 words per minute.
func EstimateDuration(text string) float64 {
	return float64(len(strings.Fields(text))) / 175.0
}
