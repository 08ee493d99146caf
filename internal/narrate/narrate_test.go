package narrate

import (
	"strings"
	"testing"

	"github.com/hearfeed/articlecast/internal/extract"
)

func TestPrepare_HeaderAssembly(t *testing.T) {
	a := &extract.Article{
		Title:         "A quiet revolution",
		Author:        "Jane Doe",
		PublishedDate: "2025-06-01",
		Body:          "First paragraph.\n\nSecond paragraph.",
	}
	got := Prepare(a, 0)
	if !strings.HasPrefix(got, "Article: A quiet revolution\n\nBy Jane Doe\n\nPublished 2025-06-01\n\n") {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestPrepare_OmitsAbsentAuthorAndDate(t *testing.T) {
	a := &extract.Article{Title: "No byline here", Body: "Just the body."}
	got := Prepare(a, 0)
	if strings.Contains(got, "By ") || strings.Contains(got, "Published ") {
		t.Fatalf("header should omit absent fields: %q", got)
	}
	if !strings.HasPrefix(got, "Article: No byline here\n\n") {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestPrepare_WithinBudgetNoTrailer(t *testing.T) {
	a := &extract.Article{Title: "Short", Body: "Fits easily."}
	got := Prepare(a, 5000)
	if strings.Contains(got, "shortened for audio") {
		t.Fatalf("no trailer expected for a body within budget: %q", got)
	}
}

func TestPrepare_TruncatesAndAppendsNotice(t *testing.T) {
	body := strings.Repeat("This sentence repeats to pad the body well past the budget. ", 40)
	a := &extract.Article{Title: "Long", Body: body}
	budget := 200
	got := Prepare(a, budget)
	if !strings.HasSuffix(got, ShortenedNotice) {
		t.Fatalf("expected shortened-for-audio notice, got tail %q", got[len(got)-60:])
	}
	spoken := strings.TrimPrefix(got, "Article: Long\n\n")
	spoken = strings.TrimSuffix(spoken, ShortenedNotice)
	if len(spoken) > budget {
		t.Fatalf("truncated body exceeds budget: %d > %d", len(spoken), budget)
	}
	if !strings.HasSuffix(spoken, ".") {
		t.Fatalf("truncation should end at a sentence boundary: %q", spoken)
	}
}

func TestCleanForSpeech_StripsURLsAndNormalizes(t *testing.T) {
	in := "Visit https://x.com/y now.  It’s “great”!"
	want := `Visit now. It's "great"!`
	if got := CleanForSpeech(in); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCleanForSpeech_DashesBecomeSpokenPauses(t *testing.T) {
	in := "A rise – sharp and sudden — in prices"
	want := "A rise - sharp and sudden - in prices"
	if got := CleanForSpeech(in); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCleanForSpeech_Idempotent(t *testing.T) {
	inputs := []string{
		"Visit https://x.com/y now.  It’s “great”!",
		"spaced – dash",
		"line\none\n\n\nline two\t tabbed",
		"already clean text.",
	}
	for _, in := range inputs {
		once := CleanForSpeech(in)
		twice := CleanForSpeech(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Fatalf("leftover double space in %q", once)
		}
	}
}

func TestTruncateAtSentence_PeriodPriority(t *testing.T) {
	text := "Hello world. This is a test! Another sentence? End."
	got := TruncateAtSentence(text, 25)
	if got != "Hello world." {
		t.Fatalf("got %q want %q", got, "Hello world.")
	}
}

func TestTruncateAtSentence_ExclamationWhenNoPeriod(t *testing.T) {
	text := "What a day! More text follows here and keeps on going without end"
	got := TruncateAtSentence(text, 30)
	if got != "What a day!" {
		t.Fatalf("got %q want %q", got, "What a day!")
	}
}

func TestTruncateAtSentence_WordBoundaryFallback(t *testing.T) {
	text := "no terminal punctuation anywhere in this stretch of writing at all"
	got := TruncateAtSentence(text, 30)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis fallback, got %q", got)
	}
	if len(got) > 30+3 {
		t.Fatalf("cut exceeds window: %q", got)
	}
	if strings.Contains(strings.TrimSuffix(got, "..."), "stretch of wri") {
		t.Fatalf("cut mid-word: %q", got)
	}
}

func TestTruncateAtSentence_UnbrokenTokenHardCut(t *testing.T) {
	text := strings.Repeat("x", 100)
	got := TruncateAtSentence(text, 10)
	if got != strings.Repeat("x", 10)+"..." {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateAtSentence_ShortTextUnchanged(t *testing.T) {
	if got := TruncateAtSentence("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
}

func TestEstimateDuration(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 350))
	got := EstimateDuration(text)
	if got < 1.99 || got > 2.01 {
		t.Fatalf("expected ~2 minutes for 350 words, got %f", got)
	}
}
