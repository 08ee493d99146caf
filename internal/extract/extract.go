// Package extract turns raw news-site HTML into a structured article using
// ordered, site-aware selector strategies.
package extract

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractionError reports which strategy and field failed to produce
// content. It is the only error type the engine defines; missing optional
// fields are not errors.
type ExtractionError struct {
	Strategy string
	Field    string
	Msg      string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s/%s: %s", e.Strategy, e.Field, e.Msg)
}

// Extract runs the strategy matching sourceURL against an already parsed
// document. It fails only when no body paragraph survives filtering; an
// absent author or date simply leaves the field empty.
func Extract(doc Document, sourceURL string) (*Article, error) {
	return runStrategy(doc, strategyFor(hostOf(sourceURL)), sourceURL)
}

// ExtractHTML parses raw HTML and extracts in one call.
func ExtractHTML(input, sourceURL string) (*Article, error) {
	doc, err := ParseDocument(input)
	if err != nil {
		return nil, err
	}
	return Extract(doc, sourceURL)
}

func hostOf(sourceURL string) string {
	if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
		return u.Host
	}
	// Odd inputs fall back to substring matching over the raw string.
	return sourceURL
}

func runStrategy(doc Document, s Strategy, sourceURL string) (*Article, error) {
	a := &Article{SourceURL: sourceURL}

	title, ok := firstMatch(doc, s.TitleSelectors)
	if !ok || title == "" {
		title = s.TitleFallback
	}
	a.Title = title

	if author, ok := firstMatch(doc, s.AuthorSelectors); ok && author != "" {
		a.Author = author
	}
	if date, ok := firstDated(doc, s.DateSelectors); ok && date != "" {
		a.PublishedDate = date
	}

	paras := bodyParagraphs(doc, s.BodySelectors, s.MinParagraphLen)
	if len(paras) == 0 {
		return nil, &ExtractionError{Strategy: s.Name, Field: "body", Msg: s.EmptyBodyMsg}
	}
	a.Body = strings.Join(paras, "\n\n")
	return a, nil
}

// firstMatch returns the trimmed text of the first element matched by the
// first selector that matches anything at all. Later selectors are never
// consulted once one has matched.
func firstMatch(doc Document, selectors []string) (string, bool) {
	for _, sel := range selectors {
		if els := doc.Select(sel); len(els) > 0 {
			return strings.TrimSpace(els[0].Text()), true
		}
	}
	return "", false
}

// firstDated behaves like firstMatch but prefers a machine-readable
// datetime attribute over the element's visible text when both exist.
func firstDated(doc Document, selectors []string) (string, bool) {
	for _, sel := range selectors {
		els := doc.Select(sel)
		if len(els) == 0 {
			continue
		}
		if v, ok := els[0].Attr("datetime"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		return strings.TrimSpace(els[0].Text()), true
	}
	return "", false
}

// bodyParagraphs tries each selector group in turn and keeps the first
// group that yields any paragraph longer than min after trimming.
func bodyParagraphs(doc Document, selectors []string, min int) []string {
	for _, sel := range selectors {
		var paras []string
		for _, el := range doc.Select(sel) {
			text := strings.TrimSpace(el.Text())
			if len(text) > min {
				paras = append(paras, text)
			}
		}
		if len(paras) > 0 {
			return paras
		}
	}
	return nil
}
