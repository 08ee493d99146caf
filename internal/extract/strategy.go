package extract

import "strings"

// Strategy is an ordered bundle of selector lists and thresholds used to
// pull one article out of a page. Known-site strategies are matched by
// domain substring; the generic strategy handles everything else.
type Strategy struct {
	Name    string
	Domains []string

	TitleSelectors  []string
	AuthorSelectors []string
	DateSelectors   []string
	// BodySelectors are tried as whole groups: the first selector whose
	// filtered paragraph set is non-empty wins. Site strategies declare one
	// combined selector so every paragraph container is collected in a
	// single pass.
	BodySelectors []string

	// TitleFallback is used when no title selector yields text.
	TitleFallback string
	// MinParagraphLen drops trimmed paragraphs at or below this length,
	// filtering captions, credits, and similar boilerplate.
	MinParagraphLen int
	// EmptyBodyMsg is the failure message when no paragraph survives.
	EmptyBodyMsg string
}

// siteStrategies are consulted in declaration order; the first domain match
// wins and no other strategy is tried for that call. Selector lists are
// ordered newest layout first, since site markup drifts across templates.
var siteStrategies = []Strategy{
	{
		Name:    "guardian",
		Domains: []string{"theguardian.com"},
		TitleSelectors: []string{
			"h1[data-gu-name='headline']",
			"h1.content__headline",
			"h1",
		},
		AuthorSelectors: []string{
			"a[rel='author']",
			".byline a",
			".contributor-full-name",
		},
		DateSelectors: []string{
			"time[datetime]",
			".content__dateline time",
		},
		BodySelectors: []string{
			".content__article-body p, .article-body-commercial-selector p, [data-gu-name='body'] p",
		},
		TitleFallback:   "Untitled Article",
		MinParagraphLen: 10,
		EmptyBodyMsg:    "no article content found",
	},
	{
		Name:    "bbc",
		Domains: []string{"bbc.co.uk", "bbc.com"},
		TitleSelectors: []string{
			"h1.story-body__h1",
			"h1[data-testid='headline']",
		},
		DateSelectors: []string{
			"time[datetime]",
			".date",
		},
		BodySelectors: []string{
			".story-body__inner p, [data-component='text-block'] p",
		},
		TitleFallback:   "BBC Article",
		MinParagraphLen: 10,
		EmptyBodyMsg:    "no BBC article content found",
	},
	{
		Name:    "nytimes",
		Domains: []string{"nytimes.com"},
		TitleSelectors: []string{
			"h1[data-testid='headline']",
			"h1.headline",
		},
		AuthorSelectors: []string{
			"[data-testid='byline'] span",
			".byline-author",
		},
		BodySelectors: []string{
			".StoryBodyCompanionColumn p, section[name='articleBody'] p",
		},
		TitleFallback:   "New York Times Article",
		MinParagraphLen: 10,
		EmptyBodyMsg:    "no NYT article content found",
	},
}

// genericStrategy covers unrecognized sites with increasingly broad
// selectors. Body groups are tried one at a time and the first productive
// group wins; the higher paragraph threshold compensates for noisier
// matches.
var genericStrategy = Strategy{
	Name: "generic",
	TitleSelectors: []string{
		"h1", "title", ".title", ".headline", ".entry-title", ".post-title",
	},
	AuthorSelectors: []string{
		".author", ".byline", ".writer", "[rel='author']",
	},
	BodySelectors: []string{
		"article p",
		".content p",
		".entry-content p",
		".post-content p",
		".article-body p",
		"main p",
		".story p",
	},
	TitleFallback:   "Article",
	MinParagraphLen: 20,
	EmptyBodyMsg:    "could not extract article content from this page",
}

// strategyFor picks the strategy whose domain substring appears in the URL
// host. Unmatched hosts get the generic strategy.
func strategyFor(host string) Strategy {
	for _, s := range siteStrategies {
		for _, d := range s.Domains {
			if strings.Contains(host, d) {
				return s
			}
		}
	}
	return genericStrategy
}
