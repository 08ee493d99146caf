// Package app wires fetch, extraction, narration, and synthesis into one
// URL-to-audio run.
package app

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hearfeed/articlecast/internal/audio"
	"github.com/hearfeed/articlecast/internal/cache"
	"github.com/hearfeed/articlecast/internal/extract"
	"github.com/hearfeed/articlecast/internal/fetch"
	"github.com/hearfeed/articlecast/internal/narrate"
	"github.com/hearfeed/articlecast/internal/tts"
)

// App runs one article-to-audio conversion.
type App struct {
	cfg     Config
	fetcher *fetch.Client
	synth   tts.Synthesizer
}

// New validates the configuration and builds the collaborators. The URL is
// checked before any network work so malformed input fails fast.
func New(cfg Config) (*App, error) {
	if err := ValidateURL(cfg.URL); err != nil {
		return nil, err
	}
	cfg.Voice = applyVoiceDefaults(cfg.Voice)
	if cfg.Language != "" {
		if v, ok := tts.VoiceForLanguage(cfg.Service, cfg.Language); ok {
			cfg.Voice.VoiceName = v.ID
			log.Debug().Str("voice", v.ID).Str("lang", cfg.Language).Msg("picked voice by language")
		}
	}
	synth, err := tts.New(cfg.Service, cfg.Voice)
	if err != nil {
		return nil, err
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	fetcher := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       3,
		PerRequestTimeout: timeout,
	}
	if cfg.CacheDir != "" {
		fetcher.Cache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	return &App{cfg: cfg, fetcher: fetcher, synth: synth}, nil
}

// ValidateURL rejects anything that does not parse as an absolute http(s)
// URL with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid URL %q: must be absolute", raw)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid URL %q: unsupported scheme %q", raw, u.Scheme)
	}
	return nil
}

// Run executes fetch, extract, narrate, synthesize, save. It returns the
// path the audio was written to.
func (a *App) Run(ctx context.Context) (string, error) {
	log.Info().Str("url", a.cfg.URL).Msg("fetching article")
	html, _, err := a.fetcher.Get(ctx, a.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}

	article, err := extract.ExtractHTML(string(html), a.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	log.Info().Str("title", article.Title).Int("chars", len(article.Body)).Msg("extracted article")

	text := narrate.Prepare(article, a.cfg.MaxLength)
	log.Debug().Int("chars", len(text)).
		Float64("minutes", narrate.EstimateDuration(text)).
		Msg("narration prepared")

	log.Info().Str("service", a.cfg.Service).Str("voice", a.cfg.Voice.VoiceName).Msg("synthesizing speech")
	data, err := a.synth.Synthesize(ctx, text)
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}

	out := a.cfg.OutputPath
	if out == "" {
		out = defaultOutputPath(article)
	}
	if _, err := (audio.Writer{}).Save(data, out); err != nil {
		return "", err
	}
	log.Info().Str("path", out).
		Float64("minutes", narrate.EstimateDuration(text)).
		Msg("audio ready")
	return out, nil
}

func applyVoiceDefaults(v tts.VoiceConfig) tts.VoiceConfig {
	def := tts.DefaultVoiceConfig()
	if v.VoiceName == "" {
		v.VoiceName = def.VoiceName
	}
	if v.SpeakingRate == 0 {
		v.SpeakingRate = def.SpeakingRate
	}
	if v.OutputFormat == "" {
		v.OutputFormat = def.OutputFormat
	}
	if v.SampleRate == 0 {
		v.SampleRate = def.SampleRate
	}
	return v
}

// defaultOutputPath derives a filesystem-safe file name from the article
// title.
func defaultOutputPath(a *extract.Article) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, a.Title)
	slug = strings.Trim(slug, "-")
	if len(slug) > 60 {
		slug = slug[:60]
	}
	if slug == "" {
		slug = "article"
	}
	return filepath.Clean(slug + ".mp3")
}
