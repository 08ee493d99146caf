package app

import (
	"time"

	"github.com/hearfeed/articlecast/internal/tts"
)

// Config holds runtime configuration for one conversion run.
type Config struct {
	// URL of the article to convert.
	URL string
	// OutputPath for the audio file; empty means auto-generated.
	OutputPath string

	// Service selects the TTS backend: azure, google, openai, or local.
	Service string
	Voice   tts.VoiceConfig
	// Language optionally picks a catalog voice by BCP 47 tag instead of
	// naming one explicitly.
	Language string

	// MaxLength bounds the spoken body in characters.
	MaxLength int

	// Fetching
	CacheDir     string
	FetchTimeout time.Duration
	UserAgent    string

	// Behavior
	ListVoices bool
	Verbose    bool
}
