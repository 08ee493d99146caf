// Package tts provides speech synthesis backends behind a single
// Synthesizer interface. Each backend turns prepared narration text into
// raw audio bytes; callers own writing those bytes to disk.
package tts

import (
	"context"
	"fmt"
	"strings"
)

// VoiceConfig describes how the narration should sound. It is passed
// through to the backend untouched apart from service-specific mapping of
// the voice name.
type VoiceConfig struct {
	VoiceName    string  `yaml:"voice"`
	SpeakingRate float64 `yaml:"rate"`
	OutputFormat string  `yaml:"format"`
	SampleRate   int     `yaml:"sampleRate"`
}

// DefaultVoiceConfig is tuned for clear narration with an Irish female
// neural voice at a slightly relaxed pace.
func DefaultVoiceConfig() VoiceConfig {
	return VoiceConfig{
		VoiceName:    "en-IE-EmilyNeural",
		SpeakingRate: 0.9,
		OutputFormat: "mp3",
		SampleRate:   24000,
	}
}

// Synthesizer converts narration text into audio bytes. Implementations
// wrap exactly one speech backend.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// New builds the synthesizer for a service name: "azure", "google",
// "openai", or "local". Backend credentials come from the environment.
func New(service string, cfg VoiceConfig) (Synthesizer, error) {
	switch strings.ToLower(service) {
	case "azure":
		return NewAzure(cfg)
	case "google":
		return NewGoogle(cfg)
	case "openai":
		return NewOpenAI(cfg)
	case "local":
		return &Local{Config: cfg}, nil
	default:
		return nil, fmt.Errorf("unsupported TTS service: %s", service)
	}
}
