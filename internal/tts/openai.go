package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SpeechClient is the minimal surface needed from the OpenAI client so
// tests can stub the backend without network access.
type SpeechClient interface {
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// OpenAI synthesizes speech through the OpenAI audio API.
type OpenAI struct {
	Client SpeechClient
	Config VoiceConfig
}

// NewOpenAI reads the API key from OPENAI_API_KEY.
func NewOpenAI(cfg VoiceConfig) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	return &OpenAI{Client: openai.NewClient(key), Config: cfg}, nil
}

var openaiVoices = map[string]openai.SpeechVoice{
	"alloy":   openai.VoiceAlloy,
	"echo":    openai.VoiceEcho,
	"fable":   openai.VoiceFable,
	"onyx":    openai.VoiceOnyx,
	"nova":    openai.VoiceNova,
	"shimmer": openai.VoiceShimmer,
}

// voice maps the configured voice name onto an OpenAI voice. Names from
// other services (Azure neural ids and the like) fall back to nova.
func (o *OpenAI) voice() openai.SpeechVoice {
	if v, ok := openaiVoices[strings.ToLower(o.Config.VoiceName)]; ok {
		return v
	}
	return openai.VoiceNova
}

func (o *OpenAI) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := o.Client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          o.voice(),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          o.Config.SpeakingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Close()
	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
