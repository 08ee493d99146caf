package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Google synthesizes speech through the Google Cloud Text-to-Speech REST
// API. Audio comes back base64-encoded inside a JSON envelope.
type Google struct {
	APIKey string
	Config VoiceConfig

	// HTTPClient and Endpoint are overridable for tests.
	HTTPClient *http.Client
	Endpoint   string
}

type googleRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
		SSMLGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
		Pitch         float64 `json:"pitch"`
	} `json:"audioConfig"`
}

type googleResponse struct {
	AudioContent string `json:"audioContent"`
}

// NewGoogle reads the API key from GOOGLE_CLOUD_API_KEY.
func NewGoogle(cfg VoiceConfig) (*Google, error) {
	key := os.Getenv("GOOGLE_CLOUD_API_KEY")
	if key == "" {
		return nil, errors.New("GOOGLE_CLOUD_API_KEY environment variable not set")
	}
	return &Google{APIKey: key, Config: cfg}, nil
}

func (g *Google) endpoint() string {
	if g.Endpoint != "" {
		return g.Endpoint
	}
	return "https://texttospeech.googleapis.com/v1/text:synthesize"
}

func (g *Google) client() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

// voiceName keeps Azure-style voice ids out of Google requests: anything
// that is not an en-IE Google voice falls back to the Irish standard voice.
func (g *Google) voiceName() string {
	if strings.HasPrefix(g.Config.VoiceName, "en-IE") && !strings.Contains(g.Config.VoiceName, "Neural") {
		return g.Config.VoiceName
	}
	return "en-IE-Standard-A"
}

func (g *Google) Synthesize(ctx context.Context, text string) ([]byte, error) {
	var body googleRequest
	body.Input.Text = text
	body.Voice.LanguageCode = "en-IE"
	body.Voice.Name = g.voiceName()
	body.Voice.SSMLGender = "FEMALE"
	body.AudioConfig.AudioEncoding = "MP3"
	body.AudioConfig.SpeakingRate = g.Config.SpeakingRate
	body.AudioConfig.Pitch = 0

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint()+"?key="+g.APIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("google tts error (%d): %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	var out googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio content: %w", err)
	}
	return audio, nil
}
