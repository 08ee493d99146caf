package tts

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Azure synthesizes speech through Azure Cognitive Services. Requests are
// SSML documents so the voice name and prosody rate travel with the text.
type Azure struct {
	SubscriptionKey string
	Region          string
	Config          VoiceConfig

	// HTTPClient and Endpoint are overridable for tests.
	HTTPClient *http.Client
	Endpoint   string
}

// NewAzure reads credentials from AZURE_SPEECH_KEY and AZURE_SPEECH_REGION.
// The region defaults to westeurope.
func NewAzure(cfg VoiceConfig) (*Azure, error) {
	key := os.Getenv("AZURE_SPEECH_KEY")
	if key == "" {
		return nil, errors.New("AZURE_SPEECH_KEY environment variable not set")
	}
	region := os.Getenv("AZURE_SPEECH_REGION")
	if region == "" {
		region = "westeurope"
	}
	return &Azure{SubscriptionKey: key, Region: region, Config: cfg}, nil
}

func (a *Azure) endpoint() string {
	if a.Endpoint != "" {
		return a.Endpoint
	}
	return fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", a.Region)
}

func (a *Azure) client() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func (a *Azure) ssml(text string) string {
	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-IE' xmlns='http://www.w3.org/2001/10/synthesis' xmlns:mstts='https://www.w3.org/2001/mstts'>`+
			`<voice name='%s'><prosody rate='%.1f'>%s</prosody></voice></speak>`,
		a.Config.VoiceName, a.Config.SpeakingRate, html.EscapeString(text))
}

func (a *Azure) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(), strings.NewReader(a.ssml(text)))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", a.SubscriptionKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "audio-24khz-48kbitrate-mono-mp3")
	req.Header.Set("User-Agent", "articlecast/1.0")

	resp, err := a.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure speech request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("azure speech error (%d): %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
