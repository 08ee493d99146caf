package tts

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNew_UnknownService(t *testing.T) {
	if _, err := New("polly", DefaultVoiceConfig()); err == nil {
		t.Fatalf("expected error for unsupported service")
	}
}

func TestAzure_SynthesizeSendsSSML(t *testing.T) {
	var gotBody string
	var gotKey, gotCT, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotCT = r.Header.Get("Content-Type")
		gotFormat = r.Header.Get("X-Microsoft-OutputFormat")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	a := &Azure{
		SubscriptionKey: "sub-key",
		Region:          "westeurope",
		Config:          DefaultVoiceConfig(),
		Endpoint:        srv.URL,
	}
	audio, err := a.Synthesize(context.Background(), "News & views")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio payload: %q", audio)
	}
	if gotKey != "sub-key" || gotCT != "application/ssml+xml" {
		t.Fatalf("missing auth or content-type headers: %q %q", gotKey, gotCT)
	}
	if gotFormat != "audio-24khz-48kbitrate-mono-mp3" {
		t.Fatalf("unexpected output format header: %q", gotFormat)
	}
	if !strings.Contains(gotBody, "en-IE-EmilyNeural") {
		t.Fatalf("SSML should carry the voice name: %q", gotBody)
	}
	if !strings.Contains(gotBody, "News &amp; views") {
		t.Fatalf("text must be escaped inside SSML: %q", gotBody)
	}
}

func TestAzure_SurfacesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad subscription key"))
	}))
	defer srv.Close()

	a := &Azure{SubscriptionKey: "nope", Config: DefaultVoiceConfig(), Endpoint: srv.URL}
	_, err := a.Synthesize(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected status in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad subscription key") {
		t.Fatalf("expected backend detail in error, got %v", err)
	}
}

func TestGoogle_SynthesizeDecodesAudioContent(t *testing.T) {
	var gotReq []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq, _ = io.ReadAll(r.Body)
		// "audio" base64-encoded
		_, _ = w.Write([]byte(`{"audioContent":"YXVkaW8="}`))
	}))
	defer srv.Close()

	g := &Google{APIKey: "k", Config: DefaultVoiceConfig(), Endpoint: srv.URL}
	audio, err := g.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(audio) != "audio" {
		t.Fatalf("expected decoded audio, got %q", audio)
	}
	req := string(gotReq)
	if !strings.Contains(req, `"languageCode":"en-IE"`) {
		t.Fatalf("expected Irish language code: %s", req)
	}
	// Azure neural id must not leak into the Google request.
	if !strings.Contains(req, `"name":"en-IE-Standard-A"`) {
		t.Fatalf("expected google voice fallback: %s", req)
	}
}

type stubSpeechClient struct {
	got   openai.CreateSpeechRequest
	audio []byte
}

func (s *stubSpeechClient) CreateSpeech(_ context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error) {
	s.got = req
	return openai.RawResponse{ReadCloser: io.NopCloser(bytes.NewReader(s.audio))}, nil
}

func TestOpenAI_SynthesizeMapsVoice(t *testing.T) {
	stub := &stubSpeechClient{audio: []byte("oai-audio")}
	o := &OpenAI{Client: stub, Config: DefaultVoiceConfig()}
	audio, err := o.Synthesize(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(audio) != "oai-audio" {
		t.Fatalf("unexpected audio: %q", audio)
	}
	// en-IE-EmilyNeural is not an OpenAI voice; nova is the fallback.
	if stub.got.Voice != openai.VoiceNova {
		t.Fatalf("expected nova fallback, got %q", stub.got.Voice)
	}
	if stub.got.Input != "hello there" {
		t.Fatalf("input not forwarded: %q", stub.got.Input)
	}
	if stub.got.Speed != 0.9 {
		t.Fatalf("speaking rate not forwarded: %v", stub.got.Speed)
	}
}

func TestOpenAI_KnownVoicePassesThrough(t *testing.T) {
	cfg := DefaultVoiceConfig()
	cfg.VoiceName = "onyx"
	stub := &stubSpeechClient{}
	o := &OpenAI{Client: stub, Config: cfg}
	if _, err := o.Synthesize(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.got.Voice != openai.VoiceOnyx {
		t.Fatalf("expected onyx, got %q", stub.got.Voice)
	}
}

func TestVoiceForLanguage(t *testing.T) {
	v, ok := VoiceForLanguage("azure", "en-IE")
	if !ok || v.ID != "en-IE-EmilyNeural" {
		t.Fatalf("expected Irish Azure voice, got %+v ok=%v", v, ok)
	}
	v, ok = VoiceForLanguage("google", "en")
	if !ok || v.Service != "google" {
		t.Fatalf("expected a google voice for plain en, got %+v ok=%v", v, ok)
	}
	if _, ok := VoiceForLanguage("nosuch", "en"); ok {
		t.Fatalf("expected no voice for unknown service")
	}
}
