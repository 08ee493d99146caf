package tts

import "golang.org/x/text/language"

// Voice describes one known backend voice.
type Voice struct {
	Service     string
	ID          string
	Language    string
	Description string
}

// AvailableVoices lists the curated voices per backend. The catalog leans
// Irish because that is the default narration voice.
func AvailableVoices() []Voice {
	return []Voice{
		{Service: "azure", ID: "en-IE-EmilyNeural", Language: "en-IE", Description: "Emily - Irish female, natural and warm"},
		{Service: "azure", ID: "en-IE-ConnorNeural", Language: "en-IE", Description: "Connor - Irish male, clear and friendly"},
		{Service: "azure", ID: "en-GB-SoniaNeural", Language: "en-GB", Description: "Sonia - British female"},
		{Service: "google", ID: "en-IE-Standard-A", Language: "en-IE", Description: "Google Irish female voice"},
		{Service: "google", ID: "en-IE-Wavenet-A", Language: "en-IE", Description: "Google Irish female voice (WaveNet, higher quality)"},
		{Service: "openai", ID: "nova", Language: "en-US", Description: "OpenAI nova voice"},
		{Service: "openai", ID: "onyx", Language: "en-US", Description: "OpenAI onyx voice"},
		{Service: "local", ID: "en-irish+f3", Language: "en-IE", Description: "eSpeak Irish female voice"},
	}
}

// VoiceForLanguage picks the catalog voice for a service that best matches
// a BCP 47 tag such as "en-IE" or "en". The boolean is false when the
// service has no voice anywhere near the requested language.
func VoiceForLanguage(service, lang string) (Voice, bool) {
	var (
		voices []Voice
		tags   []language.Tag
	)
	for _, v := range AvailableVoices() {
		if v.Service != service {
			continue
		}
		voices = append(voices, v)
		tags = append(tags, language.Make(v.Language))
	}
	if len(voices) == 0 {
		return Voice{}, false
	}
	m := language.NewMatcher(tags)
	_, idx, conf := m.Match(language.Make(lang))
	if conf == language.No {
		return Voice{}, false
	}
	return voices[idx], true
}
