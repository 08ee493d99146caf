package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Local synthesizes speech offline with espeak. It is the no-credentials
// fallback; output quality is well below the cloud backends.
type Local struct {
	Config VoiceConfig
}

// espeakVoice maps the configured voice to an espeak voice id.
func (l *Local) espeakVoice() string {
	if strings.HasPrefix(l.Config.VoiceName, "en-irish") {
		return l.Config.VoiceName
	}
	return "en-irish+f3"
}

func (l *Local) Synthesize(ctx context.Context, text string) ([]byte, error) {
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("articlecast-%d.wav", os.Getpid()))
	defer os.Remove(tmp)

	// -s is words per minute; scale from the configured rate around the
	// espeak default of 175.
	wpm := int(175 * l.Config.SpeakingRate)
	if wpm <= 0 {
		wpm = 160
	}
	cmd := exec.CommandContext(ctx, "espeak",
		"-v", l.espeakVoice(),
		"-s", fmt.Sprintf("%d", wpm),
		"-a", "100",
		"-g", "10",
		"-w", tmp,
		text,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("espeak failed (install with: sudo apt-get install espeak): %w: %s",
			err, strings.TrimSpace(string(out)))
	}
	audio, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("read generated audio: %w", err)
	}
	return audio, nil
}
