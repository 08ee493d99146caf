// Package audio writes synthesized audio to disk. Cloud backends already
// return encoded MP3, so no re-encoding happens here.
package audio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// WhatsAppLimit is the media size cap WhatsApp enforces; narrations are
// typically shared there.
const WhatsAppLimit = 16 * 1024 * 1024

// Writer persists audio bytes and reports the resulting file size.
type Writer struct{}

// Save writes data to path and returns the file size in bytes. Files above
// WhatsAppLimit are still written but logged as a warning.
func (Writer) Save(data []byte, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return 0, fmt.Errorf("write audio data: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return 0, fmt.Errorf("flush audio data: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output file: %w", err)
	}
	size := info.Size()
	mb := float64(size) / (1024.0 * 1024.0)
	if size > WhatsAppLimit {
		log.Warn().Float64("mb", mb).Str("path", path).
			Msg("audio file exceeds WhatsApp's 16MB media limit; consider a shorter max length")
	} else {
		log.Info().Float64("mb", mb).Str("path", path).Msg("audio file written")
	}
	return size, nil
}
