package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig_AppliesUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articlecast.yaml")
	body := `
service: google
output: from-file.mp3
voice:
  name: en-IE-Wavenet-A
  rate: 1.1
maxLength: 4000
cache:
  dir: .pagecache
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Flags already set (service, output) must win; unset values fill in.
	cfg := Config{Service: "azure", OutputPath: "cli.mp3"}
	fc.Apply(&cfg)
	if cfg.Service != "azure" || cfg.OutputPath != "cli.mp3" {
		t.Fatalf("flag values were overridden: %+v", cfg)
	}
	if cfg.Voice.VoiceName != "en-IE-Wavenet-A" || cfg.Voice.SpeakingRate != 1.1 {
		t.Fatalf("voice not applied from file: %+v", cfg.Voice)
	}
	if cfg.MaxLength != 4000 || cfg.CacheDir != ".pagecache" {
		t.Fatalf("budget or cache not applied: %+v", cfg)
	}
}

func TestLoadFileConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("service: [unclosed"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
