// Command articlecast converts a news article URL into a narrated audio
// file: fetch, extract readable text, normalize it for speech, synthesize.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hearfeed/articlecast/internal/app"
	"github.com/hearfeed/articlecast/internal/tts"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Backend credentials commonly live in a local .env during development.
	_ = godotenv.Load()

	var (
		articleURL   string
		outputPath   string
		service      string
		voice        string
		rate         float64
		language     string
		maxLength    int
		configPath   string
		cacheDir     string
		fetchTimeout time.Duration
		userAgent    string
		listVoices   bool
		verbose      bool
	)

	flag.StringVar(&articleURL, "url", "", "URL of the article to convert")
	flag.StringVar(&outputPath, "output", "", "Output audio file path (default: derived from the article title)")
	flag.StringVar(&service, "service", "azure", "TTS service to use: azure, google, openai, or local")
	flag.StringVar(&voice, "voice", "", "Voice name/ID, service-specific (default: en-IE-EmilyNeural)")
	flag.Float64Var(&rate, "rate", 0, "Speaking rate, 0.5 to 2.0 (default 0.9)")
	flag.StringVar(&language, "lang", "", "Pick a catalog voice by language tag, e.g. 'en-IE'")
	flag.IntVar(&maxLength, "max.length", 0, "Maximum spoken body length in characters (default 5000)")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the fetched-page cache (disabled when empty)")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Per-request fetch timeout (default 30s)")
	flag.StringVar(&userAgent, "fetch.ua", "", "Custom User-Agent for article fetches")
	flag.BoolVar(&listVoices, "list-voices", false, "List known voices per service and exit")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		URL:        articleURL,
		OutputPath: outputPath,
		Service:    service,
		Voice: tts.VoiceConfig{
			VoiceName:    voice,
			SpeakingRate: rate,
		},
		Language:     language,
		MaxLength:    maxLength,
		CacheDir:     cacheDir,
		FetchTimeout: fetchTimeout,
		UserAgent:    userAgent,
		ListVoices:   listVoices,
		Verbose:      verbose,
	}
	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
		fc.Apply(&cfg)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.ListVoices {
		printVoices()
		return
	}
	if cfg.URL == "" {
		fmt.Fprintln(os.Stderr, "usage: articlecast -url <article-url> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	out, err := a.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	fmt.Println(out)
}

func printVoices() {
	for _, v := range tts.AvailableVoices() {
		fmt.Printf("%-8s %-22s %-6s %s\n", v.Service, v.ID, v.Language, v.Description)
	}
}
