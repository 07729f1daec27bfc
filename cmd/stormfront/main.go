package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/appengine-ltd/stormfront/internal/config"
	"github.com/appengine-ltd/stormfront/internal/dialogue"
	"github.com/appengine-ltd/stormfront/internal/forecast"
	"github.com/appengine-ltd/stormfront/internal/game"
	"github.com/appengine-ltd/stormfront/internal/telemetry"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		verbose     bool
		sick        bool
		name        string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&verbose, "v", false, "log simulation details to stderr")
	flag.BoolVar(&sick, "sick", false, "start the run with a fever")
	flag.StringVar(&name, "name", "", "explorer name")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 picks one from the clock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Stormfront %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(name, seed, sick, verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(name string, seed int64, sick, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "stormfront", cfg.OTelEndpoint, cfg.Tracing())
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "stormfront: ", log.LstdFlags)
	}
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	opts := []game.Option{game.WithLogger(logger)}
	// Without a key the forecast could only report its fallback, which would
	// pin the sky to a permanent clear day. Leave the storms to the dice instead.
	if strings.TrimSpace(cfg.OWMAPIKey) != "" {
		opts = append(opts, game.WithForecast(forecast.NewOWM(forecast.OWMConfig{
			APIKey:     cfg.OWMAPIKey,
			City:       cfg.WeatherCity,
			Country:    cfg.WeatherCountry,
			CacheTTL:   cfg.WeatherCacheTTL,
			HTTPClient: client,
			Logger:     logger,
		})))
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		opts = append(opts, game.WithDialogue(dialogue.NewGemini(dialogue.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			HTTPClient: client,
			Logger:     logger,
		})))
	}

	r, err := game.NewRun(game.RunConfig{PlayerName: name, Seed: seed, Sick: sick}, opts...)
	if err != nil {
		return err
	}
	return play(ctx, r, os.Stdin, os.Stdout)
}

func play(ctx context.Context, r *game.Run, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Stormfront. The drake waits to the east. Type help for commands.")
	fmt.Fprintln(out, r.Look())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		res := r.ExecuteCommand(ctx, scanner.Text())
		if !res.Handled {
			continue
		}
		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}
		if res.Quit || r.Over() {
			return nil
		}
	}
}
