package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultGeminiURL = "https://generativelanguage.googleapis.com"
	DefaultModel     = "gemini-1.5-flash"

	promptFormat = "You are a mystical, cryptic Storm Seer. You speak in short (1-2 sentence), poetic prophecies. " +
		"Generate a prophecy about the current weather, which is: %s, %.1f°C."

	maxBodyBytes = 1 << 20
	tracerName   = "github.com/appengine-ltd/stormfront/internal/dialogue"
)

// GeminiConfig configures the Generative Language API adapter.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
}

type Gemini struct {
	cfg GeminiConfig
}

func NewGemini(cfg GeminiConfig) *Gemini {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.Logger.Printf("dialogue: GEMINI_API_KEY is not set, the Storm Seer will use canned lines")
	}
	return &Gemini{cfg: cfg}
}

// Prompt is the instruction sent for a weather reading.
func Prompt(description string, temperatureC float64) string {
	return fmt.Sprintf(promptFormat, description, temperatureC)
}

func (g *Gemini) Monologue(ctx context.Context, description string, temperatureC float64) string {
	if g.cfg.APIKey == "" {
		return Fallback(description)
	}
	text, err := g.generate(ctx, Prompt(description, temperatureC))
	if err != nil {
		g.cfg.Logger.Printf("dialogue: %v", err)
		return Fallback(description)
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

func (g *Gemini) generate(ctx context.Context, prompt string) (text string, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "gemini.generate_content", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("gen_ai.request.model", g.cfg.Model))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	payload, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.BaseURL, url.PathEscape(g.cfg.Model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("gemini read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return "", fmt.Errorf("gemini returned %s: %s", resp.Status, msg)
	}
	if !gjson.ValidBytes(body) {
		return "", errors.New("gemini returned malformed json")
	}
	text = strings.TrimSpace(gjson.GetBytes(body, "candidates.0.content.parts.0.text").String())
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}
