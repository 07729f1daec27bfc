package dialogue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestFallbackLines(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{desc: "light rain", want: "The sky weeps"},
		{desc: "Heavy Snow", want: "A white silence"},
		{desc: "rain and snow", want: "A white silence"},
		{desc: "Temperate", want: "The winds"},
		{desc: "", want: "The winds"},
	}
	for _, tc := range tests {
		if got := Fallback(tc.desc); !strings.HasPrefix(got, tc.want) {
			t.Fatalf("%q: expected line starting %q, got %q", tc.desc, tc.want, got)
		}
	}
}

func TestPrompt(t *testing.T) {
	got := Prompt("light snow", -3.25)
	if !strings.HasSuffix(got, "which is: light snow, -3.2°C.") && !strings.HasSuffix(got, "which is: light snow, -3.3°C.") {
		t.Fatalf("unexpected prompt %q", got)
	}
	if !strings.HasPrefix(got, "You are a mystical, cryptic Storm Seer.") {
		t.Fatalf("unexpected prompt %q", got)
	}
}

func TestGeminiMonologue(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		gotPrompt = gjson.GetBytes(body, "contents.0.parts.0.text").String()
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  The frost remembers your name.  "}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini(GeminiConfig{APIKey: "secret", Model: "gemini-test", BaseURL: srv.URL + "/"})
	got := g.Monologue(context.Background(), "light snow", -2)
	if got != "The frost remembers your name." {
		t.Fatalf("expected trimmed model text, got %q", got)
	}
	if gotPath != "/v1beta/models/gemini-test:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if gotPrompt != Prompt("light snow", -2) {
		t.Fatalf("unexpected prompt %q", gotPrompt)
	}
}

func TestGeminiFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error", status: http.StatusForbidden, body: `{"error":{"message":"API key not valid"}}`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`},
		{name: "malformed", status: http.StatusOK, body: `{"candidates":`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			g := NewGemini(GeminiConfig{APIKey: "k", BaseURL: srv.URL})
			if got := g.Monologue(context.Background(), "moderate rain", 12); got != Fallback("moderate rain") {
				t.Fatalf("expected fallback line, got %q", got)
			}
		})
	}
}

func TestGeminiWithoutKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := NewGemini(GeminiConfig{BaseURL: srv.URL})
	if got := g.Monologue(context.Background(), "clear sky", 20); got != Fallback("clear sky") {
		t.Fatalf("expected fallback line, got %q", got)
	}
	if called {
		t.Fatalf("expected no request without a key")
	}
}

func TestCanned(t *testing.T) {
	if got := (Canned{}).Monologue(context.Background(), "blizzard", -10); got != Fallback("blizzard") {
		t.Fatalf("expected canned line, got %q", got)
	}
}
