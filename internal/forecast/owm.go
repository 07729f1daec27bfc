package forecast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/appengine-ltd/stormfront/internal/weather"
)

const (
	DefaultOWMURL   = "https://api.openweathermap.org"
	DefaultCacheTTL = 10 * time.Minute

	maxBodyBytes = 1 << 20
	tracerName   = "github.com/appengine-ltd/stormfront/internal/forecast"
)

var ErrNoAPIKey = errors.New("owm api key is not set")

// OWMConfig configures the OpenWeatherMap current weather adapter.
type OWMConfig struct {
	APIKey     string
	City       string
	Country    string
	BaseURL    string
	CacheTTL   time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
	Now        func() time.Time
}

// OWM polls OpenWeatherMap for the configured city. Successful readings are
// cached for CacheTTL; concurrent refreshes share one request.
type OWM struct {
	cfg   OWMConfig
	group singleflight.Group

	mu        sync.Mutex
	last      weather.Effect
	fetchedAt time.Time
}

func NewOWM(cfg OWMConfig) *OWM {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOWMURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.Logger.Printf("forecast: OWM_API_KEY is not set, using fallback weather")
	}
	return &OWM{cfg: cfg}
}

func (o *OWM) CurrentWeather(ctx context.Context) weather.Effect {
	if w, ok := o.cached(); ok {
		return w
	}
	if o.cfg.APIKey == "" {
		return Fallback()
	}
	v, err, _ := o.group.Do("current", func() (any, error) {
		if w, ok := o.cached(); ok {
			return w, nil
		}
		w, err := o.fetch(ctx)
		if err != nil {
			return nil, err
		}
		o.mu.Lock()
		o.last, o.fetchedAt = w, o.cfg.Now()
		o.mu.Unlock()
		return w, nil
	})
	if err != nil {
		o.cfg.Logger.Printf("forecast: %v", err)
		return Fallback()
	}
	return v.(weather.Effect)
}

func (o *OWM) cached() (weather.Effect, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.last == nil || o.cfg.Now().Sub(o.fetchedAt) >= o.cfg.CacheTTL {
		return nil, false
	}
	return o.last, true
}

func (o *OWM) fetch(ctx context.Context) (w weather.Effect, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "owm.current_weather", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("weather.city", o.cfg.City),
		attribute.String("weather.country", o.cfg.Country),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	q := url.Values{}
	q.Set("q", location(o.cfg.City, o.cfg.Country))
	q.Set("units", "metric")
	q.Set("appid", o.cfg.APIKey)
	endpoint := o.cfg.BaseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("owm request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("owm call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("owm read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("owm returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	return parseCurrent(body)
}

// parseCurrent reads the fields the game needs out of a current weather payload.
func parseCurrent(body []byte) (*weather.APIWeather, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("owm returned malformed json")
	}
	doc := gjson.ParseBytes(body)
	if code := doc.Get("cod"); code.Exists() && code.Int() != http.StatusOK {
		return nil, fmt.Errorf("owm returned code %s", code.String())
	}
	temp := doc.Get("main.temp")
	if temp.Type != gjson.Number {
		return nil, errors.New("owm response has no main.temp")
	}
	main := doc.Get("weather.0.main")
	if !main.Exists() {
		return nil, errors.New("owm response has no weather conditions")
	}
	desc := strings.TrimSpace(doc.Get("weather.0.description").String())
	if desc == "" {
		desc = main.String()
	}
	return FromCondition(main.String(), temp.Float(), desc), nil
}

func location(city, country string) string {
	city, country = strings.TrimSpace(city), strings.TrimSpace(country)
	if country == "" {
		return city
	}
	return city + "," + country
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
