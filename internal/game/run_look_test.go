package game

import (
	"context"
	"strings"
	"testing"

	"github.com/appengine-ltd/stormfront/internal/forecast"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

func TestLookDrawsMap(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	out := run.Look()
	if !strings.HasPrefix(out, TundraMapName+" (turn 0)") {
		t.Fatalf("expected map header, got %q", out)
	}
	for _, glyph := range []string{"@", "§", "D", "w", "b", "?"} {
		if !strings.Contains(out, glyph) {
			t.Fatalf("expected %q on the map:\n%s", glyph, out)
		}
	}
	if !strings.Contains(out, "You stand on dirt.") {
		t.Fatalf("expected ground description, got %q", out)
	}
}

func TestLookListsItemsUnderfoot(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	run.ExecuteCommand(context.Background(), "go east")
	if out := run.Look(); !strings.Contains(out, "On the ground: Wood Bundle.") {
		t.Fatalf("expected wood underfoot, got %q", out)
	}
}

func TestStatusReportShowsEffects(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	out := run.StatusReport()
	if !strings.Contains(out, "No active effects.") || !strings.Contains(out, "Weapon: Axe") {
		t.Fatalf("unexpected healthy status %q", out)
	}

	sick := newQuietRun(t, RunConfig{Sick: true})
	if out := sick.StatusReport(); !strings.Contains(out, "- Fever") {
		t.Fatalf("expected fever listed, got %q", out)
	}
}

func TestWeatherReportForStorm(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	out := run.WeatherReport()
	if !strings.Contains(out, "Weather: Rainstorm for 20 more turns") {
		t.Fatalf("unexpected report %q", out)
	}
	if !strings.Contains(out, "warmth -1, hydration +1") {
		t.Fatalf("expected per-turn deltas, got %q", out)
	}
	if strings.Contains(out, "exposed") {
		t.Fatalf("did not expect shelter without a parka, got %q", out)
	}

	run.Player().AddItem(world.AllWeatherParka{})
	if out := run.WeatherReport(); !strings.Contains(out, "You are 40% exposed.") {
		t.Fatalf("expected parka to shield rain, got %q", out)
	}
}

func TestWeatherReportForLiveReading(t *testing.T) {
	run := newQuietRun(t, RunConfig{},
		WithForecast(forecast.Static{Weather: weather.NewAPISnow(-5, "snow")}))
	run.AdvanceTurn(context.Background(), nil)

	out := run.WeatherReport()
	for _, want := range []string{"(live)", "Temperature: -5.0°C", "warmth -4, hydration +0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestInventoryReport(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	if out := run.InventoryReport(); out != "You carry: Axe, Bedroll, Bottle (5/5 sips), Apple, Hazelnut, Torch." {
		t.Fatalf("unexpected inventory %q", out)
	}
}
