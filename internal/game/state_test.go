package game

import (
	"context"
	"strings"
	"testing"

	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/forecast"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// newQuietRun starts a run under a long rainstorm where every roll comes up 99:
// nothing transitions, nothing hits, and the weather stays put.
func newQuietRun(t *testing.T, cfg RunConfig, opts ...Option) *Run {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 909
	}
	base := []Option{
		WithRandom(&random.Sequence{Ints: []int{99}, Floats: []float64{0.99}}),
		WithStartingWeather(weather.Rain, 20),
	}
	run, err := NewRun(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	return run
}

func joined(msgs []string) string { return strings.Join(msgs, "\n") }

func TestNewRunBuildsScenario(t *testing.T) {
	run, err := NewRun(RunConfig{Seed: 7})
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	if len(run.Maps()) != 2 {
		t.Fatalf("expected 2 maps, got %d", len(run.Maps()))
	}
	if run.Home() == nil || run.Home().Name() != TundraMapName {
		t.Fatalf("expected explorer on the tundra")
	}
	loc, _ := run.Home().LocationOf(run.Player())
	if loc.Point() != (entity.Point{X: 2, Y: 4}) {
		t.Fatalf("unexpected start %+v", loc.Point())
	}
	if _, ok := run.Player().FindItem("Axe"); !ok {
		t.Fatalf("expected explorer to carry an axe")
	}
	if run.Scenario.Drake == nil || run.Scenario.Seer == nil {
		t.Fatalf("expected drake and seer in the scenario")
	}
	if run.Player().Has(status.Fever) {
		t.Fatalf("did not expect a fever without Sick")
	}
}

func TestNewRunRejectsBadConfig(t *testing.T) {
	if _, err := NewRun(RunConfig{MaxWaitTurns: -1}); err == nil {
		t.Fatalf("expected error for negative wait cap")
	}
}

func TestAdvanceTurnWeatherThenMetabolism(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	msgs := run.AdvanceTurn(context.Background(), nil)

	p := run.Player()
	// Rain costs 1 warmth and tops hydration up to its cap, then metabolism takes 1 of each.
	if p.Warmth() != world.PlayerWarmth-2 || p.Hydration() != world.PlayerHydration-1 {
		t.Fatalf("expected warmth %d hydration %d, got %d/%d", world.PlayerWarmth-2, world.PlayerHydration-1, p.Warmth(), p.Hydration())
	}
	if run.Weather().TurnsRemaining() != 19 {
		t.Fatalf("expected 19 turns of rain left, got %d", run.Weather().TurnsRemaining())
	}
	if run.Turn != 1 {
		t.Fatalf("expected turn 1, got %d", run.Turn)
	}
	if !strings.Contains(joined(msgs), "Explorer waits.") {
		t.Fatalf("expected wait message, got %q", joined(msgs))
	}
}

func TestForecastTakesOverWeather(t *testing.T) {
	snow := weather.NewAPISnow(-5, "light snow")
	run := newQuietRun(t, RunConfig{}, WithForecast(forecast.Static{Weather: snow}))
	msgs := run.AdvanceTurn(context.Background(), world.DoNothing{})

	c := run.Weather()
	if c.Current() != weather.Effect(snow) || !c.ExternallyControlled() {
		t.Fatalf("expected live snow to take over, got %s", c.Current().ID())
	}
	if c.TurnsRemaining() != weather.ExternalHoldTurns {
		t.Fatalf("expected hold of %d, got %d", weather.ExternalHoldTurns, c.TurnsRemaining())
	}
	if !strings.Contains(joined(msgs), "The weather turns: Snow (-5.0°C).") {
		t.Fatalf("expected weather change message, got %q", joined(msgs))
	}
	// Snow -2 and the sub-5°C band -2, then metabolism.
	if run.Player().Warmth() != world.PlayerWarmth-5 {
		t.Fatalf("expected warmth %d, got %d", world.PlayerWarmth-5, run.Player().Warmth())
	}

	run.AdvanceTurn(context.Background(), nil)
	if c.TurnsRemaining() != weather.ExternalHoldTurns {
		t.Fatalf("expected external weather to hold, got %d", c.TurnsRemaining())
	}
}

func TestFeverIsCuredAtCampfire(t *testing.T) {
	ctx := context.Background()
	run := newQuietRun(t, RunConfig{Sick: true})
	p := run.Player()
	p.AddItem(world.WoodBundle{})

	res := run.ExecuteCommand(ctx, "build campfire")
	if !strings.Contains(res.Message, "builds a campfire") {
		t.Fatalf("expected campfire, got %q", res.Message)
	}
	here := run.here()
	if _, ok := here.Ground().(*world.Campfire); !ok {
		t.Fatalf("expected campfire underfoot, got %s", here.Ground().Name())
	}
	run.ExecuteCommand(ctx, "wait 2")

	if p.Has(status.Fever) || p.Has(status.CampfireTherapy) {
		t.Fatalf("expected fever cured and therapy gone, got %v", p.Statuses())
	}
	if p.Health() != world.PlayerHealth {
		t.Fatalf("expected no fever damage under therapy, hp=%d", p.Health())
	}
}

func TestFeverHurtsWithoutTreatment(t *testing.T) {
	run := newQuietRun(t, RunConfig{Sick: true})
	run.AdvanceTurn(context.Background(), nil)
	if run.Player().Health() != world.PlayerHealth-status.FeverDamage {
		t.Fatalf("expected %d fever damage, hp=%d", status.FeverDamage, run.Player().Health())
	}
}

func TestFallenActorsAreCleared(t *testing.T) {
	run := newQuietRun(t, RunConfig{})
	wolf := world.NewWolf(&random.Sequence{})
	wolf.Hurt(wolf.Health())
	if err := run.Home().Place(wolf, entity.Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("place: %v", err)
	}
	msgs := run.AdvanceTurn(context.Background(), nil)
	if _, ok := run.Home().LocationOf(wolf); ok {
		t.Fatalf("expected fallen wolf removed")
	}
	if !strings.Contains(joined(msgs), "Wolf falls.") {
		t.Fatalf("expected fall message, got %q", joined(msgs))
	}
}

func TestCollapseEndsRun(t *testing.T) {
	run := newQuietRun(t, RunConfig{Sick: true})
	run.Player().Hurt(world.PlayerHealth - 1)
	msgs := run.AdvanceTurn(context.Background(), nil)
	if !run.Over() {
		t.Fatalf("expected run over")
	}
	if !strings.Contains(joined(msgs), "collapses") {
		t.Fatalf("expected collapse message, got %q", joined(msgs))
	}
	if got := run.AdvanceTurn(context.Background(), nil); len(got) != 1 || got[0] != "The run is over." {
		t.Fatalf("expected no further turns, got %v", got)
	}
	if run.Turn != 1 {
		t.Fatalf("expected turn counter to stop, got %d", run.Turn)
	}
}

func TestSleepPausesMetabolism(t *testing.T) {
	ctx := context.Background()
	run := newQuietRun(t, RunConfig{})
	res := run.ExecuteCommand(ctx, "sleep")
	if !strings.Contains(res.Message, "sleeps for") {
		t.Fatalf("expected sleep, got %q", res.Message)
	}
	p := run.Player()
	if p.Warmth() != world.PlayerWarmth-1 || p.Hydration() != world.PlayerHydration {
		t.Fatalf("expected only the rain to cost warmth, got %d/%d", p.Warmth(), p.Hydration())
	}
	res = run.ExecuteCommand(ctx, "wait")
	if !strings.Contains(res.Message, "Explorer sleeps.") {
		t.Fatalf("expected explorer still asleep, got %q", res.Message)
	}
}
