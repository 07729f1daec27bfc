package npc

import (
	"context"
	"strings"
	"testing"

	"github.com/appengine-ltd/stormfront/internal/dialogue"
	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

type fixedSky struct{ w weather.Effect }

func (s fixedSky) Current() weather.Effect { return s.w }

type recordingDialogue struct {
	desc string
	temp float64
}

func (r *recordingDialogue) Monologue(_ context.Context, desc string, temp float64) string {
	r.desc, r.temp = desc, temp
	return "The ice listens."
}

func TestTalkOnlyUnderRealWeather(t *testing.T) {
	tests := []struct {
		name string
		sky  weather.Effect
		want bool
	}{
		{name: "internal storm", sky: weather.Blizzard, want: false},
		{name: "no weather", sky: nil, want: false},
		{name: "api snow", sky: weather.NewAPISnow(-5, "light snow"), want: true},
	}
	for _, tc := range tests {
		seer := NewStormSeer(nil, fixedSky{w: tc.sky})
		if _, ok := seer.Talk(); ok != tc.want {
			t.Fatalf("%s: expected talk=%v, got %v", tc.name, tc.want, ok)
		}
	}
}

func TestTalkUsesDialogueService(t *testing.T) {
	rec := &recordingDialogue{}
	seer := NewStormSeer(rec, fixedSky{w: weather.NewAPIRain(11.5, "moderate rain")})
	m, err := world.FromRows("camp", []string{".."})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	p := world.NewPlayer("Ana", &random.Sequence{})
	if err := m.Place(p, entity.Point{}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := m.Place(seer, entity.Point{X: 1}); err != nil {
		t.Fatalf("place: %v", err)
	}

	act, ok := seer.Talk()
	if !ok {
		t.Fatalf("expected talk to be offered")
	}
	msg := act.Execute(context.Background(), p, m)
	if rec.desc != "moderate rain" || rec.temp != 11.5 {
		t.Fatalf("expected reading passed through, got %q %v", rec.desc, rec.temp)
	}
	if !strings.Contains(msg, "The ice listens.") || !strings.Contains(msg, "Ana listens to the Storm Seer's prophecy.") {
		t.Fatalf("unexpected message %q", msg)
	}
	if act.Describe(p) != "Talk to Storm Seer" {
		t.Fatalf("unexpected description %q", act.Describe(p))
	}
}

func TestTalkFallsBackToCannedLines(t *testing.T) {
	seer := NewStormSeer(nil, fixedSky{w: weather.NewAPISnow(-8, "heavy snow")})
	act, ok := seer.Talk()
	if !ok {
		t.Fatalf("expected talk to be offered")
	}
	msg := act.Execute(context.Background(), world.NewPlayer("", &random.Sequence{}), nil)
	if !strings.Contains(msg, dialogue.Fallback("heavy snow")) {
		t.Fatalf("expected canned prophecy, got %q", msg)
	}
}

func TestSeerIsPassiveBystander(t *testing.T) {
	seer := NewStormSeer(nil, nil)
	if seer.Team() != world.Bystanders || seer.Health() != SeerHealth {
		t.Fatalf("unexpected seer %s", seer)
	}
	if seer.PlayTurn(nil) != (world.DoNothing{}) {
		t.Fatalf("expected seer to do nothing")
	}
	if !entity.Hurt(seer, 10) || seer.Health() != SeerHealth-10 {
		t.Fatalf("expected seer to take damage, hp=%d", seer.Health())
	}
	if world.Hostile(world.NewWolf(&random.Sequence{}), seer) {
		t.Fatalf("expected wolves to ignore the seer")
	}
	if _, ok := seer.Talk(); ok {
		t.Fatalf("expected no talk without a sky")
	}
}
