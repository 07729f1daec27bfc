// Package npc holds the non-hostile characters of the tundra.
package npc

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/dialogue"
	"github.com/appengine-ltd/stormfront/internal/status"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

const SeerHealth = 99999

// Sky reports the active weather. *weather.Controller satisfies it.
type Sky interface {
	Current() weather.Effect
}

// StormSeer is a passive bystander who prophesies about real-world weather.
type StormSeer struct {
	status.List

	hp       int
	dialogue dialogue.Service
	sky      Sky
}

func NewStormSeer(svc dialogue.Service, sky Sky) *StormSeer {
	if svc == nil {
		svc = dialogue.Canned{}
	}
	return &StormSeer{hp: SeerHealth, dialogue: svc, sky: sky}
}

func (s *StormSeer) Name() string { return "Storm Seer" }
func (s *StormSeer) Team() world.Team { return world.Bystanders }
func (s *StormSeer) Conscious() bool { return s.hp > 0 }
func (s *StormSeer) Health() int { return s.hp }

func (s *StormSeer) Hurt(amount int) {
	s.hp = max(0, min(SeerHealth, s.hp-amount))
}

// PlayTurn does nothing; the seer only watches the sky.
func (s *StormSeer) PlayTurn(*world.Map) world.Action {
	return world.DoNothing{}
}

// Talk returns the talk action, offered only while the sky is a real-world reading.
func (s *StormSeer) Talk() (*TalkToAction, bool) {
	if s.sky == nil {
		return nil, false
	}
	current := s.sky.Current()
	if current == nil || !current.APIControlled() {
		return nil, false
	}
	reading, ok := current.(weather.Reading)
	if !ok {
		return nil, false
	}
	return &TalkToAction{Seer: s, Reading: reading}, true
}

func (s *StormSeer) Monologue(ctx context.Context, r weather.Reading) string {
	return s.dialogue.Monologue(ctx, r.Description(), r.TemperatureC())
}

func (s *StormSeer) String() string {
	return fmt.Sprintf("%s [HP: %d/%d]", s.Name(), s.hp, SeerHealth)
}

// TalkToAction asks the seer for a prophecy about Reading.
type TalkToAction struct {
	Seer    *StormSeer
	Reading weather.Reading
}

func (a *TalkToAction) Execute(ctx context.Context, actor world.Actor, m *world.Map) string {
	if a.Seer == nil || !a.Seer.Conscious() {
		return actor.Name() + " finds no one to talk to."
	}
	if m != nil {
		if _, ok := m.LocationOf(a.Seer); !ok {
			return actor.Name() + " finds no one to talk to."
		}
	}
	prophecy := a.Seer.Monologue(ctx, a.Reading)
	return fmt.Sprintf("%s looks at you, then gestures to the sky:\n  \"%s\"\n%s listens to the %s's prophecy.",
		a.Seer.Name(), prophecy, actor.Name(), a.Seer.Name())
}

func (a *TalkToAction) Describe(world.Actor) string {
	return "Talk to " + a.Seer.Name()
}
