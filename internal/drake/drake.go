// Package drake implements the Elemental Drake, a cold-resistant boss that
// cycles through three elemental forms.
package drake

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/world"
)

const (
	Health           = 500
	Warmth           = 999
	TransitionChance = 25

	FlameHitChance = 85
	FlameDamage    = 80
	FlameFireTurns = 3

	FrostHitChance = 70
	FrostDamage    = 40
	FrostbiteTurns = 3

	EarthHitChance = 60
	EarthDamage    = 25
	FortifyHeal    = 50
)

// Drake is its own weapon: attacks resolve through whatever form it is in
// when the attack executes.
type Drake struct {
	*world.Animal

	state State
	rng   random.Source
}

func New(rng random.Source) *Drake {
	body := world.NewAnimal("Elemental Drake", Health, Warmth)
	body.SetColdResistant(true)
	return &Drake{Animal: body, state: FlameHeart, rng: rng}
}

func (d *Drake) State() State { return d.state }
func (d *Drake) SetState(s State) { d.state = s }

// PlayTurn may shift to the next form, then lets the form choose the action.
func (d *Drake) PlayTurn(m *world.Map) world.Action {
	if !d.Conscious() {
		return world.DoNothing{}
	}
	if random.Roll(d.rng, TransitionChance) {
		d.state = d.state.Next()
	}
	if act := d.state.Action(d, m); act != nil {
		return act
	}
	return world.DoNothing{}
}

func (d *Drake) Attack(_, target world.Actor, m *world.Map) string {
	return d.state.PerformAttack(d, target, m)
}

func (d *Drake) String() string {
	return fmt.Sprintf("%s (%s)", d.Animal.String(), d.state.Name())
}
