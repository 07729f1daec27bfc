package drake

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// State is the drake's elemental form.
type State int

const (
	FlameHeart State = iota
	EarthenScale
	StormsEye
)

var next = [...]State{
	FlameHeart:   EarthenScale,
	EarthenScale: StormsEye,
	StormsEye:    FlameHeart,
}

var names = [...]string{
	FlameHeart:   "Flame Heart",
	EarthenScale: "Earthen Scale",
	StormsEye:    "Storm's Eye",
}

func (s State) valid() bool { return s >= FlameHeart && s <= StormsEye }

// Next is the following form in the cycle Flame Heart, Earthen Scale, Storm's Eye.
func (s State) Next() State {
	if !s.valid() {
		return FlameHeart
	}
	return next[s]
}

func (s State) Name() string {
	if !s.valid() {
		return "Unknown"
	}
	return names[s]
}

func (s State) String() string { return s.Name() }

// Action picks what the drake does this turn in form s.
func (s State) Action(d *Drake, m *world.Map) world.Action {
	switch s {
	case EarthenScale:
		if here, ok := m.LocationOf(d); ok {
			if _, dirt := here.Ground().(world.Dirt); dirt {
				return world.FortifyAction{Amount: FortifyHeal}
			}
		}
	default:
		if target, ok := world.AdjacentHostile(d, m); ok {
			return &world.AttackAction{Target: target, Weapon: d}
		}
	}
	return world.WanderBehaviour{Rng: d.rng}.Action(d, m)
}

// PerformAttack resolves one attack by d on target in form s.
func (s State) PerformAttack(d *Drake, target world.Actor, m *world.Map) string {
	switch s {
	case EarthenScale:
		if !random.Roll(d.rng, EarthHitChance) {
			return fmt.Sprintf("%s misses %s.", d.Name(), target.Name())
		}
		entity.Hurt(target, EarthDamage)
		return fmt.Sprintf("%s tail whips %s for %d damage.", d.Name(), target.Name(), EarthDamage)
	case StormsEye:
		if !random.Roll(d.rng, FrostHitChance) {
			return fmt.Sprintf("%s misses %s.", d.Name(), target.Name())
		}
		entity.Hurt(target, FrostDamage)
		status.Apply(target, status.NewFrostbite(FrostbiteTurns))
		return fmt.Sprintf("%s chillingly strikes %s for %d damage and applies Frostbite!", d.Name(), target.Name(), FrostDamage)
	default:
		msg := fmt.Sprintf("%s misses %s.", d.Name(), target.Name())
		if random.Roll(d.rng, FlameHitChance) {
			entity.Hurt(target, FlameDamage)
			msg = fmt.Sprintf("%s claws %s for %d damage.", d.Name(), target.Name(), FlameDamage)
		}
		if n := world.Scorch(m, d, FlameFireTurns); n > 0 {
			msg += " " + d.Name() + " breathes a torrent of fire!"
		}
		return msg
	}
}
