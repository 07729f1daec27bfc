package world

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
)

type Item interface {
	Name() string
}

// AllWeatherParka shields against the internally generated weathers only.
type AllWeatherParka struct{}

func (AllWeatherParka) Name() string { return "All-Weather Parka" }

func (AllWeatherParka) ProtectionFor(weatherID string) float64 {
	switch {
	case SameName(weatherID, "rain"):
		return 0.4
	case SameName(weatherID, "wind"), SameName(weatherID, "blizzard"):
		return 0.5
	default:
		return 1.0
	}
}

type WoodBundle struct{}

func (WoodBundle) Name() string { return "Wood Bundle" }

type YewBerry struct{}

func (YewBerry) Name() string { return "Yew Berry" }

type Bedroll struct{}

func (Bedroll) Name() string { return "Bedroll" }

// Weapon resolves one attack and describes what happened.
type Weapon interface {
	Attack(attacker, target Actor, m *Map) string
}

type IntrinsicWeapon struct {
	verb      string
	damage    int
	hitChance int
	rng       random.Source
}

func NewIntrinsicWeapon(verb string, damage, hitChance int, rng random.Source) *IntrinsicWeapon {
	return &IntrinsicWeapon{verb: verb, damage: max(0, damage), hitChance: hitChance, rng: rng}
}

func (w *IntrinsicWeapon) Attack(attacker, target Actor, _ *Map) string {
	if !random.Roll(w.rng, w.hitChance) {
		return fmt.Sprintf("%s misses %s.", attacker.Name(), target.Name())
	}
	entity.Hurt(target, w.damage)
	return fmt.Sprintf("%s %s %s for %d damage.", attacker.Name(), w.verb, target.Name(), w.damage)
}

type Coating int

const (
	NoCoating Coating = iota
	YewBerryCoating
	SnowCoating
)

func (c Coating) String() string {
	switch c {
	case YewBerryCoating:
		return "yew berry"
	case SnowCoating:
		return "snow"
	default:
		return "none"
	}
}

const (
	CoatingPoisonDamage = 4
	CoatingPoisonTurns  = 5
)

// coatingEffects maps each coating to what it does to a target on hit.
var coatingEffects = map[Coating]func(target Actor) string{
	YewBerryCoating: func(target Actor) string {
		if status.Apply(target, status.NewPoisoned(CoatingPoisonDamage, CoatingPoisonTurns)) {
			return " " + target.Name() + " is poisoned!"
		}
		return ""
	},
	SnowCoating: func(target Actor) string {
		if entity.IsColdResistant(target) {
			return ""
		}
		if status.Apply(target, status.NewFrostbite(status.DefaultFrostbiteTurns)) {
			return " " + target.Name() + " is frostbitten!"
		}
		return ""
	},
}

// Coatable weapons carry a coating that fires on every hit until replaced.
type Coatable interface {
	Item
	Coating() Coating
	SetCoating(c Coating)
}

const (
	AxeDamage      = 15
	AxeHitChance   = 75
	AxeBleedChance = 50
	AxeBleedDamage = 10
	AxeBleedTurns  = 2
)

type Axe struct {
	coating Coating
	rng     random.Source
}

func NewAxe(rng random.Source) *Axe {
	return &Axe{rng: rng}
}

func (a *Axe) Name() string { return "Axe" }
func (a *Axe) Coating() Coating { return a.coating }
func (a *Axe) SetCoating(c Coating) { a.coating = c }

func (a *Axe) String() string {
	if a.coating == NoCoating {
		return a.Name()
	}
	return fmt.Sprintf("%s [%s]", a.Name(), a.coating)
}

func (a *Axe) Attack(attacker, target Actor, _ *Map) string {
	if !random.Roll(a.rng, AxeHitChance) {
		return fmt.Sprintf("%s swings the Axe at %s but misses.", attacker.Name(), target.Name())
	}
	entity.Hurt(target, AxeDamage)
	msg := fmt.Sprintf("%s chops %s with the Axe for %d damage.", attacker.Name(), target.Name(), AxeDamage)
	if random.Roll(a.rng, AxeBleedChance) && status.Apply(target, status.NewBleeding(AxeBleedDamage, AxeBleedTurns)) {
		msg += " " + target.Name() + " starts bleeding!"
	}
	if apply, ok := coatingEffects[a.coating]; ok {
		msg += apply(target)
	}
	return msg
}

const (
	TorchDamage     = 10
	TorchHitChance  = 50
	TorchBurnDamage = 3
	TorchBurnTurns  = 7
	TorchFlareTurns = 5
)

// Torch sets its target alight and flares up around the wielder on every swing.
type Torch struct {
	rng random.Source
}

func NewTorch(rng random.Source) *Torch {
	return &Torch{rng: rng}
}

func (t *Torch) Name() string { return "Torch" }

func (t *Torch) Attack(attacker, target Actor, m *Map) string {
	if !random.Roll(t.rng, TorchHitChance) {
		Scorch(m, attacker, TorchFlareTurns)
		return fmt.Sprintf("%s swings the Torch at %s but misses. Flames flare around!", attacker.Name(), target.Name())
	}
	entity.Hurt(target, TorchDamage)
	status.Apply(target, status.NewBurning(TorchBurnDamage, TorchBurnTurns))
	Scorch(m, attacker, TorchFlareTurns)
	return fmt.Sprintf("%s scorches %s with the Torch for %d damage. %s catches fire!",
		attacker.Name(), target.Name(), TorchDamage, target.Name())
}
