package world

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
)

// Animal is a wild actor driven by an ordered list of behaviours.
// Animals lose a point of warmth each turn unless cold resistant and pass out at zero.
type Animal struct {
	status.List

	name          string
	team          Team
	hp            int
	maxHP         int
	warmth        int
	coldResistant bool
	behaviours    []Behaviour
}

func NewAnimal(name string, hp, warmth int, behaviours ...Behaviour) *Animal {
	return &Animal{
		name:       name,
		team:       Wild,
		hp:         max(0, hp),
		maxHP:      max(0, hp),
		warmth:     max(0, warmth),
		behaviours: behaviours,
	}
}

// NewWolf bites adjacent explorers for 50 at 50% and wanders otherwise.
func NewWolf(rng random.Source) *Animal {
	return NewAnimal("Wolf", 100, 25,
		AttackBehaviour{Weapon: NewIntrinsicWeapon("bites", 50, 50, rng)},
		WanderBehaviour{Rng: rng},
	)
}

// NewBear claws adjacent explorers for 75 at 80% and wanders otherwise.
func NewBear(rng random.Source) *Animal {
	return NewAnimal("Bear", 200, 50,
		AttackBehaviour{Weapon: NewIntrinsicWeapon("claws", 75, 80, rng)},
		WanderBehaviour{Rng: rng},
	)
}

func NewDeer(rng random.Source) *Animal {
	return NewAnimal("Deer", 50, 10, WanderBehaviour{Rng: rng})
}

func (a *Animal) Name() string { return a.name }
func (a *Animal) Team() Team { return a.team }
func (a *Animal) Health() int { return a.hp }
func (a *Animal) MaxHealth() int { return a.maxHP }
func (a *Animal) Warmth() int { return a.warmth }
func (a *Animal) Conscious() bool { return a.hp > 0 }
func (a *Animal) IsColdResistant() bool { return a.coldResistant }

func (a *Animal) SetColdResistant(v bool) { a.coldResistant = v }

func (a *Animal) Hurt(amount int) {
	a.hp = clampInt(a.hp-amount, 0, a.maxHP)
}

func (a *Animal) Heal(amount int) {
	a.hp = clampInt(a.hp+amount, 0, a.maxHP)
}

func (a *Animal) AdjustWarmth(delta int) {
	a.warmth = max(0, a.warmth+delta)
}

func (a *Animal) PlayTurn(m *Map) Action {
	if !a.Conscious() {
		return DoNothing{}
	}
	if !a.coldResistant {
		a.AdjustWarmth(-1)
	}
	if a.warmth <= 0 {
		a.hp = 0
		return DoNothing{}
	}
	for _, b := range a.behaviours {
		if act := b.Action(a, m); act != nil {
			return act
		}
	}
	return DoNothing{}
}

func (a *Animal) String() string {
	return fmt.Sprintf("%s [HP: %d/%d] [Warmth: %d]", a.name, a.hp, a.maxHP, a.warmth)
}

// Behaviour proposes an action for self, or nil to defer to the next behaviour.
type Behaviour interface {
	Action(self Actor, m *Map) Action
}

type AttackBehaviour struct {
	Weapon Weapon
}

func (b AttackBehaviour) Action(self Actor, m *Map) Action {
	target, ok := AdjacentHostile(self, m)
	if !ok {
		return nil
	}
	return &AttackAction{Target: target, Weapon: b.Weapon}
}

type WanderBehaviour struct {
	Rng random.Source
}

func (b WanderBehaviour) Action(self Actor, m *Map) Action {
	here, ok := m.LocationOf(self)
	if !ok {
		return nil
	}
	var options []Exit
	for _, e := range here.Exits() {
		if e.Destination.CanEnter(self) {
			options = append(options, e)
		}
	}
	i := random.Pick(b.Rng, len(options))
	if i < 0 {
		return nil
	}
	return &MoveAction{Direction: options[i].Direction}
}

// AdjacentHostile returns the first neighbour self is hostile to, clockwise from north.
func AdjacentHostile(self Actor, m *Map) (Actor, bool) {
	here, ok := m.LocationOf(self)
	if !ok {
		return nil, false
	}
	for _, e := range here.Exits() {
		if other := e.Destination.Actor(); Hostile(self, other) {
			return other, true
		}
	}
	return nil, false
}
