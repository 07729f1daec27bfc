package world

import (
	"fmt"
	"slices"

	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
)

type Team int

const (
	Wild Team = iota
	Explorers
	Bystanders
)

type Actor interface {
	Name() string
	Team() Team
	Conscious() bool
}

// Agent is an actor that chooses its own action each turn.
type Agent interface {
	Actor
	PlayTurn(m *Map) Action
}

// Carrier exposes the items an actor is holding.
type Carrier interface {
	Inventory() []Item
}

// Hostile reports whether a would attack b unprompted. Bystanders are never hostile.
func Hostile(a, b Actor) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if a.Team() == Bystanders || b.Team() == Bystanders {
		return false
	}
	return a.Team() != b.Team() && b.Conscious()
}

const (
	PlayerHealth    = 100
	PlayerWarmth    = 30
	PlayerHydration = 20
)

type Player struct {
	status.List

	name         string
	hp           int
	maxHP        int
	warmth       int
	maxWarmth    int
	hydration    int
	maxHydration int
	sleepTurns   int
	inventory    []Item
	fists        Weapon
}

func NewPlayer(name string, rng random.Source) *Player {
	if name == "" {
		name = "Explorer"
	}
	return &Player{
		name:         name,
		hp:           PlayerHealth,
		maxHP:        PlayerHealth,
		warmth:       PlayerWarmth,
		maxWarmth:    PlayerWarmth,
		hydration:    PlayerHydration,
		maxHydration: PlayerHydration,
		fists:        NewIntrinsicWeapon("punches", 5, 80, rng),
	}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Team() Team { return Explorers }
func (p *Player) Health() int { return p.hp }
func (p *Player) MaxHealth() int { return p.maxHP }
func (p *Player) Warmth() int { return p.warmth }
func (p *Player) MaxWarmth() int { return p.maxWarmth }
func (p *Player) Hydration() int { return p.hydration }
func (p *Player) MaxHydration() int { return p.maxHydration }
func (p *Player) Sleeping() bool { return p.sleepTurns > 0 }

// Conscious is false once health, warmth or hydration reaches zero.
func (p *Player) Conscious() bool {
	return p.hp > 0 && p.warmth > 0 && p.hydration > 0
}

func (p *Player) Hurt(amount int) {
	p.hp = clampInt(p.hp-amount, 0, p.maxHP)
}

func (p *Player) Heal(amount int) {
	p.hp = clampInt(p.hp+amount, 0, p.maxHP)
}

func (p *Player) AdjustWarmth(delta int) {
	p.warmth = clampInt(p.warmth+delta, 0, p.maxWarmth)
}

func (p *Player) AdjustHydration(delta int) {
	p.hydration = clampInt(p.hydration+delta, 0, p.maxHydration)
}

func (p *Player) Inventory() []Item {
	return slices.Clone(p.inventory)
}

func (p *Player) AddItem(it Item) {
	if it != nil {
		p.inventory = append(p.inventory, it)
	}
}

// RemoveItem drops the first inventory entry equal to it.
func (p *Player) RemoveItem(it Item) bool {
	i := slices.IndexFunc(p.inventory, func(x Item) bool { return x == it })
	if i < 0 {
		return false
	}
	p.inventory = slices.Delete(p.inventory, i, i+1)
	return true
}

// FindItem returns the first inventory item whose name matches, ignoring case and punctuation.
func (p *Player) FindItem(name string) (Item, bool) {
	for _, it := range p.inventory {
		if SameName(it.Name(), name) {
			return it, true
		}
	}
	return nil, false
}

// Weapon is the first weapon carried, or bare fists.
func (p *Player) Weapon() Weapon {
	for _, it := range p.inventory {
		if w, ok := it.(Weapon); ok {
			return w
		}
	}
	return p.fists
}

// Wield moves the named weapon to the front of the inventory so Weapon picks it.
func (p *Player) Wield(name string) bool {
	i := slices.IndexFunc(p.inventory, func(it Item) bool {
		_, ok := it.(Weapon)
		return ok && SameName(it.Name(), name)
	})
	if i < 0 {
		return false
	}
	it := p.inventory[i]
	p.inventory = slices.Insert(slices.Delete(p.inventory, i, i+1), 0, it)
	return true
}

func (p *Player) RaiseMaxHealth(n int) {
	if n > 0 {
		p.maxHP += n
		p.hp += n
	}
}

// Sleep pauses metabolism for the given number of turns.
func (p *Player) Sleep(turns int) {
	if turns > 0 {
		p.sleepTurns = max(p.sleepTurns, turns)
	}
}

// Metabolise costs one warmth and one hydration unless the player is asleep.
func (p *Player) Metabolise() {
	if p.sleepTurns > 0 {
		p.sleepTurns--
		return
	}
	p.AdjustHydration(-1)
	p.AdjustWarmth(-1)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s [HP: %d/%d] [Hydration: %d/%d] [Warmth: %d/%d]",
		p.name, p.hp, p.maxHP, p.hydration, p.maxHydration, p.warmth, p.maxWarmth)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
