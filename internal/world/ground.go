package world

import (
	"github.com/appengine-ltd/stormfront/internal/status"
)

const (
	DefaultFireTurns = 3
	FireBurnDamage   = 5
	FireBurnTurns    = 5
	CampfireFuel     = 8
)

type Ground interface {
	Name() string
	Glyph() rune
	Passable() bool
}

// Ticker is implemented by grounds that change every turn.
type Ticker interface {
	Tick(loc *Location)
}

// Dousable grounds lose burn time to rain.
type Dousable interface {
	Douse(turns int)
}

type Dirt struct{}

func (Dirt) Name() string { return "Dirt" }
func (Dirt) Glyph() rune { return '.' }
func (Dirt) Passable() bool { return true }

type Snow struct{}

func (Snow) Name() string { return "Snow" }
func (Snow) Glyph() rune { return '*' }
func (Snow) Passable() bool { return true }

type Wall struct{}

func (Wall) Name() string { return "Wall" }
func (Wall) Glyph() rune { return '#' }
func (Wall) Passable() bool { return false }

// Fire burns for a few turns, sets its occupant burning, then leaves dirt behind.
type Fire struct {
	turns int
}

func NewFire(turns int) *Fire {
	return &Fire{turns: max(0, turns)}
}

func (f *Fire) Name() string { return "Fire" }
func (f *Fire) Glyph() rune { return '^' }
func (f *Fire) Passable() bool { return true }
func (f *Fire) TurnsRemaining() int { return f.turns }

func (f *Fire) Douse(turns int) {
	if turns > 0 {
		f.turns = max(0, f.turns-turns)
	}
}

// Tick burns the occupant and counts down. A fire already doused to nothing
// goes out without burning anyone.
func (f *Fire) Tick(loc *Location) {
	if f.turns <= 0 {
		loc.SetGround(Dirt{})
		return
	}
	if a := loc.Actor(); a != nil {
		if _, burning := status.Find(a, status.Burning); !burning {
			status.Apply(a, status.NewBurning(FireBurnDamage, FireBurnTurns))
		}
	}
	f.turns--
	if f.turns <= 0 {
		loc.SetGround(Dirt{})
	}
}

// Scorch sets fire to every passable tile around actor and returns how many caught.
func Scorch(m *Map, actor Actor, turns int) int {
	if m == nil {
		return 0
	}
	here, ok := m.LocationOf(actor)
	if !ok {
		return 0
	}
	n := 0
	for _, e := range here.Exits() {
		if !e.Destination.Ground().Passable() {
			continue
		}
		e.Destination.SetGround(NewFire(turns))
		n++
	}
	return n
}

// Campfire grants campfire therapy to whoever stands in it until its fuel runs out.
type Campfire struct {
	fuel int
}

func NewCampfire() *Campfire {
	return &Campfire{fuel: CampfireFuel}
}

func (c *Campfire) Name() string { return "Campfire" }
func (c *Campfire) Glyph() rune { return 'w' }
func (c *Campfire) Passable() bool { return true }
func (c *Campfire) Fuel() int { return c.fuel }

func (c *Campfire) Tick(loc *Location) {
	if a := loc.Actor(); a != nil {
		if _, treated := status.Find(a, status.CampfireTherapy); !treated {
			status.Apply(a, status.NewCampfireTherapy())
		}
	}
	c.fuel--
	if c.fuel <= 0 {
		loc.SetGround(Dirt{})
	}
}

// SteamHut is where steam therapy can be started.
type SteamHut struct{}

func (SteamHut) Name() string { return "Steam Hut" }
func (SteamHut) Glyph() rune { return 'S' }
func (SteamHut) Passable() bool { return true }

type SnowCave struct{}

func (SnowCave) Name() string { return "Snow Cave" }
func (SnowCave) Glyph() rune { return 'O' }
func (SnowCave) Passable() bool { return true }

func (SnowCave) ProtectionFor(weatherID string) float64 {
	if SameName(weatherID, "blizzard") {
		return 0.05
	}
	return 0.4
}

type StormShelter struct{}

func (StormShelter) Name() string { return "Storm Shelter" }
func (StormShelter) Glyph() rune { return 'H' }
func (StormShelter) Passable() bool { return true }

func (StormShelter) ProtectionFor(string) float64 { return 0.1 }

func groundForGlyph(c rune) (Ground, bool) {
	switch c {
	case '.':
		return Dirt{}, true
	case '*':
		return Snow{}, true
	case '#':
		return Wall{}, true
	case '^':
		return NewFire(DefaultFireTurns), true
	case 'w':
		return NewCampfire(), true
	case 'S':
		return SteamHut{}, true
	case 'O':
		return SnowCave{}, true
	case 'H':
		return StormShelter{}, true
	default:
		return nil, false
	}
}
