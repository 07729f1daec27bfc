package weather

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/world"
)

const (
	MinDurationTurns = 8
	MaxDurationTurns = 12

	// ExternalHoldTurns parks the countdown while a forecast drives the weather.
	ExternalHoldTurns = 999
)

type weightedEffect struct {
	effect Effect
	weight int
}

var defaultTable = []weightedEffect{
	{effect: Rain, weight: 40},
	{effect: Wind, weight: 30},
	{effect: Blizzard, weight: 30},
}

// Controller owns the one active weather. It is not safe for concurrent use;
// the turn loop is its only caller.
type Controller struct {
	rng            random.Source
	logger         *log.Logger
	table          []weightedEffect
	current        Effect
	turnsRemaining int
	external       bool
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStart overrides the randomly drawn opening weather and duration.
func WithStart(e Effect, turns int) Option {
	return func(c *Controller) {
		if e != nil {
			c.current = e
			c.turnsRemaining = turns
		}
	}
}

// NewController draws the opening weather from rng. A nil rng is seeded from the clock.
func NewController(rng random.Source, opts ...Option) *Controller {
	if rng == nil {
		rng = random.Seeded(time.Now().UnixNano())
	}
	c := &Controller{
		rng:    rng,
		logger: log.New(io.Discard, "", 0),
		table:  defaultTable,
	}
	c.current = c.draw()
	c.turnsRemaining = c.duration()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Current() Effect { return c.current }
func (c *Controller) TurnsRemaining() int { return c.turnsRemaining }
func (c *Controller) ExternallyControlled() bool { return c.external }

// Tick advances the internal countdown, switching weather when it runs out,
// then sweeps every map: tiles row by row, ground hook first, then the occupant.
func (c *Controller) Tick(maps ...*world.Map) {
	if !c.external {
		c.turnsRemaining--
		if c.turnsRemaining <= 0 {
			next := c.draw()
			c.turnsRemaining = c.duration()
			c.swap(next, maps)
		}
	}
	c.apply(maps)
}

// SetExternalWeather installs e when its id differs from the current weather's
// and reports whether it did. An API-controlled e suspends the internal countdown.
func (c *Controller) SetExternalWeather(e Effect, maps ...*world.Map) bool {
	if e == nil || (c.current != nil && c.current.ID() == e.ID()) {
		return false
	}
	c.external = e.APIControlled()
	c.turnsRemaining = ExternalHoldTurns
	c.swap(e, maps)
	return true
}

// ReleaseExternalControl hands the weather back to the random timer with a fresh draw.
func (c *Controller) ReleaseExternalControl(maps ...*world.Map) bool {
	if !c.external {
		return false
	}
	c.external = false
	next := c.draw()
	c.turnsRemaining = c.duration()
	c.swap(next, maps)
	return true
}

func (c *Controller) swap(next Effect, maps []*world.Map) {
	old := c.current
	c.current = next
	if t, ok := old.(Transitioner); ok {
		t.OnExit(maps)
	}
	if t, ok := next.(Transitioner); ok {
		t.OnEnter(maps)
	}
	if old != nil {
		c.logger.Printf("weather: %s -> %s (external=%t, turns=%d)", old.ID(), next.ID(), c.external, c.turnsRemaining)
	}
}

func (c *Controller) apply(maps []*world.Map) {
	if c.current == nil {
		return
	}
	mutator, _ := c.current.(GroundMutator)
	warmth := float64(WarmthDelta(c.current))
	hydration := float64(c.current.BaseHydrationDelta())
	for _, m := range maps {
		if m == nil {
			continue
		}
		m.Each(func(loc *world.Location) {
			if mutator != nil {
				mutator.MutateGround(loc, c.rng)
			}
			a := loc.Actor()
			if a == nil {
				return
			}
			factor := Exposure(a, c.current, loc)
			entity.AdjustWarmth(a, roundHalfUp(warmth*factor))
			entity.AdjustHydration(a, roundHalfUp(hydration*factor))
		})
	}
}

func (c *Controller) draw() Effect {
	total := 0
	for _, w := range c.table {
		total += w.weight
	}
	roll := c.rng.IntN(total)
	for _, w := range c.table {
		if roll < w.weight {
			return w.effect
		}
		roll -= w.weight
	}
	return c.table[len(c.table)-1].effect
}

func (c *Controller) duration() int {
	return MinDurationTurns + c.rng.IntN(MaxDurationTurns-MinDurationTurns+1)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
