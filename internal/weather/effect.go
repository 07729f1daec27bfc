// Package weather owns the single active weather, how much of it reaches each
// actor, and the random or externally driven changes between weathers.
package weather

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// Effect is one kind of weather. Effects are immutable values shared by every reader.
type Effect interface {
	ID() string
	DisplayName() string
	BaseWarmthDelta() int
	BaseHydrationDelta() int
	APIControlled() bool
}

// GroundMutator weathers change the ground of every tile they sweep.
type GroundMutator interface {
	MutateGround(loc *world.Location, rng random.Source)
}

// Transitioner weathers are told when they become or stop being the active weather.
type Transitioner interface {
	OnEnter(maps []*world.Map)
	OnExit(maps []*world.Map)
}

// Reading is weather observed from a real forecast.
type Reading interface {
	TemperatureC() float64
	Description() string
}

// Storm is one of the internally generated weathers.
type Storm struct {
	id        string
	name      string
	warmth    int
	hydration int
}

var (
	Rain     = Storm{id: "rain", name: "Rainstorm", warmth: -1, hydration: 1}
	Wind     = Storm{id: "wind", name: "Windstorm", warmth: -1, hydration: -1}
	Blizzard = Storm{id: "blizzard", name: "Blizzard", warmth: -2, hydration: 0}
)

func (s Storm) ID() string { return s.id }
func (s Storm) DisplayName() string { return s.name }
func (s Storm) BaseWarmthDelta() int { return s.warmth }
func (s Storm) BaseHydrationDelta() int { return s.hydration }
func (s Storm) APIControlled() bool { return false }

const SnowfallChance = 0.10

// APIWeather is weather reported by a forecast provider. Its warmth penalty
// also depends on the reported temperature.
type APIWeather struct {
	category    Category
	temperature float64
	description string
}

func NewAPIWeather(category Category, temperatureC float64, description string) *APIWeather {
	return &APIWeather{category: category, temperature: temperatureC, description: description}
}

func NewAPIClear(temperatureC float64, description string) *APIWeather {
	return NewAPIWeather(Clear, temperatureC, description)
}

func NewAPIRain(temperatureC float64, description string) *APIWeather {
	return NewAPIWeather(Rainy, temperatureC, description)
}

func NewAPISnow(temperatureC float64, description string) *APIWeather {
	return NewAPIWeather(Snowy, temperatureC, description)
}

func (w *APIWeather) ID() string {
	switch w.category {
	case Rainy:
		return "api_rain"
	case Snowy:
		return "api_snow"
	default:
		return "api_clear"
	}
}

func (w *APIWeather) DisplayName() string {
	return fmt.Sprintf("%s (%.1f°C)", w.category, w.temperature)
}

func (w *APIWeather) BaseWarmthDelta() int {
	switch w.category {
	case Rainy:
		return -1
	case Snowy:
		return -2
	default:
		return 0
	}
}

func (w *APIWeather) BaseHydrationDelta() int {
	if w.category == Rainy {
		return 1
	}
	return 0
}

func (w *APIWeather) APIControlled() bool { return true }
func (w *APIWeather) Category() Category { return w.category }
func (w *APIWeather) TemperatureC() float64 { return w.temperature }
func (w *APIWeather) Description() string { return w.description }

// MutateGround lets rain douse fires and snow settle on bare dirt.
func (w *APIWeather) MutateGround(loc *world.Location, rng random.Source) {
	switch w.category {
	case Rainy:
		if d, ok := loc.Ground().(world.Dousable); ok {
			d.Douse(1)
		}
	case Snowy:
		if _, ok := loc.Ground().(world.Dirt); ok && rng != nil && rng.Float64() < SnowfallChance {
			loc.SetGround(world.Snow{})
		}
	}
}

// TemperatureBand is the extra warmth change for a reported temperature.
func TemperatureBand(celsius float64) int {
	switch {
	case celsius < 5:
		return -2
	case celsius < 15:
		return -1
	case celsius > 25:
		return 1
	default:
		return 0
	}
}

// WarmthDelta is the unshielded warmth change e causes per turn.
func WarmthDelta(e Effect) int {
	delta := e.BaseWarmthDelta()
	if r, ok := e.(Reading); ok {
		delta += TemperatureBand(r.TemperatureC())
	}
	return delta
}
