// Package dialogue voices the Storm Seer.
package dialogue

import (
	"context"

	"github.com/appengine-ltd/stormfront/internal/weather"
)

// Service produces the Storm Seer's words about the reported weather. It
// never fails; a provider error yields Fallback.
type Service interface {
	Monologue(ctx context.Context, description string, temperatureC float64) string
}

var fallbackLines = map[weather.Category]string{
	weather.Rainy: "The sky weeps... but these tears, are they for cleansing, or for drowning?",
	weather.Snowy: "A white silence descends... the world holds its breath in the cold.",
	weather.Clear: "The winds... they carry the scent of change.",
}

// Fallback is the canned prophecy for a weather description.
func Fallback(description string) string {
	return fallbackLines[weather.Categorize(description)]
}

// Canned always answers with Fallback.
type Canned struct{}

func (Canned) Monologue(_ context.Context, description string, _ float64) string {
	return Fallback(description)
}
