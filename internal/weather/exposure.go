package weather

import (
	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// Exposure returns the fraction of w that reaches actor standing at loc.
// The best single shield wins: carried items and the ground do not stack.
func Exposure(actor world.Actor, w Effect, loc *world.Location) float64 {
	if w == nil {
		return 1.0
	}
	id := w.ID()

	carried := 1.0
	if c, ok := actor.(world.Carrier); ok {
		for _, it := range c.Inventory() {
			carried = min(carried, entity.Protection(it, id))
		}
	}

	ground := 1.0
	if loc != nil && loc.Ground() != nil {
		ground = entity.Protection(loc.Ground(), id)
	}

	return max(0, min(1, min(carried, ground)))
}
