// Package entity holds the optional capabilities that effects, weather and
// weapons use to mutate actors, items and grounds they know nothing else about.
//
// A capability that a value does not implement is skipped silently; the
// helpers report whether anything was applied but callers are free to ignore it.
package entity

// Point is a tile coordinate. Y grows downwards.
type Point struct {
	X int
	Y int
}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

type Damageable interface {
	Hurt(amount int)
}

type Healable interface {
	Heal(amount int)
}

// WarmthBearer accepts signed warmth changes; implementations clamp to their own range.
type WarmthBearer interface {
	AdjustWarmth(delta int)
}

// HydrationBearer accepts signed hydration changes; implementations clamp to their own range.
type HydrationBearer interface {
	AdjustHydration(delta int)
}

type ColdResistant interface {
	IsColdResistant() bool
}

// WeatherShield is implemented by items and grounds that reduce exposure.
// ProtectionFor returns the fraction of the weather that still lands, 1.0 meaning none blocked.
type WeatherShield interface {
	ProtectionFor(weatherID string) float64
}

type Curable interface {
	Cure()
}

func Hurt(target any, amount int) bool {
	if amount <= 0 {
		return false
	}
	d, ok := target.(Damageable)
	if !ok {
		return false
	}
	d.Hurt(amount)
	return true
}

func Heal(target any, amount int) bool {
	if amount <= 0 {
		return false
	}
	h, ok := target.(Healable)
	if !ok {
		return false
	}
	h.Heal(amount)
	return true
}

func AdjustWarmth(target any, delta int) bool {
	if delta == 0 {
		return false
	}
	w, ok := target.(WarmthBearer)
	if !ok {
		return false
	}
	w.AdjustWarmth(delta)
	return true
}

func AdjustHydration(target any, delta int) bool {
	if delta == 0 {
		return false
	}
	h, ok := target.(HydrationBearer)
	if !ok {
		return false
	}
	h.AdjustHydration(delta)
	return true
}

func IsColdResistant(target any) bool {
	c, ok := target.(ColdResistant)
	return ok && c.IsColdResistant()
}

// Protection returns the clamped shield value source offers against weatherID,
// or 1.0 when source does not shield at all.
func Protection(source any, weatherID string) float64 {
	s, ok := source.(WeatherShield)
	if !ok {
		return 1.0
	}
	return clamp01(s.ProtectionFor(weatherID))
}

func Cure(target any) bool {
	c, ok := target.(Curable)
	if !ok {
		return false
	}
	c.Cure()
	return true
}

func clamp01(v float64) float64 {
	// NaN compares false both ways; treat it as unshielded.
	if !(v >= 0) {
		if v < 0 {
			return 0
		}
		return 1
	}
	if v > 1 {
		return 1
	}
	return v
}
