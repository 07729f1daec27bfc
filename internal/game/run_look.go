package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/stormfront/internal/drake"
	"github.com/appengine-ltd/stormfront/internal/npc"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// Look draws the explorer's map and describes the tile underfoot.
func (r *Run) Look() string {
	home := r.Home()
	here := r.here()
	if home == nil || here == nil {
		return "You see nothing but white."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (turn %d)\n", home.Name(), r.Turn)
	b.WriteString(renderMap(home))
	fmt.Fprintf(&b, "You stand on %s.", strings.ToLower(here.Ground().Name()))
	if items := here.Items(); len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name())
		}
		fmt.Fprintf(&b, " On the ground: %s.", strings.Join(names, ", "))
	}
	for _, e := range here.Exits() {
		if a := e.Destination.Actor(); a != nil {
			fmt.Fprintf(&b, "\n%s is to the %s.", describeActor(a), e.Direction.Name)
		}
	}
	return b.String()
}

func renderMap(m *world.Map) string {
	var b strings.Builder
	row := -1
	m.Each(func(loc *world.Location) {
		if p := loc.Point(); p.Y != row {
			if row >= 0 {
				b.WriteByte('\n')
			}
			row = p.Y
		}
		switch {
		case loc.HasActor():
			b.WriteRune(actorGlyph(loc.Actor()))
		case len(loc.Items()) > 0:
			b.WriteRune('?')
		default:
			b.WriteRune(loc.Ground().Glyph())
		}
	})
	b.WriteByte('\n')
	return b.String()
}

func actorGlyph(a world.Actor) rune {
	switch a.(type) {
	case *world.Player:
		return '@'
	case *drake.Drake:
		return 'D'
	case *npc.StormSeer:
		return '§'
	}
	if name := a.Name(); name != "" {
		return []rune(strings.ToLower(name))[0]
	}
	return '?'
}

func describeActor(a world.Actor) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return a.Name()
}

// StatusReport lists the explorer's vitals, active effects and weapon.
func (r *Run) StatusReport() string {
	p := r.Player()
	var b strings.Builder
	b.WriteString(p.String())
	if p.Sleeping() {
		b.WriteString(" [Asleep]")
	}
	effects := p.Statuses()
	if len(effects) == 0 {
		b.WriteString("\nNo active effects.")
	}
	for _, e := range effects {
		fmt.Fprintf(&b, "\n- %s", e)
	}
	fmt.Fprintf(&b, "\nWeapon: %s", describeWeapon(p.Weapon()))
	return b.String()
}

func describeWeapon(w world.Weapon) string {
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	if it, ok := w.(world.Item); ok {
		return it.Name()
	}
	return "bare fists"
}

// WeatherReport names the active weather and how much of it reaches the explorer.
func (r *Run) WeatherReport() string {
	c := r.weather
	w := c.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "Weather: %s", w.DisplayName())
	if c.ExternallyControlled() {
		b.WriteString(" (live)")
	} else {
		fmt.Fprintf(&b, " for %d more turns", c.TurnsRemaining())
	}
	if reading, ok := w.(weather.Reading); ok {
		fmt.Fprintf(&b, "\nTemperature: %.1f°C", reading.TemperatureC())
	}
	fmt.Fprintf(&b, "\nEach turn: warmth %+d, hydration %+d", weather.WarmthDelta(w), w.BaseHydrationDelta())
	exposure := weather.Exposure(r.Player(), w, r.here())
	if exposure < 1 {
		fmt.Fprintf(&b, "\nYou are %d%% exposed.", int(math.Round(exposure*100)))
	}
	return b.String()
}

func (r *Run) InventoryReport() string {
	items := r.Player().Inventory()
	if len(items) == 0 {
		return "You carry nothing."
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(fmt.Stringer); ok {
			names = append(names, s.String())
			continue
		}
		names = append(names, it.Name())
	}
	return "You carry: " + strings.Join(names, ", ") + "."
}
