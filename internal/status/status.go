// Package status implements per-turn status effects: damage over time,
// frostbite, diseases and the therapies that cure them.
package status

import (
	"slices"

	"github.com/appengine-ltd/stormfront/internal/entity"
)

type Kind int

const (
	Bleeding Kind = iota + 1
	Burning
	Poisoned
	Frostbite
	Fever
	FrostFlu
	CampfireTherapy
	SteamTherapy
)

func (k Kind) String() string {
	switch k {
	case Bleeding:
		return "Bleeding"
	case Burning:
		return "Burning"
	case Poisoned:
		return "Poisoned"
	case Frostbite:
		return "Frostbite"
	case Fever:
		return "Fever"
	case FrostFlu:
		return "Frost Flu"
	case CampfireTherapy:
		return "Under Campfire Therapy"
	case SteamTherapy:
		return "Under Steam Therapy"
	default:
		return "Unknown"
	}
}

// Treats returns the disease a therapy kind cures.
func (k Kind) Treats() (Kind, bool) {
	switch k {
	case CampfireTherapy:
		return Fever, true
	case SteamTherapy:
		return FrostFlu, true
	default:
		return 0, false
	}
}

// TreatedBy returns the therapy kind that suppresses and cures a disease kind.
func (k Kind) TreatedBy() (Kind, bool) {
	switch k {
	case Fever:
		return CampfireTherapy, true
	case FrostFlu:
		return SteamTherapy, true
	default:
		return 0, false
	}
}

// Effect is a modifier attached to a host and ticked once per world turn.
type Effect interface {
	ID() string
	Kind() Kind
	Tick(target any, at entity.Point)
	Active() bool
	String() string
}

// Host is the status-list capability. Statuses returns effects in insertion order.
type Host interface {
	Statuses() []Effect
	AddStatus(e Effect)
	RemoveStatus(id string)
}

// List is an embeddable Host.
type List struct {
	effects []Effect
}

func (l *List) Statuses() []Effect {
	return slices.Clone(l.effects)
}

func (l *List) AddStatus(e Effect) {
	if e == nil {
		return
	}
	l.effects = append(l.effects, e)
}

func (l *List) RemoveStatus(id string) {
	l.effects = slices.DeleteFunc(l.effects, func(e Effect) bool { return e.ID() == id })
}

// Has reports whether an active effect of kind is attached.
func (l *List) Has(kind Kind) bool {
	return l.Count(kind) > 0
}

// Count returns the number of active effects of kind.
func (l *List) Count(kind Kind) int {
	n := 0
	for _, e := range l.effects {
		if e.Kind() == kind && e.Active() {
			n++
		}
	}
	return n
}

// Apply attaches e to target when it hosts statuses.
func Apply(target any, e Effect) bool {
	h, ok := target.(Host)
	if !ok || e == nil {
		return false
	}
	h.AddStatus(e)
	return true
}

// Find returns the first active effect of kind on target.
func Find(target any, kind Kind) (Effect, bool) {
	h, ok := target.(Host)
	if !ok {
		return nil, false
	}
	for _, e := range h.Statuses() {
		if e.Kind() == kind && e.Active() {
			return e, true
		}
	}
	return nil, false
}

// TickAll ticks every effect on host once in insertion order, then drops the
// ones that are no longer active. Effects added during the pass wait for the next turn.
func TickAll(host Host, at entity.Point) {
	if host == nil {
		return
	}
	for _, e := range host.Statuses() {
		e.Tick(host, at)
	}
	for _, e := range host.Statuses() {
		if !e.Active() {
			host.RemoveStatus(e.ID())
		}
	}
}
