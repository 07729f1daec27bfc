package status

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/appengine-ltd/stormfront/internal/entity"
)

const (
	DefaultFrostbiteTurns = 3
	FeverDamage           = 2
	FrostFluChill         = 1
	CampfireTherapyTurns  = 3
	SteamTherapyTurns     = 4
)

// DamageOverTime hurts its target each turn until its duration runs out.
type DamageOverTime struct {
	id        string
	kind      Kind
	damage    int
	remaining int
}

func NewBleeding(damagePerTurn, duration int) *DamageOverTime {
	return newDamageOverTime(Bleeding, damagePerTurn, duration)
}

func NewBurning(damagePerTurn, duration int) *DamageOverTime {
	return newDamageOverTime(Burning, damagePerTurn, duration)
}

func NewPoisoned(damagePerTurn, duration int) *DamageOverTime {
	return newDamageOverTime(Poisoned, damagePerTurn, duration)
}

func newDamageOverTime(kind Kind, damagePerTurn, duration int) *DamageOverTime {
	return &DamageOverTime{
		id:        uuid.NewString(),
		kind:      kind,
		damage:    max(0, damagePerTurn),
		remaining: max(0, duration),
	}
}

func (d *DamageOverTime) ID() string { return d.id }
func (d *DamageOverTime) Kind() Kind { return d.kind }
func (d *DamageOverTime) Active() bool { return d.remaining > 0 }
func (d *DamageOverTime) DamagePerTurn() int { return d.damage }
func (d *DamageOverTime) TurnsRemaining() int { return d.remaining }

func (d *DamageOverTime) Tick(target any, _ entity.Point) {
	if d.remaining <= 0 {
		return
	}
	entity.Hurt(target, d.damage)
	d.remaining--
}

func (d *DamageOverTime) String() string {
	return fmt.Sprintf("%s (%d dmg, %d turns)", d.kind, d.damage, d.remaining)
}

// WarmthDrain is frostbite: one warmth lost per turn unless the target is cold resistant.
// The duration runs down either way.
type WarmthDrain struct {
	id        string
	drain     int
	remaining int
}

func NewFrostbite(duration int) *WarmthDrain {
	return &WarmthDrain{
		id:        uuid.NewString(),
		drain:     1,
		remaining: max(0, duration),
	}
}

func (w *WarmthDrain) ID() string { return w.id }
func (w *WarmthDrain) Kind() Kind { return Frostbite }
func (w *WarmthDrain) Active() bool { return w.remaining > 0 }
func (w *WarmthDrain) TurnsRemaining() int { return w.remaining }

func (w *WarmthDrain) Tick(target any, _ entity.Point) {
	if w.remaining <= 0 {
		return
	}
	if !entity.IsColdResistant(target) {
		entity.AdjustWarmth(target, -w.drain)
	}
	w.remaining--
}

func (w *WarmthDrain) String() string {
	return fmt.Sprintf("%s (%d turns)", Frostbite, w.remaining)
}

// Disease applies its penalty every turn until cured. A turn on which the
// host carries an active matching therapy costs nothing.
type Disease struct {
	id      string
	kind    Kind
	penalty int
	cured   bool
}

func NewFever() *Disease {
	return &Disease{id: uuid.NewString(), kind: Fever, penalty: FeverDamage}
}

func NewFrostFlu() *Disease {
	return &Disease{id: uuid.NewString(), kind: FrostFlu, penalty: FrostFluChill}
}

func (d *Disease) ID() string { return d.id }
func (d *Disease) Kind() Kind { return d.kind }
func (d *Disease) Active() bool { return !d.cured }

// Cure deactivates the disease for good. Curing twice is harmless.
func (d *Disease) Cure() { d.cured = true }

func (d *Disease) Tick(target any, _ entity.Point) {
	if d.cured {
		return
	}
	if therapy, ok := d.kind.TreatedBy(); ok {
		if _, treated := Find(target, therapy); treated {
			return
		}
	}
	switch d.kind {
	case Fever:
		entity.Hurt(target, d.penalty)
	case FrostFlu:
		entity.AdjustWarmth(target, -d.penalty)
	}
}

func (d *Disease) String() string {
	if d.cured {
		return d.kind.String() + " (cured)"
	}
	return d.kind.String()
}

// Therapy counts turns and, once the threshold is reached, cures the first
// matching disease on the host and removes itself. Without a disease it keeps counting.
type Therapy struct {
	id        string
	kind      Kind
	threshold int
	turns     int
	done      bool
}

func NewCampfireTherapy() *Therapy {
	return &Therapy{id: uuid.NewString(), kind: CampfireTherapy, threshold: CampfireTherapyTurns}
}

func NewSteamTherapy() *Therapy {
	return &Therapy{id: uuid.NewString(), kind: SteamTherapy, threshold: SteamTherapyTurns}
}

func (t *Therapy) ID() string { return t.id }
func (t *Therapy) Kind() Kind { return t.kind }
func (t *Therapy) Active() bool { return !t.done }
func (t *Therapy) Turns() int { return t.turns }

func (t *Therapy) Tick(target any, _ entity.Point) {
	if t.done {
		return
	}
	t.turns++
	if t.turns < t.threshold {
		return
	}
	disease, ok := t.kind.Treats()
	if !ok {
		return
	}
	found, ok := Find(target, disease)
	if !ok {
		return
	}
	entity.Cure(found)
	t.done = true
	if h, ok := target.(Host); ok {
		h.RemoveStatus(t.id)
	}
}

func (t *Therapy) String() string {
	return fmt.Sprintf("%s (%d/%d)", t.kind, t.turns, t.threshold)
}
