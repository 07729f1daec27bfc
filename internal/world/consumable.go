package world

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/entity"
)

const (
	AppleHeal      = 3
	AppleHydration = 2
	HazelnutBoost  = 1
	BottleSips     = 5
	SipHydration   = 4

	BottleName = "Bottle"
)

// Edible items are used up when eaten.
type Edible interface {
	Item
	Consume(actor Actor) string
}

// MaxHealthRaiser actors can grow tougher from what they eat.
type MaxHealthRaiser interface {
	RaiseMaxHealth(n int)
}

type Apple struct{}

func (Apple) Name() string { return "Apple" }

func (Apple) Consume(actor Actor) string {
	entity.Heal(actor, AppleHeal)
	entity.AdjustHydration(actor, AppleHydration)
	return fmt.Sprintf("%s eats an Apple (+%d HP, +%d hydration).", actor.Name(), AppleHeal, AppleHydration)
}

type Hazelnut struct{}

func (Hazelnut) Name() string { return "Hazelnut" }

// Consume raises the eater's maximum health, or heals as much when it has no maximum to raise.
func (Hazelnut) Consume(actor Actor) string {
	if r, ok := actor.(MaxHealthRaiser); ok {
		r.RaiseMaxHealth(HazelnutBoost)
		return fmt.Sprintf("%s eats a Hazelnut (+%d max HP).", actor.Name(), HazelnutBoost)
	}
	entity.Heal(actor, HazelnutBoost)
	return fmt.Sprintf("%s eats a Hazelnut (+%d HP).", actor.Name(), HazelnutBoost)
}

// Bottle holds a few sips of water and is kept once empty.
type Bottle struct {
	sips int
}

func NewBottle() *Bottle { return &Bottle{sips: BottleSips} }

func (b *Bottle) Name() string { return BottleName }
func (b *Bottle) Sips() int { return b.sips }

func (b *Bottle) String() string {
	return fmt.Sprintf("Bottle (%d/%d sips)", b.sips, BottleSips)
}

// Drink spends one sip on actor's hydration.
func (b *Bottle) Drink(actor Actor) string {
	if _, ok := actor.(entity.HydrationBearer); !ok {
		return actor.Name() + " cannot drink from the bottle."
	}
	if b.sips <= 0 {
		return "The bottle is empty."
	}
	b.sips--
	entity.AdjustHydration(actor, SipHydration)
	return fmt.Sprintf("%s drinks from the bottle (%d/%d sips left).", actor.Name(), b.sips, BottleSips)
}

// ConsumeAction eats or drinks the named item, from the inventory first and
// then from the ground underfoot.
type ConsumeAction struct {
	Item string
}

func (a ConsumeAction) Execute(_ context.Context, actor Actor, m *Map) string {
	var here *Location
	if m != nil {
		here, _ = m.LocationOf(actor)
	}
	holder, _ := actor.(Holder)

	var it Item
	fromGround := false
	if holder != nil {
		for _, carried := range holder.Inventory() {
			if SameName(carried.Name(), a.Item) {
				it = carried
				break
			}
		}
	}
	if it == nil && here != nil {
		for _, lying := range here.Items() {
			if SameName(lying.Name(), a.Item) {
				it, fromGround = lying, true
				break
			}
		}
	}
	if it == nil {
		return fmt.Sprintf("%s has no %s.", actor.Name(), a.Item)
	}

	switch v := it.(type) {
	case *Bottle:
		return v.Drink(actor)
	case Edible:
		if fromGround {
			here.TakeItem(v.Name())
		} else {
			holder.RemoveItem(v)
		}
		return v.Consume(actor)
	}
	return fmt.Sprintf("%s cannot eat the %s.", actor.Name(), it.Name())
}

func (a ConsumeAction) Describe(Actor) string { return "Consume " + a.Item }
