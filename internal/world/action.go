package world

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/status"
)

// Action is one thing an actor does in a turn. Execute returns the message to show.
type Action interface {
	Execute(ctx context.Context, actor Actor, m *Map) string
	Describe(actor Actor) string
}

// Holder is an actor with a mutable inventory.
type Holder interface {
	Carrier
	AddItem(it Item)
	RemoveItem(it Item) bool
}

// Armed actors pick their own weapon when an attack names none.
type Armed interface {
	Weapon() Weapon
}

type DoNothing struct{}

func (DoNothing) Execute(_ context.Context, actor Actor, _ *Map) string {
	return actor.Name() + " waits."
}

func (DoNothing) Describe(Actor) string { return "Wait" }

type MoveAction struct {
	Direction Direction
}

func (a *MoveAction) Execute(_ context.Context, actor Actor, m *Map) string {
	here, ok := m.LocationOf(actor)
	if !ok {
		return actor.Name() + " is nowhere to be found."
	}
	dest := m.At(here.Point().Add(a.Direction.DX, a.Direction.DY))
	if dest == nil || !dest.CanEnter(actor) {
		return fmt.Sprintf("%s cannot move %s.", actor.Name(), a.Direction.Name)
	}
	if err := m.Move(actor, dest.Point()); err != nil {
		return fmt.Sprintf("%s cannot move %s.", actor.Name(), a.Direction.Name)
	}
	return fmt.Sprintf("%s moves %s.", actor.Name(), a.Direction.Name)
}

func (a *MoveAction) Describe(actor Actor) string {
	return fmt.Sprintf("%s moves %s", actor.Name(), a.Direction.Name)
}

// AttackAction resolves through Weapon when the action executes. A nil Weapon
// falls back to the attacker's own weapon.
type AttackAction struct {
	Target Actor
	Weapon Weapon
}

func (a *AttackAction) Execute(_ context.Context, actor Actor, m *Map) string {
	if a.Target == nil || !a.Target.Conscious() {
		return actor.Name() + " finds nothing to attack."
	}
	if _, ok := m.LocationOf(a.Target); !ok {
		return actor.Name() + " finds nothing to attack."
	}
	weapon := a.Weapon
	if weapon == nil {
		armed, ok := actor.(Armed)
		if !ok {
			return actor.Name() + " has no way to attack."
		}
		weapon = armed.Weapon()
	}
	msg := weapon.Attack(actor, a.Target, m)
	if !a.Target.Conscious() {
		msg += " " + a.Target.Name() + " is unconscious."
	}
	return msg
}

func (a *AttackAction) Describe(actor Actor) string {
	if a.Target == nil {
		return actor.Name() + " attacks"
	}
	return fmt.Sprintf("%s attacks %s", actor.Name(), a.Target.Name())
}

const FortifyHeal = 50

type FortifyAction struct {
	Amount int
}

func (a FortifyAction) Execute(_ context.Context, actor Actor, _ *Map) string {
	amount := a.Amount
	if amount <= 0 {
		amount = FortifyHeal
	}
	if !entity.Heal(actor, amount) {
		return actor.Name() + " draws on the ground, but nothing happens."
	}
	return fmt.Sprintf("%s draws energy from the ground, healing for %d HP.", actor.Name(), amount)
}

func (FortifyAction) Describe(actor Actor) string {
	return actor.Name() + " draws energy from the ground"
}

type BuildCampfireAction struct{}

func (BuildCampfireAction) Execute(_ context.Context, actor Actor, m *Map) string {
	holder, ok := actor.(Holder)
	if !ok {
		return actor.Name() + " has no wood to build a campfire."
	}
	var wood Item
	for _, it := range holder.Inventory() {
		if _, ok := it.(WoodBundle); ok {
			wood = it
			break
		}
	}
	if wood == nil {
		return actor.Name() + " has no wood to build a campfire."
	}
	here, ok := m.LocationOf(actor)
	if !ok {
		return actor.Name() + " is nowhere to be found."
	}
	holder.RemoveItem(wood)
	here.SetGround(NewCampfire())
	return actor.Name() + " builds a campfire."
}

func (BuildCampfireAction) Describe(Actor) string { return "Build a campfire (consume wood)" }

type StartSteamTherapyAction struct{}

func (StartSteamTherapyAction) Execute(_ context.Context, actor Actor, m *Map) string {
	here, ok := m.LocationOf(actor)
	if !ok {
		return actor.Name() + " is nowhere to be found."
	}
	if _, ok := here.Ground().(SteamHut); !ok {
		return actor.Name() + " must be inside a Steam Hut to start steam therapy."
	}
	if _, ok := status.Find(actor, status.SteamTherapy); ok {
		return actor.Name() + " is already under steam therapy."
	}
	if !status.Apply(actor, status.NewSteamTherapy()) {
		return actor.Name() + " cannot benefit from steam therapy."
	}
	return actor.Name() + " starts steam therapy."
}

func (StartSteamTherapyAction) Describe(Actor) string { return "Start steam therapy" }

type CoatWeaponAction struct {
	Weapon  Coatable
	Coating Coating
}

func (a *CoatWeaponAction) Execute(_ context.Context, actor Actor, m *Map) string {
	switch a.Coating {
	case YewBerryCoating:
		holder, ok := actor.(Holder)
		if !ok {
			return "No Yew Berry to use for coating."
		}
		var berry Item
		for _, it := range holder.Inventory() {
			if _, ok := it.(YewBerry); ok {
				berry = it
				break
			}
		}
		if berry == nil {
			return "No Yew Berry to use for coating."
		}
		holder.RemoveItem(berry)
		a.Weapon.SetCoating(YewBerryCoating)
		return fmt.Sprintf("%s coats the %s with Yew Berry (poison).", actor.Name(), a.Weapon.Name())
	case SnowCoating:
		here, ok := m.LocationOf(actor)
		if !ok {
			return actor.Name() + " is nowhere to be found."
		}
		if _, ok := here.Ground().(Snow); !ok {
			return "You must be standing on snow to coat with snow."
		}
		a.Weapon.SetCoating(SnowCoating)
		return fmt.Sprintf("%s coats the %s with Snow (frostbite).", actor.Name(), a.Weapon.Name())
	default:
		return actor.Name() + " does nothing."
	}
}

func (a *CoatWeaponAction) Describe(Actor) string {
	return fmt.Sprintf("Coat %s with %s", a.Weapon.Name(), a.Coating)
}

const SleepTurns = 5

// Sleeper actors can rest to pause their metabolism.
type Sleeper interface {
	Sleep(turns int)
}

type SleepAction struct{}

func (SleepAction) Execute(_ context.Context, actor Actor, _ *Map) string {
	holder, ok := actor.(Holder)
	if !ok {
		return actor.Name() + " cannot sleep here."
	}
	hasBedroll := false
	for _, it := range holder.Inventory() {
		if _, ok := it.(Bedroll); ok {
			hasBedroll = true
			break
		}
	}
	sleeper, ok := actor.(Sleeper)
	if !hasBedroll || !ok {
		return actor.Name() + " needs a bedroll to sleep."
	}
	sleeper.Sleep(SleepTurns)
	return fmt.Sprintf("%s sleeps for %d turns.", actor.Name(), SleepTurns)
}

func (SleepAction) Describe(Actor) string { return "Sleep on the bedroll" }

type PickUpAction struct {
	Item string
}

func (a PickUpAction) Execute(_ context.Context, actor Actor, m *Map) string {
	holder, ok := actor.(Holder)
	if !ok {
		return actor.Name() + " cannot carry anything."
	}
	here, ok := m.LocationOf(actor)
	if !ok {
		return actor.Name() + " is nowhere to be found."
	}
	it, ok := here.TakeItem(a.Item)
	if !ok {
		return fmt.Sprintf("There is no %s here.", a.Item)
	}
	holder.AddItem(it)
	return fmt.Sprintf("%s picks up the %s.", actor.Name(), it.Name())
}

func (a PickUpAction) Describe(Actor) string { return "Pick up " + a.Item }

// Wielder actors choose which carried weapon they fight with.
type Wielder interface {
	Wield(name string) bool
}

type WieldAction struct {
	Item string
}

func (a WieldAction) Execute(_ context.Context, actor Actor, _ *Map) string {
	w, ok := actor.(Wielder)
	if !ok || !w.Wield(a.Item) {
		return fmt.Sprintf("%s has no %s to wield.", actor.Name(), a.Item)
	}
	name := a.Item
	if armed, ok := actor.(Armed); ok {
		if it, ok := armed.Weapon().(Item); ok {
			name = it.Name()
		}
	}
	return fmt.Sprintf("%s wields the %s.", actor.Name(), name)
}

func (a WieldAction) Describe(Actor) string { return "Wield " + a.Item }
