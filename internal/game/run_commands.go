package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/appengine-ltd/stormfront/internal/npc"
	"github.com/appengine-ltd/stormfront/internal/parser"
	"github.com/appengine-ltd/stormfront/internal/world"
)

type RunCommandResult struct {
	Handled bool
	Message string
	Turns   int
	Quit    bool
}

const helpText = "Commands: look, status, weather, inventory, go <direction>, attack <creature>, take <item>, " +
	"eat <food>, drink [bottle], wield <weapon>, campfire, steam, coat <yew berry|snow>, talk, sleep, wait [turns], help, quit."

// ExecuteCommand parses a line of player input and runs it. Queries never
// spend a turn; actions advance the world by one turn (wait may skip several).
func (r *Run) ExecuteCommand(ctx context.Context, raw string) RunCommandResult {
	if strings.TrimSpace(raw) == "" {
		return RunCommandResult{Handled: false}
	}
	intent := r.parser.Parse(r.parseContext(), raw)
	if intent.Clarify != nil {
		return RunCommandResult{Handled: true, Message: clarifyMessage(intent.Clarify)}
	}

	switch intent.Verb {
	case "help":
		return RunCommandResult{Handled: true, Message: helpText}
	case "quit":
		return RunCommandResult{Handled: true, Quit: true, Message: "You leave the tundra behind."}
	case "look":
		return RunCommandResult{Handled: true, Message: r.Look()}
	case "status":
		return RunCommandResult{Handled: true, Message: r.StatusReport()}
	case "weather":
		return RunCommandResult{Handled: true, Message: r.WeatherReport()}
	case "inventory":
		return RunCommandResult{Handled: true, Message: r.InventoryReport()}
	}

	if r.Over() {
		return RunCommandResult{Handled: true, Message: "The run is over."}
	}
	if intent.Verb == "wait" {
		return r.executeWait(ctx, intent)
	}

	action, msg := r.actionFor(intent)
	if action == nil {
		return RunCommandResult{Handled: true, Message: msg}
	}
	return r.play(ctx, action)
}

func (r *Run) play(ctx context.Context, action world.Action) RunCommandResult {
	msgs := r.AdvanceTurn(ctx, action)
	return RunCommandResult{Handled: true, Turns: 1, Message: strings.Join(msgs, "\n")}
}

func (r *Run) executeWait(ctx context.Context, intent parser.Intent) RunCommandResult {
	turns := 1
	if intent.Quantity != nil && intent.Quantity.N > 0 {
		turns = min(intent.Quantity.N, r.Config.MaxWaitTurns)
	}
	var msgs []string
	played := 0
	for played < turns && !r.Over() {
		msgs = append(msgs, r.AdvanceTurn(ctx, world.DoNothing{})...)
		played++
	}
	return RunCommandResult{Handled: true, Turns: played, Message: strings.Join(msgs, "\n")}
}

// actionFor turns an intent into a world action, or explains why it cannot.
func (r *Run) actionFor(intent parser.Intent) (world.Action, string) {
	arg := ""
	if len(intent.Args) > 0 {
		arg = strings.Join(intent.Args, " ")
	}
	player := r.Player()

	switch intent.Verb {
	case "go":
		d, ok := world.ParseDirection(arg)
		if !ok {
			return nil, fmt.Sprintf("%q is not a direction.", arg)
		}
		return &world.MoveAction{Direction: d}, ""
	case "attack":
		target, ok := r.adjacentActor(intent.Args[0])
		if !ok {
			return nil, fmt.Sprintf("There is no %s within reach.", intent.Args[0])
		}
		r.lastEntity = target.Name()
		return &world.AttackAction{Target: target}, ""
	case "take":
		it, ok := r.itemHere(arg)
		if !ok {
			return nil, fmt.Sprintf("There is no %s here.", arg)
		}
		r.lastEntity = it.Name()
		return world.PickUpAction{Item: it.Name()}, ""
	case "eat":
		return world.ConsumeAction{Item: arg}, ""
	case "drink":
		if arg == "" || world.SameName(arg, "water") {
			arg = world.BottleName
		}
		return world.ConsumeAction{Item: arg}, ""
	case "wield":
		return world.WieldAction{Item: arg}, ""
	case "campfire":
		return world.BuildCampfireAction{}, ""
	case "steam":
		return world.StartSteamTherapyAction{}, ""
	case "sleep":
		return world.SleepAction{}, ""
	case "coat":
		coatable, ok := player.Weapon().(world.Coatable)
		if !ok {
			return nil, "You carry nothing that can be coated."
		}
		coating, ok := coatingFor(intent.Args[0])
		if !ok {
			return nil, fmt.Sprintf("You cannot coat a weapon with %s.", intent.Args[0])
		}
		return &world.CoatWeaponAction{Weapon: coatable, Coating: coating}, ""
	case "talk":
		seer, ok := r.adjacentSeer()
		if !ok {
			return nil, "There is no one here to talk to."
		}
		talk, ok := seer.Talk()
		if !ok {
			return nil, "The Storm Seer watches the sky in silence. Only true weather stirs the seer."
		}
		return talk, ""
	}
	return nil, fmt.Sprintf("You cannot %s here.", intent.Verb)
}

func coatingFor(name string) (world.Coating, bool) {
	switch {
	case world.SameName(name, world.YewBerry{}.Name()):
		return world.YewBerryCoating, true
	case world.SameName(name, "snow"):
		return world.SnowCoating, true
	}
	return world.NoCoating, false
}

func (r *Run) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{LastEntity: r.lastEntity}
	for _, it := range r.Player().Inventory() {
		ctx.Inventory = append(ctx.Inventory, it.Name())
	}
	if here := r.here(); here != nil {
		for _, it := range here.Items() {
			ctx.Nearby = append(ctx.Nearby, it.Name())
		}
		for _, e := range here.Exits() {
			if a := e.Destination.Actor(); a != nil {
				ctx.Creatures = append(ctx.Creatures, a.Name())
			}
		}
	}
	return ctx
}

func (r *Run) here() *world.Location {
	home := r.Home()
	if home == nil {
		return nil
	}
	loc, _ := home.LocationOf(r.Player())
	return loc
}

func (r *Run) adjacentActor(name string) (world.Actor, bool) {
	here := r.here()
	if here == nil {
		return nil, false
	}
	for _, e := range here.Exits() {
		if a := e.Destination.Actor(); a != nil && world.SameName(a.Name(), name) {
			return a, true
		}
	}
	return nil, false
}

func (r *Run) adjacentSeer() (*npc.StormSeer, bool) {
	here := r.here()
	if here == nil {
		return nil, false
	}
	for _, e := range here.Exits() {
		if seer, ok := e.Destination.Actor().(*npc.StormSeer); ok {
			return seer, true
		}
	}
	return nil, false
}

func (r *Run) itemHere(name string) (world.Item, bool) {
	here := r.here()
	if here == nil {
		return nil, false
	}
	for _, it := range here.Items() {
		if world.SameName(it.Name(), name) {
			return it, true
		}
	}
	return nil, false
}

func clarifyMessage(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if s := parser.IntentToCommandString(o); s != "" {
			opts = append(opts, s)
		}
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}
