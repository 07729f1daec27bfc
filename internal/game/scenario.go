package game

import (
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/drake"
	"github.com/appengine-ltd/stormfront/internal/entity"
	"github.com/appengine-ltd/stormfront/internal/npc"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
	"github.com/appengine-ltd/stormfront/internal/world"
)

const (
	TundraMapName  = "Frozen Tundra"
	GlacierMapName = "Glacier Pass"
)

var tundraRows = []string{
	"################",
	"#......****...O#",
	"#.S....*****...#",
	"#......*****...#",
	"#..........*...#",
	"#...H......***.#",
	"#..........***.#",
	"#.....#........#",
	"################",
}

var glacierRows = []string{
	"#######",
	"#**O**#",
	"#*****#",
	"#######",
}

type placement struct {
	actor world.Actor
	at    entity.Point
}

type itemDrop struct {
	item world.Item
	at   entity.Point
}

// Scenario is the starting world: maps, the explorer and the notable inhabitants.
type Scenario struct {
	Maps   []*world.Map
	Player *world.Player
	Seer   *npc.StormSeer
	Drake  *drake.Drake
}

// BuildScenario lays out the tundra and the glacier, places the explorer with
// an axe, a bedroll, provisions and a torch, and populates both maps.
func BuildScenario(cfg RunConfig, rng random.Source, seer *npc.StormSeer) (Scenario, error) {
	tundra, err := world.FromRows(TundraMapName, tundraRows)
	if err != nil {
		return Scenario{}, fmt.Errorf("build %s: %w", TundraMapName, err)
	}
	glacier, err := world.FromRows(GlacierMapName, glacierRows)
	if err != nil {
		return Scenario{}, fmt.Errorf("build %s: %w", GlacierMapName, err)
	}

	player := world.NewPlayer(cfg.PlayerName, rng)
	player.AddItem(world.NewAxe(rng))
	player.AddItem(world.Bedroll{})
	player.AddItem(world.NewBottle())
	player.AddItem(world.Apple{})
	player.AddItem(world.Hazelnut{})
	player.AddItem(world.NewTorch(rng))
	if cfg.Sick {
		status.Apply(player, status.NewFever())
	}
	boss := drake.New(rng)

	tundraActors := []placement{
		{actor: player, at: entity.Point{X: 2, Y: 4}},
		{actor: boss, at: entity.Point{X: 13, Y: 3}},
		{actor: world.NewWolf(rng), at: entity.Point{X: 9, Y: 6}},
		{actor: world.NewDeer(rng), at: entity.Point{X: 12, Y: 4}},
		{actor: world.NewBear(rng), at: entity.Point{X: 14, Y: 7}},
	}
	if seer != nil {
		tundraActors = append(tundraActors, placement{actor: seer, at: entity.Point{X: 4, Y: 2}})
	}
	for _, p := range tundraActors {
		if err := tundra.Place(p.actor, p.at); err != nil {
			return Scenario{}, fmt.Errorf("place %s: %w", p.actor.Name(), err)
		}
	}
	if err := glacier.Place(world.NewDeer(rng), entity.Point{X: 1, Y: 2}); err != nil {
		return Scenario{}, fmt.Errorf("place deer: %w", err)
	}

	drops := []itemDrop{
		{item: world.WoodBundle{}, at: entity.Point{X: 3, Y: 4}},
		{item: world.WoodBundle{}, at: entity.Point{X: 1, Y: 7}},
		{item: world.YewBerry{}, at: entity.Point{X: 5, Y: 6}},
		{item: world.AllWeatherParka{}, at: entity.Point{X: 8, Y: 7}},
		{item: world.Apple{}, at: entity.Point{X: 2, Y: 6}},
		{item: world.Hazelnut{}, at: entity.Point{X: 6, Y: 3}},
	}
	for _, d := range drops {
		loc := tundra.At(d.at)
		if loc == nil {
			return Scenario{}, fmt.Errorf("drop %s: %w", d.item.Name(), world.ErrOutOfBounds)
		}
		loc.AddItem(d.item)
	}

	return Scenario{
		Maps:   []*world.Map{tundra, glacier},
		Player: player,
		Seer:   seer,
		Drake:  boss,
	}, nil
}
