package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/appengine-ltd/stormfront/internal/dialogue"
	"github.com/appengine-ltd/stormfront/internal/forecast"
	"github.com/appengine-ltd/stormfront/internal/npc"
	"github.com/appengine-ltd/stormfront/internal/parser"
	"github.com/appengine-ltd/stormfront/internal/random"
	"github.com/appengine-ltd/stormfront/internal/status"
	"github.com/appengine-ltd/stormfront/internal/weather"
	"github.com/appengine-ltd/stormfront/internal/world"
)

// Run is one game: the world, the explorer and the weather over it.
type Run struct {
	Config   RunConfig
	Scenario Scenario
	Turn     int

	rng        random.Source
	logger     *log.Logger
	weather    *weather.Controller
	weatherOpt []weather.Option
	forecast   forecast.Service
	dialogue   dialogue.Service
	parser     *parser.Parser
	lastEntity string
}

type Option func(*Run)

func WithLogger(l *log.Logger) Option {
	return func(r *Run) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithForecast polls svc every turn and installs its reading as external weather.
func WithForecast(svc forecast.Service) Option {
	return func(r *Run) { r.forecast = svc }
}

func WithDialogue(svc dialogue.Service) Option {
	return func(r *Run) { r.dialogue = svc }
}

// WithRandom replaces the seeded generator, mainly for scripted tests.
func WithRandom(src random.Source) Option {
	return func(r *Run) {
		if src != nil {
			r.rng = src
		}
	}
}

// WithStartingWeather fixes the opening weather and how long it lasts.
func WithStartingWeather(e weather.Effect, turns int) Option {
	return func(r *Run) { r.weatherOpt = append(r.weatherOpt, weather.WithStart(e, turns)) }
}

func NewRun(config RunConfig, opts ...Option) (*Run, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.MaxWaitTurns == 0 {
		config.MaxWaitTurns = DefaultMaxWaitTurns
	}

	r := &Run{
		Config:   config,
		logger:   log.New(io.Discard, "", 0),
		dialogue: dialogue.Canned{},
		parser:   parser.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = random.Seeded(config.Seed)
	}
	r.weather = weather.NewController(r.rng, append([]weather.Option{weather.WithLogger(r.logger)}, r.weatherOpt...)...)

	seer := npc.NewStormSeer(r.dialogue, r.weather)
	scenario, err := BuildScenario(config, r.rng, seer)
	if err != nil {
		return nil, err
	}
	r.Scenario = scenario
	r.logger.Printf("game: new run seed=%d weather=%s", config.Seed, r.weather.Current().ID())
	return r, nil
}

func (r *Run) Player() *world.Player { return r.Scenario.Player }
func (r *Run) Weather() *weather.Controller { return r.weather }
func (r *Run) Maps() []*world.Map { return r.Scenario.Maps }

// Over reports whether the explorer has passed out.
func (r *Run) Over() bool { return !r.Player().Conscious() }

// Home is the map the explorer stands on.
func (r *Run) Home() *world.Map {
	for _, m := range r.Scenario.Maps {
		if _, ok := m.LocationOf(r.Player()); ok {
			return m
		}
	}
	return nil
}

// AdvanceTurn plays one world turn: the explorer acts, the forecast is polled,
// the weather ticks and sweeps every map, grounds burn and warm, statuses tick
// in raster order, the other agents act, the fallen are cleared and finally
// the explorer metabolises. It returns the turn's messages in order.
func (r *Run) AdvanceTurn(ctx context.Context, action world.Action) []string {
	if r.Over() {
		return []string{"The run is over."}
	}
	r.Turn++
	player := r.Player()
	home := r.Home()
	var msgs []string
	say := func(format string, args ...any) { msgs = append(msgs, fmt.Sprintf(format, args...)) }

	switch {
	case player.Sleeping():
		say("%s sleeps.", player.Name())
	case action == nil:
		msgs = append(msgs, world.DoNothing{}.Execute(ctx, player, home))
	default:
		if msg := action.Execute(ctx, player, home); msg != "" {
			msgs = append(msgs, msg)
		}
	}

	before := r.weather.Current()
	if r.forecast != nil {
		if w := r.forecast.CurrentWeather(ctx); w != nil {
			r.weather.SetExternalWeather(w, r.Scenario.Maps...)
		}
	}
	r.weather.Tick(r.Scenario.Maps...)
	if now := r.weather.Current(); before == nil || now.ID() != before.ID() {
		say("The weather turns: %s.", now.DisplayName())
	}

	for _, m := range r.Scenario.Maps {
		m.Each(func(loc *world.Location) {
			if t, ok := loc.Ground().(world.Ticker); ok {
				t.Tick(loc)
			}
		})
	}

	for _, m := range r.Scenario.Maps {
		m.Each(func(loc *world.Location) {
			if host, ok := loc.Actor().(status.Host); ok {
				status.TickAll(host, loc.Point())
			}
		})
	}

	for _, m := range r.Scenario.Maps {
		for _, a := range m.Actors() {
			agent, ok := a.(world.Agent)
			if !ok || !agent.Conscious() {
				continue
			}
			if _, still := m.LocationOf(agent); !still {
				continue
			}
			act := agent.PlayTurn(m)
			if act == nil {
				continue
			}
			msg := act.Execute(ctx, agent, m)
			switch act.(type) {
			case world.DoNothing, *world.MoveAction:
				continue
			}
			if msg != "" {
				msgs = append(msgs, msg)
			}
		}
	}

	for _, m := range r.Scenario.Maps {
		for _, a := range m.Actors() {
			if a == world.Actor(player) || a.Conscious() {
				continue
			}
			m.Remove(a)
			if m == home {
				say("%s falls.", a.Name())
			}
			r.logger.Printf("game: turn %d removed %s from %s", r.Turn, a.Name(), m.Name())
		}
	}

	if player.Conscious() {
		player.Metabolise()
	}
	if !player.Conscious() {
		say("%s collapses in the snow. The run is over after %d turns.", player.Name(), r.Turn)
	}
	return msgs
}
