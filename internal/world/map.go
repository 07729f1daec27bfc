// Package world is the minimal tile world the effect engine runs against:
// maps, grounds, actors, items and the actions they take.
package world

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/stormfront/internal/entity"
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("location occupied")
	ErrBlocked     = errors.New("location blocked")
	ErrNotOnMap    = errors.New("actor not on map")
)

type Map struct {
	name   string
	width  int
	height int
	tiles  []*Location
	actors map[Actor]entity.Point
}

// NewMap builds a width x height map, asking fill for every tile's ground.
// A nil fill, or a nil ground, means Dirt.
func NewMap(name string, width, height int, fill func(entity.Point) Ground) *Map {
	width = max(1, width)
	height = max(1, height)
	m := &Map{
		name:   name,
		width:  width,
		height: height,
		tiles:  make([]*Location, 0, width*height),
		actors: make(map[Actor]entity.Point),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := entity.Point{X: x, Y: y}
			var g Ground
			if fill != nil {
				g = fill(p)
			}
			if g == nil {
				g = Dirt{}
			}
			m.tiles = append(m.tiles, &Location{m: m, pos: p, ground: g})
		}
	}
	return m
}

// FromRows builds a map from equal-length rows of ground glyphs.
func FromRows(name string, rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %q: no rows", name)
	}
	width := len([]rune(rows[0]))
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return nil, fmt.Errorf("map %q: row %d has width %d, want %d", name, y, len(r), width)
		}
		for x, c := range r {
			if _, ok := groundForGlyph(c); !ok {
				return nil, fmt.Errorf("map %q: unknown ground %q at %d,%d", name, c, x, y)
			}
		}
		grid[y] = r
	}
	return NewMap(name, width, len(rows), func(p entity.Point) Ground {
		g, _ := groundForGlyph(grid[p.Y][p.X])
		return g
	}), nil
}

func (m *Map) Name() string { return m.name }
func (m *Map) Width() int { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) Contains(p entity.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// At returns the location at p, or nil when p is off the map.
func (m *Map) At(p entity.Point) *Location {
	if !m.Contains(p) {
		return nil
	}
	return m.tiles[p.Y*m.width+p.X]
}

// Each visits every location row by row: all x for y=0, then y=1, and so on.
func (m *Map) Each(fn func(loc *Location)) {
	for _, loc := range m.tiles {
		fn(loc)
	}
}

// Place puts an actor on the map. The target tile must be free and passable.
func (m *Map) Place(a Actor, p entity.Point) error {
	loc := m.At(p)
	if loc == nil {
		return fmt.Errorf("place %s at %d,%d: %w", a.Name(), p.X, p.Y, ErrOutOfBounds)
	}
	if loc.actor != nil {
		return fmt.Errorf("place %s at %d,%d: %w", a.Name(), p.X, p.Y, ErrOccupied)
	}
	if !loc.ground.Passable() {
		return fmt.Errorf("place %s at %d,%d: %w", a.Name(), p.X, p.Y, ErrBlocked)
	}
	if old, ok := m.actors[a]; ok {
		m.At(old).actor = nil
	}
	loc.actor = a
	m.actors[a] = p
	return nil
}

// Move relocates an actor already on the map.
func (m *Map) Move(a Actor, to entity.Point) error {
	if _, ok := m.actors[a]; !ok {
		return fmt.Errorf("move %s: %w", a.Name(), ErrNotOnMap)
	}
	return m.Place(a, to)
}

func (m *Map) Remove(a Actor) {
	p, ok := m.actors[a]
	if !ok {
		return
	}
	m.At(p).actor = nil
	delete(m.actors, a)
}

func (m *Map) LocationOf(a Actor) (*Location, bool) {
	p, ok := m.actors[a]
	if !ok {
		return nil, false
	}
	return m.At(p), true
}

// Actors lists every actor in row-major tile order.
func (m *Map) Actors() []Actor {
	out := make([]Actor, 0, len(m.actors))
	m.Each(func(loc *Location) {
		if loc.actor != nil {
			out = append(out, loc.actor)
		}
	})
	return out
}

// Exits returns the in-bounds neighbours of p, clockwise from north.
func (m *Map) Exits(p entity.Point) []Exit {
	out := make([]Exit, 0, len(Directions))
	for _, d := range Directions {
		if loc := m.At(p.Add(d.DX, d.DY)); loc != nil {
			out = append(out, Exit{Direction: d, Destination: loc})
		}
	}
	return out
}

type Location struct {
	m      *Map
	pos    entity.Point
	ground Ground
	actor  Actor
	items  []Item
}

func (l *Location) Map() *Map { return l.m }
func (l *Location) Point() entity.Point { return l.pos }
func (l *Location) Ground() Ground { return l.ground }
func (l *Location) Actor() Actor { return l.actor }
func (l *Location) HasActor() bool { return l.actor != nil }

func (l *Location) SetGround(g Ground) {
	if g == nil {
		g = Dirt{}
	}
	l.ground = g
}

func (l *Location) Items() []Item {
	return append([]Item(nil), l.items...)
}

func (l *Location) AddItem(it Item) {
	if it != nil {
		l.items = append(l.items, it)
	}
}

// TakeItem removes and returns the first item matching name, ignoring case and punctuation.
func (l *Location) TakeItem(name string) (Item, bool) {
	for i, it := range l.items {
		if SameName(it.Name(), name) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return it, true
		}
	}
	return nil, false
}

// CanEnter reports whether a could step onto this tile now.
func (l *Location) CanEnter(a Actor) bool {
	return l.actor == nil && l.ground.Passable()
}

func (l *Location) Exits() []Exit {
	return l.m.Exits(l.pos)
}

type Exit struct {
	Direction   Direction
	Destination *Location
}
