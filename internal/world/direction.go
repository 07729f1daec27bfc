package world

type Direction struct {
	Name  string
	Short string
	DX    int
	DY    int
}

// Directions are ordered clockwise from north.
var Directions = []Direction{
	{Name: "north", Short: "n", DX: 0, DY: -1},
	{Name: "north-east", Short: "ne", DX: 1, DY: -1},
	{Name: "east", Short: "e", DX: 1, DY: 0},
	{Name: "south-east", Short: "se", DX: 1, DY: 1},
	{Name: "south", Short: "s", DX: 0, DY: 1},
	{Name: "south-west", Short: "sw", DX: -1, DY: 1},
	{Name: "west", Short: "w", DX: -1, DY: 0},
	{Name: "north-west", Short: "nw", DX: -1, DY: -1},
}

// ParseDirection accepts a name in any spelling ("North-East", "north east") or its short form.
func ParseDirection(s string) (Direction, bool) {
	s = FoldName(s)
	for _, d := range Directions {
		if s == d.Short || s == FoldName(d.Name) {
			return d, true
		}
	}
	return Direction{}, false
}
