package life

//Template is a named seeding pattern for settling the grid with predefined
//data
type Template struct {
	Name   string  //template name
	Descr  string  //template description
	Coords []Coord //the live cells the template places
}

//BuiltinTemplates returns the standard patterns every simulator registers
//at construction, placed one row and column off the grid origin
func BuiltinTemplates() []Template {
	return []Template{
		{
			Name:   "block",
			Descr:  "2x2 still life",
			Coords: []Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		},
		{
			Name:   "blinker",
			Descr:  "period-2 oscillator",
			Coords: []Coord{{2, 1}, {2, 2}, {2, 3}},
		},
		{
			Name:   "toad",
			Descr:  "period-2 oscillator",
			Coords: []Coord{{2, 2}, {2, 3}, {2, 4}, {3, 1}, {3, 2}, {3, 3}},
		},
		{
			Name:   "beacon",
			Descr:  "period-2 oscillator",
			Coords: []Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {3, 4}, {4, 3}, {4, 4}},
		},
		{
			Name:   "glider",
			Descr:  "spaceship, moves one cell down-right every 4 generations",
			Coords: []Coord{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}},
		},
		{
			Name:   "pulsar",
			Descr:  "period-3 oscillator, needs at least a 15x15 grid",
			Coords: pulsarCoords(),
		},
	}
}

//TemplateNames lists the built-in template names
func TemplateNames() []string {
	templates := BuiltinTemplates()
	names := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		names = append(names, tmpl.Name)
	}
	return names
}

//pulsarCoords builds the 48 cells of the pulsar
//the pattern is four 3-cell spans on each edge row and four edge columns
//crossing each 3-row span
func pulsarCoords() []Coord {
	spans := []int{2, 3, 4, 8, 9, 10}
	edges := []int{0, 5, 7, 12}
	coords := make([]Coord, 0, 48)
	for _, row := range edges {
		for _, col := range spans {
			coords = append(coords, Coord{Row: row + 1, Col: col + 1})
		}
	}
	for _, row := range spans {
		for _, col := range edges {
			coords = append(coords, Coord{Row: row + 1, Col: col + 1})
		}
	}
	return coords
}
