package grid

// Spawn is the pose a viewer starts a level with.
type Spawn struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// DefaultSpawn is the spawn used by every built-in level.
var DefaultSpawn = Spawn{X: 1.5, Y: 1.5, Heading: 0}

// Level is a named map plus its spawn pose.
type Level struct {
	Name  string
	Map   *Map
	Spawn Spawn
}

var builtinLevels = []struct {
	name string
	rows []string
}{
	{
		name: "Brick Halls",
		rows: []string{
			"1111111111111111",
			"1000000000000001",
			"1022000000002201",
			"1020000330000201",
			"1000000330000001",
			"1000040000400001",
			"1000040000400001",
			"1000000000000001",
			"1006600000066001",
			"1006600000066001",
			"1000000000000001",
			"1000000000000051",
			"1111111111111111",
		},
	},
	{
		name: "Stone Keep",
		rows: []string{
			"2222222222222222",
			"2000000000000002",
			"2011100000011102",
			"2010000000000102",
			"2010003333000102",
			"2000003663000002",
			"2000003663000002",
			"2010003333000102",
			"2010000000000102",
			"2011100000011102",
			"2000000000000002",
			"2500000000000002",
			"2222222222222222",
		},
	},
	{
		name: "Metal Pillars",
		rows: []string{
			"4444444444444444",
			"4000000000000004",
			"4030303030303034",
			"4000000000000004",
			"4020202620202024",
			"4000000600000004",
			"4010101610101014",
			"4000000600000004",
			"4020202620202024",
			"4000000000000004",
			"4030303030303034",
			"4000000000000054",
			"4444444444444444",
		},
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(builtinLevels)
}

// BuiltinLevel returns built-in level n. Out of range indices fall back to
// the first level.
func BuiltinLevel(n int) Level {
	if n < 0 || n >= len(builtinLevels) {
		n = 0
	}
	def := builtinLevels[n]
	return Level{
		Name:  def.name,
		Map:   MustParse(def.rows),
		Spawn: DefaultSpawn,
	}
}
