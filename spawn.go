package server

import "math/rand/v2"

// Vec3 is a world position in map units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotation carries pitch (x) and yaw (y) in radians.
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Spawn tables are hand-curated per map and verified clear of level geometry.
// Factory is a 200x200 layout; points sit in the open corridors between the
// pillar grid, the cover walls and the outer container ring.
var factorySpawnPoints = []Vec3{
	{X: 22, Y: 1.7, Z: 22},
	{X: -22, Y: 1.7, Z: 22},
	{X: 22, Y: 1.7, Z: -22},
	{X: -22, Y: 1.7, Z: -22},

	{X: 38, Y: 1.7, Z: 0},
	{X: -38, Y: 1.7, Z: 0},
	{X: 0, Y: 1.7, Z: 38},
	{X: 0, Y: 1.7, Z: -38},

	{X: 32, Y: 1.7, Z: 52},
	{X: -32, Y: 1.7, Z: 52},
	{X: 32, Y: 1.7, Z: -52},
	{X: -32, Y: 1.7, Z: -52},

	{X: 52, Y: 1.7, Z: 32},
	{X: -52, Y: 1.7, Z: 32},
	{X: 52, Y: 1.7, Z: -32},
	{X: -52, Y: 1.7, Z: -32},

	{X: 78, Y: 1.7, Z: 52},
	{X: -78, Y: 1.7, Z: 52},
	{X: 78, Y: 1.7, Z: -52},
	{X: -78, Y: 1.7, Z: -52},
}

// Hotel is an 80x80 layout: lobby, the two side corridors and the central one.
var hotelSpawnPoints = []Vec3{
	{X: 0, Y: 1.7, Z: -20},
	{X: -10, Y: 1.7, Z: 0},
	{X: 10, Y: 1.7, Z: 0},
	{X: 0, Y: 1.7, Z: 10},
	{X: 0, Y: 1.7, Z: 20},
	{X: -10, Y: 1.7, Z: -10},
	{X: 10, Y: 1.7, Z: -10},
	{X: -10, Y: 1.7, Z: 10},
	{X: 10, Y: 1.7, Z: 10},
}

var spawnTables = map[string][]Vec3{
	"factory": factorySpawnPoints,
	"hotel":   hotelSpawnPoints,
}

const fallbackSpawnMap = "factory"

// SpawnSelector maps a map name and a running counter onto a safe spawn
// position. A selector applies exactly one policy; rooms capture it at
// creation so the two policies are never mixed within one room's lifetime.
type SpawnSelector struct {
	policy    SpawnPolicy
	randIndex func(n int) int
}

// NewSpawnSelector builds a selector for the given policy.
func NewSpawnSelector(policy SpawnPolicy) *SpawnSelector {
	return &SpawnSelector{policy: policy, randIndex: rand.IntN}
}

// Select returns a spawn point for the map. Unknown maps fall back to the
// factory table. The returned value is a copy; the tables are never handed
// out by reference.
func (s *SpawnSelector) Select(mapName string, counter uint64) Vec3 {
	points, ok := spawnTables[mapName]
	if !ok || len(points) == 0 {
		points = spawnTables[fallbackSpawnMap]
	}
	var idx int
	switch s.policy {
	case SpawnPolicyRandom:
		idx = s.randIndex(len(points))
	default:
		idx = int(counter % uint64(len(points)))
	}
	return points[idx]
}

// SpawnPointCount reports the size of a map's table, falling back the same
// way Select does.
func SpawnPointCount(mapName string) int {
	points, ok := spawnTables[mapName]
	if !ok {
		points = spawnTables[fallbackSpawnMap]
	}
	return len(points)
}
