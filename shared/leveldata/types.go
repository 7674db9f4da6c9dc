// Package leveldata parses arena TMX files into plain wall and spawn data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// ShapeKind says how a wall's outline should be read.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapePolygon
)

// LevelData holds everything the arena needs from a TMX level file.
type LevelData struct {
	Walls       []Wall
	SpawnPoints []SpawnPoint
	DroneSpawns []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Wall is one piece of immovable level geometry in world coordinates.
// Rect and circle walls use X, Y, W, H (the circle is inscribed in that box);
// polygons use Points.
type Wall struct {
	Kind       ShapeKind
	X, Y, W, H float64
	Points     []Point
}

type Point struct {
	X, Y float64
}

// SpawnPoint represents a spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
