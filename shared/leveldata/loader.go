package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupWalls       = "Walls"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupDroneSpawn  = "DroneSpawn"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				wall, err := parseWall(o)
				if err != nil {
					return nil, fmt.Errorf("%s: wall %d: %w", tmxPath, o.ID, err)
				}
				data.Walls = append(data.Walls, wall)
			}
		case GroupPlayerSpawn:
			data.SpawnPoints = append(data.SpawnPoints, parseSpawns(og.Objects)...)
		case GroupDroneSpawn:
			data.DroneSpawns = append(data.DroneSpawns, parseSpawns(og.Objects)...)
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: no %s objects", tmxPath, GroupPlayerSpawn)
	}

	return data, nil
}

// parseWall reads a rectangle, a polygon, or a rectangle whose "shape"
// property is "circle".
func parseWall(o *tiled.Object) (Wall, error) {
	if len(o.Polygons) > 0 {
		poly := o.Polygons[0]
		if poly.Points == nil || len(*poly.Points) < 3 {
			return Wall{}, fmt.Errorf("polygon needs at least 3 points")
		}
		points := make([]Point, len(*poly.Points))
		for i, point := range *poly.Points {
			points[i] = Point{X: o.X + point.X, Y: o.Y + point.Y}
		}
		return Wall{Kind: ShapePolygon, Points: points}, nil
	}

	if o.Width <= 0 || o.Height <= 0 {
		return Wall{}, fmt.Errorf("zero-sized object %gx%g", o.Width, o.Height)
	}
	kind := ShapeRect
	if o.Properties.GetString("shape") == "circle" {
		kind = ShapeCircle
	}
	return Wall{Kind: kind, X: o.X, Y: o.Y, W: o.Width, H: o.Height}, nil
}

func parseSpawns(objects []*tiled.Object) []SpawnPoint {
	spawns := make([]SpawnPoint, 0, len(objects))
	for _, o := range objects {
		spawns = append(spawns, SpawnPoint{
			X:     o.X,
			Y:     o.Y,
			Index: o.Properties.GetInt("spawnIndex"),
		})
	}
	// Sort by index, then left-to-right for consistent assignment
	sort.Slice(spawns, func(i, j int) bool {
		if spawns[i].Index != spawns[j].Index {
			return spawns[i].Index < spawns[j].Index
		}
		return spawns[i].X < spawns[j].X
	})
	return spawns
}
