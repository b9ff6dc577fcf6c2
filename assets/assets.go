package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/piratecave/player"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrBadHazardKind is returned for slash zones whose kind is not a melee kind.
var ErrBadHazardKind = errors.New("unknown slash zone kind")

// Rect is an axis-aligned rectangle in level pixels, y-down.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X float64
	Y float64 // feet rest on this line
}

// HazardSpawn is a slash zone. Zero frame counts mean "use the config default".
type HazardSpawn struct {
	Rect
	Kind         player.HazardKind
	CycleFrames  int
	ActiveFrames int
}

// EmitterSpawn fires projectiles horizontally along Direction.
type EmitterSpawn struct {
	X, Y      float64
	Direction float64
	Interval  float64 // seconds, 0 means the config default
}

type Level struct {
	Ground       []Rect // tagged ground + solid
	PlayerSpawns []PlayerSpawn
	Hazards      []HazardSpawn
	Emitters     []EmitterSpawn
	Name         string
	Width        int
	Height       int
	TileWidth    int
	TileHeight   int
}

// LoadLevel parses an embedded TMX file from the levels directory.
func LoadLevel(name string) (*Level, error) {
	return LoadLevelFS(assetFS, path.Join("levels", name))
}

// LoadLevelFS parses a TMX file's object layers into a Level. It takes an
// fs.FS so tests and tools can pass os.DirFS or fstest.MapFS.
func LoadLevelFS(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       tmxPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case "Hazards":
			for _, o := range og.Objects {
				kindName := o.Properties.GetString("kind")
				kind := player.ParseHazardKind(kindName)
				if kind == player.HazardNone || kind == player.HazardProjectile {
					return nil, fmt.Errorf("hazard %d in %s: %w: %q", o.ID, tmxPath, ErrBadHazardKind, kindName)
				}
				level.Hazards = append(level.Hazards, HazardSpawn{
					Rect:         Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Kind:         kind,
					CycleFrames:  o.Properties.GetInt("cycleFrames"),
					ActiveFrames: o.Properties.GetInt("activeFrames"),
				})
			}
		case "Emitters":
			for _, o := range og.Objects {
				direction := 1.0
				if o.Properties.GetString("direction") == "left" {
					direction = -1
				}
				level.Emitters = append(level.Emitters, EmitterSpawn{
					X:         o.X,
					Y:         o.Y,
					Direction: direction,
					Interval:  o.Properties.GetFloat("interval"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", tmxPath)
	}

	return level, nil
}
