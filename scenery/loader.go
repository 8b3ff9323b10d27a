package scenery

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed maps/*.tmx
var mapsFS embed.FS

const (
	Diagram = "diagram"
	Range   = "range"
)

// LoadStage parses a TMX file into a Stage. It takes an fs.FS so tests can
// pass an fstest.MapFS.
func LoadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(stageMap.Width * stageMap.TileWidth),
		Height: float64(stageMap.Height * stageMap.TileHeight),
	}

	for _, og := range stageMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case "Ground":
				stage.Ground = append(stage.Ground, r)
			case "Trees":
				stage.Trees = append(stage.Trees, r)
			case "Stations":
				stage.Stations = append(stage.Stations, Station{
					Rect:   r,
					Number: o.Properties.GetInt("number"),
				})
			case "Traphouse", "Legend":
				stage.Labels = append(stage.Labels, Label{
					Rect: r,
					Name: o.Name,
					Text: o.Properties.GetString("label"),
				})
			}
		}
	}

	sort.Slice(stage.Stations, func(i, j int) bool {
		return stage.Stations[i].Number < stage.Stations[j].Number
	})
	sort.Slice(stage.Trees, func(i, j int) bool {
		return stage.Trees[i].X < stage.Trees[j].X
	})

	return stage, nil
}

// LoadAll loads every .tmx file in dir within fsys, keyed by stem name.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	for _, path := range matches {
		stage, err := LoadStage(fsys, path)
		if err != nil {
			return nil, err
		}
		stages[stage.Name] = stage
	}
	return stages, nil
}

// MustLoadBuiltin loads the embedded backdrops and panics on failure.
func MustLoadBuiltin() map[string]*Stage {
	stages, err := LoadAll(mapsFS, "maps")
	if err != nil {
		panic(err)
	}
	return stages
}
