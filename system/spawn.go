package system

import (
	"github.com/milk9111/reaperrun/obj"
)

func (w *World) spawnEnemies() ([]*obj.Enemy, error) {
	enemies := make([]*obj.Enemy, 0, len(w.Spec.Spawns))
	for _, spawn := range w.Spec.Spawns {
		e, err := w.newEnemy(spawn.Kind, spawn.X, w.Spec.SpawnY(spawn))
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
	return enemies, nil
}

func (w *World) newEnemy(kind string, x, y float64) (*obj.Enemy, error) {
	cfg, err := w.Spec.EnemyConfig(kind)
	if err != nil {
		return nil, err
	}
	return obj.NewEnemy(cfg, x, y, w), nil
}

// AddEnemy places an extra enemy of the named kind at screen position (x, y).
func (w *World) AddEnemy(kind string, x, y float64) (*obj.Enemy, error) {
	e, err := w.newEnemy(kind, x, y)
	if err != nil {
		return nil, err
	}
	w.enemies = append(w.enemies, e)
	return e, nil
}

func (w *World) spawnCrystals() []*obj.Crystal {
	cfg := w.Spec.CrystalConfig()
	crystals := make([]*obj.Crystal, 0, len(w.Spec.Crystals.Positions))
	for _, pos := range w.Spec.Crystals.Positions {
		crystals = append(crystals, obj.NewCrystal(cfg, pos.X, pos.Y, w))
	}
	return crystals
}

// AddCrystal places an extra crystal at screen position (x, y).
func (w *World) AddCrystal(x, y float64) *obj.Crystal {
	c := obj.NewCrystal(w.Spec.CrystalConfig(), x, y, w)
	w.crystals = append(w.crystals, c)
	return c
}

func (w *World) spawnBackgrounds() []obj.BackgroundRow {
	width, height := float64(w.Spec.Viewport.Width), float64(w.Spec.Viewport.Height)
	rows := make([]obj.BackgroundRow, 0, len(w.Spec.Backgrounds))
	for _, bg := range w.Spec.Backgrounds {
		rows = append(rows, obj.NewBackgroundRow(bg.Image, bg.Divider, width, height))
	}
	return rows
}
