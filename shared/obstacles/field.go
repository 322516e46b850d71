// Package obstacles spawns, culls and collides the tile obstacles that scroll
// toward the player.
package obstacles

import (
	"image/color"
	"math/rand/v2"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scrollgrid"
	"github.com/solarlune/resolv"
)

const tagObstacle = "obstacle"

// TilePos is a cell in the grid's local tile space.
type TilePos struct {
	X, Y int
}

// Obstacle occupies exactly one tile.
type Obstacle struct {
	Pos   TilePos
	Color color.RGBA

	object *resolv.Object
}

// Config tunes spawning. Density is replaced by SetDensity between matches.
type Config struct {
	// WindowViewports is the cull distance in viewports on each axis.
	WindowViewports int
	Density         float64
	Palette         []color.RGBA
}

// DefaultPalette is used when Config.Palette is empty.
var DefaultPalette = []color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 230, G: 140, B: 40, A: 255},
	{R: 200, G: 60, B: 200, A: 255},
	{R: 60, G: 160, B: 230, A: 255},
}

// Field holds every live obstacle, keyed by tile so a cell is never filled
// twice. A resolv space indexes the obstacles in a window around the player
// for the collision broadphase.
type Field struct {
	grid    *scrollgrid.Grid
	window  int
	density float64
	palette []color.RGBA
	rng     *rand.Rand

	obstacles map[TilePos]*Obstacle
	summoned  *ColumnSet

	space   *resolv.Space
	probe   *resolv.Object
	origin  TilePos
	indexed bool
}

// NewField creates an empty field over grid. rng drives every random choice
// so replays with the same seed spawn the same obstacles.
func NewField(grid *scrollgrid.Grid, cfg Config, rng *rand.Rand) *Field {
	if cfg.WindowViewports < 1 {
		cfg.WindowViewports = 3
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	f := &Field{
		grid:      grid,
		window:    cfg.WindowViewports,
		density:   cfg.Density,
		palette:   cfg.Palette,
		rng:       rng,
		obstacles: make(map[TilePos]*Obstacle),
		summoned:  NewColumnSet(),
	}
	f.buildSpace()
	return f
}

func (f *Field) buildSpace() {
	w, h := f.grid.TileSize()
	tx, ty := f.windowTiles()
	f.space = resolv.NewSpace((2*tx+1)*w, (2*ty+1)*h, w, h)
	f.probe = resolv.NewObject(0, 0, 1, 1)
	f.space.Add(f.probe)
	f.indexed = false
}

// windowTiles is the cull distance in tiles on each axis.
func (f *Field) windowTiles() (int, int) {
	tx, ty := f.grid.TilesPerViewport()
	return f.window * tx, f.window * ty
}

// SetDensity changes the spawn density. Call it between matches only.
func (f *Field) SetDensity(d float64) {
	f.density = d
}

func (f *Field) Density() float64 {
	return f.density
}

// Spawn fills the column one viewport ahead of pos, once per column.
// It returns how many obstacles were created.
func (f *Field) Spawn(pos TilePos) int {
	tx, _ := f.grid.TilesPerViewport()
	aheadX := pos.X + tx
	if f.summoned.Has(aheadX) {
		return 0
	}

	_, h := f.grid.TileSize()
	maxN := int(float64(f.grid.VerticalSpan())*f.density) / h
	if maxN < 1 {
		maxN = 1
	}
	n := 1 + f.rng.IntN(maxN)

	_, wy := f.windowTiles()
	spawned := 0
	for i := 0; i < n; i++ {
		row := pos.Y - wy + f.rng.IntN(2*wy+1)
		if f.Place(TilePos{X: aheadX, Y: row}) {
			spawned++
		}
	}
	f.summoned.Insert(aheadX)
	return spawned
}

// Place adds one obstacle unless the tile is taken.
func (f *Field) Place(pos TilePos) bool {
	if _, taken := f.obstacles[pos]; taken {
		return false
	}
	w, h := f.grid.TileSize()
	o := &Obstacle{
		Pos:   pos,
		Color: f.palette[f.rng.IntN(len(f.palette))],
	}
	o.object = resolv.NewObject(0, 0, float64(w), float64(h), tagObstacle)
	o.object.SetShape(resolv.NewRectangle(0, 0, float64(w), float64(h)))
	o.object.Data = o
	f.obstacles[pos] = o
	f.space.Add(o.object)
	f.position(o)
	return true
}

// Cull removes every obstacle outside the window around pos and frees its
// column for a later spawn. It returns how many were removed.
func (f *Field) Cull(pos TilePos) int {
	wx, wy := f.windowTiles()
	removed := 0
	for p, o := range f.obstacles {
		if abs(p.X-pos.X) <= wx && abs(p.Y-pos.Y) <= wy {
			continue
		}
		f.space.Remove(o.object)
		delete(f.obstacles, p)
		f.summoned.Remove(p.X)
		removed++
	}
	f.reindex(pos)
	return removed
}

// reindex moves the broadphase window so it is centred on pos.
func (f *Field) reindex(pos TilePos) {
	wx, wy := f.windowTiles()
	origin := TilePos{X: pos.X - wx, Y: pos.Y - wy}
	if f.indexed && origin == f.origin {
		return
	}
	f.origin = origin
	f.indexed = true
	for _, o := range f.obstacles {
		f.position(o)
	}
}

func (f *Field) position(o *Obstacle) {
	w, h := f.grid.TileSize()
	o.object.X = float64((o.Pos.X - f.origin.X) * w)
	o.object.Y = float64((o.Pos.Y - f.origin.Y) * h)
	o.object.Update()
}

// Collides reports whether the square of side 2*radius around center
// overlaps any obstacle. Both are in screen pixels.
func (f *Field) Collides(center gamemath.Vec, radius float64) bool {
	px, py := f.grid.PixelToTileLocal(center)
	f.reindex(TilePos{X: px, Y: py})

	w, h := f.grid.TileSize()
	local := center.Sub(f.grid.Offset())
	f.probe.X = local.X - float64(f.origin.X*w) - radius - 1
	f.probe.Y = local.Y - float64(f.origin.Y*h) - radius - 1
	f.probe.W = 2*radius + 2
	f.probe.H = 2*radius + 2
	f.probe.Update()

	check := f.probe.Check(0, 0, tagObstacle)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tagObstacle) {
		o, ok := obj.Data.(*Obstacle)
		if !ok {
			continue
		}
		if f.overlaps(o, center, radius) {
			return true
		}
	}
	return false
}

// overlaps is the exact test. The left and top edges need strict overlap
// while the right and bottom edges count on contact.
func (f *Field) overlaps(o *Obstacle, center gamemath.Vec, radius float64) bool {
	w, h := f.grid.TileSize()
	tl := f.grid.TileToPixel(o.Pos.X, o.Pos.Y)
	if center.X+radius <= tl.X || center.X-radius > tl.X+float64(w) {
		return false
	}
	if center.Y+radius <= tl.Y || center.Y-radius > tl.Y+float64(h) {
		return false
	}
	return true
}

// Each calls fn for every obstacle in no particular order.
func (f *Field) Each(fn func(*Obstacle)) {
	for _, o := range f.obstacles {
		fn(o)
	}
}

// At returns the obstacle on a tile.
func (f *Field) At(pos TilePos) (*Obstacle, bool) {
	o, ok := f.obstacles[pos]
	return o, ok
}

func (f *Field) Len() int {
	return len(f.obstacles)
}

// Summoned returns the columns that already spawned, ascending.
func (f *Field) Summoned() []int {
	return f.summoned.Columns()
}

// Reset removes every obstacle and forgets every column.
func (f *Field) Reset() {
	f.obstacles = make(map[TilePos]*Obstacle)
	f.summoned.Clear()
	f.buildSpace()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
