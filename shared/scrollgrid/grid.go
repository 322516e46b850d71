// Package scrollgrid maintains the background grid of an endlessly
// scrolling world. A fixed set of lines is recycled toroidally: a line that
// scrolls out of the bounding box reappears at the opposite edge.
package scrollgrid

import (
	"image"
	"math"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
)

// Line is a grid line in recycled-frame pixel coordinates.
type Line struct {
	Start, End image.Point
}

// Config sizes the grid.
type Config struct {
	TileWidth, TileHeight         int
	ViewportWidth, ViewportHeight int
	// OuterMargin is how many viewport heights the box extends past the
	// screen on each vertical side, and past the right edge horizontally.
	OuterMargin float64
}

// Grid owns the recycled lines, the accumulated world shift and the
// tile/pixel conversions that depend on it.
type Grid struct {
	cfg Config

	lineWidth, lineHeight  int
	minX, maxX, minY, maxY int
	spanX, spanY           int

	verticals   []Line
	horizontals []Line

	shift gamemath.Vec
	// Whole-tile part of shift already applied to the lines.
	quantX, quantY int
}

// New builds the grid with zero shift.
func New(cfg Config) *Grid {
	if cfg.TileWidth < 1 {
		cfg.TileWidth = 1
	}
	if cfg.TileHeight < 1 {
		cfg.TileHeight = 1
	}
	g := &Grid{cfg: cfg}

	g.lineWidth = gamemath.CeilMultiple(cfg.ViewportWidth, cfg.TileWidth)
	g.lineHeight = gamemath.CeilMultiple(cfg.ViewportHeight, cfg.TileHeight)

	g.minX = -cfg.TileWidth
	g.maxX = int(math.Ceil(float64(g.lineWidth) * (1 + cfg.OuterMargin)))
	g.minY = int(math.Floor(-float64(g.lineHeight) * cfg.OuterMargin))
	g.maxY = int(math.Ceil(float64(g.lineHeight) * (1 + cfg.OuterMargin)))

	cols := gamemath.FloorDivInt(g.maxX-g.minX+cfg.TileWidth-1, cfg.TileWidth)
	rows := gamemath.FloorDivInt(g.maxY-g.minY+cfg.TileHeight-1, cfg.TileHeight)
	g.spanX = cols * cfg.TileWidth
	g.spanY = rows * cfg.TileHeight

	g.build(cols, rows)
	return g
}

func (g *Grid) build(cols, rows int) {
	g.verticals = make([]Line, cols)
	for i := range g.verticals {
		x := g.minX + i*g.cfg.TileWidth
		g.verticals[i] = Line{Start: image.Pt(x, g.minY), End: image.Pt(x, g.maxY)}
	}
	g.horizontals = make([]Line, rows)
	for i := range g.horizontals {
		y := g.minY + i*g.cfg.TileHeight
		g.horizontals[i] = Line{Start: image.Pt(g.minX, y), End: image.Pt(g.maxX, y)}
	}
}

// Shift moves the world by delta pixels and recycles every line that left
// the bounding box. Jumps larger than the box are handled in one call.
func (g *Grid) Shift(delta gamemath.Vec) {
	g.shift = g.shift.Add(delta)

	qx := gamemath.FloorDiv(g.shift.X, float64(g.cfg.TileWidth)) * g.cfg.TileWidth
	qy := gamemath.FloorDiv(g.shift.Y, float64(g.cfg.TileHeight)) * g.cfg.TileHeight
	dx, dy := qx-g.quantX, qy-g.quantY
	g.quantX, g.quantY = qx, qy

	if dx != 0 {
		for i := range g.verticals {
			x := g.wrap(g.verticals[i].Start.X+dx, g.minX, g.spanX)
			g.verticals[i].Start.X = x
			g.verticals[i].End.X = x
		}
	}
	if dy != 0 {
		for i := range g.horizontals {
			y := g.wrap(g.horizontals[i].Start.Y+dy, g.minY, g.spanY)
			g.horizontals[i].Start.Y = y
			g.horizontals[i].End.Y = y
		}
	}
}

// wrap relocates v by whole spans until it lies in [lo, lo+span).
func (g *Grid) wrap(v, lo, span int) int {
	return lo + gamemath.Mod(v-lo, span)
}

// Offset is the accumulated world shift in pixels.
func (g *Grid) Offset() gamemath.Vec {
	return g.shift
}

// DrawOffset is the sub-tile remainder of the shift. Renderers add it to every
// line so the grid slides smoothly between recycling steps.
func (g *Grid) DrawOffset() gamemath.Vec {
	return gamemath.Vec{
		X: g.shift.X - float64(g.quantX),
		Y: g.shift.Y - float64(g.quantY),
	}
}

func (g *Grid) Verticals() []Line {
	return g.verticals
}

func (g *Grid) Horizontals() []Line {
	return g.horizontals
}

// LineCount is constant for the life of the grid.
func (g *Grid) LineCount() int {
	return len(g.verticals) + len(g.horizontals)
}

// Bounds is the box every line stays inside.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(g.minX, g.minY, g.maxX, g.maxY)
}

// TileSize returns the tile width and height in pixels.
func (g *Grid) TileSize() (int, int) {
	return g.cfg.TileWidth, g.cfg.TileHeight
}

// TilesPerViewport is how many tiles cover the screen on each axis.
func (g *Grid) TilesPerViewport() (int, int) {
	return g.lineWidth / g.cfg.TileWidth, g.lineHeight / g.cfg.TileHeight
}

// VerticalSpan is maxY-minY of the bounding box.
func (g *Grid) VerticalSpan() int {
	return g.maxY - g.minY
}

// TileToPixel returns the on-screen top-left corner of a local tile.
func (g *Grid) TileToPixel(ix, iy int) gamemath.Vec {
	return gamemath.Vec{
		X: float64(ix*g.cfg.TileWidth) + g.shift.X,
		Y: float64(iy*g.cfg.TileHeight) + g.shift.Y,
	}
}

// PixelToTileLocal returns the local tile under a screen pixel, accounting for
// the shift. It inverts TileToPixel.
func (g *Grid) PixelToTileLocal(p gamemath.Vec) (int, int) {
	return gamemath.FloorDiv(p.X-g.shift.X, float64(g.cfg.TileWidth)),
		gamemath.FloorDiv(p.Y-g.shift.Y, float64(g.cfg.TileHeight))
}

// PixelToTileWorld returns the tile under an absolute pixel, ignoring the
// shift.
func (g *Grid) PixelToTileWorld(p gamemath.Vec) (int, int) {
	return gamemath.FloorDiv(p.X, float64(g.cfg.TileWidth)),
		gamemath.FloorDiv(p.Y, float64(g.cfg.TileHeight))
}

// Reset zeroes the shift and rebuilds the lines.
func (g *Grid) Reset() {
	g.shift = gamemath.Vec{}
	g.quantX, g.quantY = 0, 0
	g.build(len(g.verticals), len(g.horizontals))
}
