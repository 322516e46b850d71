package scrollgrid

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gamemath"
)

func defaultConfig() Config {
	return Config{
		TileWidth:      72,
		TileHeight:     72,
		ViewportWidth:  1280,
		ViewportHeight: 720,
		OuterMargin:    1.0,
	}
}

func TestBounds(t *testing.T) {
	g := New(defaultConfig())
	want := image.Rect(-72, -720, 2592, 1440)
	if got := g.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	tx, ty := g.TilesPerViewport()
	if tx != 18 || ty != 10 {
		t.Errorf("TilesPerViewport = %d,%d, want 18,10", tx, ty)
	}
	if len(g.Verticals()) != 37 || len(g.Horizontals()) != 30 {
		t.Errorf("lines = %d verticals, %d horizontals, want 37, 30", len(g.Verticals()), len(g.Horizontals()))
	}
	if got := g.VerticalSpan(); got != 2160 {
		t.Errorf("VerticalSpan = %d, want 2160", got)
	}
}

func assertInvariants(t *testing.T, g *Grid, step int) {
	t.Helper()
	b := g.Bounds()
	inside := func(p image.Point) bool {
		return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
	}
	tw, th := g.TileSize()

	seenX := map[int]bool{}
	for _, l := range g.Verticals() {
		if !inside(l.Start) || !inside(l.End) {
			t.Fatalf("step %d: vertical %v outside %v", step, l, b)
		}
		if gamemath.Mod(l.Start.X-b.Min.X, tw) != 0 {
			t.Fatalf("step %d: vertical off the tile lattice: %v", step, l)
		}
		if seenX[l.Start.X] {
			t.Fatalf("step %d: two verticals at x=%d", step, l.Start.X)
		}
		seenX[l.Start.X] = true
	}
	seenY := map[int]bool{}
	for _, l := range g.Horizontals() {
		if !inside(l.Start) || !inside(l.End) {
			t.Fatalf("step %d: horizontal %v outside %v", step, l, b)
		}
		if seenY[l.Start.Y] {
			t.Fatalf("step %d: two horizontals at y=%d", step, l.Start.Y)
		}
		seenY[l.Start.Y] = true
	}

	off := g.DrawOffset()
	if off.X < 0 || off.X >= float64(tw) || off.Y < 0 || off.Y >= float64(th) {
		t.Fatalf("step %d: draw offset %+v outside one tile", step, off)
	}
}

func TestRecyclingIsLossless(t *testing.T) {
	g := New(defaultConfig())
	count := g.LineCount()
	rng := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 2000; step++ {
		g.Shift(gamemath.Vec{X: -5, Y: rng.Float64()*20 - 10})
		if g.LineCount() != count {
			t.Fatalf("step %d: line count %d, want %d", step, g.LineCount(), count)
		}
		assertInvariants(t, g, step)
	}
	// 2000 steps of -5px is far more than one horizontal span.
	if g.Offset().X > -float64(g.Bounds().Dx()) {
		t.Fatalf("test did not exceed a span: offset %v", g.Offset())
	}
}

func TestShiftLargerThanSpan(t *testing.T) {
	g := New(defaultConfig())
	b := g.Bounds()
	g.Shift(gamemath.Vec{X: -float64(3*b.Dx()) - 31, Y: float64(5*b.Dy()) + 7})
	assertInvariants(t, g, 0)
	g.Shift(gamemath.Vec{X: float64(7 * b.Dx()), Y: -float64(11*b.Dy()) - 100})
	assertInvariants(t, g, 1)
}

func TestLinesFollowTheWorld(t *testing.T) {
	g := New(defaultConfig())
	g.Shift(gamemath.Vec{X: -100, Y: 30})
	off := g.DrawOffset()
	for _, l := range g.Verticals() {
		// Drawn lines sit on world tile edges: x = k*w + shift.
		drawn := float64(l.Start.X) + off.X
		rem := math.Abs(math.Mod(drawn-g.Offset().X, 72))
		if rem > 1e-6 && 72-rem > 1e-6 {
			t.Fatalf("vertical drawn at %v is %v off a tile edge", drawn, rem)
		}
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	g := New(defaultConfig())
	shifts := []gamemath.Vec{
		{},
		{X: -5, Y: 0},
		{X: -0.1, Y: 3.7},
		{X: -12345.5, Y: -987.25},
		{X: 60, Y: -0.3},
	}
	for _, s := range shifts {
		g.Shift(s)
		for _, tile := range [][2]int{{0, 0}, {3, 5}, {-7, -2}, {250, -40}} {
			p := g.TileToPixel(tile[0], tile[1])
			ix, iy := g.PixelToTileLocal(p)
			if ix != tile[0] || iy != tile[1] {
				t.Errorf("shift %+v: tile %v -> %+v -> %d,%d", g.Offset(), tile, p, ix, iy)
			}
			// Any pixel inside the tile maps back to it.
			ix, iy = g.PixelToTileLocal(p.Add(gamemath.Vec{X: 71.5, Y: 0.5}))
			if ix != tile[0] || iy != tile[1] {
				t.Errorf("shift %+v: inner pixel of %v -> %d,%d", g.Offset(), tile, ix, iy)
			}
		}
	}
}

func TestPixelToTileWorldIgnoresShift(t *testing.T) {
	g := New(defaultConfig())
	g.Shift(gamemath.Vec{X: -500, Y: 200})
	ix, iy := g.PixelToTileWorld(gamemath.Vec{X: 125, Y: 360})
	if ix != 1 || iy != 5 {
		t.Errorf("PixelToTileWorld = %d,%d, want 1,5", ix, iy)
	}
	ix, iy = g.PixelToTileWorld(gamemath.Vec{X: -1, Y: -73})
	if ix != -1 || iy != -2 {
		t.Errorf("PixelToTileWorld negative = %d,%d, want -1,-2", ix, iy)
	}
}

func TestReset(t *testing.T) {
	g := New(defaultConfig())
	fresh := append([]Line(nil), g.Verticals()...)
	g.Shift(gamemath.Vec{X: -1000, Y: 400})
	g.Reset()
	if g.Offset() != (gamemath.Vec{}) {
		t.Errorf("offset after reset = %+v", g.Offset())
	}
	for i, l := range g.Verticals() {
		if l != fresh[i] {
			t.Fatalf("vertical %d = %v, want %v", i, l, fresh[i])
		}
	}
}

func TestUnevenTiles(t *testing.T) {
	g := New(Config{TileWidth: 50, TileHeight: 40, ViewportWidth: 333, ViewportHeight: 222, OuterMargin: 0.5})
	count := g.LineCount()
	for step := 0; step < 500; step++ {
		g.Shift(gamemath.Vec{X: -13, Y: 9})
		if g.LineCount() != count {
			t.Fatalf("line count changed at step %d", step)
		}
		assertInvariants(t, g, step)
	}
}
