package advanced

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the domain, so that unclamped geometry is visible
const dbgDrawPadding = 40

// Helper to draw the field and print it in the terminal (iTerm only).
func (f *Field) dbgDraw(scale float64) {
	c := f.dbgContext(scale)
	f.draw(c)

	path := filepath.Join(os.TempDir(), "lloyd_field.png")
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}

// A black context sized to the domain, with world coordinates mapped so the
// origin is at the bottom left.
func (f *Field) dbgContext(scale float64) *gg.Context {
	size := f.domain.Size()
	width := int(scale*size.X) + dbgDrawPadding*2
	height := int(scale*size.Y) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-f.domain.XMin(), -f.domain.YMin())
	return c
}

// Draw the domain outline, each region's finite ring, then the points on top.
func (f *Field) draw(c *gg.Context) {
	c.SetLineWidth(1)
	c.DrawRectangle(f.domain.XMin(), f.domain.YMin(), f.domain.Size().X, f.domain.Size().Y)
	c.SetRGB(0.4, 0.4, 0.4)
	c.Stroke()

	for i := range f.points {
		ring := f.diagram.Ring(i)
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		if f.diagram.IsOpen(f.diagram.PointRegion[i]) {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0, 0.8, 0)
		}
		c.Stroke()
	}

	// Point radius is in pixels, not world units
	const radius = 3
	for _, p := range f.points {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, radius)
		c.Pop()
	}
	c.SetRGB(1, 0.3, 0.3)
	c.Fill()
}
