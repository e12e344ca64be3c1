package viz

import (
	"strings"
)

// Braille cells are 2 dots wide and 4 tall:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// starting at U+2800.
const brailleBase = 0x2800

var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot matrix rendered with Braille characters, mapped onto a
// rectangle of world coordinates with y pointing up.
type Canvas struct {
	Cols, Rows int
	cells      [][]uint8

	minX, maxX float64
	minY, maxY float64
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, maxX: 1, maxY: 1}
	c.cells = make([][]uint8, rows)
	for i := range c.cells {
		c.cells[i] = make([]uint8, cols)
	}
	return c
}

// DotsWide and DotsHigh give the canvas size in dots.
func (c *Canvas) DotsWide() int { return c.Cols * 2 }
func (c *Canvas) DotsHigh() int { return c.Rows * 4 }

// SetBounds fixes the world rectangle shown by the canvas.
func (c *Canvas) SetBounds(minX, maxX, minY, maxY float64) {
	c.minX, c.maxX = minX, maxX
	c.minY, c.maxY = minY, maxY
}

// Project maps a world point to dot coordinates.
func (c *Canvas) Project(x, y float64) (int, int) {
	px := (x - c.minX) / (c.maxX - c.minX) * float64(c.DotsWide()-1)
	py := (c.maxY - y) / (c.maxY - c.minY) * float64(c.DotsHigh()-1)
	return int(px + 0.5), int(py + 0.5)
}

// Set lights the dot at (x, y); out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotsWide() || y >= c.DotsHigh() {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotsWide() || y >= c.DotsHigh() {
		return false
	}
	return c.cells[y/4][x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = 0
		}
	}
}

// Line draws between two dots with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// WorldLine draws between two world points.
func (c *Canvas) WorldLine(a, b Point) {
	x0, y0 := c.Project(a.X, a.Y)
	x1, y1 := c.Project(b.X, b.Y)
	c.Line(x0, y0, x1, y1)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		for _, cell := range row {
			b.WriteRune(rune(brailleBase + int(cell)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
