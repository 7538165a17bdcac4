// Package draw renders coloured blocks to an ANSI terminal.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Color is a canvas palette entry. ColorNone is an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorGray
	ColorWhite
)

// ansi returns the 256-colour code for the palette entry.
func (c Color) ansi() int {
	switch c {
	case ColorRed:
		return 196
	case ColorGreen:
		return 46
	case ColorBlue:
		return 33
	case ColorGray:
		return 240
	case ColorWhite:
		return 15
	default:
		return 0
	}
}

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Canvas is a colour pixel buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates that are
// scaled to the terminal. Render only emits cells that changed since the
// previous render.
type Canvas struct {
	termWidth      int     // Terminal columns used
	termHeight     int     // Terminal rows used
	subPixelHeight int     // termHeight * 2
	pixels         []Color // [y * termWidth + x]
	prev           []Color // Pixels as of the last Render
	dirty          bool    // Next Render repaints every cell

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal columns/rows to skip when centring.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that maps logicalWidth x logicalHeight
// onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the terminal dimensions, keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.prev = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.dirty = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based terminal offset of the canvas origin.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.dirty = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centring.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centring.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared underneath the canvas.
func (c *Canvas) ForceRedraw() {
	c.dirty = true
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel in terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the pixel at terminal sub-pixel coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a logical rectangle. Every rectangle covers at least one
// pixel so small cells stay visible on small terminals.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Floor((x + w) * c.scaleX))
	y1 := int(math.Floor((y + h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// StrokeRect draws the outline of a logical rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1

	for px := x0; px <= x1; px++ {
		c.setPixel(px, y0, col)
		c.setPixel(px, y1, col)
	}
	for py := y0; py <= y1; py++ {
		c.setPixel(x0, py, col)
		c.setPixel(x1, py, col)
	}
}

// Render writes changed cells to w using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if !c.dirty && top == c.prev[topOffset+col] && bottom == c.prev[bottomOffset+col] {
				continue
			}
			c.writeCell(row, col, top, bottom)
		}
	}

	copy(c.prev, c.pixels)
	c.dirty = false
	io.WriteString(w, c.renderBuf.String())
}

// writeCell emits one terminal cell holding two vertical sub-pixels.
func (c *Canvas) writeCell(row, col int, top, bottom Color) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	b.WriteByte('H')

	var ch rune
	switch {
	case top == ColorNone && bottom == ColorNone:
		b.WriteRune(BlockEmpty)
		return
	case top == bottom:
		c.writeColor(38, top)
		ch = BlockFull
	case bottom == ColorNone:
		c.writeColor(38, top)
		ch = BlockUpperHalf
	case top == ColorNone:
		c.writeColor(38, bottom)
		ch = BlockLowerHalf
	default:
		c.writeColor(38, top)
		c.writeColor(48, bottom)
		ch = BlockUpperHalf
	}
	b.WriteRune(ch)
	b.WriteString(seqResetGraphics)
}

// writeColor emits an SGR 256-colour sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col Color) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	b.WriteString(";5;")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.ansi()), 10))
	b.WriteByte('m')
}

// RenderBorder draws a box around the canvas when the terminal is larger
// than the render area on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString(cursor(top, left) + "┌" + line + "┐")
			buf.WriteString(cursor(bottom, left) + "└" + line + "┘")
		} else {
			buf.WriteString(cursor(top, c.offsetCol+1) + line)
			buf.WriteString(cursor(bottom, c.offsetCol+1) + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.WriteString(cursor(row, left) + "│" + cursor(row, right) + "│")
		}
	}
	io.WriteString(w, buf.String())
}

func cursor(row, col int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count in use.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count in use.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
