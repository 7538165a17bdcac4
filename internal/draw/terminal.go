package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	seqClear         = "\033[H\033[2J"
	seqHideCursor    = "\033[?25l"
	seqShowCursor    = "\033[?25h"
	seqAltScreenOn   = "\033[?1049h"
	seqAltScreenOff  = "\033[?1049l"
	seqAutoWrapOff   = "\033[?7l"
	seqAutoWrapOn    = "\033[?7h"
	seqResetGraphics = "\033[0m"
)

// maxChunkSize keeps single writes under a typical MTU for smooth SSH output.
const maxChunkSize = 1400

// ChunkWriter buffers a whole frame of terminal output and writes it out in
// MTU-sized chunks on Flush. Cursor positions are 1-based canvas coordinates;
// the offset centres the canvas inside a larger terminal.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch space for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor position sequence, offset applied.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s starting at the given canvas cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteCentered writes s centred on column centerCol.
func (cw *ChunkWriter) WriteCentered(centerCol, row int, s string) {
	col := centerCol - len([]rune(s))/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, s)
}

// WriteColored writes s at a cell in the given colour, then resets attributes.
func (cw *ChunkWriter) WriteColored(col, row int, c Color, s string) {
	cw.MoveCursor(col, row)
	cw.setForeground(c)
	cw.buf.WriteString(s)
	cw.buf.WriteString(seqResetGraphics)
}

func (cw *ChunkWriter) setForeground(c Color) {
	if c == ColorNone {
		return
	}
	cw.buf.WriteString("\033[38;5;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c.ansi()), 10))
	cw.buf.WriteByte('m')
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen switches to the alternate screen, hides the cursor and turns
// off auto-wrap so writing the bottom-right cell does not scroll.
func EnterScreen(w io.Writer) {
	io.WriteString(w, seqAltScreenOn+seqAutoWrapOff+seqHideCursor+seqClear)
}

// LeaveScreen undoes EnterScreen.
func LeaveScreen(w io.Writer) {
	io.WriteString(w, seqResetGraphics+seqClear+seqShowCursor+seqAutoWrapOn+seqAltScreenOff)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}
