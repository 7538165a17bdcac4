package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillRectScales(t *testing.T) {
	// 10 columns x 5 rows = 10 x 10 sub-pixels for a 100 x 100 logical area
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(20, 40, 20, 20, ColorRed)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := ColorNone
			if x >= 2 && x < 4 && y >= 4 && y < 6 {
				want = ColorRed
			}
			if got := c.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectMinimumPixel(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.FillRect(500, 500, 1, 1, ColorGreen)
	if got := c.At(5, 5); got != ColorGreen {
		t.Errorf("tiny rect not drawn, At(5,5) = %v", got)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(-10, -10, 5, 5, ColorBlue)
	c.FillRect(100, 100, 5, 5, ColorBlue)
	if c.At(-1, 0) != ColorNone || c.At(0, 99) != ColorNone {
		t.Errorf("At outside canvas should be empty")
	}
}

func TestRenderCells(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom Color
		want        string
	}{
		{"empty", ColorNone, ColorNone, " "},
		{"full", ColorRed, ColorRed, "\033[38;5;196m█"},
		{"upper", ColorGreen, ColorNone, "\033[38;5;46m▀"},
		{"lower", ColorNone, ColorBlue, "\033[38;5;33m▄"},
		{"split", ColorRed, ColorGreen, "\033[38;5;196m\033[48;5;46m▀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewScaledCanvas(1, 1, 1, 2)
			c.setPixel(0, 0, tt.top)
			c.setPixel(0, 1, tt.bottom)

			var buf bytes.Buffer
			c.Render(&buf)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Render = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(0, 0, 1, 1, ColorRed)

	var buf bytes.Buffer
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H"); got != 8 {
		t.Fatalf("first render wrote %d cells, want all 8", got)
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("unchanged render wrote %q", buf.String())
	}

	c.FillRect(3, 3, 1, 1, ColorGreen)
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H"); got != 1 {
		t.Errorf("one change wrote %d cells", got)
	}

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H"); got != 8 {
		t.Errorf("forced redraw wrote %d cells, want 8", got)
	}
}

func TestRenderUsesOffset(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetOffset(4, 2)
	c.FillRect(0, 0, 1, 2, ColorRed)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.HasPrefix(buf.String(), "\033[3;5H") {
		t.Errorf("Render = %q, want cursor at row 3 col 5", buf.String())
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewScaledCanvas(3, 2, 3, 4)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Errorf("border drawn without offset")
	}

	c.SetOffset(2, 2)
	c.RenderBorder(&buf)
	out := buf.String()
	if !strings.Contains(out, "┌───┐") || !strings.Contains(out, "└───┘") {
		t.Errorf("border = %q", out)
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 10, 5)
	cw.WriteAt(1, 1, "hi")
	cw.WriteCentered(20, 2, "abcd")
	cw.WriteColored(3, 3, ColorRed, "x")
	if out.Len() != 0 {
		t.Fatalf("wrote before Flush")
	}

	long := strings.Repeat("z", 3*maxChunkSize)
	cw.WriteString(long)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := out.String()
	for _, want := range []string{"\033[6;11Hhi", "\033[7;28Habcd", "\033[8;13H\033[38;5;196mx\033[0m", long} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
