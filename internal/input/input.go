// Package input decodes raw terminal bytes into game controls.
package input

import (
	"bufio"
)

// Direction names understood by the game.
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

// Input represents the keys seen since the last read.
type Input struct {
	Quit      bool
	Space     bool
	Enter     bool
	Escape    bool
	Direction string // Last direction pressed, "" if none
	Closed    bool   // Underlying reader is gone
	Pressed   []byte
}

// Confirm reports whether a start/restart key was pressed.
func (in Input) Confirm() bool {
	return in.Space || in.Enter
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	pending []byte // Unfinished escape sequence held over from the last read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// drain collects every byte currently buffered without blocking.
func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}

// Reset discards pending bytes, so a key held on a menu does not leak into play.
func Reset(s *Stream) {
	s.drain()
	s.pending = nil
}

// ReadInput drains all available bytes from the stream (non-blocking).
// When several directions arrive in one read, the last one wins.
// A trailing ESC or ESC [ is held for one read so an arrow key split
// across reads still decodes; if nothing follows it counts as a bare ESC.
func ReadInput(s *Stream) Input {
	fresh := s.drain()
	buf := append(s.pending, fresh...)
	s.pending = nil

	if n := partialEscape(buf); n > 0 && len(fresh) > 0 && !s.closed {
		s.pending = append([]byte(nil), buf[len(buf)-n:]...)
		buf = buf[:len(buf)-n]
	}

	in := Parse(buf)
	in.Closed = s.closed
	return in
}

// partialEscape returns the length of an unfinished CSI prefix at the end
// of buf, or 0.
func partialEscape(buf []byte) int {
	switch n := len(buf); {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

// Parse decodes a burst of terminal bytes, including CSI arrow sequences.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if dir := arrowDirection(buf[i+2]); dir != "" {
				in.Direction = dir
				i += 2
				continue
			}
		}

		applyByte(&in, b)
	}

	return in
}

func arrowDirection(code byte) string {
	switch code {
	case 'A':
		return DirUp
	case 'B':
		return DirDown
	case 'C':
		return DirRight
	case 'D':
		return DirLeft
	}
	return ""
}

// applyByte updates the input for a single key byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'w', 'W', 'i', 'I':
		in.Direction = DirUp
	case 's', 'S', 'k', 'K':
		in.Direction = DirDown
	case 'a', 'A', 'j', 'J':
		in.Direction = DirLeft
	case 'd', 'D', 'l', 'L':
		in.Direction = DirRight
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case '\x1b':
		in.Escape = true
	}
}
