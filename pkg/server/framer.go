package server

import "bytes"

// Framer accumulates raw bytes read from a socket and yields complete IRC
// lines. A line ends at LF; a CR immediately before the LF is stripped.
// Incomplete input stays buffered until the next Append.
type Framer struct {
	buf []byte
}

// Append adds a chunk of raw data to the inbound buffer.
func (f *Framer) Append(data []byte) {
	f.buf = append(f.buf, data...)
}

// Lines drains every complete line currently buffered, leaving the
// unfinished tail for the next read.
func (f *Framer) Lines() []string {
	var lines []string
	for {
		i := bytes.IndexByte(f.buf, '\n')
		if i < 0 {
			break
		}
		line := f.buf[:i]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, string(line))
		f.buf = f.buf[i+1:]
	}
	return lines
}

// Buffered reports how many bytes of incomplete line are pending.
func (f *Framer) Buffered() int {
	return len(f.buf)
}
