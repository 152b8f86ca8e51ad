package server

import "strings"

// Message is one parsed IRC command line: the command token, the middle
// parameters, and the optional trailing free-text segment.
type Message struct {
	Command  string
	Params   []string
	Trailing string
}

// Parse splits a stripped line into its components. Tokens are separated
// by runs of ASCII spaces; the first token that begins with ':' starts the
// trailing segment, which keeps the rest of the line verbatim (the colon
// itself is discarded). An empty line parses to an empty command.
func Parse(line string) Message {
	var msg Message
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == ':' {
			msg.Trailing = line[i+1:]
			break
		}
		j := i
		for j < len(line) && line[j] != ' ' {
			j++
		}
		if msg.Command == "" {
			msg.Command = line[i:j]
		} else {
			msg.Params = append(msg.Params, line[i:j])
		}
		i = j
	}
	return msg
}

// String reassembles the message in wire order. Parse followed by String
// round-trips any line whose tokens are single-space separated.
func (m Message) String() string {
	parts := make([]string, 0, len(m.Params)+1)
	if m.Command != "" {
		parts = append(parts, m.Command)
	}
	parts = append(parts, m.Params...)
	s := strings.Join(parts, " ")
	if m.Trailing != "" {
		if s != "" {
			s += " "
		}
		s += ":" + m.Trailing
	}
	return s
}
