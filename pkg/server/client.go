// Package server implements the IRC server engine: connection handling,
// command dispatch and channel state.
package server

import (
	"net"

	"github.com/google/uuid"
)

// Client tracks the per-connection state of one IRC peer: its socket, the
// partially read inbound data, the queued outbound data and the progress
// of the PASS/NICK/USER registration handshake. All fields are owned by
// the engine goroutine; connection goroutines never touch them.
type Client struct {
	identifier uuid.UUID
	conn       net.Conn

	framer Framer
	queue  SendQueue
	out    chan []byte // drained by the connection's writer goroutine
	closed bool        // set once the engine has let go of the client

	nick     string
	user     string
	realname string

	passwordOK    bool
	authenticated bool

	channels map[string]bool // names of joined channels (back reference)
}

func newClient(conn net.Conn) *Client {
	return &Client{
		identifier: uuid.Must(uuid.NewRandom()),
		conn:       conn,
		out:        make(chan []byte, outboundSlots),
		channels:   make(map[string]bool),
	}
}

// prefix returns the :nick!user@localhost source token prepended to
// messages this client originates.
func (c *Client) prefix() string {
	return ":" + c.nick + "!" + c.user + "@" + clientHost
}

func (c *Client) joinChannel(name string) {
	c.channels[name] = true
}

func (c *Client) leaveChannel(name string) {
	delete(c.channels, name)
}
