package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tehcyx/ircd/internal/config"
)

const (
	// readChunk matches the engine's dispatch granularity: one readiness
	// event carries at most this many bytes.
	readChunk = 1024

	// outboundSlots is the writer channel capacity. Once it is full the
	// engine defers remaining output to the next flush, the same way a
	// poll loop waits for the next writable event.
	outboundSlots = 16

	// writeStallTimeout bounds a single blocked socket write; a peer that
	// accepts nothing for this long counts as a failed send.
	writeStallTimeout = 30 * time.Second
)

// Server owns the listener, the client table and the channel table. The
// tables are mutated only by the engine goroutine running Serve; accept,
// reader and writer goroutines talk to it through the events channel, so
// no state needs locking.
type Server struct {
	port     string
	password string

	ln       net.Listener
	clients  map[uuid.UUID]*Client
	channels map[string]*Channel

	events   chan event
	shutdown chan struct{}
	stopOnce sync.Once

	sendQueueLimit int
}

// Engine events. Connection goroutines produce these; only the engine
// goroutine consumes them.
type event interface{}

type connEvent struct {
	conn net.Conn
}

type dataEvent struct {
	id   uuid.UUID
	data []byte
}

type hangupEvent struct {
	id  uuid.UUID
	err error
}

// New creates a server that will listen on the given TCP port and demand
// the given connection password. If the password is a bcrypt digest, PASS
// arguments are verified against it.
func New(port, password string) *Server {
	return &Server{
		port:           port,
		password:       password,
		clients:        make(map[uuid.UUID]*Client),
		channels:       make(map[string]*Channel),
		events:         make(chan event, 128),
		shutdown:       make(chan struct{}),
		sendQueueLimit: config.Values.Limits.SendQueue,
	}
}

// Listen binds the listening socket. IPv4 only; the address reuse and
// non-blocking setup of the classic loop are the Go runtime's defaults.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp4", ":"+s.port)
	if err != nil {
		return fmt.Errorf("listen failed, port possibly in use already: %w", err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Run binds the listener, installs the shutdown signal handlers and
// serves until a signal or Stop arrives.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sigc
		log.Printf("Received %s, shutting down...", sig)
		s.Stop()
	}()

	s.Serve()
	return nil
}

// Stop triggers the same cooperative shutdown as a termination signal.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdown)
	})
}

// Serve runs the engine loop: accepted connections, inbound data and
// hangups are applied to the tables one event at a time, and pending
// output is flushed after every event.
func (s *Server) Serve() {
	go s.acceptLoop()
	log.Printf("Listening on %s", s.ln.Addr())

	// the ticker retries output deferred by a full writer channel, the
	// way a poll loop polls for writability
	retry := time.NewTicker(50 * time.Millisecond)
	defer retry.Stop()

	for {
		select {
		case <-s.shutdown:
			s.shutdownAll()
			return
		case ev := <-s.events:
			s.handleEvent(ev)
			s.flushAll()
		case <-retry.C:
			s.flushAll()
		}
	}
}

func (s *Server) handleEvent(ev event) {
	switch ev := ev.(type) {
	case connEvent:
		s.addClient(ev.conn)
	case dataEvent:
		c := s.clients[ev.id]
		if c == nil {
			return
		}
		c.framer.Append(ev.data)
		for _, line := range c.framer.Lines() {
			s.dispatch(c, line)
			// QUIT or a handler-driven disconnect invalidates the rest
			// of the batch
			if s.clients[ev.id] == nil {
				break
			}
		}
	case hangupEvent:
		c := s.clients[ev.id]
		if c == nil {
			return
		}
		s.disconnect(c, ev.err.Error())
	}
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			select {
			case <-s.shutdown:
				return
			default:
				log.Errorf("Failed to accept connection: %v", err)
				continue
			}
		}
		s.post(connEvent{conn: conn})
	}
}

// post delivers an event to the engine unless it has already shut down.
func (s *Server) post(ev event) {
	select {
	case s.events <- ev:
	case <-s.shutdown:
	}
}

func (s *Server) addClient(conn net.Conn) {
	c := newClient(conn)
	s.clients[c.identifier] = c
	log.Infof("Client connected: %s (%s)", c.identifier, conn.RemoteAddr())

	go s.readLoop(c.identifier, conn)
	go s.writeLoop(c.identifier, conn, c.out)
}

// readLoop delivers raw chunks to the engine until the peer goes away.
func (s *Server) readLoop(id uuid.UUID, conn net.Conn) {
	buf := make([]byte, readChunk)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			s.post(dataEvent{id: id, data: data})
		}
		if err != nil {
			s.post(hangupEvent{id: id, err: err})
			return
		}
	}
}

// writeLoop drains queued output to the socket and closes it once the
// engine has closed the channel. net.Conn.Write resumes partial writes
// internally, so each chunk is either fully sent or the connection is
// torn down.
func (s *Server) writeLoop(id uuid.UUID, conn net.Conn, out <-chan []byte) {
	defer conn.Close()
	for chunk := range out {
		conn.SetWriteDeadline(time.Now().Add(writeStallTimeout))
		if _, err := conn.Write(chunk); err != nil {
			s.post(hangupEvent{id: id, err: err})
			// keep draining so the engine never blocks on this client
			for range out {
			}
			return
		}
	}
}

// flushAll offers every client's queued bytes to its writer. Chunks move
// only when the writer channel accepts them without blocking, mirroring
// readiness-driven partial writes. A queue that outgrows the ceiling
// while its writer is stalled costs the client the connection.
func (s *Server) flushAll() {
	var stalled []*Client
	for _, c := range s.clients {
		if !s.flush(c) {
			stalled = append(stalled, c)
		}
	}
	for _, c := range stalled {
		log.Errorf("send queue overflow (%d bytes), dropping client %s", c.queue.Bytes(), c.identifier)
		s.disconnect(c, "send queue overflow")
	}
}

func (s *Server) flush(c *Client) bool {
	for c.queue.Pending() {
		chunk := c.queue.Peek()
		select {
		case c.out <- chunk:
			c.queue.Consume(len(chunk))
		default:
			return c.queue.Bytes() <= s.sendQueueLimit
		}
	}
	return true
}

// reply queues one wire message on a client.
func (s *Server) reply(c *Client, msg string) {
	if c.closed {
		return
	}
	c.queue.Queue(msg)
}

// broadcast queues msg on every member of the channel except exclude;
// uuid.Nil excludes nobody. Everything is queued before anything is
// flushed, so all recipients observe broadcasts in the same order.
func (s *Server) broadcast(ch *Channel, msg string, exclude uuid.UUID) {
	for _, id := range ch.Members() {
		if id == exclude {
			continue
		}
		if m := s.clients[id]; m != nil {
			s.reply(m, msg)
		}
	}
}

// disconnect removes the client from every table and hands the socket to
// the writer for closing. The channel walk covers both the client's own
// back references and the full channel table, so a stale reference on
// either side cannot survive.
func (s *Server) disconnect(c *Client, reason string) {
	if c.closed {
		return
	}
	c.closed = true
	delete(s.clients, c.identifier)

	// final flush of queued replies before the socket goes away
	for c.queue.Pending() {
		chunk := c.queue.Peek()
		select {
		case c.out <- chunk:
			c.queue.Consume(len(chunk))
		default:
			c.queue.Clear()
		}
	}
	close(c.out)

	for name := range c.channels {
		if ch := s.channels[name]; ch != nil {
			ch.RemoveMember(c.identifier)
		}
		c.leaveChannel(name)
		s.cleanupChannel(name)
	}
	for name, ch := range s.channels {
		if ch.HasMember(c.identifier) {
			ch.RemoveMember(c.identifier)
			s.cleanupChannel(name)
		}
	}
	if c.nick != "" {
		for _, ch := range s.channels {
			ch.RemoveInvited(c.nick)
		}
	}

	log.Infof("Client disconnected: %s (%s)", c.identifier, reason)
}

// shutdownAll disconnects every client, drops all channels and closes
// the listener.
func (s *Server) shutdownAll() {
	log.Printf("Disconnecting %d clients...", len(s.clients))
	for _, c := range s.clients {
		c.closed = true
		select {
		case c.out <- []byte("ERROR :Server shutting down\r\n"):
		default:
		}
		close(c.out)
	}
	s.clients = make(map[uuid.UUID]*Client)
	s.channels = make(map[string]*Channel)
	s.ln.Close()
	log.Printf("Shutting down server. Bye!")
}

/* channel and client lookup helpers */

// getOrCreateChannel returns the channel with the given name, creating
// it on first JOIN.
func (s *Server) getOrCreateChannel(name string) *Channel {
	if ch := s.channels[name]; ch != nil {
		return ch
	}
	ch := newChannel(name)
	s.channels[name] = ch
	return ch
}

// cleanupChannel deletes the channel once its member list is empty,
// clearing the invite list first.
func (s *Server) cleanupChannel(name string) {
	ch := s.channels[name]
	if ch == nil || !ch.Empty() {
		return
	}
	ch.ClearInvites()
	delete(s.channels, name)
	log.Debugf("channel %s removed", ch.Name())
}

func (s *Server) clientByNick(nick string) *Client {
	for _, c := range s.clients {
		if c.nick == nick {
			return c
		}
	}
	return nil
}

func (s *Server) nicknameInUse(nick string) bool {
	return s.clientByNick(nick) != nil
}

func (s *Server) checkPassword(supplied string) bool {
	if IsBcryptHash(s.password) {
		return VerifyPassword(s.password, supplied) == nil
	}
	return supplied == s.password
}
