package server

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tehcyx/ircd/internal/config"
)

// preAuthCommands may be issued before the PASS/NICK/USER handshake has
// completed. Everything else is gated behind registration.
var preAuthCommands = map[string]bool{
	PassCmd: true,
	NickCmd: true,
	UserCmd: true,
	PingCmd: true,
	PongCmd: true,
	QuitCmd: true,
}

// dispatch parses one inbound line and routes it to its handler. Command
// names are case-insensitive; unknown names are silently dropped.
func (s *Server) dispatch(c *Client, line string) {
	msg := Parse(line)
	name := strings.ToUpper(msg.Command)
	if name == "" {
		return
	}

	if config.Values.Server.Debug {
		// redact PASS arguments
		if name == PassCmd {
			log.Debugf("dispatch %s [REDACTED] from %s", name, c.identifier)
		} else {
			log.Debugf("dispatch %s %v from %s", name, msg.Params, c.identifier)
		}
	}

	if !preAuthCommands[name] && !c.authenticated {
		s.reply(c, errNotRegistered())
		return
	}

	switch name {
	case PassCmd:
		s.handlePass(c, msg)
	case NickCmd:
		s.handleNick(c, msg)
	case UserCmd:
		s.handleUser(c, msg)
	case JoinCmd:
		s.handleJoin(c, msg)
	case PartCmd:
		s.handlePart(c, msg)
	case PrivmsgCmd:
		s.handlePrivmsg(c, msg)
	case PingCmd:
		s.handlePing(c, msg)
	case PongCmd:
		// keepalive answer, nothing to do
	case KickCmd:
		s.handleKick(c, msg)
	case ModeCmd:
		s.handleMode(c, msg)
	case TopicCmd:
		s.handleTopic(c, msg)
	case InviteCmd:
		s.handleInvite(c, msg)
	case QuitCmd:
		s.handleQuit(c, msg)
	}
}
