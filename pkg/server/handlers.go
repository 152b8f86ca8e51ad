package server

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// handlePass checks the shared secret. A missing parameter costs the
// client its connection after the numeric has been queued; a wrong
// password only earns the 464 numeric.
func (s *Server) handlePass(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(PassCmd))
		s.disconnect(c, "PASS without parameters")
		return
	}
	if c.authenticated {
		s.reply(c, errAlreadyRegistered(c.nick))
		return
	}
	if !s.checkPassword(msg.Params[0]) {
		s.reply(c, errPasswdMismatch())
		return
	}
	c.passwordOK = true
	s.tryRegister(c)
}

func (s *Server) handleNick(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNoNicknameGiven())
		return
	}
	nick := msg.Params[0]
	if s.nicknameInUse(nick) {
		s.reply(c, errNicknameInUse(nick))
		return
	}
	c.nick = nick
	s.tryRegister(c)
}

func (s *Server) handleUser(c *Client, msg Message) {
	if len(msg.Params) < 3 || msg.Trailing == "" {
		s.reply(c, errNeedMoreParams(UserCmd))
		return
	}
	if c.authenticated {
		s.reply(c, errAlreadyRegistered(c.nick))
		return
	}
	c.user = msg.Params[0]
	c.realname = msg.Trailing
	s.tryRegister(c)
}

// tryRegister completes the handshake once the password was accepted and
// nickname, username and realname are all present. Runs at most once per
// client and issues the 001 welcome.
func (s *Server) tryRegister(c *Client) {
	if c.authenticated {
		return
	}
	if !c.passwordOK || c.nick == "" || c.user == "" || c.realname == "" {
		return
	}
	c.authenticated = true
	s.reply(c, rplWelcome(c.nick))
	log.Infof("client %s registered as %s", c.identifier, c.nick)
}

// handleQuit broadcasts the QUIT line to every channel the client is on,
// then tears the connection down.
func (s *Server) handleQuit(c *Client, msg Message) {
	quitMsg := c.prefix() + " QUIT :Quit\r\n"
	for name := range c.channels {
		ch := s.channels[name]
		if ch == nil {
			continue
		}
		s.broadcast(ch, quitMsg, c.identifier)
	}
	s.disconnect(c, "quit")
}

func (s *Server) handlePrivmsg(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNoRecipient())
		return
	}
	if msg.Trailing == "" {
		s.reply(c, errNoTextToSend())
		return
	}
	target := msg.Params[0]
	line := c.prefix() + " PRIVMSG " + target + " :" + msg.Trailing + "\r\n"

	if strings.HasPrefix(target, "#") {
		ch := s.channels[target]
		if ch == nil {
			s.reply(c, errNoSuchChannel(target))
			return
		}
		if !ch.HasMember(c.identifier) {
			s.reply(c, errCannotSendToChan(target))
			return
		}
		s.broadcast(ch, line, c.identifier)
		return
	}

	receiver := s.clientByNick(target)
	if receiver == nil {
		s.reply(c, errNoSuchNick(target))
		return
	}
	s.reply(receiver, line)
}

func (s *Server) handlePing(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(PingCmd))
		return
	}
	s.reply(c, "PONG :"+msg.Params[0]+"\r\n")
}
