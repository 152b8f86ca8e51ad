package server

import (
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ensureChannelPrefix prepends the conventional '#' when missing.
func ensureChannelPrefix(name string) string {
	if name == "" || strings.HasPrefix(name, "#") {
		return name
	}
	return "#" + name
}

// handleJoin processes "JOIN <chan{,chan}> [<key{,key}>]". Each channel
// is checked against its key, invite-only and limit modes; on success the
// joiner gets the JOIN broadcast, the NAMES list and the topic.
func (s *Server) handleJoin(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(JoinCmd))
		return
	}
	names := strings.Split(msg.Params[0], ",")
	var keys []string
	if len(msg.Params) > 1 {
		keys = strings.Split(msg.Params[1], ",")
	}

	for idx, raw := range names {
		name := ensureChannelPrefix(raw)
		if name == "" {
			continue
		}
		ch := s.getOrCreateChannel(name)

		key := ""
		if idx < len(keys) {
			key = keys[idx]
		}
		if ch.HasKey() && key != ch.Key() {
			s.reply(c, errBadChannelKey(name))
			continue
		}
		if ch.InviteOnly() && !ch.IsInvited(c.nick) && !ch.IsOperator(c.identifier) {
			s.reply(c, errInviteOnlyChan(name))
			continue
		}
		if ch.IsFull() && !ch.IsOperator(c.identifier) {
			s.reply(c, errChannelIsFull(name))
			continue
		}
		if ch.HasMember(c.identifier) {
			continue
		}

		ch.AddMember(c.identifier)
		c.joinChannel(name)
		ch.RemoveInvited(c.nick)

		// first member of a fresh channel runs it
		if len(ch.Members()) == 1 {
			ch.AddOperator(c.identifier)
		}

		s.broadcast(ch, c.prefix()+" JOIN "+name+"\r\n", uuid.Nil)

		s.reply(c, rplNamReply(c.nick, name, s.memberNames(ch)))
		s.reply(c, rplEndOfNames(c.nick, name))

		if topic := ch.Topic(); topic != "" {
			s.reply(c, rplTopic(c.nick, name, topic))
		} else {
			s.reply(c, rplNoTopic(c.nick, name))
		}

		log.Infof("%s joined %s", c.nick, ch.Name())
	}
}

// memberNames renders the channel's nicknames in join order, separated by
// single spaces, for the 353 numeric.
func (s *Server) memberNames(ch *Channel) string {
	var b strings.Builder
	for i, id := range ch.Members() {
		m := s.clients[id]
		if m == nil {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.nick)
	}
	return b.String()
}

func (s *Server) handlePart(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(PartCmd))
		return
	}
	name := ensureChannelPrefix(msg.Params[0])
	ch := s.channels[name]
	if ch == nil {
		s.reply(c, errNoSuchChannel(name))
		return
	}
	if !ch.HasMember(c.identifier) {
		s.reply(c, errNotOnChannel(name))
		return
	}

	ch.RemoveMember(c.identifier)
	c.leaveChannel(name)

	s.broadcast(ch, c.prefix()+" PART "+name+"\r\n", uuid.Nil)
	s.cleanupChannel(name)
}

// handleKick removes a member from a channel. Only operators may kick.
func (s *Server) handleKick(c *Client, msg Message) {
	if len(msg.Params) < 2 {
		s.reply(c, errNeedMoreParams(KickCmd))
		return
	}
	name := ensureChannelPrefix(msg.Params[0])
	targetNick := msg.Params[1]

	ch := s.channels[name]
	if ch == nil {
		s.reply(c, errNoSuchChannel(name))
		return
	}
	if !ch.IsOperator(c.identifier) {
		s.reply(c, errChanOPrivsNeeded(name))
		return
	}
	if !ch.HasMember(c.identifier) {
		s.reply(c, errNotOnChannel(name))
		return
	}
	target := s.clientByNick(targetNick)
	if target == nil {
		s.reply(c, errNoSuchNick(targetNick))
		return
	}
	if !ch.HasMember(target.identifier) {
		s.reply(c, errNotOnChannel(name))
		return
	}

	s.broadcast(ch, c.prefix()+" KICK "+name+" "+targetNick+"\r\n", uuid.Nil)

	ch.RemoveMember(target.identifier)
	target.leaveChannel(name)
	s.cleanupChannel(name)

	log.Infof("%s kicked %s from %s", c.nick, targetNick, name)
}

// handleInvite puts a nickname on the channel's invite list so it can
// pass the +i gate, and notifies both sides.
func (s *Server) handleInvite(c *Client, msg Message) {
	if len(msg.Params) < 2 {
		s.reply(c, errNeedMoreParams(InviteCmd))
		return
	}
	targetNick := msg.Params[0]
	name := ensureChannelPrefix(msg.Params[1])

	ch := s.channels[name]
	if ch == nil {
		s.reply(c, errNoSuchChannel(name))
		return
	}
	if !ch.HasMember(c.identifier) {
		s.reply(c, errNotOnChannel(name))
		return
	}
	target := s.clientByNick(targetNick)
	if target == nil {
		s.reply(c, errNoSuchNick(targetNick))
		return
	}
	if !ch.IsOperator(c.identifier) {
		s.reply(c, errChanOPrivsNeeded(name))
		return
	}

	ch.Invite(targetNick)
	s.reply(target, c.prefix()+" INVITE "+targetNick+" "+name+"\r\n")
	s.reply(c, rplInviting(targetNick, name))

	log.Infof("%s invited %s to %s", c.nick, targetNick, name)
}
