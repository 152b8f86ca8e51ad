package server

import (
	"strconv"

	"github.com/google/uuid"
)

// maxTopicLength caps TOPIC payloads. The 422 numeric this produces is a
// server extension, not part of the RFC numeric set.
const maxTopicLength = 300

// handleMode answers mode queries with the 324 numeric and applies the
// single-flag changes o/k/i/l/t. Changes require operator status and are
// broadcast to the channel; unknown flags are echoed back to the sender
// without any state change.
func (s *Server) handleMode(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(ModeCmd))
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

	if len(msg.Params) < 2 {
		s.reply(c, rplChannelModeIs(c.nick, name, ch.ModeString()))
		return
	}

	if !ch.IsOperator(c.identifier) {
		s.reply(c, errChanOPrivsNeeded(name))
		return
	}

	mode := msg.Params[1]
	arg := ""
	if len(msg.Params) >= 3 {
		arg = msg.Params[2]
	}

	add := len(mode) > 0 && mode[0] == '+'
	var flag byte
	if len(mode) > 1 {
		flag = mode[1]
	}

	prefix := c.prefix()
	var line string

	switch flag {
	case 'o':
		if arg == "" {
			s.reply(c, errNeedMoreParams(ModeCmd))
			return
		}
		target := s.clientByNick(arg)
		if target == nil {
			s.reply(c, errNoSuchNick(arg))
			return
		}
		if add {
			ch.AddOperator(target.identifier)
			line = prefix + " MODE " + name + " +o " + arg + "\r\n"
		} else {
			ch.RemoveOperator(target.identifier)
			line = prefix + " MODE " + name + " -o " + arg + "\r\n"
		}
	case 'k':
		if add {
			if arg == "" {
				s.reply(c, errNeedMoreParams(ModeCmd))
				return
			}
			ch.SetKey(arg)
			line = prefix + " MODE " + name + " +k " + arg + "\r\n"
		} else {
			ch.ClearKey()
			line = prefix + " MODE " + name + " -k\r\n"
		}
	case 'i':
		ch.SetInviteOnly(add)
		if add {
			line = prefix + " MODE " + name + " +i\r\n"
		} else {
			line = prefix + " MODE " + name + " -i\r\n"
		}
	case 'l':
		if add {
			if arg == "" {
				s.reply(c, errNeedMoreParams(ModeCmd))
				return
			}
			limit, err := strconv.Atoi(arg)
			if err != nil || limit <= 0 {
				s.reply(c, errNeedMoreParams(ModeCmd))
				return
			}
			ch.SetLimit(limit)
			line = prefix + " MODE " + name + " +l " + arg + "\r\n"
		} else {
			ch.ClearLimit()
			line = prefix + " MODE " + name + " -l\r\n"
		}
	case 't':
		ch.SetTopicProtected(add)
		if add {
			line = prefix + " MODE " + name + " +t\r\n"
		} else {
			line = prefix + " MODE " + name + " -t\r\n"
		}
	default:
		s.reply(c, prefix+" MODE "+name+" "+mode+"\r\n")
		return
	}

	s.broadcast(ch, line, uuid.Nil)
}

// handleTopic queries or sets the channel topic. Setting is gated by the
// +t mode and by the length cap.
func (s *Server) handleTopic(c *Client, msg Message) {
	if len(msg.Params) == 0 {
		s.reply(c, errNeedMoreParams(TopicCmd))
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

	if msg.Trailing == "" {
		if topic := ch.Topic(); topic != "" {
			s.reply(c, rplTopic(c.nick, name, topic))
		} else {
			s.reply(c, rplNoTopic(c.nick, name))
		}
		return
	}

	if ch.TopicProtected() && !ch.IsOperator(c.identifier) {
		s.reply(c, errChanOPrivsNeeded(name))
		return
	}
	if len(msg.Trailing) > maxTopicLength {
		s.reply(c, errTopicTooLong(c.nick, name))
		return
	}

	ch.SetTopic(msg.Trailing)
	s.broadcast(ch, c.prefix()+" TOPIC "+name+" :"+msg.Trailing+"\r\n", uuid.Nil)
	s.reply(c, rplTopic(c.nick, name, msg.Trailing))
}
