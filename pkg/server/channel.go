package server

import (
	"strconv"

	"github.com/google/uuid"
)

// Channel is one chat room: an ordered member list plus the mode state
// that gates who may join it and who may change it. Members are tracked
// by client identifier; the engine owns the identifier-to-client table.
type Channel struct {
	name      string
	members   []uuid.UUID
	operators map[uuid.UUID]bool
	invited   map[string]bool // nicknames invited but not yet joined

	topic          string
	topicProtected bool
	inviteOnly     bool
	key            string
	limit          int // 0 means no limit
}

func newChannel(name string) *Channel {
	return &Channel{
		name:      name,
		operators: make(map[uuid.UUID]bool),
		invited:   make(map[string]bool),
	}
}

// Name returns the channel name, including the leading '#'.
func (ch *Channel) Name() string { return ch.name }

// Members returns the member identifiers in join order.
func (ch *Channel) Members() []uuid.UUID { return ch.members }

// Empty reports whether the channel has no members left.
func (ch *Channel) Empty() bool { return len(ch.members) == 0 }

// AddMember appends the client to the member list. Adding an existing
// member is a no-op.
func (ch *Channel) AddMember(id uuid.UUID) {
	if ch.HasMember(id) {
		return
	}
	ch.members = append(ch.members, id)
}

// RemoveMember drops the client from the member list and from the
// operator set.
func (ch *Channel) RemoveMember(id uuid.UUID) {
	for i, m := range ch.members {
		if m == id {
			ch.members = append(ch.members[:i], ch.members[i+1:]...)
			break
		}
	}
	delete(ch.operators, id)
}

// HasMember reports whether the client is on the channel.
func (ch *Channel) HasMember(id uuid.UUID) bool {
	for _, m := range ch.members {
		if m == id {
			return true
		}
	}
	return false
}

// AddOperator grants operator status. Only members can hold it.
func (ch *Channel) AddOperator(id uuid.UUID) {
	if ch.HasMember(id) {
		ch.operators[id] = true
	}
}

func (ch *Channel) RemoveOperator(id uuid.UUID) {
	delete(ch.operators, id)
}

func (ch *Channel) IsOperator(id uuid.UUID) bool {
	return ch.operators[id]
}

// Invite marks a nickname as invited; the mark survives until the
// nickname joins or disconnects.
func (ch *Channel) Invite(nick string) {
	ch.invited[nick] = true
}

func (ch *Channel) IsInvited(nick string) bool {
	return ch.invited[nick]
}

func (ch *Channel) RemoveInvited(nick string) {
	delete(ch.invited, nick)
}

func (ch *Channel) ClearInvites() {
	ch.invited = make(map[string]bool)
}

func (ch *Channel) Topic() string         { return ch.topic }
func (ch *Channel) SetTopic(topic string) { ch.topic = topic }

func (ch *Channel) TopicProtected() bool     { return ch.topicProtected }
func (ch *Channel) SetTopicProtected(v bool) { ch.topicProtected = v }

func (ch *Channel) InviteOnly() bool     { return ch.inviteOnly }
func (ch *Channel) SetInviteOnly(v bool) { ch.inviteOnly = v }

func (ch *Channel) HasKey() bool    { return ch.key != "" }
func (ch *Channel) Key() string     { return ch.key }
func (ch *Channel) SetKey(k string) { ch.key = k }
func (ch *Channel) ClearKey()       { ch.key = "" }

func (ch *Channel) HasLimit() bool { return ch.limit > 0 }
func (ch *Channel) Limit() int     { return ch.limit }
func (ch *Channel) SetLimit(n int) { ch.limit = n }
func (ch *Channel) ClearLimit()    { ch.limit = 0 }

// IsFull reports whether the member limit is set and reached.
func (ch *Channel) IsFull() bool {
	return ch.limit > 0 && len(ch.members) >= ch.limit
}

// ModeString renders the current modes the way the 324 numeric expects
// them: "+[i][t][k][l]" followed by the key and limit arguments when set.
func (ch *Channel) ModeString() string {
	modes := "+"
	if ch.inviteOnly {
		modes += "i"
	}
	if ch.topicProtected {
		modes += "t"
	}
	if ch.key != "" {
		modes += "k"
	}
	if ch.limit > 0 {
		modes += "l"
	}
	if ch.key != "" {
		modes += " " + ch.key
	}
	if ch.limit > 0 {
		modes += " " + strconv.Itoa(ch.limit)
	}
	return modes
}
