package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChannelName(t *testing.T) {
	assert.Equal(t, "#go", newChannel("#go").Name())
}

func TestChannelMembershipIdempotent(t *testing.T) {
	ch := newChannel("#go")
	id := uuid.Must(uuid.NewRandom())

	ch.AddMember(id)
	ch.AddMember(id)
	assert.Len(t, ch.Members(), 1)

	ch.RemoveMember(id)
	ch.RemoveMember(id)
	assert.True(t, ch.Empty())
}

func TestChannelMemberOrder(t *testing.T) {
	ch := newChannel("#go")
	a := uuid.Must(uuid.NewRandom())
	b := uuid.Must(uuid.NewRandom())
	c := uuid.Must(uuid.NewRandom())

	ch.AddMember(a)
	ch.AddMember(b)
	ch.AddMember(c)
	ch.RemoveMember(b)

	assert.Equal(t, []uuid.UUID{a, c}, ch.Members(), "join order survives removal")
}

func TestOperatorRequiresMembership(t *testing.T) {
	ch := newChannel("#go")
	id := uuid.Must(uuid.NewRandom())

	ch.AddOperator(id)
	assert.False(t, ch.IsOperator(id), "non-member cannot hold operator status")

	ch.AddMember(id)
	ch.AddOperator(id)
	assert.True(t, ch.IsOperator(id))

	ch.RemoveMember(id)
	assert.False(t, ch.IsOperator(id), "leaving drops operator status")
}

func TestChannelInvites(t *testing.T) {
	ch := newChannel("#go")

	ch.Invite("bob")
	assert.True(t, ch.IsInvited("bob"))
	assert.False(t, ch.IsInvited("carol"))

	ch.RemoveInvited("bob")
	assert.False(t, ch.IsInvited("bob"))

	ch.Invite("bob")
	ch.Invite("carol")
	ch.ClearInvites()
	assert.False(t, ch.IsInvited("bob"))
	assert.False(t, ch.IsInvited("carol"))
}

func TestChannelIsFull(t *testing.T) {
	ch := newChannel("#go")
	ch.AddMember(uuid.Must(uuid.NewRandom()))
	ch.AddMember(uuid.Must(uuid.NewRandom()))

	assert.False(t, ch.IsFull(), "no limit set")

	ch.SetLimit(2)
	assert.True(t, ch.IsFull())

	ch.SetLimit(3)
	assert.False(t, ch.IsFull())

	ch.ClearLimit()
	assert.False(t, ch.HasLimit())
}

func TestChannelModeString(t *testing.T) {
	ch := newChannel("#go")
	assert.Equal(t, "+", ch.ModeString())

	ch.SetInviteOnly(true)
	ch.SetTopicProtected(true)
	assert.Equal(t, "+it", ch.ModeString())

	ch.SetKey("sekrit")
	ch.SetLimit(10)
	assert.Equal(t, "+itkl sekrit 10", ch.ModeString())

	ch.SetInviteOnly(false)
	ch.ClearKey()
	assert.Equal(t, "+tl 10", ch.ModeString())
}
