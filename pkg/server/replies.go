package server

import "fmt"

// Reply formatters. Each returns one complete wire line including the
// CRLF terminator; the exact byte layout is the protocol contract.

func rplWelcome(nick string) string {
	return fmt.Sprintf(":%s %s %s :Welcome to the IRC server\r\n", serverName, RplWelcome, nick)
}

func rplChannelModeIs(nick, channel, modes string) string {
	return fmt.Sprintf(":%s %s %s %s %s\r\n", serverName, RplChannelModeIs, nick, channel, modes)
}

func rplNoTopic(nick, channel string) string {
	return fmt.Sprintf(":%s %s %s %s :No topic is set\r\n", serverName, RplNoTopic, nick, channel)
}

func rplTopic(nick, channel, topic string) string {
	return fmt.Sprintf(":%s %s %s %s :%s\r\n", serverName, RplTopic, nick, channel, topic)
}

func rplInviting(nick, channel string) string {
	return fmt.Sprintf(":%s %s * %s %s :You have been invited\r\n", serverName, RplInviting, nick, channel)
}

func rplNamReply(nick, channel, names string) string {
	return fmt.Sprintf(":%s %s %s = %s :%s\r\n", serverName, RplNameReply, nick, channel, names)
}

func rplEndOfNames(nick, channel string) string {
	return fmt.Sprintf(":%s %s %s %s :End of NAMES list\r\n", serverName, RplEndOfNames, nick, channel)
}

func errNoSuchNick(nick string) string {
	return fmt.Sprintf(":%s %s * %s :No such nick\r\n", serverName, ErrNoSuchNick, nick)
}

func errNoSuchChannel(channel string) string {
	return fmt.Sprintf(":%s %s * %s :No such channel\r\n", serverName, ErrNoSuchChannel, channel)
}

func errCannotSendToChan(channel string) string {
	return fmt.Sprintf(":%s %s * %s :Cannot send to channel\r\n", serverName, ErrCannotSendToChan, channel)
}

func errNoRecipient() string {
	return fmt.Sprintf(":%s %s * :No recipient given\r\n", serverName, ErrNoRecipient)
}

func errNoTextToSend() string {
	return fmt.Sprintf(":%s %s * :No text to send\r\n", serverName, ErrNoTextToSend)
}

func errTopicTooLong(nick, channel string) string {
	return fmt.Sprintf(":%s %s %s %s :Topic is too long (maximum %d characters)\r\n",
		serverName, ErrTopicTooLong, nick, channel, maxTopicLength)
}

func errNoNicknameGiven() string {
	return fmt.Sprintf(":%s %s * :No nickname given\r\n", serverName, ErrNickNull)
}

func errNicknameInUse(nick string) string {
	return fmt.Sprintf(":%s %s * %s :Nickname is already in use\r\n", serverName, ErrNickInUse, nick)
}

func errNotOnChannel(channel string) string {
	return fmt.Sprintf(":%s %s * %s :You're not on that channel\r\n", serverName, ErrNotOnChannel, channel)
}

func errNotRegistered() string {
	return fmt.Sprintf(":%s %s * :You have not registered\r\n", serverName, ErrNotRegistered)
}

func errNeedMoreParams(cmd string) string {
	return fmt.Sprintf(":%s %s %s :Not enough parameters\r\n", serverName, ErrNeedMoreParams, cmd)
}

func errAlreadyRegistered(nick string) string {
	return fmt.Sprintf(":%s %s %s :You may not reregister\r\n", serverName, ErrAlreadyRegistered, nick)
}

func errPasswdMismatch() string {
	return fmt.Sprintf(":%s %s * :Password incorrect\r\n", serverName, ErrPasswdMismatch)
}

func errChannelIsFull(channel string) string {
	return fmt.Sprintf(":%s %s * %s :Cannot join channel (+l)\r\n", serverName, ErrChannelIsFull, channel)
}

func errInviteOnlyChan(channel string) string {
	return fmt.Sprintf(":%s %s * %s :Cannot join channel (+i)\r\n", serverName, ErrInviteOnlyChan, channel)
}

func errBadChannelKey(channel string) string {
	return fmt.Sprintf(":%s %s * %s :Cannot join channel (+k)\r\n", serverName, ErrBadChannelKey, channel)
}

func errChanOPrivsNeeded(channel string) string {
	return fmt.Sprintf(":%s %s * %s :You're not channel operator\r\n", serverName, ErrChanOPrivsNeeded, channel)
}
