package server

const (
	// Registration commands
	// PassCmd `PASS secretpass` [Password message](https://tools.ietf.org/html/rfc2812#section-3.1.1)
	PassCmd = "PASS"
	// NickCmd `NICK tehcyx` [Nick message](https://tools.ietf.org/html/rfc2812#section-3.1.2)
	NickCmd = "NICK"
	// UserCmd `USER <user> <mode> <unused> <realname>` [User message](https://tools.ietf.org/html/rfc2812#section-3.1.3)
	UserCmd = "USER"
	// QuitCmd `QUIT [<Quit message>]` [Quit](https://tools.ietf.org/html/rfc2812#section-3.1.7)
	QuitCmd = "QUIT"

	// Channel commands
	JoinCmd    = "JOIN"
	PartCmd    = "PART"
	PrivmsgCmd = "PRIVMSG"
	KickCmd    = "KICK"
	ModeCmd    = "MODE"
	TopicCmd   = "TOPIC"
	InviteCmd  = "INVITE"

	// Keepalive
	PingCmd = "PING"
	PongCmd = "PONG"

	// Error replies
	ErrNoSuchNick        = "401"
	ErrNoSuchChannel     = "403"
	ErrCannotSendToChan  = "404"
	ErrNoRecipient       = "411"
	ErrNoTextToSend      = "412"
	ErrTopicTooLong      = "422"
	ErrNickNull          = "431"
	ErrNickInUse         = "433"
	ErrNotOnChannel      = "442"
	ErrNotRegistered     = "451"
	ErrNeedMoreParams    = "461" // <command> :Not enough parameters
	ErrAlreadyRegistered = "462" // :You may not reregister
	ErrPasswdMismatch    = "464"
	ErrChannelIsFull     = "471"
	ErrInviteOnlyChan    = "473"
	ErrBadChannelKey     = "475"
	ErrChanOPrivsNeeded  = "482"

	// Command responses
	RplWelcome       = "001"
	RplChannelModeIs = "324"
	RplNoTopic       = "331"
	RplTopic         = "332"
	RplInviting      = "341"
	RplNameReply     = "353"
	RplEndOfNames    = "366"
)

// serverName is the source token on every server-origin message and
// clientHost the host part of client prefixes. Both are part of the wire
// contract, not configuration.
const (
	serverName = "ircserver"
	clientHost = "localhost"
)
