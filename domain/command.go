package domain

type CommandName string

const (
	PlayCommandName        CommandName = "play"
	PingCommandName        CommandName = "ping"
	LeaderboardCommandName CommandName = "leaderboard"
)

// Command is a parsed chat command, scoped to a guild.
type Command interface {
	Guild() string
}

// PlayCommand asks to start a game in the owner's voice channel.
type PlayCommand struct {
	GuildID       string
	OwnerID       Identity
	OwnerName     string
	TextChannelID string
}

func (c PlayCommand) Guild() string { return c.GuildID }

type PingCommand struct {
	GuildID       string
	UserName      string
	UserAvatarURL string
	TextChannelID string
}

func (c PingCommand) Guild() string { return c.GuildID }

type LeaderboardCommand struct {
	GuildID       string
	TextChannelID string
}

func (c LeaderboardCommand) Guild() string { return c.GuildID }
