// Package permalink finds Discord message links in text and fetches the
// messages they point at.
package permalink

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"niseyomi/internal/chat"
)

var linkPattern = regexp.MustCompile(`https://(?:(?:ptb|canary)\.)?discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)`)

// ErrNotFound is returned when the linked channel or message cannot be reached.
var ErrNotFound = errors.New("linked message not found")

type Permalink struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	MessageID snowflake.ID
}

func (p Permalink) URL() string {
	return chat.MessageURL(p.GuildID.String(), p.ChannelID.String(), p.MessageID.String())
}

// Find returns the first message link in text. Later links are ignored, and
// a first link whose ids overflow a snowflake yields no match.
func Find(text string) (Permalink, bool) {
	m := linkPattern.FindStringSubmatch(text)
	if m == nil {
		return Permalink{}, false
	}
	var (
		p   Permalink
		err error
	)
	if p.GuildID, err = snowflake.Parse(m[1]); err != nil {
		return Permalink{}, false
	}
	if p.ChannelID, err = snowflake.Parse(m[2]); err != nil {
		return Permalink{}, false
	}
	if p.MessageID, err = snowflake.Parse(m[3]); err != nil {
		return Permalink{}, false
	}
	return p, true
}

// Resolve looks the channel up first, then fetches the message from it.
// Any channel failure, and a missing message, wrap ErrNotFound.
func Resolve(client chat.Client, p Permalink) (*discordgo.Channel, *discordgo.Message, error) {
	channel, err := client.Channel(p.ChannelID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: channel %s: %v", ErrNotFound, p.ChannelID, err)
	}
	msg, err := client.ChannelMessage(channel.ID, p.MessageID.String())
	if err != nil {
		if chat.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: message %s: %v", ErrNotFound, p.MessageID, err)
		}
		return nil, nil, fmt.Errorf("failed to fetch message %s: %w", p.MessageID, err)
	}
	return channel, msg, nil
}
