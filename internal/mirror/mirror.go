// Package mirror renders a linked message as an embed with a jump button.
package mirror

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	Color       = 0x00bfff
	TimeFormat  = "2006-01-02 15:04:05"
	ButtonLabel = "Jump to message"
)

// Build renders msg, posted in channel, as an embed plus a single link
// button to link. Times are shown in UTC.
func Build(msg *discordgo.Message, channel *discordgo.Channel, link string) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Description: msg.Content,
		Color:       Color,
		Author:      author(msg),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Message link",
				Value: link,
			},
			{
				Name:  "Info",
				Value: fmt.Sprintf("Channel: #%s | Time: %s", channel.Name, msg.Timestamp.UTC().Format(TimeFormat)),
			},
		},
	}
	for i, a := range msg.Attachments {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Image %d", i+1),
			Value:  a.URL,
			Inline: true,
		})
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label: ButtonLabel,
				Style: discordgo.LinkButton,
				URL:   link,
			},
		}},
	}
	return embed, components
}

func author(msg *discordgo.Message) *discordgo.MessageEmbedAuthor {
	if msg.Author == nil {
		return nil
	}
	name := msg.Author.DisplayName()
	if msg.Member != nil && msg.Member.Nick != "" {
		name = msg.Member.Nick
	}
	return &discordgo.MessageEmbedAuthor{
		Name:    name,
		IconURL: msg.Author.AvatarURL(""),
	}
}
