package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func (h *Handlers) aboutEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "About",
		Description: "Reminders, message link previews and embed-friendly X links for this server.",
		Color:       0x7289DA,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Commands",
				Value: "- `/event` schedule a reminder\n" +
					"- `/website` look up a registered website\n" +
					"- `/delete_messages`, `/delete_messages_all` remove a user's messages (administrators)",
			},
			{
				Name: "Automatic",
				Value: "- Discord message links are expanded into a preview\n" +
					"- x.com and twitter.com links are reposted through an embed mirror\n" +
					"- Deleting your message removes the bot's preview too",
			},
		},
	}
	h.footer(embed)
	return embed
}

func (h *Handlers) footer(embed *discordgo.MessageEmbed) {
	if h.self == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "v" + Version}
		return
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text:    fmt.Sprintf("%s | v%s", h.self.Username, Version),
		IconURL: h.self.AvatarURL(""),
	}
}

func (h *Handlers) About(i *discordgo.InteractionCreate) {
	h.respond(i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{h.aboutEmbed()},
	})
}
